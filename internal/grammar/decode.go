package grammar

import "strings"

// FromHex decodes a single hexadecimal digit. The second value is false if c
// is not a hex digit.
func FromHex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// PercentDecode replaces every %HH escape in b with the byte it encodes. A
// percent sign that is not followed by two hex digits is copied through as-is.
func PercentDecode(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] == '%' && i+2 < len(b) {
			hi, okHi := FromHex(b[i+1])
			lo, okLo := FromHex(b[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, b[i])
	}
	return out
}

// Unquote trims whitespace from s and, if what remains is wrapped in double
// quotes, removes them. Escapes within the quotes are left alone.
func Unquote(s string) string {
	s = TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// WriteValue writes a parameter value to b, bare if it is a token and as a
// quoted-string otherwise. Inside the quotes, '"' and '\' are escaped with a
// backslash.
func WriteValue(b *strings.Builder, v string) {
	if IsToken(v) {
		b.WriteString(v)
		return
	}

	b.WriteByte('"')
	for i := 0; i < len(v); i++ {
		if v[i] == '"' || v[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(v[i])
	}
	b.WriteByte('"')
}

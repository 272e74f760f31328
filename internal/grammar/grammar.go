// Package grammar holds the character classes and small byte helpers shared
// by the media type tokenizer and serializer. The classes come from RFC 7230
// (tchar), RFC 5234 (ALPHA, DIGIT), and RFC 2046 (bchars).
package grammar

// MaxBoundaryLength is the longest boundary RFC 2046 permits.
const MaxBoundaryLength = 70

type class uint8

const (
	classAlpha class = 1 << iota
	classDigit
	classTChar
	classBCharNoSpace
	classBChar
	classSpace
)

var classes [256]class

func init() {
	for c := 'A'; c <= 'Z'; c++ {
		classes[c] |= classAlpha
		classes[c+'a'-'A'] |= classAlpha
	}
	for c := '0'; c <= '9'; c++ {
		classes[c] |= classDigit
	}

	for i := range classes {
		if classes[i]&(classAlpha|classDigit) != 0 {
			classes[i] |= classTChar | classBCharNoSpace | classBChar
		}
	}

	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		classes[c] |= classTChar
	}

	for _, c := range []byte("'()+_,-./:=?") {
		classes[c] |= classBCharNoSpace | classBChar
	}

	classes[' '] |= classBChar | classSpace
	classes['\t'] |= classSpace
	classes['\r'] |= classSpace
	classes['\n'] |= classSpace
}

// IsAlpha reports whether c is an ASCII letter.
//
//	ALPHA = %x41-5A / %x61-7A
func IsAlpha(c byte) bool { return classes[c]&classAlpha != 0 }

// IsDigit reports whether c is an ASCII decimal digit.
//
//	DIGIT = %x30-39
func IsDigit(c byte) bool { return classes[c]&classDigit != 0 }

// IsTChar reports whether c may appear in an RFC 7230 token.
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
func IsTChar(c byte) bool { return classes[c]&classTChar != 0 }

// IsBCharNoSpace reports whether c is a boundary character other than space.
//
//	bcharsnospace = DIGIT / ALPHA / "'" / "(" / ")" / "+" / "_" / "," /
//	                "-" / "." / "/" / ":" / "=" / "?"
func IsBCharNoSpace(c byte) bool { return classes[c]&classBCharNoSpace != 0 }

// IsBChar reports whether c is a boundary character.
//
//	bchars = bcharsnospace / " "
func IsBChar(c byte) bool { return classes[c]&classBChar != 0 }

// IsSpace reports whether c is HTTP whitespace: space, tab, CR, or LF.
func IsSpace(c byte) bool { return classes[c]&classSpace != 0 }

// IsToken reports whether s matches 1*tchar.
func IsToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsTChar(s[i]) {
			return false
		}
	}
	return true
}

// IsBoundary reports whether s is a valid multipart boundary:
//
//	boundary = 0*69<bchars> bcharsnospace
func IsBoundary(s string) bool {
	if s == "" || len(s) > MaxBoundaryLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsBChar(s[i]) {
			return false
		}
	}
	return IsBCharNoSpace(s[len(s)-1])
}

// TrimSpace strips leading and trailing HTTP whitespace.
func TrimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && IsSpace(s[start]) {
		start++
	}
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// ToLower returns c with ASCII upper case letters folded to lower case. All
// other bytes, including those above 0x7f, are returned unchanged.
func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// LowerString folds the ASCII letters of s to lower case.
func LowerString(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = ToLower(b[j])
			}
			return string(b)
		}
	}
	return s
}

package mediatype

import (
	"sort"
	"strings"

	"github.com/zostay/go-mediatype/internal/grammar"
)

// String returns the canonical form of the media type. Parameters are
// written in order of their names. A value that is a token is written bare,
// anything else as a quoted-string:
//
//	example/x.foobar+xml; boundary="foo ,"; charset=US-ASCII; z=1
//
// Parsing the result gives back a MediaType equal to mt.
func (mt *MediaType) String() string {
	b := &strings.Builder{}
	b.WriteString(mt.typ.String())
	b.WriteByte('/')

	if mt.sub == "" {
		b.WriteByte('*')
	} else {
		b.WriteString(mt.tree.String())
		b.WriteString(mt.sub)
		if mt.suffix != "" {
			b.WriteByte('+')
			b.WriteString(mt.suffix)
		}
	}

	keys := make([]string, 0, len(mt.params))
	for k := range mt.params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteString("; ")
		b.WriteString(k)
		b.WriteByte('=')
		grammar.WriteValue(b, mt.params[k])
	}

	return b.String()
}

// Bytes returns the canonical form of the media type as bytes.
func (mt *MediaType) Bytes() []byte {
	return []byte(mt.String())
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (mt *MediaType) MarshalText() ([]byte, error) {
	return mt.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseBytes with the
// default options.
func (mt *MediaType) UnmarshalText(text []byte) error {
	parsed, err := ParseBytes(text)
	if err != nil {
		return err
	}

	*mt = *parsed
	return nil
}

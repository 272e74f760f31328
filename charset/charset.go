// Package charset resolves the names found in the charset parameter of a
// media type. Lookups go through the IANA MIME index provided by
// golang.org/x/text/encoding/ianaindex, which covers pretty much any character
// set you are likely to meet in an HTTP or email header.
package charset

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknown is returned by Parse when the name is not a registered charset
// or is registered but has no encoding available.
var ErrUnknown = errors.New("unknown charset")

// Charset is a character set known to the IANA registry. The zero value is
// not a valid Charset.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the UTF-8 charset.
var UTF8 = Charset{name: "UTF-8", enc: unicode.UTF8}

// Parse looks up a charset by any of its registered names or aliases. The
// lookup is case-insensitive. The returned Charset carries the preferred MIME
// name, so Parse("latin1").String() is "ISO-8859-1".
func Parse(name string) (Charset, error) {
	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return Charset{}, fmt.Errorf("%w %q: %v", ErrUnknown, name, err)
	}

	if e == nil {
		return Charset{}, fmt.Errorf("%w %q: no encoding available", ErrUnknown, name)
	}

	canon, err := ianaindex.MIME.Name(e)
	if err != nil {
		return Charset{}, fmt.Errorf("%w %q: %v", ErrUnknown, name, err)
	}

	return Charset{name: canon, enc: e}, nil
}

// String returns the preferred MIME name of the charset.
func (c Charset) String() string {
	return c.name
}

// Encoding returns the encoding used to transcode text in this charset.
func (c Charset) Encoding() encoding.Encoding {
	return c.enc
}

// Equal reports whether c and o name the same charset.
func (c Charset) Equal(o Charset) bool {
	return c.name == o.name
}

// Decode transcodes b from this charset into UTF-8.
func (c Charset) Decode(b []byte) (string, error) {
	if c.enc == nil {
		return "", ErrUnknown
	}

	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// Encode transcodes the UTF-8 string s into this charset.
func (c Charset) Encode(s string) ([]byte, error) {
	if c.enc == nil {
		return nil, ErrUnknown
	}

	out, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return nil, err
	}

	return []byte(out), nil
}

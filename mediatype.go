package mediatype

import (
	"fmt"

	"github.com/zostay/go-mediatype/charset"
	"github.com/zostay/go-mediatype/internal/grammar"
)

// Names of the parameters that MediaType has accessors for.
const (
	// Charset is the name of the charset parameter, used with text/* types.
	Charset = "charset"

	// Boundary is the name of the boundary parameter, used with multipart/*
	// types.
	Boundary = "boundary"
)

// MediaType is a parsed media type, laid out as:
//
//	type "/" [ tree "." ] subtype [ "+" suffix ] *( ";" name "=" value )
//
// Every name held by a MediaType is lower case, so two media types that
// differ only in letter case compare equal. The zero value is the wildcard
// "*/*".
//
// A MediaType is safe to read from multiple goroutines. The setters, and
// writes through the map returned by Parameters, need exclusive access.
type MediaType struct {
	typ    Type
	tree   Tree
	sub    string
	suffix string
	params map[string]string
}

// Wildcard returns the media type "*/*".
func Wildcard() *MediaType {
	return &MediaType{params: map[string]string{}}
}

// WildcardSubtype returns a media type matching any subtype of t, such as
// "image/*".
func WildcardSubtype(t Type) *MediaType {
	return &MediaType{typ: t, params: map[string]string{}}
}

// New returns a media type with the given type, tree, and subtype. The
// subtype should not include the tree facet. An empty subtype or "*" makes a
// wildcard subtype, in which case the tree is ignored.
//
//	png := mediatype.New(mediatype.Image, mediatype.Standards, "png")
func New(t Type, tree Tree, sub string) *MediaType {
	return NewWithSuffix(t, tree, sub, "")
}

// NewWithSuffix is like New, but also sets the structured syntax suffix, for
// example "json" for "application/ld+json".
func NewWithSuffix(t Type, tree Tree, sub, suffix string) *MediaType {
	if sub == "" || sub == "*" {
		return WildcardSubtype(t)
	}

	return &MediaType{
		typ:    t,
		tree:   tree,
		sub:    grammar.LowerString(sub),
		suffix: grammar.LowerString(suffix),
		params: map[string]string{},
	}
}

// Type returns the top-level type.
func (mt *MediaType) Type() Type { return mt.typ }

// Tree returns the registration tree of the subtype. It returns false if the
// subtype is a wildcard.
func (mt *MediaType) Tree() (Tree, bool) {
	if mt.sub == "" {
		return Standards, false
	}
	return mt.tree, true
}

// Sub returns the subtype without its tree facet or suffix. For
// "application/vnd.oasis.opendocument.text" that is
// "oasis.opendocument.text". It returns false if the subtype is a wildcard.
func (mt *MediaType) Sub() (string, bool) {
	return mt.sub, mt.sub != ""
}

// Suffix returns the structured syntax suffix, such as "xml" for
// "image/svg+xml". It returns false if there is none.
func (mt *MediaType) Suffix() (string, bool) {
	return mt.suffix, mt.suffix != ""
}

// IsWildcard reports whether this is "*/*".
func (mt *MediaType) IsWildcard() bool {
	return mt.typ.IsWildcard() && mt.sub == ""
}

// IsWildcardSubtype reports whether the subtype is "*".
func (mt *MediaType) IsWildcardSubtype() bool {
	return mt.sub == ""
}

// Parameters returns the parameters of the media type. The map is live:
// changes made to it change the media type. Keys must be lower case.
//
// Media types made by Parse or the constructors always have a live map. On
// a zero MediaType with no parameters set yet, the returned map is a fresh
// empty one that is not attached until SetParameter is called.
func (mt *MediaType) Parameters() map[string]string {
	if mt.params == nil {
		return map[string]string{}
	}
	return mt.params
}

// Parameter returns the value of the named parameter. The name is matched
// without regard to case.
func (mt *MediaType) Parameter(name string) (string, bool) {
	v, found := mt.params[grammar.LowerString(name)]
	return v, found
}

// SetParameter sets the named parameter, replacing any existing value.
func (mt *MediaType) SetParameter(name, value string) {
	if mt.params == nil {
		mt.params = make(map[string]string)
	}
	mt.params[grammar.LowerString(name)] = value
}

// DeleteParameter removes the named parameter, if present.
func (mt *MediaType) DeleteParameter(name string) {
	delete(mt.params, grammar.LowerString(name))
}

// Boundary returns the boundary parameter used to delimit the parts of a
// multipart body (RFC 2046, section 5.1.1). It returns ErrNotFound if the
// parameter is missing and ErrInvalid if it is not a legal boundary: 1 to 70
// characters from the boundary alphabet, not ending in a space.
func (mt *MediaType) Boundary() (string, error) {
	b, found := mt.params[Boundary]
	if !found {
		return "", ErrNotFound
	}

	if !grammar.IsBoundary(b) {
		return "", fmt.Errorf("%w: boundary %q", ErrInvalid, b)
	}

	return b, nil
}

// Charset returns the charset parameter (RFC 2046, section 4.1.2 and RFC
// 6657) resolved to a known character set. It returns ErrNotFound if the
// parameter is missing and ErrInvalid if the charset is not recognized.
func (mt *MediaType) Charset() (charset.Charset, error) {
	name, found := mt.params[Charset]
	if !found {
		return charset.Charset{}, ErrNotFound
	}

	cs, err := charset.Parse(grammar.Unquote(name))
	if err != nil {
		return charset.Charset{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return cs, nil
}

// SetCharset sets the charset parameter to the preferred MIME name of cs.
func (mt *MediaType) SetCharset(cs charset.Charset) {
	mt.SetParameter(Charset, cs.String())
}

// SetCharsetUTF8 sets the charset parameter to UTF-8.
func (mt *MediaType) SetCharsetUTF8() {
	mt.SetCharset(charset.UTF8)
}

// EqualMimePortion reports whether mt and o have the same type, tree,
// subtype, and suffix. Parameters are not compared.
func (mt *MediaType) EqualMimePortion(o *MediaType) bool {
	return mt.typ == o.typ &&
		mt.tree == o.tree &&
		mt.sub == o.sub &&
		mt.suffix == o.suffix
}

// NotEqualMimePortion is the inverse of EqualMimePortion.
func (mt *MediaType) NotEqualMimePortion(o *MediaType) bool {
	return !mt.EqualMimePortion(o)
}

// Equal reports whether mt and o are identical, parameters included.
func (mt *MediaType) Equal(o *MediaType) bool {
	if !mt.EqualMimePortion(o) || len(mt.params) != len(o.params) {
		return false
	}

	for k, v := range mt.params {
		if ov, found := o.params[k]; !found || ov != v {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of the media type.
func (mt *MediaType) Clone() *MediaType {
	c := *mt
	if mt.params != nil {
		c.params = make(map[string]string, len(mt.params))
		for k, v := range mt.params {
			c.params[k] = v
		}
	}
	return &c
}

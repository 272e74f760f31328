package mediatype

import "github.com/zostay/go-mediatype/charset"

// Modifier is a modification to apply to a MediaType when calling Modify.
type Modifier func(*MediaType)

// Change is a Modifier that replaces the type, tree, subtype, and suffix with
// those of src. Parameters are left alone.
func Change(src *MediaType) Modifier {
	return func(mt *MediaType) {
		mt.typ = src.typ
		mt.tree = src.tree
		mt.sub = src.sub
		mt.suffix = src.suffix
	}
}

// Set is a Modifier that sets the named parameter.
func Set(name, value string) Modifier {
	return func(mt *MediaType) {
		mt.SetParameter(name, value)
	}
}

// Delete is a Modifier that removes the named parameter.
func Delete(name string) Modifier {
	return func(mt *MediaType) {
		mt.DeleteParameter(name)
	}
}

// WithCharset is a Modifier that sets the charset parameter.
func WithCharset(cs charset.Charset) Modifier {
	return func(mt *MediaType) {
		mt.SetCharset(cs)
	}
}

// Modify clones mt, applies the given modifications (if any) and returns the
// new MediaType. The original is not changed:
//
//	mt := mediatype.MustParse("multipart/mixed; boundary=abc123")
//	nmt := mediatype.Modify(mt,
//		mediatype.Change(mediatype.New(mediatype.Multipart, mediatype.Standards, "alternative")),
//		mediatype.Set("boundary", "xyz789"),
//	)
func Modify(mt *MediaType, changes ...Modifier) *MediaType {
	c := mt.Clone()
	for _, change := range changes {
		change(c)
	}
	return c
}

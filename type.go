package mediatype

import "github.com/zostay/go-mediatype/internal/grammar"

type typeKind uint8

const (
	anyType typeKind = iota
	textType
	imageType
	audioType
	videoType
	applicationType
	multipartType
	messageType
	modelType
	unregisteredType
)

var typeNames = [...]string{
	anyType:         "*",
	textType:        "text",
	imageType:       "image",
	audioType:       "audio",
	videoType:       "video",
	applicationType: "application",
	multipartType:   "multipart",
	messageType:     "message",
	modelType:       "model",
}

// Type is the top-level type of a media type. The zero value is AnyType, the
// "*" wildcard. Types are comparable with ==.
type Type struct {
	kind typeKind
	name string
}

// The registered top-level types.
var (
	AnyType     = Type{kind: anyType}
	Text        = Type{kind: textType}
	Image       = Type{kind: imageType}
	Audio       = Type{kind: audioType}
	Video       = Type{kind: videoType}
	Application = Type{kind: applicationType}
	Multipart   = Type{kind: multipartType}
	Message     = Type{kind: messageType}
	Model       = Type{kind: modelType}
)

// UnregisteredType returns a top-level type outside the registered set, such
// as "example" or "chemical". The name is folded to lower case. Note that
// UnregisteredType("text") is not equal to Text; use TypeOf to resolve a name
// to a registered type where one exists.
func UnregisteredType(name string) Type {
	return Type{kind: unregisteredType, name: grammar.LowerString(name)}
}

// TypeOf returns the Type for the given lower case name: AnyType for "*", one
// of the registered types, or an unregistered type.
func TypeOf(name string) Type {
	for k, n := range typeNames {
		if n == name {
			return Type{kind: typeKind(k)}
		}
	}
	return UnregisteredType(name)
}

// IsWildcard reports whether t is AnyType.
func (t Type) IsWildcard() bool { return t.kind == anyType }

// IsRegistered reports whether t is one of the registered top-level types.
func (t Type) IsRegistered() bool {
	return t.kind != anyType && t.kind != unregisteredType
}

// String returns the name of the type, "*" for AnyType.
func (t Type) String() string {
	if t.kind == unregisteredType {
		return t.name
	}
	return typeNames[t.kind]
}

type treeKind uint8

const (
	standardsTree treeKind = iota
	vendorTree
	personalTree
	privateTree
	unregisteredTree
)

var treeFacets = [...]string{
	standardsTree: "",
	vendorTree:    "vnd",
	personalTree:  "prs",
	privateTree:   "x",
}

// Tree is the registration tree of a subtype, given by the facet before the
// first "." of the subtype. The zero value is Standards.
type Tree struct {
	kind treeKind
	name string
}

// The registration trees of RFC 6838.
var (
	// Standards is the tree for types registered with IANA. It has no facet.
	Standards = Tree{kind: standardsTree}

	// Vendor is the "vnd." tree for types tied to publicly available
	// products.
	Vendor = Tree{kind: vendorTree}

	// Personal is the "prs." tree for experimental or non-commercial types.
	Personal = Tree{kind: personalTree}

	// Private is the "x." tree for types used only in private, local
	// environments.
	Private = Tree{kind: privateTree}
)

// UnregisteredTree returns a tree for a facet that RFC 6838 does not define.
// The facet is folded to lower case and must not include the trailing ".".
func UnregisteredTree(facet string) Tree {
	return Tree{kind: unregisteredTree, name: grammar.LowerString(facet)}
}

// TreeOf returns the Tree for the given lower case facet.
func TreeOf(facet string) Tree {
	for k, n := range treeFacets {
		if k != int(standardsTree) && n == facet {
			return Tree{kind: treeKind(k)}
		}
	}
	return UnregisteredTree(facet)
}

// Facet returns the facet name without the trailing ".". It is empty for
// Standards.
func (t Tree) Facet() string {
	if t.kind == unregisteredTree {
		return t.name
	}
	return treeFacets[t.kind]
}

// String returns the subtype prefix for the tree: the facet followed by a
// ".", or nothing for Standards.
func (t Tree) String() string {
	if t.kind == standardsTree {
		return ""
	}
	return t.Facet() + "."
}

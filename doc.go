// Package mediatype parses, classifies, and formats media types (also known
// as MIME types) as described by RFC 2046, RFC 6838, and RFC 2231.
//
// A media type names the format of a piece of content. In email and HTTP it
// shows up in the Content-type header:
//
//	Content-type: application/vnd.oasis.opendocument.text; charset=UTF-8
//
// Parse breaks such a value down into a MediaType. The top-level type is one
// of the registered types (Text, Image, Audio, Video, Application, Multipart,
// Message, Model) or an unregistered one. The subtype is further split into
// its registration tree (Standards, Vendor, Personal, Private), the subtype
// name proper, and an optional structured syntax suffix such as "xml" or
// "json". Parameters are kept in a map keyed by lower case name. Parameters
// written in the RFC 2231 extended form, title*=us-ascii'en'some%20text, are
// decoded on the way in.
//
// The parser is written for untrusted input. It makes a single pass over the
// bytes, caps the length of the type, subtype, and parameter names (see
// DefaultMaxTokenLength and WithMaxTokenLength), and never panics. It is
// lenient in the way real-world headers need: repeated parameters are
// allowed and the last one wins, stray text after a value is skipped, and an
// unterminated quoted-string runs to the end of the input.
//
// The String method writes the canonical form of a MediaType, with the
// parameters sorted by name and values quoted only when they have to be.
// Parsing that output always gives back an equal MediaType.
//
// The Is*Type methods implement the MIME type groups of the WHATWG MIME
// Sniffing standard. They only look at the type, tree, subtype, and suffix,
// never the parameters.
//
// This package does no logging of its own. Every error is returned to the
// caller and can be tested with errors.Is against ErrInvalid, ErrNotFound,
// and ErrDecode.
package mediatype

package mediatype

import (
	"errors"
	"fmt"
)

// Errors returned while parsing and while reading parameters.
var (
	// ErrInvalid is returned when a media type is malformed: it is empty, a
	// token is too long, the slash is missing, or an RFC 2231 extended value
	// is badly encoded. It is also returned by Boundary and Charset when the
	// parameter is present but holds an unusable value.
	ErrInvalid = errors.New("invalid media type")

	// ErrNotFound is returned by Boundary and Charset when the media type has
	// no such parameter.
	ErrNotFound = errors.New("media type parameter not found")

	// ErrDecode is wrapped by every DecodeError.
	ErrDecode = errors.New("media type is not valid UTF-8")
)

// DecodeError is returned when a piece of a media type is not valid UTF-8.
type DecodeError struct {
	// Token names the part of the media type that failed: "type",
	// "subtype", or the name of a parameter.
	Token string

	// Offset is the byte offset of the first invalid byte within that part.
	Offset int
}

// Error returns a description of the decode failure.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%v: %s at byte %d", ErrDecode, e.Token, e.Offset)
}

// Unwrap returns ErrDecode.
func (e *DecodeError) Unwrap() error {
	return ErrDecode
}

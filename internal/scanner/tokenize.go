package scanner

import (
	"errors"
	"fmt"

	"github.com/zostay/go-mediatype/internal/grammar"
)

// Errors returned by Tokenize. The caller is expected to wrap these.
var (
	// ErrEmpty is returned when nothing but whitespace was given.
	ErrEmpty = errors.New("empty media type")

	// ErrNoSlash is returned when the input ends before the slash separating
	// the type from the subtype.
	ErrNoSlash = errors.New("missing slash after type")

	// ErrTokenTooLong is returned when the type, subtype, or a parameter name
	// is longer than the configured maximum.
	ErrTokenTooLong = errors.New("token too long")
)

// Param is a raw parameter as found in the input. The name is lower case,
// the value is exactly as written, minus any quoting.
type Param struct {
	Name  []byte
	Value []byte
}

// Tokens is the raw result of Tokenize. Nothing here has been checked for
// valid UTF-8 yet.
type Tokens struct {
	Type    []byte
	Subtype []byte

	// Params holds the parameters in the order they were first seen. A name
	// appearing more than once holds the last value given for it.
	Params []Param
}

type tokenizer struct {
	buf    []byte
	pos    int
	maxLen int

	params []Param
	index  map[string]int
}

// Tokenize splits a media type into its type, subtype, and parameters in a
// single pass over b. The type, subtype, and parameter names are folded to
// lower case as they are read. Each of those tokens may be at most maxLen
// bytes long; a maxLen <= 0 means there is no limit.
func Tokenize(b []byte, maxLen int) (*Tokens, error) {
	t := &tokenizer{buf: b, maxLen: maxLen}

	t.skipSpace()
	if t.eof() {
		return nil, ErrEmpty
	}

	typ, err := t.readType()
	if err != nil {
		return nil, err
	}

	sub, err := t.readSubtype()
	if err != nil {
		return nil, err
	}

	for t.skipPastSeparator() {
		if err := t.readParam(); err != nil {
			return nil, err
		}
	}

	return &Tokens{
		Type:    typ,
		Subtype: sub,
		Params:  t.params,
	}, nil
}

func (t *tokenizer) eof() bool { return t.pos >= len(t.buf) }

func (t *tokenizer) tooLong(n int) bool { return t.maxLen > 0 && n > t.maxLen }

func (t *tokenizer) skipSpace() {
	for !t.eof() && grammar.IsSpace(t.buf[t.pos]) {
		t.pos++
	}
}

// readType reads up to and consumes the slash. Running out of input first is
// an error.
func (t *tokenizer) readType() ([]byte, error) {
	var typ []byte
	for {
		if t.eof() {
			return nil, ErrNoSlash
		}

		c := t.buf[t.pos]
		t.pos++
		if c == '/' {
			return typ, nil
		}

		typ = append(typ, grammar.ToLower(c))
		if t.tooLong(len(typ)) {
			return nil, fmt.Errorf("type: %w", ErrTokenTooLong)
		}
	}
}

// readSubtype reads up to whitespace, a semicolon, or the end of input. The
// terminator is not consumed.
func (t *tokenizer) readSubtype() ([]byte, error) {
	var sub []byte
	for !t.eof() {
		c := t.buf[t.pos]
		if c == ';' || grammar.IsSpace(c) {
			break
		}

		sub = append(sub, grammar.ToLower(c))
		t.pos++
		if t.tooLong(len(sub)) {
			return nil, fmt.Errorf("subtype: %w", ErrTokenTooLong)
		}
	}
	return sub, nil
}

// skipPastSeparator moves just past the next semicolon that is not inside a
// quoted-string or escaped with a backslash. It returns false if there is no
// such semicolon.
func (t *tokenizer) skipPastSeparator() bool {
	quoted := false
	for !t.eof() {
		switch t.buf[t.pos] {
		case '\\':
			t.pos++
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				t.pos++
				return true
			}
		}
		t.pos++
	}
	return false
}

// readParam reads one name=value pair. Whitespace inside the name is kept
// when more name bytes follow it, so "a b=c" is stored under "a b".
func (t *tokenizer) readParam() error {
	t.skipSpace()

	var name, pending []byte
	for {
		if t.eof() || t.buf[t.pos] == ';' {
			if len(name) > 0 && !t.has(name) {
				t.set(name, []byte{})
			}
			return nil
		}

		c := t.buf[t.pos]
		t.pos++
		switch {
		case c == '=':
			t.set(name, t.readValue(isExtended(name)))
			return nil
		case grammar.IsSpace(c):
			pending = append(pending, c)
		default:
			name = append(name, pending...)
			name = append(name, grammar.ToLower(c))
			pending = pending[:0]
		}

		if t.tooLong(len(name) + len(pending)) {
			return fmt.Errorf("parameter name: %w", ErrTokenTooLong)
		}
	}
}

func isExtended(name []byte) bool {
	return len(name) > 0 && name[len(name)-1] == '*'
}

func (t *tokenizer) readValue(extended bool) []byte {
	t.skipSpace()
	switch {
	case t.eof():
		return []byte{}
	case t.buf[t.pos] == '"':
		t.pos++
		return t.readQuoted()
	case extended:
		return t.readExtended()
	default:
		return t.readBare()
	}
}

// readQuoted reads the body of a quoted-string whose opening quote has been
// consumed. An unterminated string runs to the end of input.
func (t *tokenizer) readQuoted() []byte {
	value := []byte{}
	for !t.eof() {
		c := t.buf[t.pos]
		t.pos++
		switch c {
		case '"':
			return value
		case '\\':
			if !t.eof() {
				value = append(value, t.buf[t.pos])
				t.pos++
			}
		default:
			value = append(value, c)
		}
	}
	return value
}

func (t *tokenizer) readBare() []byte {
	start := t.pos
	for !t.eof() && t.buf[t.pos] != ';' && !grammar.IsSpace(t.buf[t.pos]) {
		t.pos++
	}
	return append([]byte{}, t.buf[start:t.pos]...)
}

// readExtended reads an unquoted RFC 2231 value. These are percent-encoded,
// so whitespace is not a terminator, but trailing whitespace is dropped.
func (t *tokenizer) readExtended() []byte {
	start := t.pos
	for !t.eof() && t.buf[t.pos] != ';' {
		t.pos++
	}

	end := t.pos
	for end > start && grammar.IsSpace(t.buf[end-1]) {
		end--
	}
	return append([]byte{}, t.buf[start:end]...)
}

func (t *tokenizer) has(name []byte) bool {
	_, found := t.index[string(name)]
	return found
}

func (t *tokenizer) set(name, value []byte) {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if i, found := t.index[string(name)]; found {
		t.params[i].Value = value
		return
	}

	t.index[string(name)] = len(t.params)
	t.params = append(t.params, Param{
		Name:  append([]byte{}, name...),
		Value: value,
	})
}

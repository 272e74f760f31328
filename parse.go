package mediatype

import (
	"bufio"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zostay/go-mediatype/internal/grammar"
	"github.com/zostay/go-mediatype/internal/scanner"
)

// DefaultMaxTokenLength is the default limit, in bytes, on the length of the
// type, the subtype, and each parameter name. It bounds the work done on
// hostile input. Parameter values are not limited.
const DefaultMaxTokenLength = 127

type parser struct {
	maxTokenLen int
	rawExtended bool
}

var defaultParser = &parser{
	maxTokenLen: DefaultMaxTokenLength,
}

// ParseOption refers to options that may be passed to Parse to modify how
// the parser works.
type ParseOption func(pr *parser)

// WithMaxTokenLength is a ParseOption that sets the maximum length of the
// type, subtype, and parameter name tokens. Longer tokens fail with
// ErrInvalid. Setting this to a value less than or equal to 0 removes the
// limit. The default is DefaultMaxTokenLength.
func WithMaxTokenLength(n int) ParseOption {
	return func(pr *parser) { pr.maxTokenLen = n }
}

// WithRawExtendedParameters is a ParseOption that turns off RFC 2231
// decoding. A parameter written as title*=us-ascii'en'a%20b is then stored
// under "title*" with the value exactly as written, rather than under
// "title" with the value "a b".
func WithRawExtendedParameters() ParseOption {
	return func(pr *parser) { pr.rawExtended = true }
}

func makeParser(opts []ParseOption) *parser {
	if len(opts) == 0 {
		return defaultParser
	}

	pr := *defaultParser
	for _, opt := range opts {
		opt(&pr)
	}
	return &pr
}

// Parse parses a media type such as
//
//	text/html; charset=UTF-8
//
// Surrounding whitespace is ignored. The type, subtype, and parameter names
// are folded to lower case. When a parameter is repeated, the last value
// wins. Parameters named with a trailing "*" are decoded as RFC 2231
// extended values and stored without the "*".
//
// Parse returns an error wrapping ErrInvalid if the input is malformed and
// a *DecodeError if any part of it is not valid UTF-8.
func Parse(s string, opts ...ParseOption) (*MediaType, error) {
	s = grammar.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, scanner.ErrEmpty)
	}
	return makeParser(opts).parse([]byte(s))
}

// ParseBytes is like Parse, but takes the raw bytes of a header value.
func ParseBytes(b []byte, opts ...ParseOption) (*MediaType, error) {
	return makeParser(opts).parse(b)
}

// MustParse is like Parse, but panics on error. It is intended for
// initializing package variables from literals.
func MustParse(s string, opts ...ParseOption) *MediaType {
	mt, err := Parse(s, opts...)
	if err != nil {
		panic(fmt.Sprintf("mediatype: Parse(%q): %v", s, err))
	}
	return mt
}

// ParseList parses a list of media types separated by commas or line
// breaks. Commas inside quoted parameter values do not split the list. Blank
// elements are skipped. The first element that fails to parse stops the
// parse and its error is returned.
func ParseList(s string, opts ...ParseOption) ([]*MediaType, error) {
	pr := makeParser(opts)

	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(nil, len(s)+1)
	sc.Split(scanner.ScanList)

	var mts []*MediaType
	for sc.Scan() {
		mt, err := pr.parse(sc.Bytes())
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", len(mts)+1, err)
		}
		mts = append(mts, mt)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return mts, nil
}

func (pr *parser) parse(b []byte) (*MediaType, error) {
	ts, err := scanner.Tokenize(b, pr.maxTokenLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return pr.structure(ts)
}

// structure turns the raw tokens into a MediaType.
func (pr *parser) structure(ts *scanner.Tokens) (*MediaType, error) {
	typ, err := decodeToken("type", ts.Type)
	if err != nil {
		return nil, err
	}

	sub, err := decodeToken("subtype", ts.Subtype)
	if err != nil {
		return nil, err
	}

	if typ == "" {
		return nil, fmt.Errorf("%w: empty type", ErrInvalid)
	}

	if sub == "" {
		return nil, fmt.Errorf("%w: empty subtype", ErrInvalid)
	}

	mt := &MediaType{
		typ:    TypeOf(typ),
		params: make(map[string]string, len(ts.Params)),
	}

	if sub != "*" {
		mt.tree, mt.sub, mt.suffix, err = splitSubtype(sub)
		if err != nil {
			return nil, err
		}
	}

	for _, p := range ts.Params {
		name, value, err := pr.decodeParam(p)
		if err != nil {
			return nil, err
		}
		mt.params[name] = value
	}

	return mt, nil
}

// splitSubtype splits off the suffix at the last "+" and then the tree facet
// at the first ".". Neither the suffix nor the remaining name may be empty,
// since an empty name is how the model stores the "*" wildcard.
func splitSubtype(sub string) (tree Tree, name, suffix string, err error) {
	if i := strings.LastIndexByte(sub, '+'); i >= 0 {
		sub, suffix = sub[:i], sub[i+1:]
		if suffix == "" {
			return Standards, "", "", fmt.Errorf("%w: empty suffix", ErrInvalid)
		}
	}

	tree, name = Standards, sub
	if i := strings.IndexByte(sub, '.'); i >= 0 {
		tree, name = TreeOf(sub[:i]), sub[i+1:]
	}

	if name == "" {
		return Standards, "", "", fmt.Errorf("%w: empty subtype name", ErrInvalid)
	}

	return tree, name, suffix, nil
}

func (pr *parser) decodeParam(p scanner.Param) (string, string, error) {
	name, err := decodeToken("parameter name", p.Name)
	if err != nil {
		return "", "", err
	}

	if pr.rawExtended || !strings.HasSuffix(name, "*") {
		value, err := decodeToken(name, p.Value)
		return name, value, err
	}

	name = strings.TrimSuffix(name, "*")
	if strings.HasSuffix(name, "*") {
		return "", "", fmt.Errorf("%w: parameter %s*: extended name ends in more than one *", ErrInvalid, name)
	}

	value, err := decodeExtended(name, p.Value)
	return name, value, err
}

// decodeExtended decodes an RFC 2231 value, charset'language'percent-encoded,
// and returns the text. The charset and language are discarded.
func decodeExtended(name string, b []byte) (string, error) {
	value, err := decodeToken(name, grammar.PercentDecode(b))
	if err != nil {
		return "", err
	}

	parts := strings.SplitN(value, "'", 3)
	if len(parts) < 3 {
		return "", fmt.Errorf("%w: parameter %s: extended value needs charset'language' prefix", ErrInvalid, name)
	}

	return parts[2], nil
}

func decodeToken(token string, b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &DecodeError{Token: token, Offset: invalidOffset(b)}
	}
	return string(b), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

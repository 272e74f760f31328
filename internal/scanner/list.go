package scanner

import (
	"bytes"

	"github.com/zostay/go-mediatype/internal/grammar"
)

// ScanList is a bufio.SplitFunc that breaks a list of media types apart at
// commas and line breaks. Separators inside quoted-strings are ignored.
// Every token is trimmed of whitespace and blank elements are skipped.
var ScanList = MakeSplitFuncExitByAdvance(splitListElement)

func splitListElement(data []byte, atEOF bool) (int, []byte, error) {
	quoted := false
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case ',', '\n':
			if !quoted {
				return i + 1, element(data[:i]), nil
			}
		}
	}

	if !atEOF {
		return 0, nil, nil
	}

	if len(data) == 0 {
		return 0, nil, nil
	}

	return len(data), element(data), nil
}

// element trims an element and returns nil for a blank one so that the
// caller skips it.
func element(b []byte) []byte {
	b = bytes.TrimFunc(b, func(r rune) bool {
		return r < 0x80 && grammar.IsSpace(byte(r))
	})
	if len(b) == 0 {
		return nil
	}
	return b
}

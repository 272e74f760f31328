package cmd

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zostay/go-mediatype"
)

var (
	maxTokenLength int
	rawExtended    bool
)

func parseOptions() []mediatype.ParseOption {
	var opts []mediatype.ParseOption
	if maxTokenLength != 0 {
		opts = append(opts, mediatype.WithMaxTokenLength(maxTokenLength))
	}
	if rawExtended {
		opts = append(opts, mediatype.WithRawExtendedParameters())
	}
	return opts
}

// Result describes one media type taken through parse, format, and parse
// again.
type Result struct {
	Input     string
	Canonical string

	// Stable is true when parsing Canonical gives back the same media type
	// and formats to the same string.
	Stable bool

	// Diffs is the character diff from Input to Canonical.
	Diffs []diffmatchpatch.Diff
}

// Changed reports whether formatting changed the input text.
func (r *Result) Changed() bool {
	for _, d := range r.Diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// PrettyDiff renders the diff with ANSI colors for a terminal.
func (r *Result) PrettyDiff() string {
	return diffmatchpatch.New().DiffPrettyText(r.Diffs)
}

// Check parses in, formats it, and parses the result again. It returns an
// error only if in cannot be parsed.
func Check(in string, opts ...mediatype.ParseOption) (*Result, error) {
	mt, err := mediatype.Parse(in, opts...)
	if err != nil {
		return nil, err
	}

	canon := mt.String()
	r := &Result{
		Input:     in,
		Canonical: canon,
		Diffs:     diffmatchpatch.New().DiffMain(in, canon, false),
	}

	again, err := mediatype.Parse(canon, opts...)
	r.Stable = err == nil && again.Equal(mt) && again.String() == canon

	return r, nil
}

// Package changes checks and reads the Changes.md file kept at the root of
// the project. The file is a list of releases, newest first:
//
//	WIP  TBD
//
//	 * A change that has not been released yet.
//
//	v0.1.0  2026-10-19
//
//	 * A change in the first release, which may run on to
//	   a second line.
package changes

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// CheckMode selects how strict Lint is about the WIP heading.
type CheckMode int

const (
	// CheckStandard permits, but does not require, a WIP heading.
	CheckStandard CheckMode = iota

	// CheckPreRelease requires a WIP heading on the first line.
	CheckPreRelease

	// CheckRelease forbids a WIP heading.
	CheckRelease
)

// Failure is a single problem found by Lint.
type Failure struct {
	Line    int
	Message string
}

// Failures is every problem found by Lint, in line order.
type Failures []Failure

func (fs Failures) String() string {
	lines := make([]string, len(fs))
	for i, f := range fs {
		lines[i] = fmt.Sprintf(" * Line %d: %s", f.Line, f.Message)
	}
	return strings.Join(lines, "\n")
}

// Error is returned by Lint when the change log has problems.
type Error struct {
	Failures
}

func (e *Error) Error() string {
	return fmt.Sprintf("change log check failed:\n%s", e.Failures)
}

type lineKind int

const (
	lineBad lineKind = iota
	lineBlank
	lineSpaces
	lineWIP
	lineHeading
	lineBullet
	lineContinuation
)

var (
	versionHeading      = regexp.MustCompile(`^v(\d\S+) {2}(20\d\d-\d\d-\d\d)$`)
	logLineStart        = regexp.MustCompile(`^ \* \S`)
	logLineContinuation = regexp.MustCompile(`^ {3}\S`)
)

func classify(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.TrimSpace(line) == "":
		return lineSpaces
	case line == "WIP" || line == "WIP  TBD":
		return lineWIP
	case versionHeading.MatchString(line):
		return lineHeading
	case logLineStart.MatchString(line):
		return lineBullet
	case logLineContinuation.MatchString(line):
		return lineContinuation
	}
	return lineBad
}

type linter struct {
	mode CheckMode

	prevKind    lineKind
	prevVersion *semver.Version
	prevDate    string
	headingLine int

	Failures
}

func (l *linter) fail(n int, f string, args ...any) {
	l.Failures = append(l.Failures, Failure{n, fmt.Sprintf(f, args...)})
}

// Lint reads a change log from r and returns an *Error listing every problem
// found, or nil if there are none.
func Lint(r io.Reader, mode CheckMode) error {
	l := &linter{mode: mode, prevKind: lineBlank}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		l.check(n, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return err
	}

	if len(l.Failures) > 0 {
		return &Error{l.Failures}
	}
	return nil
}

func (l *linter) check(n int, line string) {
	kind := classify(line)
	defer func() { l.prevKind = kind }()

	if n == 1 && kind != lineWIP && l.mode == CheckPreRelease {
		l.fail(n, "WIP not found during pre-release check")
	}

	switch kind {
	case lineWIP:
		if n > 1 {
			l.fail(n, "WIP found after line 1")
		}
		if l.mode == CheckRelease {
			l.fail(n, "found WIP line during release")
		}
		l.headingLine = n

	case lineHeading:
		l.checkHeading(n, line)

	case lineBullet:
		switch {
		case l.headingLine == 0:
			l.fail(n, "log bullet before first version heading or WIP")
		case l.prevKind == lineWIP || l.prevKind == lineHeading:
			l.fail(n, "missing blank line before log bullet")
		case l.prevKind == lineBlank && n > l.headingLine+2:
			l.fail(n, "extra blank line before log bullet")
		}

	case lineContinuation:
		if l.prevKind != lineBullet && l.prevKind != lineContinuation {
			l.fail(n, "log line continuation has no bullet to continue")
		}

	case lineBlank:
		if l.prevKind == lineBlank && n > 1 {
			l.fail(n, "consecutive blank lines")
		}

	case lineSpaces:
		l.fail(n, "line looks blank, but has spaces in it")

	default:
		l.fail(n, "badly formatted line")
	}
}

func (l *linter) checkHeading(n int, line string) {
	if n != 1 && l.prevKind != lineBlank {
		l.fail(n, "version heading line missing blank line before it")
	}

	m := versionHeading.FindStringSubmatch(line)
	version, err := semver.NewVersion(m[1])
	if err != nil {
		l.fail(n, "unable to parse version number in heading: %v", err)
		l.headingLine = n
		return
	}

	// headings run newest first
	if l.prevVersion != nil && l.prevVersion.LessThan(*version) {
		l.fail(n, "version error %s > %s from line %d", version, l.prevVersion, l.headingLine)
	}

	if l.prevDate != "" && l.prevDate < m[2] {
		l.fail(n, "date error %s > %s from line %d", m[2], l.prevDate, l.headingLine)
	}

	l.prevVersion = version
	l.prevDate = m[2]
	l.headingLine = n
}

package changes

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ExtractSection returns the bullets written below the heading for the given
// version, such as "v0.1.0" or "WIP". It returns an error if the heading is
// not found.
func ExtractSection(r io.Reader, version string) (string, error) {
	var (
		prefix  = version + "  "
		sc      = bufio.NewScanner(r)
		started = false
		buf     = &strings.Builder{}
	)

	for sc.Scan() {
		line := sc.Text()
		if !started {
			started = strings.HasPrefix(line, prefix) || line == version
			continue
		}

		kind := classify(line)
		if kind == lineHeading || kind == lineWIP {
			break
		}

		if kind == lineBlank {
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := sc.Err(); err != nil {
		return "", err
	}

	if !started {
		return "", fmt.Errorf("a change log section for version %s was not found", version)
	}

	return buf.String(), nil
}

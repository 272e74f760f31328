package scanner_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mediatype/internal/scanner"
)

func scanAll(t *testing.T, in string) []string {
	t.Helper()

	sc := bufio.NewScanner(strings.NewReader(in))
	sc.Split(scanner.ScanList)

	var out []string
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	require.NoError(t, sc.Err())
	return out
}

func TestScanList(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"text/html", "application/xhtml+xml", "*/*; q=0.8"},
		scanAll(t, "text/html, application/xhtml+xml,*/*; q=0.8"))

	assert.Equal(t,
		[]string{`video/3gpp2; codecs="sevc, s263"`, "audio/ogg"},
		scanAll(t, `video/3gpp2; codecs="sevc, s263", audio/ogg`))

	assert.Equal(t,
		[]string{`a/b; x="q\",r"`, "c/d"},
		scanAll(t, `a/b; x="q\",r",c/d`))

	assert.Equal(t,
		[]string{"text/plain", "image/png"},
		scanAll(t, "\n, text/plain ,,\n\n  image/png\n \n"))

	assert.Empty(t, scanAll(t, ""))
	assert.Empty(t, scanAll(t, " , \n ,"))
}

func TestMakeSplitFuncExitByAdvance(t *testing.T) {
	t.Parallel()

	// skips every other byte without producing a token
	calls := 0
	split := scanner.MakeSplitFuncExitByAdvance(
		func(data []byte, atEOF bool) (int, []byte, error) {
			calls++
			if len(data) == 0 {
				return 0, nil, nil
			}
			if data[0] == '-' {
				return 1, nil, nil
			}
			return 1, data[:1], nil
		})

	adv, tok, err := split([]byte("--x"), true)
	assert.NoError(t, err)
	assert.Equal(t, 3, adv)
	assert.Equal(t, []byte("x"), tok)
	assert.Equal(t, 3, calls)
}

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	fileCmd = &cobra.Command{
		Use:   "file <path>",
		Short: "Checks the round-trip of every media type in a file, one per line",
		Long: `Checks the round-trip of every media type in a file, one per line.
Blank lines and lines starting with # are skipped. Use - to read standard input.`,
		Args: cobra.ExactArgs(1),
		Run:  RunFile,
	}

	verbose bool
)

func init() {
	fileCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the diff for every changed media type")
	rootCmd.AddCommand(fileCmd)
}

// Summary counts the outcomes of CheckAll.
type Summary struct {
	Total    int
	Changed  int
	Unstable int
	Failed   int
}

// OK reports whether every media type parsed and round-tripped.
func (s Summary) OK() bool {
	return s.Unstable == 0 && s.Failed == 0
}

// CheckAll runs Check on every line of r and writes a report of problems to
// w. With verbose set, every change made by formatting is reported too.
func CheckAll(r io.Reader, w io.Writer, verbose bool) (Summary, error) {
	var (
		sum  Summary
		sc   = bufio.NewScanner(r)
		line = 0
		opts = parseOptions()
	)

	for sc.Scan() {
		line++
		in := strings.TrimSpace(sc.Text())
		if in == "" || strings.HasPrefix(in, "#") {
			continue
		}

		sum.Total++
		res, err := Check(in, opts...)
		switch {
		case err != nil:
			sum.Failed++
			_, _ = fmt.Fprintf(w, "%d: %q: %v\n", line, in, err)
			continue
		case !res.Stable:
			sum.Unstable++
			_, _ = fmt.Fprintf(w, "%d: %q: does not round-trip: %q\n", line, in, res.Canonical)
		case verbose && res.Changed():
			_, _ = fmt.Fprintf(w, "%d: %s\n", line, res.PrettyDiff())
		}

		if res.Changed() {
			sum.Changed++
		}
	}

	return sum, sc.Err()
}

func RunFile(_ *cobra.Command, args []string) {
	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "unable to open %s: %v\n", args[0], err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		in = f
	}

	sum, err := CheckAll(in, os.Stdout, verbose)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed reading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	fmt.Printf("total = %d, changed = %d, unstable = %d, failed = %d\n",
		sum.Total, sum.Changed, sum.Unstable, sum.Failed)

	if !sum.OK() {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var oneCmd = &cobra.Command{
	Use:   "one <media-type>",
	Short: "Shows the diff of a single media type round-trip",
	Args:  cobra.ExactArgs(1),
	Run:   RunOne,
}

func init() {
	rootCmd.AddCommand(oneCmd)
}

func RunOne(_ *cobra.Command, args []string) {
	r, err := Check(args[0], parseOptions()...)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to parse %q: %v\n", args[0], err)
		os.Exit(1)
	}

	fmt.Printf("input     = %s\n", r.Input)
	fmt.Printf("canonical = %s\n", r.Canonical)
	if r.Changed() {
		fmt.Printf("diff      = %s\n", r.PrettyDiff())
	}

	if !r.Stable {
		_, _ = fmt.Fprintln(os.Stderr, "canonical form does not round-trip")
		os.Exit(1)
	}
}

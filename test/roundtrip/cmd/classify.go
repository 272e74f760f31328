package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <media-type>...",
	Short: "Lists the MIME sniffing type groups each media type belongs to",
	Args:  cobra.MinimumNArgs(1),
	Run:   RunClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// Groups returns the names of the MIME sniffing type groups mt is in.
func Groups(mt *mediatype.MediaType) []string {
	tests := []struct {
		name string
		in   func() bool
	}{
		{"image", mt.IsImageType},
		{"audio-or-video", mt.IsAudioOrVideoType},
		{"font", mt.IsFontType},
		{"zip-based", mt.IsZipBasedType},
		{"archive", mt.IsArchiveType},
		{"xml", mt.IsXMLType},
		{"scriptable", mt.IsScriptableMimeType},
	}

	var groups []string
	for _, t := range tests {
		if t.in() {
			groups = append(groups, t.name)
		}
	}
	return groups
}

func RunClassify(_ *cobra.Command, args []string) {
	failed := false
	for _, arg := range args {
		mts, err := mediatype.ParseList(arg, parseOptions()...)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "unable to parse %q: %v\n", arg, err)
			failed = true
			continue
		}

		for _, mt := range mts {
			groups := Groups(mt)
			if len(groups) == 0 {
				groups = []string{"-"}
			}
			fmt.Printf("%s: %s\n", mt, strings.Join(groups, ", "))
		}
	}

	if failed {
		os.Exit(1)
	}
}

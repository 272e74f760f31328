package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype/tools/pm/changes"
)

var (
	extractChangelogCmd = &cobra.Command{
		Use:   "extract <version>",
		Short: "extract the bullets for the changelog section for the given version",
		Args:  cobra.ExactArgs(1),
		Run:   ExtractChangelog,
	}
)

func ExtractChangelog(_ *cobra.Command, args []string) {
	changelog, err := os.Open(changelogFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to open %s file: %v\n", changelogFile, err)
		os.Exit(1)
	}
	defer func() { _ = changelog.Close() }()

	section, err := changes.ExtractSection(changelog, args[0])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to read changelog section: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(section)
}

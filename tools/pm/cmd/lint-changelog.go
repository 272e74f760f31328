package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mediatype/tools/pm/changes"
)

var (
	lintChangelogCmd = &cobra.Command{
		Use:   "lint",
		Short: "Check the changelog file for problems",
		Args:  cobra.NoArgs,
		Run:   LintChangelog,
	}

	isRelease    bool
	isPreRelease bool
)

func init() {
	lintChangelogCmd.Flags().BoolVarP(&isRelease, "release", "r", false, "verify the changelog is ready for release")
	lintChangelogCmd.Flags().BoolVarP(&isPreRelease, "pre-release", "p", false, "verify the changelog has a WIP section")
	lintChangelogCmd.MarkFlagsMutuallyExclusive("release", "pre-release")
}

func LintChangelog(_ *cobra.Command, _ []string) {
	changelog, err := os.Open(changelogFile)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "unable to open %s file: %v\n", changelogFile, err)
		os.Exit(1)
	}
	defer func() { _ = changelog.Close() }()

	mode := changes.CheckStandard
	switch {
	case isRelease:
		mode = changes.CheckRelease
	case isPreRelease:
		mode = changes.CheckPreRelease
	}

	err = changes.Lint(changelog, mode)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

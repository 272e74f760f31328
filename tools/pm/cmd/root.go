package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "pm",
		Short: "Project management tools for go-mediatype",
	}

	changelogFile string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&changelogFile, "file", "f", "Changes.md", "the change log to work with")
	rootCmd.AddCommand(changelogCmd)
}

func Execute() {
	err := rootCmd.Execute()
	cobra.CheckErr(err)
}

package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Tools for testing media type round-tripping",
}

func init() {
	rootCmd.PersistentFlags().IntVar(&maxTokenLength, "max-token-length", 0, "limit on type, subtype, and parameter name length (default 127)")
	rootCmd.PersistentFlags().BoolVar(&rawExtended, "raw-extended", false, "keep RFC 2231 parameters undecoded")
}

func Execute() error {
	return rootCmd.Execute()
}

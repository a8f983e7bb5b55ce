package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/app"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Start the interactive browser (default)",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	return app.Run(cmd.Context(), appOptions())
}

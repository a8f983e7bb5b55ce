package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/export"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Write a plain text digest of the filtered internships",
	Long:  "Writes a chat-ready text digest (bold titles, apply links, stipend lines) of the filtered internships to stdout or a file.",
	RunE:  runDigest,
}

var (
	digestFilters filterFlags
	digestOut     string
)

func init() {
	digestFilters.register(digestCmd)
	digestCmd.Flags().StringVarP(&digestOut, "out", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, _ []string) error {
	now := time.Now()
	page, err := loadPage(cmd, digestFilters, now)
	if err != nil {
		return err
	}
	if digestOut == "" {
		return export.Digest(cmd.OutOrStdout(), page, now)
	}
	return writeFile(digestOut, func(f io.Writer) error {
		return export.Digest(f, page, now)
	})
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered internships as a static HTML page",
	RunE:  runExport,
}

var (
	exportFilters filterFlags
	exportOut     string
)

func init() {
	exportFilters.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "path to output HTML file (required)")

	if err := exportCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	page, err := loadPage(cmd, exportFilters, time.Now())
	if err != nil {
		return err
	}
	if err := writeFile(exportOut, func(w io.Writer) error {
		return export.WriteHTML(w, page)
	}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d internships to %s\n", len(page.Cards), exportOut)
	return nil
}

// writeFile creates path (and its directory) and hands it to write.
func writeFile(path string, write func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

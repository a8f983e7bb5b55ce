package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/five82/internboard/internal/config"
	"github.com/five82/internboard/internal/logtail"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the tail of the application log",
	RunE:  runLogs,
}

var (
	logsLines int
	logsLevel string
)

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to show (0 for all)")
	logsCmd.Flags().StringVarP(&logsLevel, "level", "l", "debug", "minimum level to show")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, err := zapcore.ParseLevel(logsLevel)
	if err != nil {
		return fmt.Errorf("parse level: %w", err)
	}

	path := cfg.LogPath()
	lines, err := logtail.Read(path, logsLines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(lines) == 0 {
		fmt.Fprintf(out, "no log entries in %s\n", path)
		return nil
	}
	for _, line := range logtail.Filter(lines, level) {
		fmt.Fprintln(out, line)
	}
	return nil
}

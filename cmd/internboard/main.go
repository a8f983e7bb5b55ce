// Package main is the internboard command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "internboard",
	Short: "Browse scraped internship listings in the terminal",
	Long: "internboard loads the internship dataset once and lets you search, filter and sort it. " +
		"Without a subcommand it starts the interactive browser.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowse,
}

var (
	configPath     string
	sourceOverride string
	prefsPath      string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "override config path (optional)")
	rootCmd.PersistentFlags().StringVar(&sourceOverride, "source", "", "dataset URL or file path (overrides data_source)")
	rootCmd.PersistentFlags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")
}

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "internboard: %v\n", err)
		return 1
	}
	return 0
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Source:     sourceOverride,
	}
}

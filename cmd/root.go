// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ytthumb/internal/config"
	"ytthumb/internal/display"
	"ytthumb/internal/extract"
	"ytthumb/internal/media"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagQuality string
	flagTime    int
	flagSave    bool
	flagDir     string
	flagOpen    bool
	flagJSON    bool
	flagGeneric bool
	flagTitle   bool
	flagDebug   bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "ytthumb [url]",
	Short: "Fetch and save video thumbnails from the terminal",
	Long: `ytthumb extracts the video ID from a YouTube URL, resolves its thumbnail
at the chosen quality and time offset, and optionally saves it as a PNG.

Accepted URLs: youtu.be/ID, youtube.com/watch?v=ID, youtube.com/live/ID,
youtube.com/shorts/ID (or any embed-style URL with --generic).`,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: loadConfig,
	RunE:              thumbRun,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorf("%s", display.Message(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagQuality, "quality", "q", "", "Thumbnail quality: "+media.QualityNames())
	rootCmd.PersistentFlags().IntVarP(&flagTime, "time", "t", 0, "Time offset in seconds (mqdefault and default only)")
	rootCmd.PersistentFlags().BoolVarP(&flagSave, "save", "s", false, "Save the thumbnail as PNG")
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "Directory to save into (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagOpen, "open", "o", false, "Open the thumbnail in the default viewer")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output the result as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagGeneric, "generic", "g", false, "Use the catch-all URL pattern")
	rootCmd.PersistentFlags().BoolVar(&flagTitle, "title", false, "Look up the video title")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(qualitiesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagQuality != "" {
		cfg.Quality = flagQuality
	}
	if cmd.Flags().Changed("time") {
		cfg.Time = flagTime
		if cfg.Time < 0 {
			cfg.Time = 0
		}
	}
	if flagDir != "" {
		cfg.SaveDir = flagDir
	}
	if flagGeneric {
		cfg.Extractor = extract.ModeGeneric
	}
	if flagTitle {
		cfg.FetchTitle = true
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: !cfg.Debug})
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}

// warnf prints a user-facing warning to stderr.
func warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

// errorf prints a user-facing error to stderr.
func errorf(format string, args ...interface{}) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// stdinIsTerminal is swapped out in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// interactive reports whether prompts can be shown.
func interactive() bool {
	return stdinIsTerminal() && !flagJSON
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ytthumb", Version)
	},
}

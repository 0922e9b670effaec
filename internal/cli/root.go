// Package cli provides the Cobra command structure for rn2md.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/rn2md/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	debug      bool
	configPath string
	dataDir    string
	color      string
}

// NewRootCommand creates the root rn2md command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "rn2md",
		Short: "Convert RedNotebook journal entries to Markdown",
		Long: `rn2md converts RedNotebook journal entries to Markdown.

It reads the per-month archives of a RedNotebook data directory, rewrites
the RedNotebook markup (//italics//, --strikethrough--, =headers=, links,
images, numbered lists) into Markdown, and prints one blank-line-delimited
block per day. Running rn2md with no subcommand prints today's entry.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Bare rn2md behaves like rn2md today.
			return runShow(cmd, flags, selectToday, "")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "",
		"RedNotebook data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newTodayCommand(flags))
	rootCmd.AddCommand(newYesterdayCommand(flags))
	rootCmd.AddCommand(newWeekCommand(flags))
	rootCmd.AddCommand(newRangeCommand(flags))
	rootCmd.AddCommand(newConvertCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rn2md/internal/configloader"
	"github.com/yaklabco/rn2md/internal/logging"
	"github.com/yaklabco/rn2md/internal/ui/pretty"
	"github.com/yaklabco/rn2md/pkg/config"
	"github.com/yaklabco/rn2md/pkg/dates"
	"github.com/yaklabco/rn2md/pkg/journal"
	"github.com/yaklabco/rn2md/pkg/render"
)

// dateSelector picks the dates a command prints, given the current day.
type dateSelector func(today time.Time) ([]time.Time, error)

func selectToday(today time.Time) ([]time.Time, error) {
	return []time.Time{today}, nil
}

func selectYesterday(today time.Time) ([]time.Time, error) {
	return []time.Time{dates.Workyesterday(today)}, nil
}

func selectWeek(today time.Time) ([]time.Time, error) {
	return dates.Week(today), nil
}

func newTodayCommand(root *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Print today's entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, selectToday, format)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newYesterdayCommand(root *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "yesterday",
		Short: "Print the previous working day's entry",
		Long: `Print the previous working day's entry.

On Tuesday through Saturday this is the day before; on Sunday and Monday
it skips back to Friday.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, selectYesterday, format)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newWeekCommand(root *rootFlags) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print this week's entries (Monday through Sunday)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, root, selectWeek, format)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}

func newRangeCommand(root *rootFlags) *cobra.Command {
	var format string
	var from, to string
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Print entries within a date range",
		Long: `Print entries within an inclusive date range.

Both bounds use YYYY-MM-DD format:

  rn2md range --from 2023-07-01 --to 2023-07-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			selector := func(time.Time) ([]time.Time, error) {
				beg, err := dates.Parse(from)
				if err != nil {
					return nil, err
				}
				end, err := dates.Parse(to)
				if err != nil {
					return nil, err
				}
				if end.Before(beg) {
					beg, end = end, beg
				}
				return dates.Range(beg, end), nil
			}
			return runShow(cmd, root, selector, format)
		},
	}
	addFormatFlag(cmd, &format)
	cmd.Flags().StringVarP(&from, "from", "f", "", "range start, YYYY-MM-DD")
	cmd.Flags().StringVarP(&to, "to", "t", "", "range end, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVar(format, "format", "", "output format: text, html")
}

func runShow(cmd *cobra.Command, root *rootFlags, selector dateSelector, format string) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(root, format)
	if err != nil {
		return err
	}

	selected, err := selector(journal.Normalize(time.Now()))
	if err != nil {
		return err
	}

	logger.Debug("loading journal", logging.FieldDataDir, cfg.DataDir)
	store, err := journal.Open(cfg.DataDir)
	if err != nil {
		return err
	}
	logger.Debug("journal loaded",
		logging.FieldEntries, store.Len(),
		logging.FieldDates, len(selected),
	)

	formatter := render.NewFormatter(cfg.HeaderPadding)
	var blocks []string
	for _, day := range selected {
		text, ok := store.Entry(day)
		if !ok {
			continue
		}
		blocks = append(blocks, formatter.FormatDay(day, text))
	}
	if len(blocks) == 0 {
		logger.Warn("no entries for the selected dates")
		return nil
	}

	return writeBlocks(cmd, cfg, blocks)
}

func writeBlocks(cmd *cobra.Command, cfg *config.Config, blocks []string) error {
	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatHTML {
		html, err := render.HTML(render.JoinDays(blocks))
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(out, html)
		return err
	}

	if pretty.ColorEnabled(string(cfg.Color), out) {
		w := pretty.NewWriter(out, pretty.NewStyles(true))
		return w.WriteDays(blocks)
	}
	_, err := fmt.Fprintln(out, render.JoinDays(blocks))
	return err
}

// loadConfig resolves configuration and applies CLI flag overrides.
func loadConfig(root *rootFlags, format string) (*config.Config, error) {
	result, err := configloader.Load(configloader.LoadOptions{
		ExplicitPath: root.configPath,
		Overlay: func(cfg *config.Config) {
			if root.dataDir != "" {
				cfg.DataDir = root.dataDir
			}
			if root.color != "" {
				cfg.Color = config.ColorMode(root.color)
			}
			if format != "" {
				cfg.Format = config.OutputFormat(format)
			}
		},
	})
	if err != nil {
		return nil, err
	}

	logger := logging.Default()
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPath, result.LoadedFrom)
	}
	return result.Config, nil
}

package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rn2md/internal/logging"
	"github.com/yaklabco/rn2md/pkg/rewrite/rules"
)

func newConvertCommand(root *rootFlags) *cobra.Command {
	var firstLineHeader bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert RedNotebook markup from stdin to Markdown on stdout",
		Long: `Convert RedNotebook markup from stdin to Markdown on stdout.

Each input line is rewritten independently; list numbering state carries
across the whole stream. With --first-line-header the first line becomes
a "# " document title.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConvert(cmd, root, firstLineHeader)
		},
	}

	cmd.Flags().BoolVar(&firstLineHeader, "first-line-header", false,
		"turn the first line into a # header")
	return cmd
}

func runConvert(cmd *cobra.Command, root *rootFlags, firstLineHeader bool) error {
	cfg, err := loadConfig(root, "")
	if err != nil {
		return err
	}

	pipeline := rules.Stream(cfg.HeaderPadding, firstLineHeader)
	out := cmd.OutOrStdout()

	lines := 0
	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, pipeline.Run(scanner.Text())); err != nil {
			return err
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	logging.FromContext(cmd.Context()).Debug("conversion finished", logging.FieldLines, lines)
	return nil
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/rn2md/internal/logging"
	"github.com/yaklabco/rn2md/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new rn2md configuration file",
		Long: `Create a new .rn2md.yml configuration file in the current directory
with the defaults written out, ready to customize.

Examples:
  rn2md init                      Create .rn2md.yml
  rn2md init --output custom.yml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .rn2md.yml)")

	return cmd
}

func runInit(flags *initFlags) error {
	outputPath := flags.output
	if outputPath == "" {
		outputPath = ".rn2md.yml"
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
	}

	if err := os.WriteFile(absPath, []byte(configTemplate()), configFilePermissions); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	logging.Default().Info("configuration created", logging.FieldPath, outputPath)
	return nil
}

func configTemplate() string {
	return fmt.Sprintf(`# rn2md configuration.

# RedNotebook data directory holding the YYYY-MM.txt month archives.
data_dir: %s

# Added to every =Title= run length when computing Markdown heading depth,
# so day headers keep the top level to themselves.
header_padding: 1

# Output format: text or html.
format: text

# Colorize terminal output: auto, always, never.
color: auto
`, config.DefaultDataDir())
}

package configloader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yaklabco/rn2md/pkg/config"
)

// Environment variable names. Values override config files but lose to
// CLI flags.
const (
	envDataDir       = "RN2MD_DATA_DIR"
	envHeaderPadding = "RN2MD_HEADER_PADDING"
	envFormat        = "RN2MD_FORMAT"
	envColor         = "RN2MD_COLOR"
)

func applyEnv(result *LoadResult) {
	if v := os.Getenv(envDataDir); v != "" {
		result.Config.DataDir = v
	}
	if v := os.Getenv(envHeaderPadding); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s: not an integer: %q", envHeaderPadding, v))
		} else {
			result.Config.HeaderPadding = n
		}
	}
	if v := os.Getenv(envFormat); v != "" {
		result.Config.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envColor); v != "" {
		result.Config.Color = config.ColorMode(v)
	}
}

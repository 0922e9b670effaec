package configloader

import (
	"errors"
	"fmt"

	"github.com/yaklabco/rn2md/pkg/config"
)

// ErrInvalidConfig wraps all validation failures so callers can branch on
// configuration errors as a class.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the merged configuration for values no command could run
// with.
func Validate(cfg *config.Config) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if cfg.HeaderPadding < 0 {
		return fmt.Errorf("%w: header_padding must not be negative (got %d)",
			ErrInvalidConfig, cfg.HeaderPadding)
	}
	if !cfg.Format.IsValid() {
		return fmt.Errorf("%w: unknown format %q (want text or html)",
			ErrInvalidConfig, cfg.Format)
	}
	if !cfg.Color.IsValid() {
		return fmt.Errorf("%w: unknown color mode %q (want auto, always, or never)",
			ErrInvalidConfig, cfg.Color)
	}
	return nil
}

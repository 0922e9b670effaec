package cli

import (
	"errors"

	"github.com/yaklabco/rn2md/internal/configloader"
	"github.com/yaklabco/rn2md/pkg/journal"
)

// Exit codes for rn2md.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a general failure.
	ExitError = 1

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitDataError indicates a missing or unreadable journal store.
	ExitDataError = 66
)

// ExitCode maps an error from command execution to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, journal.ErrNoDataDir):
		return ExitDataError
	default:
		return ExitError
	}
}

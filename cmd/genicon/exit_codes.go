package main

import (
	"errors"
	"os"

	"github.com/rbi-app/genicon"
	"github.com/rbi-app/genicon/internal/config"
)

// Exit codes for the genicon CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Icon written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, arguments or config
	ExitIO      = 3 // Directory creation or file write failed
)

// ErrUsage marks invalid command-line usage.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, genicon.ErrCreateDir) ||
		errors.Is(err, genicon.ErrWriteIcon) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, os.ErrNotExist) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}

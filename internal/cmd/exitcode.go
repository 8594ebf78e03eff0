package cmd

import (
	"context"
	"errors"

	clierrors "github.com/opsgrove/hostreport/internal/errors"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for automation.
// Missing privileges count as a system failure, not a usage error.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsPrivilegeError(err) {
		return ExitSystem
	}
	if clierrors.IsValidationError(err) || clierrors.IsUserError(err) {
		return ExitUser
	}
	return ExitSystem
}

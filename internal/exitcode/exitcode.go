package exitcode

import (
	"errors"
	"os"

	apperrors "github.com/golasco/golasco/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// AuthError indicates an authentication failure
	AuthError = 3

	// AccessDenied indicates a role whitelist mismatch
	AccessDenied = 4

	// PaymentError indicates a booking payment flow failure
	PaymentError = 5

	// DataError indicates a dashboard or property load failure
	DataError = 6

	// Interrupted indicates the operation was cancelled by the user
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Golasco errors map by code family; anything else is a general error.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var gErr *apperrors.GolascoError
	if !errors.As(err, &gErr) {
		return GeneralError
	}

	switch gErr.Code {
	case apperrors.ErrCodeAuthInvalidCredentials,
		apperrors.ErrCodeAuthRegistrationFailed,
		apperrors.ErrCodeAuthSessionPersist,
		apperrors.ErrCodeAuthNotLoggedIn:
		return AuthError

	case apperrors.ErrCodeAccessLoginRequired,
		apperrors.ErrCodeAccessRoleDenied:
		return AccessDenied

	case apperrors.ErrCodePaySDKUnavailable,
		apperrors.ErrCodePayOrderCreate,
		apperrors.ErrCodePayVerify:
		return PaymentError

	case apperrors.ErrCodeDataDashboardLoad,
		apperrors.ErrCodeDataPropertyLoad,
		apperrors.ErrCodeDataLeadSubmit:
		return DataError

	default:
		return GeneralError
	}
}

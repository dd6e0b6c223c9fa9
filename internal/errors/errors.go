package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeAuthInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeAuthRegistrationFailed ErrorCode = "AUTH-002"
	ErrCodeAuthSessionPersist     ErrorCode = "AUTH-003"
	ErrCodeAuthNotLoggedIn        ErrorCode = "AUTH-004"

	// Access control errors (ACCESS-001 to ACCESS-099)
	ErrCodeAccessLoginRequired ErrorCode = "ACCESS-001"
	ErrCodeAccessRoleDenied    ErrorCode = "ACCESS-002"

	// Data loading errors (DATA-001 to DATA-099)
	ErrCodeDataDashboardLoad ErrorCode = "DATA-001"
	ErrCodeDataPropertyLoad  ErrorCode = "DATA-002"
	ErrCodeDataLeadSubmit    ErrorCode = "DATA-003"

	// Payment flow errors (PAY-001 to PAY-099)
	ErrCodePaySDKUnavailable ErrorCode = "PAY-001"
	ErrCodePayOrderCreate    ErrorCode = "PAY-002"
	ErrCodePayVerify         ErrorCode = "PAY-003"

	// Backend API errors (API-001 to API-099)
	ErrCodeAPIRequestFailed  ErrorCode = "API-001"
	ErrCodeAPIDecodeFailed   ErrorCode = "API-002"
	ErrCodeAPIUnexpectedCode ErrorCode = "API-003"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeConfigInvalid   ErrorCode = "IO-003"
)

// GolascoError represents an enhanced error with code, suggestions, and documentation
type GolascoError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *GolascoError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *GolascoError) Unwrap() error {
	return e.Cause
}

// New creates a new GolascoError
func New(code ErrorCode, message string) *GolascoError {
	return &GolascoError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new GolascoError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *GolascoError {
	return &GolascoError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *GolascoError) WithSuggestion(suggestion string) *GolascoError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *GolascoError) WithSuggestions(suggestions ...string) *GolascoError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *GolascoError) WithDocs(url string) *GolascoError {
	e.DocsURL = url
	return e
}

// CodeOf returns the error code carried by err, or the empty code for
// non-Golasco errors. Wrapped errors are unwrapped.
func CodeOf(err error) ErrorCode {
	var gErr *GolascoError
	if stderrors.As(err, &gErr) {
		return gErr.Code
	}
	return ""
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates a login failure error.
// The detail is best-effort text extracted from the backend's error payload;
// when empty the generic message is used on its own.
func NewInvalidCredentialsError(detail string) *GolascoError {
	message := "invalid credentials"
	if detail != "" {
		message = detail
	}
	return New(ErrCodeAuthInvalidCredentials, message).
		WithSuggestion("Check your email and password").
		WithSuggestion("Use 'golasco auth register' if you do not have an account yet")
}

// NewRegistrationFailedError creates a registration failure error
func NewRegistrationFailedError(detail string, cause error) *GolascoError {
	message := "registration failed"
	if detail != "" {
		message = detail
	}
	return Wrap(ErrCodeAuthRegistrationFailed, message, cause).
		WithSuggestion("The email may already be registered, try logging in instead")
}

// NewSessionPersistError creates an error for a session that could not be
// written to disk
func NewSessionPersistError(cause error) *GolascoError {
	return Wrap(ErrCodeAuthSessionPersist, "failed to save session", cause).
		WithSuggestion("Check permissions on the config directory")
}

// NewLoginRequiredError creates an error for guarded actions without a session
func NewLoginRequiredError() *GolascoError {
	return New(ErrCodeAccessLoginRequired, "login required").
		WithSuggestion("Run 'golasco auth login' to authenticate")
}

// NewRoleDeniedError creates an error for role whitelist mismatches
func NewRoleDeniedError(role string) *GolascoError {
	return New(ErrCodeAccessRoleDenied, fmt.Sprintf("not allowed for role: %s", role)).
		WithSuggestion("Login with an account that has access to this area")
}

// NewCustomerRequiredError creates the booking role-mismatch error
func NewCustomerRequiredError(role string) *GolascoError {
	return New(ErrCodeAccessRoleDenied, "customer account required").
		WithSuggestion("Please login with a customer account to continue").
		WithSuggestion(fmt.Sprintf("Current role is %q", role))
}

// NewSDKUnavailableError creates the checkout SDK load failure error
func NewSDKUnavailableError(cause error) *GolascoError {
	return Wrap(ErrCodePaySDKUnavailable, "payment SDK failed to load", cause).
		WithSuggestion("Check your connection and try again")
}

// NewOrderCreateError creates a booking order creation failure error
func NewOrderCreateError(detail string, cause error) *GolascoError {
	message := "could not start booking"
	if detail != "" {
		message = detail
	}
	return Wrap(ErrCodePayOrderCreate, message, cause).
		WithSuggestion("Please try again")
}

// NewVerifyError creates a payment verification failure error.
// The message deliberately never claims the payment itself failed: the charge
// may have succeeded at the provider even when automated verification did not.
func NewVerifyError(detail string, cause error) *GolascoError {
	message := "we will verify your payment manually"
	if detail != "" {
		message = detail
	}
	return Wrap(ErrCodePayVerify, message, cause).
		WithSuggestion("Your payment may have gone through, do not retry immediately").
		WithSuggestion("Contact support if the booking does not appear within 24 hours")
}

// NewDashboardLoadError creates a dashboard fetch failure error
func NewDashboardLoadError(role string, cause error) *GolascoError {
	return Wrap(ErrCodeDataDashboardLoad, fmt.Sprintf("failed to load %s dashboard", role), cause).
		WithSuggestion("Check your connection and retry").
		WithSuggestion("Re-login if the session has expired")
}

package ux

import (
	"fmt"
	"strings"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	// Backend unreachable
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no such host") {
		return NewErrorWithSuggestion(err,
			"The Golasco backend is unreachable. Check GOLASCO_API_URL or the api_url setting in ~/.golasco/config.yaml")
	}

	// Request timeout
	if strings.Contains(errMsg, "context deadline exceeded") || strings.Contains(errMsg, "Client.Timeout") {
		return NewErrorWithSuggestion(err,
			"The request timed out. Check your connection and try again")
	}

	// Expired or invalid token
	if strings.Contains(errMsg, "Could not validate credentials") || strings.Contains(errMsg, "token has expired") {
		return NewErrorWithSuggestion(err,
			"Your session has expired. Run 'golasco auth login' to sign in again")
	}

	// Unverified partner accounts
	if strings.Contains(errMsg, "pending verification") || strings.Contains(errMsg, "not verified") {
		return NewErrorWithSuggestion(err,
			"Agent and franchise owner accounts need admin approval before first use. Check back later or contact support")
	}

	// Config permissions
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check permissions on ~/.golasco and its contents")
	}

	return err
}

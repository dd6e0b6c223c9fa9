package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeAuthInvalidCredentials, "invalid credentials").
		WithSuggestion("Check your email and password").
		WithDocs("https://example.com/docs")

	msg := err.Error()

	if !strings.Contains(msg, "[AUTH-001]") {
		t.Errorf("expected error code in message, got: %s", msg)
	}
	if !strings.Contains(msg, "invalid credentials") {
		t.Errorf("expected message text, got: %s", msg)
	}
	if !strings.Contains(msg, "Check your email and password") {
		t.Errorf("expected suggestion, got: %s", msg)
	}
	if !strings.Contains(msg, "https://example.com/docs") {
		t.Errorf("expected docs URL, got: %s", msg)
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodePayOrderCreate, "could not start booking", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected wrapped error to match with errors.Is")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected cause in message, got: %s", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(ErrCodePayVerify, "x")); got != ErrCodePayVerify {
		t.Errorf("CodeOf = %s, want %s", got, ErrCodePayVerify)
	}
	if got := CodeOf(stderrors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain) = %s, want empty", got)
	}
}

func TestInvalidCredentialsFallback(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{name: "backend detail preferred", detail: "Incorrect email or password", want: "Incorrect email or password"},
		{name: "generic fallback", detail: "", want: "invalid credentials"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidCredentialsError(tt.detail)
			if err.Message != tt.want {
				t.Errorf("Message = %q, want %q", err.Message, tt.want)
			}
		})
	}
}

func TestVerifyErrorNeverClaimsPaymentFailure(t *testing.T) {
	err := NewVerifyError("", stderrors.New("500"))

	lower := strings.ToLower(err.Message)
	if strings.Contains(lower, "payment failed") {
		t.Errorf("verify error must not claim payment failure: %s", err.Message)
	}
	if !strings.Contains(lower, "manually") {
		t.Errorf("verify error should promise manual verification: %s", err.Message)
	}
}

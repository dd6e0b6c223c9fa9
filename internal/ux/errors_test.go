package ux

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorWithSuggestion(t *testing.T) {
	base := errors.New("connection refused")
	err := NewErrorWithSuggestion(base, "check the backend URL")

	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("missing original error: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "check the backend URL") {
		t.Errorf("missing suggestion: %s", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error not reachable through Unwrap")
	}
}

func TestNewErrorWithSuggestionNil(t *testing.T) {
	if NewErrorWithSuggestion(nil, "anything") != nil {
		t.Error("nil error must stay nil")
	}
}

func TestEnhanceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantSuggestion string
	}{
		{
			name:           "backend unreachable",
			err:            fmt.Errorf("dial tcp 127.0.0.1:8000: connect: connection refused"),
			wantSuggestion: "GOLASCO_API_URL",
		},
		{
			name:           "expired token",
			err:            fmt.Errorf("Could not validate credentials"),
			wantSuggestion: "golasco auth login",
		},
		{
			name:           "pending verification",
			err:            fmt.Errorf("account pending verification"),
			wantSuggestion: "admin approval",
		},
		{
			name:           "timeout",
			err:            fmt.Errorf("context deadline exceeded"),
			wantSuggestion: "timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enhanced := EnhanceError(tt.err)
			if !strings.Contains(enhanced.Error(), tt.wantSuggestion) {
				t.Errorf("EnhanceError() = %q, want suggestion containing %q", enhanced.Error(), tt.wantSuggestion)
			}
		})
	}
}

func TestEnhanceErrorPassthrough(t *testing.T) {
	base := errors.New("something else entirely")
	if EnhanceError(base) != base {
		t.Error("unrecognized errors must pass through unchanged")
	}
	if EnhanceError(nil) != nil {
		t.Error("nil must stay nil")
	}
}

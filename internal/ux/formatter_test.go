package ux

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"yaml", false},
		{"text", false},
		{"", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			_, err := NewFormatter(tt.format, &FormatterOptions{Writer: &bytes.Buffer{}})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Format(map[string]int{"total_leads": 3}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"total_leads": 3`) {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Format(map[string]string{"status": "available"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "status: available") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestTextFormatterNotification(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.Format(Notify("Booking confirmed", "lead-1")); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "• Booking confirmed: lead-1\n" {
		t.Errorf("unexpected output: %q", got)
	}

	buf.Reset()
	if err := f.Format(NotifyError("Payment pending", "")); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "✗ Payment pending\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestTextFormatterRejectsStructs(t *testing.T) {
	f, err := NewFormatter("text", &FormatterOptions{Writer: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Format(struct{ X int }{1}); err == nil {
		t.Error("expected error for non-Stringer struct")
	}
}

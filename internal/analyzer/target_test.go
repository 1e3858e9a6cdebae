package analyzer

import (
	"errors"
	"testing"

	sharederrors "github.com/securecheck/sslcheck-cli/internal/shared/errors"
)

func TestParseTarget(t *testing.T) {
	tests := []struct {
		input      string
		wantDomain string
		wantScheme string
	}{
		{"example.com", "example.com", "https"},
		{"https://example.com", "example.com", "https"},
		{"http://example.com/login", "example.com", "http"},
		{"example.com:8443", "example.com", "https"},
		{"  example.com  ", "example.com", "https"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			info, err := ParseTarget(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if info.Domain != tt.wantDomain {
				t.Errorf("domain: expected %s, got %s", tt.wantDomain, info.Domain)
			}
			if info.Scheme != tt.wantScheme {
				t.Errorf("scheme: expected %s, got %s", tt.wantScheme, info.Scheme)
			}
		})
	}
}

func TestParseTarget_Empty(t *testing.T) {
	if _, err := ParseTarget("   "); !errors.Is(err, sharederrors.ErrEmptyTarget) {
		t.Errorf("expected ErrEmptyTarget, got %v", err)
	}
}

func TestParseTarget_Invalid(t *testing.T) {
	if _, err := ParseTarget("https://"); !errors.Is(err, sharederrors.ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
}

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"regular email", "user@example.com"},
		{"another email", "alice@gmail.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeEmail(tt.email)
			if !strings.HasPrefix(got, "user:") {
				t.Errorf("AnonymizeEmail(%q) = %q, want prefix %q", tt.email, got, "user:")
			}
			if strings.Contains(got, "@") {
				t.Errorf("AnonymizeEmail(%q) = %q, contains raw email characters", tt.email, got)
			}
			// Stable: same input yields same hash.
			if again := AnonymizeEmail(tt.email); again != got {
				t.Errorf("AnonymizeEmail not deterministic: %q != %q", again, got)
			}
		})
	}

	if got := AnonymizeEmail(""); got != "" {
		t.Errorf("AnonymizeEmail(\"\") = %q, want empty", got)
	}

	if AnonymizeEmail("a@example.com") == AnonymizeEmail("b@example.com") {
		t.Error("different emails produced the same hash")
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{"empty token", "", "<empty>"},
		{"short token", "abc", "[token:3 chars]"},
		{"long token", strings.Repeat("x", 64), "[token:64 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeToken(tt.token); got != tt.want {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"regular email", "user@example.com", "example.com"},
		{"empty", "", ""},
		{"no at sign", "not-an-email", ""},
		{"multiple at signs", "a@b@c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.email); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("ok", Err(nil))
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("Err(nil) produced an error attribute: %s", buf.String())
	}

	buf.Reset()
	logger.Info("failed", Err(errTest("boom")))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("Err(err) missing error attribute: %s", buf.String())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	WithOperation(logger, "messages.list").Info("listing")
	if !strings.Contains(buf.String(), "operation=messages.list") {
		t.Errorf("missing operation attribute: %s", buf.String())
	}
}

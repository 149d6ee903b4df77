package google

import (
	"path/filepath"
	"testing"
)

func TestTokenFileForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "google.token"},
		{"empty account uses default", "", "google.token"},
		{"work account", "work", "google-work.token"},
		{"personal account", "personal", "google-personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFileForAccount(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("tokenFileForAccount() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestSanitizeAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"plain name", "work", "work"},
		{"slash replaced", "work/personal", "work_personal"},
		{"backslash replaced", `work\personal`, "work_personal"},
		{"dotdot replaced", "../etc", "__etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeAccountName(tt.account); got != tt.want {
				t.Errorf("sanitizeAccountName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	if HasTokenForAccount("no-such-account-for-tests") {
		t.Error("HasTokenForAccount() should return false for an unknown account")
	}
}

func TestGetAuthURLForAccount(t *testing.T) {
	url := GetAuthURLForAccount("work")
	if url == "" {
		t.Error("GetAuthURLForAccount() returned empty URL")
	}
}

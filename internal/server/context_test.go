package server

import (
	"context"
	"testing"

	"golang.org/x/oauth2"
)

// staticTokenProvider serves a fixed token for a single account and counts
// how often a source is requested.
type staticTokenProvider struct {
	account     string
	sourceCalls int
}

func (p *staticTokenProvider) TokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	p.sourceCalls++
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}), nil
}

func (p *staticTokenProvider) HasTokenForAccount(account string) bool {
	return account == p.account
}

func TestGmailClientForAccount_UsesTokenProvider(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	provider := &staticTokenProvider{account: "work"}
	sc.SetTokenProvider(provider)

	if sc.GmailClientForAccount("personal") != nil {
		t.Error("GmailClientForAccount() should return nil when the provider has no token")
	}
	if provider.sourceCalls != 0 {
		t.Errorf("provider consulted %d times for an unauthorized account", provider.sourceCalls)
	}

	client := sc.GmailClientForAccount("work")
	if client == nil {
		t.Fatal("GmailClientForAccount() returned nil for an authorized account")
	}

	// Second lookup hits the cache, not the provider
	if again := sc.GmailClientForAccount("work"); again != client {
		t.Error("GmailClientForAccount() did not return the cached client")
	}
	if provider.sourceCalls != 1 {
		t.Errorf("provider consulted %d times, want 1", provider.sourceCalls)
	}
}

func TestHasTokenForAccount_DelegatesToProvider(t *testing.T) {
	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	sc.SetTokenProvider(&staticTokenProvider{account: "work"})

	if !sc.HasTokenForAccount("work") {
		t.Error("HasTokenForAccount() = false for the provider's account")
	}
	if sc.HasTokenForAccount("personal") {
		t.Error("HasTokenForAccount() = true for an unknown account")
	}
}

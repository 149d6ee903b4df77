package google

import (
	"context"

	"golang.org/x/oauth2"
)

// TokenProvider supplies OAuth token sources for Gmail API clients. This
// abstraction allows different token origins: file-based for the stdio
// transport, request-scoped for the HTTP transport.
type TokenProvider interface {
	// TokenSourceForAccount returns a refreshing token source for the account.
	TokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error)

	// HasTokenForAccount checks if a token exists for the account.
	HasTokenForAccount(account string) bool
}

// FileTokenProvider provides tokens from disk files (for stdio transport).
type FileTokenProvider struct{}

// NewFileTokenProvider creates a new file-based token provider.
func NewFileTokenProvider() *FileTokenProvider {
	return &FileTokenProvider{}
}

// TokenSourceForAccount returns a token source backed by the account's
// stored token file.
func (p *FileTokenProvider) TokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	return GetTokenSourceForAccount(ctx, account)
}

// HasTokenForAccount checks if a token file exists for the specified account.
func (p *FileTokenProvider) HasTokenForAccount(account string) bool {
	return HasTokenForAccount(account)
}

package common

import (
	"context"
)

// accountContextKey carries the session-resolved account through the
// request context.
type accountContextKey struct{}

// WithAccount returns a context carrying the given Gmail account name.
// The HTTP transport sets this from the session manager before a tool
// handler runs.
func WithAccount(ctx context.Context, account string) context.Context {
	return context.WithValue(ctx, accountContextKey{}, account)
}

// AccountFromContext returns the account stored in the context, if any.
func AccountFromContext(ctx context.Context) (string, bool) {
	account, ok := ctx.Value(accountContextKey{}).(string)
	return account, ok && account != ""
}

// GetAccountFromArgs extracts the account name for a tool request.
//
// Priority order:
//  1. Account resolved from the transport session (context)
//  2. Explicit "account" argument in the request
//  3. "default"
func GetAccountFromArgs(ctx context.Context, args map[string]interface{}) string {
	if account, ok := AccountFromContext(ctx); ok {
		return account
	}

	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	return "default"
}

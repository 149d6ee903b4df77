package gmail

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/universal-mcp/google-mail/internal/google"
)

const (
	// DefaultConcurrency is the number of parallel detail fetches used by
	// bulk operations such as ListMessagesWithDetails.
	DefaultConcurrency = 5

	// defaultRequestsPerSecond caps the request rate against the Gmail API
	// to stay well under the per-user quota.
	defaultRequestsPerSecond = 25
)

// Client wraps the Gmail Users service for a single account.
type Client struct {
	svc         *gmail.UsersService
	account     string // The account this client is associated with
	signature   string // Cached signature for this account
	concurrency int
	limiter     *rate.Limiter
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return google.HasToken()
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication
// for a specific account, using tokens stored on disk. A token must already
// exist for the account; use the auth command or the MCP auth instructions
// to obtain one.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	return NewClientWithTokenProvider(ctx, account, google.NewFileTokenProvider())
}

// NewClientWithTokenProvider creates a Gmail client whose OAuth token comes
// from the given provider instead of the default token file lookup.
func NewClientWithTokenProvider(ctx context.Context, account string, tp google.TokenProvider) (*Client, error) {
	ts, err := tp.TokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	return &Client{
		svc:         svc.Users,
		account:     account,
		concurrency: DefaultConcurrency,
		limiter:     rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
	}, nil
}

// NewClient creates a new Gmail client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// SetConcurrency overrides the worker pool size for bulk detail fetches.
// Values below 1 are ignored.
func (c *Client) SetConcurrency(n int) {
	if n >= 1 {
		c.concurrency = n
	}
}

// GetProfile retrieves the user's Gmail profile: email address, total
// message and thread counts, and the current history ID.
func (c *Client) GetProfile() (*gmail.Profile, error) {
	profile, err := c.svc.GetProfile("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// wait blocks until the rate limiter permits another API call.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/universal-mcp/google-mail/internal/gmail"
	"github.com/universal-mcp/google-mail/internal/google"
	"github.com/universal-mcp/google-mail/internal/instrumentation"
	"github.com/universal-mcp/google-mail/internal/logging"
)

// ServerContext holds the shared state of the MCP server
type ServerContext struct {
	ctx           context.Context
	cancel        context.CancelFunc
	gmailClients  map[string]*gmail.Client // Maps account name to Gmail client
	tokenProvider google.TokenProvider
	metrics       *instrumentation.Metrics
	auditLogger   *instrumentation.AuditLogger
	mu            sync.RWMutex
	shutdown      bool
}

// NewServerContext creates a new server context. Tokens come from disk files
// unless SetTokenProvider installs another source.
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		gmailClients:  make(map[string]*gmail.Client),
		tokenProvider: google.NewFileTokenProvider(),
		shutdown:      false,
	}

	// Try to create the default client, but don't fail if the token is
	// missing. Clients are lazily initialized when first needed.
	if sc.tokenProvider.HasTokenForAccount("default") {
		client, err := gmail.NewClientWithTokenProvider(shutdownCtx, "default", sc.tokenProvider)
		if err != nil {
			slog.Warn("failed to create Gmail client for default account", logging.Err(err))
		} else {
			sc.gmailClients["default"] = client
		}
	}

	return sc, nil
}

// SetTokenProvider replaces the token source used for client construction.
// Cached clients built with the previous provider are discarded.
func (sc *ServerContext) SetTokenProvider(tp google.TokenProvider) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.tokenProvider = tp
	sc.gmailClients = make(map[string]*gmail.Client)
}

// HasTokenForAccount reports whether the token provider has credentials
// for the account.
func (sc *ServerContext) HasTokenForAccount(account string) bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.tokenProvider.HasTokenForAccount(account)
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// GmailClientForAccount returns the Gmail client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) GmailClientForAccount(account string) *gmail.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.gmailClients[account]; ok {
		return client
	}

	if !sc.tokenProvider.HasTokenForAccount(account) {
		return nil
	}

	client, err := gmail.NewClientWithTokenProvider(sc.ctx, account, sc.tokenProvider)
	if err != nil {
		slog.Warn("failed to create Gmail client", logging.Account(account), logging.Err(err))
		return nil
	}

	sc.gmailClients[account] = client
	return client
}

// GmailClient returns the Gmail client for the default account
func (sc *ServerContext) GmailClient() *gmail.Client {
	return sc.GmailClientForAccount("default")
}

// SetGmailClientForAccount sets the Gmail client for a specific account
func (sc *ServerContext) SetGmailClientForAccount(account string, client *gmail.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.gmailClients[account] = client
}

// SetGmailClient sets the Gmail client for the default account
func (sc *ServerContext) SetGmailClient(client *gmail.Client) {
	sc.SetGmailClientForAccount("default", client)
}

// SetMetrics sets the metrics recorder used by instrumented tools
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil when instrumentation is off
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger used by instrumented tools
func (sc *ServerContext) SetAuditLogger(l *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = l
}

// AuditLogger returns the audit logger, or nil when auditing is off
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}

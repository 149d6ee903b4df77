package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/google-mail/internal/logging"
	"github.com/universal-mcp/google-mail/internal/tools/common"
)

// HTTPServer serves the MCP streamable HTTP transport together with the
// health endpoints. Each request is mapped to a session derived from its
// Authorization header so that one server instance can hold per-session
// account selections.
type HTTPServer struct {
	mcpServer        *mcpserver.MCPServer
	httpServer       *http.Server
	sessionManager   *SessionIDManager
	healthChecker    *HealthChecker
	disableStreaming bool
}

// NewHTTPServer creates an HTTP server for the given MCP server.
func NewHTTPServer(mcpServer *mcpserver.MCPServer, sc *ServerContext, disableStreaming bool) *HTTPServer {
	return &HTTPServer{
		mcpServer:        mcpServer,
		sessionManager:   NewSessionIDManager(),
		healthChecker:    NewHealthChecker(sc),
		disableStreaming: disableStreaming,
	}
}

// SessionManager returns the session ID manager.
func (s *HTTPServer) SessionManager() *SessionIDManager {
	return s.sessionManager
}

// HealthChecker returns the health checker serving /healthz and /readyz.
func (s *HTTPServer) HealthChecker() *HealthChecker {
	return s.healthChecker
}

// Start starts the HTTP server on addr and blocks until it stops.
func (s *HTTPServer) Start(addr string) error {
	mux := http.NewServeMux()

	opts := []mcpserver.StreamableHTTPOption{
		mcpserver.WithEndpointPath("/mcp"),
		mcpserver.WithHTTPContextFunc(s.sessionContext),
	}
	if s.disableStreaming {
		opts = append(opts, mcpserver.WithDisableStreaming(true))
	}
	streamableServer := mcpserver.NewStreamableHTTPServer(s.mcpServer, opts...)

	mux.Handle("/mcp", streamableServer)
	s.healthChecker.RegisterHealthEndpoints(mux)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.healthChecker.SetReady(true)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.healthChecker.SetReady(false)
	s.sessionManager.Stop()
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// sessionContext attaches the account selected for the request's session
// to the context so tool handlers resolve the right Gmail client. Requests
// without an Authorization header fall through to the default account.
func (s *HTTPServer) sessionContext(ctx context.Context, r *http.Request) context.Context {
	sessionID, err := s.sessionManager.ResolveSessionID(r)
	if err != nil {
		return ctx
	}

	account := s.sessionManager.GetAccountForSession(sessionID)
	if account == "" {
		account = "default"
		s.sessionManager.SetAccountForSession(sessionID, account)
	}

	slog.Debug("resolved session", "session_id", sessionID, logging.Account(account))
	return common.WithAccount(ctx, account)
}

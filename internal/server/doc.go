// Package server provides the MCP server context, session management,
// health probes, and the metrics endpoint for the google-mail application.
//
// ServerContext manages Gmail API clients with lazy initialization and
// caching. Clients are created per account from tokens on disk, so one
// server instance can serve several Gmail accounts.
//
// SessionIDManager handles multi-account session tracking for HTTP
// transport. It maps Bearer tokens to Gmail accounts and expires idle
// sessions.
//
// HealthChecker exposes /healthz, /readyz and /healthz/detailed for
// Kubernetes probes. MetricsServer serves Prometheus metrics on a
// dedicated port, separate from the MCP transport.
package server

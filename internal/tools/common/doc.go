// Package common provides shared helpers for MCP tool implementations:
// account resolution for multi-account setups and handler wrappers that
// add metrics and audit logging.
package common

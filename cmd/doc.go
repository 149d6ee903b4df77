// Package cmd implements the command-line interface for google-mail.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing Gmail tools for AI assistants
//   - auth: Complete the Google OAuth flow from the terminal
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd

package gmail_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/google-mail/internal/gmail"
	"github.com/universal-mcp/google-mail/internal/google"
	"github.com/universal-mcp/google-mail/internal/server"
	"github.com/universal-mcp/google-mail/internal/tools/common"
)

// RegisterGmailTools registers all Gmail tools with the MCP server.
// When readOnly is true only tools that cannot modify the mailbox are
// registered.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if err := RegisterMessageTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register message tools: %w", err)
	}

	if err := RegisterDraftTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register draft tools: %w", err)
	}

	if err := RegisterThreadTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register thread tools: %w", err)
	}

	if err := RegisterLabelTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register label tools: %w", err)
	}

	if err := RegisterFilterTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register filter tools: %w", err)
	}

	if err := RegisterSettingsTools(s, sc, readOnly); err != nil {
		return fmt.Errorf("failed to register settings tools: %w", err)
	}

	if err := RegisterAttachmentTools(s, sc); err != nil {
		return fmt.Errorf("failed to register attachment tools: %w", err)
	}

	return nil
}

// resolveClient returns the Gmail client for the account named in the
// request arguments, creating and caching it when a token exists. When
// the account is not authorized yet, the returned tool result explains
// how to complete the OAuth flow; callers must return it as-is.
func resolveClient(ctx context.Context, sc *server.ServerContext, args map[string]interface{}) (*gmail.Client, *mcp.CallToolResult) {
	account := common.GetAccountFromArgs(ctx, args)

	client := sc.GmailClientForAccount(account)
	if client != nil {
		return client, nil
	}

	if !sc.HasTokenForAccount(account) {
		authURL := google.GetAuthURLForAccount(account)
		errorMsg := fmt.Sprintf(`Google OAuth token not found for account "%s". To authorize access:

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Gmail
4. Copy the authorization code

5. Provide the authorization code to your AI agent
   The agent will use the save_auth_code tool with account="%s" to complete authentication.

Note: You only need to authorize once. The tokens will be automatically refreshed.`, account, authURL, account)
		return nil, mcp.NewToolResultError(errorMsg)
	}

	// A token exists but client construction failed; the details are in
	// the server log.
	return nil, mcp.NewToolResultError(fmt.Sprintf("Failed to create Gmail client for account %s", account))
}

// requiredString fetches a required string argument, returning a tool
// error result when it is missing or empty.
func requiredString(args map[string]interface{}, name string) (string, *mcp.CallToolResult) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("%s is required", name))
	}
	return value, nil
}

// optionalString fetches an optional string argument with a default.
func optionalString(args map[string]interface{}, name, fallback string) string {
	if value, ok := args[name].(string); ok && value != "" {
		return value
	}
	return fallback
}

// optionalBool fetches an optional boolean argument.
func optionalBool(args map[string]interface{}, name string) bool {
	value, _ := args[name].(bool)
	return value
}

// optionalInt fetches an optional numeric argument with a default.
// JSON numbers arrive as float64.
func optionalInt(args map[string]interface{}, name string, fallback int64) int64 {
	if value, ok := args[name].(float64); ok {
		return int64(value)
	}
	return fallback
}

// splitAddresses splits a comma-separated string of email addresses
func splitAddresses(addresses string) []string {
	if addresses == "" {
		return nil
	}

	parts := strings.Split(addresses, ",")
	result := make([]string, 0, len(parts))
	for _, addr := range parts {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// splitLabelIDs splits a comma-separated string of label IDs
func splitLabelIDs(labelIDs string) []string {
	return splitAddresses(labelIDs)
}

// withAccountOption is the account parameter shared by every tool
func withAccountOption() mcp.ToolOption {
	return mcp.WithString("account",
		mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
	)
}

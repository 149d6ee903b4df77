// Package google_tools provides MCP tools for Google OAuth authentication.
//
// This package registers the tools that let an AI agent complete the OAuth
// flow on behalf of the user:
//   - get_auth_url returns the authorization URL for an account
//   - save_auth_code exchanges the authorization code for a token and saves it
//
// The OAuth flow:
//  1. A Gmail tool reports that no token exists for the account
//  2. Call get_auth_url to get the authorization URL
//  3. The user visits the URL and authorizes Gmail access
//  4. The user provides the authorization code
//  5. Call save_auth_code with the code to save the token
//
// Tokens are stored per account name, so one server can serve several Google
// accounts side by side. Saved tokens are refreshed automatically.
package google_tools

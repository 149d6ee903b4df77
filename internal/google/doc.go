// Package google handles Google OAuth2 authentication and token storage
// for the Gmail API. Tokens are cached on disk per account so that multiple
// Google accounts can be used from the same server instance.
package google

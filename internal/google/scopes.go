package google

// DefaultOAuthScopes are the Google OAuth scopes required for full Gmail
// functionality. The full mail scope covers message, draft, thread and label
// operations; the settings scopes cover filters, forwarding, vacation,
// delegates and S/MIME.
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Gmail scopes
	"https://mail.google.com/", // Full Gmail access (includes send)
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.modify",
	"https://www.googleapis.com/auth/gmail.send",
	"https://www.googleapis.com/auth/gmail.settings.basic",

	// Sharing settings: forwarding, delegates, S/MIME
	"https://www.googleapis.com/auth/gmail.settings.sharing",
}

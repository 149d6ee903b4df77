package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// GetVacationSettings retrieves the vacation responder settings.
func (c *Client) GetVacationSettings() (*gmail.VacationSettings, error) {
	settings, err := c.svc.Settings.GetVacation("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation settings: %w", err)
	}
	return settings, nil
}

// UpdateVacationSettings replaces the vacation responder settings.
func (c *Client) UpdateVacationSettings(settings *gmail.VacationSettings) (*gmail.VacationSettings, error) {
	updated, err := c.svc.Settings.UpdateVacation("me", settings).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update vacation settings: %w", err)
	}
	return updated, nil
}

// GetImapSettings retrieves the IMAP settings.
func (c *Client) GetImapSettings() (*gmail.ImapSettings, error) {
	settings, err := c.svc.Settings.GetImap("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get IMAP settings: %w", err)
	}
	return settings, nil
}

// UpdateImapSettings replaces the IMAP settings.
func (c *Client) UpdateImapSettings(settings *gmail.ImapSettings) (*gmail.ImapSettings, error) {
	updated, err := c.svc.Settings.UpdateImap("me", settings).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update IMAP settings: %w", err)
	}
	return updated, nil
}

// GetPopSettings retrieves the POP settings.
func (c *Client) GetPopSettings() (*gmail.PopSettings, error) {
	settings, err := c.svc.Settings.GetPop("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get POP settings: %w", err)
	}
	return settings, nil
}

// UpdatePopSettings replaces the POP settings.
func (c *Client) UpdatePopSettings(settings *gmail.PopSettings) (*gmail.PopSettings, error) {
	updated, err := c.svc.Settings.UpdatePop("me", settings).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update POP settings: %w", err)
	}
	return updated, nil
}

// GetLanguageSettings retrieves the display language settings.
func (c *Client) GetLanguageSettings() (*gmail.LanguageSettings, error) {
	settings, err := c.svc.Settings.GetLanguage("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get language settings: %w", err)
	}
	return settings, nil
}

// UpdateLanguageSettings replaces the display language settings.
// displayLanguage is an RFC 3066 language tag, e.g. "en" or "de".
func (c *Client) UpdateLanguageSettings(displayLanguage string) (*gmail.LanguageSettings, error) {
	if displayLanguage == "" {
		return nil, fmt.Errorf("displayLanguage is required")
	}
	updated, err := c.svc.Settings.UpdateLanguage("me", &gmail.LanguageSettings{
		DisplayLanguage: displayLanguage,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update language settings: %w", err)
	}
	return updated, nil
}

// GetAutoForwarding retrieves the auto-forwarding settings.
func (c *Client) GetAutoForwarding() (*gmail.AutoForwarding, error) {
	settings, err := c.svc.Settings.GetAutoForwarding("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get auto-forwarding settings: %w", err)
	}
	return settings, nil
}

// UpdateAutoForwarding replaces the auto-forwarding settings. The forwarding
// address must already be created and verified.
func (c *Client) UpdateAutoForwarding(settings *gmail.AutoForwarding) (*gmail.AutoForwarding, error) {
	updated, err := c.svc.Settings.UpdateAutoForwarding("me", settings).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update auto-forwarding settings: %w", err)
	}
	return updated, nil
}

// ListForwardingAddresses lists the registered forwarding addresses.
func (c *Client) ListForwardingAddresses() ([]*gmail.ForwardingAddress, error) {
	resp, err := c.svc.Settings.ForwardingAddresses.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list forwarding addresses: %w", err)
	}
	return resp.ForwardingAddresses, nil
}

// GetForwardingAddress retrieves a forwarding address and its verification
// status.
func (c *Client) GetForwardingAddress(email string) (*gmail.ForwardingAddress, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	addr, err := c.svc.Settings.ForwardingAddresses.Get("me", email).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get forwarding address %s: %w", email, err)
	}
	return addr, nil
}

// CreateForwardingAddress registers a forwarding address. Gmail sends a
// verification email to the address before it can be used.
func (c *Client) CreateForwardingAddress(email string) (*gmail.ForwardingAddress, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	created, err := c.svc.Settings.ForwardingAddresses.Create("me", &gmail.ForwardingAddress{
		ForwardingEmail: email,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create forwarding address %s: %w", email, err)
	}
	return created, nil
}

// DeleteForwardingAddress removes a forwarding address and disables any
// filters that forward to it.
func (c *Client) DeleteForwardingAddress(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := c.svc.Settings.ForwardingAddresses.Delete("me", email).Do(); err != nil {
		return fmt.Errorf("failed to delete forwarding address %s: %w", email, err)
	}
	return nil
}

package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// ListSendAs lists the send-as aliases, including the primary address.
func (c *Client) ListSendAs() ([]*gmail.SendAs, error) {
	resp, err := c.svc.Settings.SendAs.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list send-as aliases: %w", err)
	}
	return resp.SendAs, nil
}

// GetSendAs retrieves a send-as alias by its email address.
func (c *Client) GetSendAs(email string) (*gmail.SendAs, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	alias, err := c.svc.Settings.SendAs.Get("me", email).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get send-as alias %s: %w", email, err)
	}
	return alias, nil
}

// CreateSendAs creates a custom send-as alias. Unless ownership of the
// address is already proven, Gmail sends a verification email.
func (c *Client) CreateSendAs(alias *gmail.SendAs) (*gmail.SendAs, error) {
	if alias == nil || alias.SendAsEmail == "" {
		return nil, fmt.Errorf("sendAsEmail is required")
	}
	created, err := c.svc.Settings.SendAs.Create("me", alias).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create send-as alias %s: %w", alias.SendAsEmail, err)
	}
	return created, nil
}

// UpdateSendAs replaces a send-as alias's settings.
func (c *Client) UpdateSendAs(email string, alias *gmail.SendAs) (*gmail.SendAs, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	updated, err := c.svc.Settings.SendAs.Update("me", email, alias).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update send-as alias %s: %w", email, err)
	}
	return updated, nil
}

// PatchSendAs updates only the provided fields of a send-as alias.
func (c *Client) PatchSendAs(email string, alias *gmail.SendAs) (*gmail.SendAs, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	patched, err := c.svc.Settings.SendAs.Patch("me", email, alias).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch send-as alias %s: %w", email, err)
	}
	return patched, nil
}

// DeleteSendAs removes a custom send-as alias. The primary address cannot be
// deleted.
func (c *Client) DeleteSendAs(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := c.svc.Settings.SendAs.Delete("me", email).Do(); err != nil {
		return fmt.Errorf("failed to delete send-as alias %s: %w", email, err)
	}
	return nil
}

// VerifySendAs re-sends the verification email for a send-as alias.
func (c *Client) VerifySendAs(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if err := c.svc.Settings.SendAs.Verify("me", email).Do(); err != nil {
		return fmt.Errorf("failed to verify send-as alias %s: %w", email, err)
	}
	return nil
}

// ListSmimeInfo lists the S/MIME configurations for a send-as alias.
func (c *Client) ListSmimeInfo(sendAsEmail string) ([]*gmail.SmimeInfo, error) {
	if sendAsEmail == "" {
		return nil, fmt.Errorf("sendAsEmail is required")
	}
	resp, err := c.svc.Settings.SendAs.SmimeInfo.List("me", sendAsEmail).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list S/MIME configs for %s: %w", sendAsEmail, err)
	}
	return resp.SmimeInfo, nil
}

// GetSmimeInfo retrieves one S/MIME configuration.
func (c *Client) GetSmimeInfo(sendAsEmail, id string) (*gmail.SmimeInfo, error) {
	if sendAsEmail == "" || id == "" {
		return nil, fmt.Errorf("sendAsEmail and id are required")
	}
	info, err := c.svc.Settings.SendAs.SmimeInfo.Get("me", sendAsEmail, id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get S/MIME config %s: %w", id, err)
	}
	return info, nil
}

// InsertSmimeInfo uploads a new S/MIME key and certificate chain for a
// send-as alias. The Pkcs12 field carries the base64-encoded PKCS#12 bundle.
func (c *Client) InsertSmimeInfo(sendAsEmail string, info *gmail.SmimeInfo) (*gmail.SmimeInfo, error) {
	if sendAsEmail == "" {
		return nil, fmt.Errorf("sendAsEmail is required")
	}
	inserted, err := c.svc.Settings.SendAs.SmimeInfo.Insert("me", sendAsEmail, info).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert S/MIME config for %s: %w", sendAsEmail, err)
	}
	return inserted, nil
}

// DeleteSmimeInfo removes an S/MIME configuration.
func (c *Client) DeleteSmimeInfo(sendAsEmail, id string) error {
	if sendAsEmail == "" || id == "" {
		return fmt.Errorf("sendAsEmail and id are required")
	}
	if err := c.svc.Settings.SendAs.SmimeInfo.Delete("me", sendAsEmail, id).Do(); err != nil {
		return fmt.Errorf("failed to delete S/MIME config %s: %w", id, err)
	}
	return nil
}

// SetDefaultSmimeInfo marks an S/MIME configuration as the default for the
// alias.
func (c *Client) SetDefaultSmimeInfo(sendAsEmail, id string) error {
	if sendAsEmail == "" || id == "" {
		return fmt.Errorf("sendAsEmail and id are required")
	}
	if err := c.svc.Settings.SendAs.SmimeInfo.SetDefault("me", sendAsEmail, id).Do(); err != nil {
		return fmt.Errorf("failed to set default S/MIME config %s: %w", id, err)
	}
	return nil
}

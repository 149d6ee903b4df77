package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// Client-side encryption (CSE) resources. These endpoints require a Google
// Workspace account with CSE enabled; for consumer accounts they return
// permission errors.

// ListCseIdentities lists the client-side encryption identities.
func (c *Client) ListCseIdentities(pageToken string) (*gmail.ListCseIdentitiesResponse, error) {
	req := c.svc.Settings.Cse.Identities.List("me")
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}
	resp, err := req.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list CSE identities: %w", err)
	}
	return resp, nil
}

// GetCseIdentity retrieves a CSE identity by its email address.
func (c *Client) GetCseIdentity(emailAddress string) (*gmail.CseIdentity, error) {
	if emailAddress == "" {
		return nil, fmt.Errorf("emailAddress is required")
	}
	identity, err := c.svc.Settings.Cse.Identities.Get("me", emailAddress).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get CSE identity %s: %w", emailAddress, err)
	}
	return identity, nil
}

// CreateCseIdentity creates a CSE identity wired to an existing key pair.
func (c *Client) CreateCseIdentity(identity *gmail.CseIdentity) (*gmail.CseIdentity, error) {
	if identity == nil || identity.EmailAddress == "" {
		return nil, fmt.Errorf("emailAddress is required")
	}
	created, err := c.svc.Settings.Cse.Identities.Create("me", identity).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create CSE identity %s: %w", identity.EmailAddress, err)
	}
	return created, nil
}

// PatchCseIdentity associates a different key pair with a CSE identity.
func (c *Client) PatchCseIdentity(emailAddress string, identity *gmail.CseIdentity) (*gmail.CseIdentity, error) {
	if emailAddress == "" {
		return nil, fmt.Errorf("emailAddress is required")
	}
	patched, err := c.svc.Settings.Cse.Identities.Patch("me", emailAddress, identity).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch CSE identity %s: %w", emailAddress, err)
	}
	return patched, nil
}

// DeleteCseIdentity removes a CSE identity. The associated key pairs remain.
func (c *Client) DeleteCseIdentity(emailAddress string) error {
	if emailAddress == "" {
		return fmt.Errorf("emailAddress is required")
	}
	if err := c.svc.Settings.Cse.Identities.Delete("me", emailAddress).Do(); err != nil {
		return fmt.Errorf("failed to delete CSE identity %s: %w", emailAddress, err)
	}
	return nil
}

// ListCseKeyPairs lists the client-side encryption key pairs.
func (c *Client) ListCseKeyPairs(pageToken string) (*gmail.ListCseKeyPairsResponse, error) {
	req := c.svc.Settings.Cse.Keypairs.List("me")
	if pageToken != "" {
		req = req.PageToken(pageToken)
	}
	resp, err := req.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list CSE key pairs: %w", err)
	}
	return resp, nil
}

// GetCseKeyPair retrieves a CSE key pair by its ID.
func (c *Client) GetCseKeyPair(keyPairID string) (*gmail.CseKeyPair, error) {
	if keyPairID == "" {
		return nil, fmt.Errorf("keyPairID is required")
	}
	keyPair, err := c.svc.Settings.Cse.Keypairs.Get("me", keyPairID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get CSE key pair %s: %w", keyPairID, err)
	}
	return keyPair, nil
}

// CreateCseKeyPair uploads a key pair: a PKCS#7 certificate chain and wrapped
// private key metadata.
func (c *Client) CreateCseKeyPair(keyPair *gmail.CseKeyPair) (*gmail.CseKeyPair, error) {
	if keyPair == nil {
		return nil, fmt.Errorf("keyPair is required")
	}
	created, err := c.svc.Settings.Cse.Keypairs.Create("me", keyPair).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create CSE key pair: %w", err)
	}
	return created, nil
}

// EnableCseKeyPair turns a disabled key pair back on.
func (c *Client) EnableCseKeyPair(keyPairID string) (*gmail.CseKeyPair, error) {
	if keyPairID == "" {
		return nil, fmt.Errorf("keyPairID is required")
	}
	enabled, err := c.svc.Settings.Cse.Keypairs.Enable("me", keyPairID, &gmail.EnableCseKeyPairRequest{}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to enable CSE key pair %s: %w", keyPairID, err)
	}
	return enabled, nil
}

// DisableCseKeyPair turns a key pair off. Messages encrypted with it remain
// readable until the key pair is obliterated.
func (c *Client) DisableCseKeyPair(keyPairID string) (*gmail.CseKeyPair, error) {
	if keyPairID == "" {
		return nil, fmt.Errorf("keyPairID is required")
	}
	disabled, err := c.svc.Settings.Cse.Keypairs.Disable("me", keyPairID, &gmail.DisableCseKeyPairRequest{}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to disable CSE key pair %s: %w", keyPairID, err)
	}
	return disabled, nil
}

// ObliterateCseKeyPair permanently deletes a disabled key pair after a 30 day
// waiting period. Messages encrypted with it become unreadable.
func (c *Client) ObliterateCseKeyPair(keyPairID string) error {
	if keyPairID == "" {
		return fmt.Errorf("keyPairID is required")
	}
	if err := c.svc.Settings.Cse.Keypairs.Obliterate("me", keyPairID, &gmail.ObliterateCseKeyPairRequest{}).Do(); err != nil {
		return fmt.Errorf("failed to obliterate CSE key pair %s: %w", keyPairID, err)
	}
	return nil
}

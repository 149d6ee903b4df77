package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// ListDelegates lists the delegates of the account. Delegation is only
// available to Google Workspace accounts.
func (c *Client) ListDelegates() ([]*gmail.Delegate, error) {
	resp, err := c.svc.Settings.Delegates.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list delegates: %w", err)
	}
	return resp.Delegates, nil
}

// GetDelegate retrieves a delegate and its verification status.
func (c *Client) GetDelegate(delegateEmail string) (*gmail.Delegate, error) {
	if delegateEmail == "" {
		return nil, fmt.Errorf("delegateEmail is required")
	}
	delegate, err := c.svc.Settings.Delegates.Get("me", delegateEmail).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get delegate %s: %w", delegateEmail, err)
	}
	return delegate, nil
}

// CreateDelegate grants an address delegate access to the account. The
// delegate must be in the same Workspace organization.
func (c *Client) CreateDelegate(delegateEmail string) (*gmail.Delegate, error) {
	if delegateEmail == "" {
		return nil, fmt.Errorf("delegateEmail is required")
	}
	created, err := c.svc.Settings.Delegates.Create("me", &gmail.Delegate{
		DelegateEmail: delegateEmail,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create delegate %s: %w", delegateEmail, err)
	}
	return created, nil
}

// DeleteDelegate revokes a delegate's access.
func (c *Client) DeleteDelegate(delegateEmail string) error {
	if delegateEmail == "" {
		return fmt.Errorf("delegateEmail is required")
	}
	if err := c.svc.Settings.Delegates.Delete("me", delegateEmail).Do(); err != nil {
		return fmt.Errorf("failed to delete delegate %s: %w", delegateEmail, err)
	}
	return nil
}

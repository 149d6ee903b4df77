package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// NewLabel describes a label to create or update. Visibility fields may be
// left empty to accept the API defaults (labelShow / show).
type NewLabel struct {
	Name                  string
	LabelListVisibility   string // labelShow, labelShowIfUnread, labelHide
	MessageListVisibility string // show, hide
	TextColor             string
	BackgroundColor       string
}

func (l *NewLabel) toAPI() *gmail.Label {
	label := &gmail.Label{
		Name:                  l.Name,
		LabelListVisibility:   l.LabelListVisibility,
		MessageListVisibility: l.MessageListVisibility,
	}
	if l.TextColor != "" || l.BackgroundColor != "" {
		label.Color = &gmail.LabelColor{
			TextColor:       l.TextColor,
			BackgroundColor: l.BackgroundColor,
		}
	}
	return label
}

// ListLabels lists all Gmail labels for the user
func (c *Client) ListLabels() ([]*gmail.Label, error) {
	resp, err := c.svc.Labels.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}
	return resp.Labels, nil
}

// GetLabel retrieves a label with its message and thread counts.
func (c *Client) GetLabel(labelID string) (*gmail.Label, error) {
	label, err := c.svc.Labels.Get("me", labelID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get label %s: %w", labelID, err)
	}
	return label, nil
}

// CreateLabel creates a new user label.
func (c *Client) CreateLabel(label *NewLabel) (*gmail.Label, error) {
	if label.Name == "" {
		return nil, fmt.Errorf("label name is required")
	}
	created, err := c.svc.Labels.Create("me", label.toAPI()).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", err)
	}
	return created, nil
}

// UpdateLabel replaces a label's properties.
func (c *Client) UpdateLabel(labelID string, label *NewLabel) (*gmail.Label, error) {
	if labelID == "" {
		return nil, fmt.Errorf("labelID is required")
	}
	updated, err := c.svc.Labels.Update("me", labelID, label.toAPI()).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update label %s: %w", labelID, err)
	}
	return updated, nil
}

// PatchLabel updates only the provided label properties.
func (c *Client) PatchLabel(labelID string, label *NewLabel) (*gmail.Label, error) {
	if labelID == "" {
		return nil, fmt.Errorf("labelID is required")
	}
	patched, err := c.svc.Labels.Patch("me", labelID, label.toAPI()).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to patch label %s: %w", labelID, err)
	}
	return patched, nil
}

// DeleteLabel deletes a user label. System labels cannot be deleted.
func (c *Client) DeleteLabel(labelID string) error {
	if err := c.svc.Labels.Delete("me", labelID).Do(); err != nil {
		return fmt.Errorf("failed to delete label %s: %w", labelID, err)
	}
	return nil
}

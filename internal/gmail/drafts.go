package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// ListDraftsOptions narrows a draft listing.
type ListDraftsOptions struct {
	Query            string
	MaxResults       int64
	PageToken        string
	IncludeSpamTrash bool
}

// ListDrafts returns one page of drafts. The returned drafts carry only IDs;
// use GetDraft for content.
func (c *Client) ListDrafts(opts ListDraftsOptions) (*gmail.ListDraftsResponse, error) {
	req := c.svc.Drafts.List("me")
	if opts.Query != "" {
		req = req.Q(opts.Query)
	}
	if opts.MaxResults > 0 {
		pageSize := opts.MaxResults
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
		req = req.MaxResults(pageSize)
	}
	if opts.PageToken != "" {
		req = req.PageToken(opts.PageToken)
	}
	if opts.IncludeSpamTrash {
		req = req.IncludeSpamTrash(true)
	}

	resp, err := req.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return resp, nil
}

// GetDraft retrieves a draft with its full message content.
func (c *Client) GetDraft(draftID string) (*gmail.Draft, error) {
	draft, err := c.svc.Drafts.Get("me", draftID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft %s: %w", draftID, err)
	}
	return draft, nil
}

// CreateDraft creates a new draft from the composed message. The optional
// threadID attaches the draft to an existing thread.
func (c *Client) CreateDraft(msg *EmailMessage, threadID string) (*gmail.Draft, error) {
	raw, err := msg.Raw()
	if err != nil {
		return nil, err
	}

	draft := &gmail.Draft{
		Message: &gmail.Message{Raw: raw, ThreadId: threadID},
	}

	created, err := c.svc.Drafts.Create("me", draft).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return created, nil
}

// UpdateDraft replaces the content of an existing draft.
func (c *Client) UpdateDraft(draftID string, msg *EmailMessage, threadID string) (*gmail.Draft, error) {
	if draftID == "" {
		return nil, fmt.Errorf("draftID is required")
	}

	raw, err := msg.Raw()
	if err != nil {
		return nil, err
	}

	draft := &gmail.Draft{
		Id:      draftID,
		Message: &gmail.Message{Raw: raw, ThreadId: threadID},
	}

	updated, err := c.svc.Drafts.Update("me", draftID, draft).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update draft %s: %w", draftID, err)
	}
	return updated, nil
}

// DeleteDraft permanently deletes a draft
func (c *Client) DeleteDraft(draftID string) error {
	if err := c.svc.Drafts.Delete("me", draftID).Do(); err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", draftID, err)
	}
	return nil
}

// SendDraft sends an existing draft and returns the resulting message.
func (c *Client) SendDraft(draftID string) (*gmail.Message, error) {
	if draftID == "" {
		return nil, fmt.Errorf("draftID is required")
	}
	sent, err := c.svc.Drafts.Send("me", &gmail.Draft{Id: draftID}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to send draft %s: %w", draftID, err)
	}
	return sent, nil
}

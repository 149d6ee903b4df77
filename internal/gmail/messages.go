package gmail

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	gmail "google.golang.org/api/gmail/v1"

	"github.com/universal-mcp/google-mail/internal/logging"
)

// maxPageSize is the largest page the Gmail list endpoints accept.
const maxPageSize = 500

// ListMessagesOptions narrows a message listing.
type ListMessagesOptions struct {
	Query            string   // Gmail search query, e.g. "is:unread from:foo@bar"
	LabelIDs         []string // Only messages with all of these labels
	MaxResults       int64    // Page size, capped at 500 by the API
	PageToken        string
	IncludeSpamTrash bool
}

// ListMessages returns one page of message IDs matching the options. The
// returned messages carry only Id and ThreadId; use GetMessage or
// ListMessagesWithDetails for full content.
func (c *Client) ListMessages(opts ListMessagesOptions) (*gmail.ListMessagesResponse, error) {
	req := c.svc.Messages.List("me")
	if opts.Query != "" {
		req = req.Q(opts.Query)
	}
	if len(opts.LabelIDs) > 0 {
		req = req.LabelIds(opts.LabelIDs...)
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
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return resp, nil
}

// MessageList is a page of fully fetched messages.
type MessageList struct {
	Messages           []*gmail.Message
	NextPageToken      string
	ResultSizeEstimate int64
}

// ListMessagesWithDetails lists message IDs and fetches each message's
// details in parallel over a bounded worker pool. Individual fetch failures
// degrade to partial results: the failure is logged and the message dropped.
// Context cancellation aborts the whole batch.
func (c *Client) ListMessagesWithDetails(ctx context.Context, opts ListMessagesOptions, format string) (*MessageList, error) {
	listing, err := c.ListMessages(opts)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = "metadata"
	}

	results := make([]*gmail.Message, len(listing.Messages))

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, c.concurrency)

	for i, m := range listing.Messages {
		i, id := i, m.Id
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := c.wait(ctx); err != nil {
				return err
			}

			msg, err := c.svc.Messages.Get("me", id).Format(format).Context(ctx).Do()
			if err != nil {
				// Partial results beat failing the whole page
				slog.Warn("failed to fetch message details",
					logging.MessageID(id),
					logging.Err(err),
				)
				return nil
			}
			results[i] = msg
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch message details: %w", err)
	}

	// Compact out the slots left nil by failed fetches
	messages := make([]*gmail.Message, 0, len(results))
	for _, msg := range results {
		if msg != nil {
			messages = append(messages, msg)
		}
	}

	return &MessageList{
		Messages:           messages,
		NextPageToken:      listing.NextPageToken,
		ResultSizeEstimate: listing.ResultSizeEstimate,
	}, nil
}

// GetMessage retrieves a full Gmail message
func (c *Client) GetMessage(messageID string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}

// GetMessageWithFormat retrieves a message in the given format
// (minimal, metadata, full, raw).
func (c *Client) GetMessageWithFormat(messageID, format string) (*gmail.Message, error) {
	if format == "" {
		format = "full"
	}
	msg, err := c.svc.Messages.Get("me", messageID).Format(format).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}
	return msg, nil
}

// InsertMessage inserts a message directly into the mailbox, bypassing
// normal delivery scanning and classification.
func (c *Client) InsertMessage(msg *gmail.Message) (*gmail.Message, error) {
	inserted, err := c.svc.Messages.Insert("me", msg).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}
	return inserted, nil
}

// ImportMessage imports a message with standard delivery scanning and
// classification, as if it had arrived via SMTP.
func (c *Client) ImportMessage(msg *gmail.Message) (*gmail.Message, error) {
	imported, err := c.svc.Messages.Import("me", msg).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to import message: %w", err)
	}
	return imported, nil
}

// TrashMessage moves a message to the trash
func (c *Client) TrashMessage(messageID string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Trash("me", messageID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to trash message %s: %w", messageID, err)
	}
	return msg, nil
}

// UntrashMessage restores a message from the trash
func (c *Client) UntrashMessage(messageID string) (*gmail.Message, error) {
	msg, err := c.svc.Messages.Untrash("me", messageID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to untrash message %s: %w", messageID, err)
	}
	return msg, nil
}

// DeleteMessage permanently deletes a message, bypassing the trash.
// This cannot be undone.
func (c *Client) DeleteMessage(messageID string) error {
	if err := c.svc.Messages.Delete("me", messageID).Do(); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", messageID, err)
	}
	return nil
}

// BatchDeleteMessages permanently deletes many messages in one call.
func (c *Client) BatchDeleteMessages(messageIDs []string) error {
	if len(messageIDs) == 0 {
		return fmt.Errorf("at least one message ID is required")
	}
	err := c.svc.Messages.BatchDelete("me", &gmail.BatchDeleteMessagesRequest{
		Ids: messageIDs,
	}).Do()
	if err != nil {
		return fmt.Errorf("failed to batch delete messages: %w", err)
	}
	return nil
}

// ModifyMessage adds and removes labels on a message
func (c *Client) ModifyMessage(messageID string, addLabelIDs, removeLabelIDs []string) (*gmail.Message, error) {
	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return nil, fmt.Errorf("at least one label change is required")
	}
	msg, err := c.svc.Messages.Modify("me", messageID, &gmail.ModifyMessageRequest{
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to modify message %s: %w", messageID, err)
	}
	return msg, nil
}

// BatchModifyMessages adds and removes labels on many messages in one call.
func (c *Client) BatchModifyMessages(messageIDs, addLabelIDs, removeLabelIDs []string) error {
	if len(messageIDs) == 0 {
		return fmt.Errorf("at least one message ID is required")
	}
	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return fmt.Errorf("at least one label change is required")
	}
	err := c.svc.Messages.BatchModify("me", &gmail.BatchModifyMessagesRequest{
		Ids:            messageIDs,
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Do()
	if err != nil {
		return fmt.Errorf("failed to batch modify messages: %w", err)
	}
	return nil
}

// MarkMessageAsRead removes the UNREAD label from a message
func (c *Client) MarkMessageAsRead(messageID string) (*gmail.Message, error) {
	return c.ModifyMessage(messageID, nil, []string{"UNREAD"})
}

// MarkMessageAsUnread adds the UNREAD label to a message
func (c *Client) MarkMessageAsUnread(messageID string) (*gmail.Message, error) {
	return c.ModifyMessage(messageID, []string{"UNREAD"}, nil)
}

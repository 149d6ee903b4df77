package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// ListHistoryOptions narrows a history listing. StartHistoryID is required;
// it usually comes from a previous messages.get or getProfile response.
type ListHistoryOptions struct {
	StartHistoryID uint64
	HistoryTypes   []string // messageAdded, messageDeleted, labelAdded, labelRemoved
	LabelID        string
	MaxResults     int64
	PageToken      string
}

// ListHistory lists mailbox change events since StartHistoryID. A startHistoryId
// that is too old yields a 404 from the API; callers must then fall back to a
// full sync.
func (c *Client) ListHistory(opts ListHistoryOptions) (*gmail.ListHistoryResponse, error) {
	if opts.StartHistoryID == 0 {
		return nil, fmt.Errorf("startHistoryID is required")
	}

	req := c.svc.History.List("me").StartHistoryId(opts.StartHistoryID)
	if len(opts.HistoryTypes) > 0 {
		req = req.HistoryTypes(opts.HistoryTypes...)
	}
	if opts.LabelID != "" {
		req = req.LabelId(opts.LabelID)
	}
	if opts.MaxResults > 0 {
		req = req.MaxResults(opts.MaxResults)
	}
	if opts.PageToken != "" {
		req = req.PageToken(opts.PageToken)
	}

	resp, err := req.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return resp, nil
}

// Watch sets up push notifications to a Cloud Pub/Sub topic for mailbox
// changes, optionally restricted to the given label IDs.
func (c *Client) Watch(topicName string, labelIDs []string) (*gmail.WatchResponse, error) {
	if topicName == "" {
		return nil, fmt.Errorf("topicName is required")
	}
	resp, err := c.svc.Watch("me", &gmail.WatchRequest{
		TopicName: topicName,
		LabelIds:  labelIDs,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to set up watch: %w", err)
	}
	return resp, nil
}

// Stop removes the push notification watch from the mailbox.
func (c *Client) Stop() error {
	if err := c.svc.Stop("me").Do(); err != nil {
		return fmt.Errorf("failed to stop watch: %w", err)
	}
	return nil
}

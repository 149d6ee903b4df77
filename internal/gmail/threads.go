package gmail

import (
	"fmt"

	gmail "google.golang.org/api/gmail/v1"
)

// threadListPageSize is the page size used when accumulating threads across
// multiple list calls.
const threadListPageSize = 100

// ForeachThread iterates over all threads matching the query
func (c *Client) ForeachThread(q string, fn func(*gmail.Thread) error) error {
	pageToken := ""
	for {
		req := c.svc.Threads.List("me").Q(q)
		if pageToken != "" {
			req.PageToken(pageToken)
		}
		res, err := req.Do()
		if err != nil {
			return err
		}
		for _, t := range res.Threads {
			if err := fn(t); err != nil {
				return err
			}
		}
		if res.NextPageToken == "" {
			return nil
		}
		pageToken = res.NextPageToken
	}
}

// ListThreads lists threads matching the query with pagination
// It will fetch up to maxResults threads, making multiple API calls if necessary
func (c *Client) ListThreads(q string, maxResults int64) ([]*gmail.Thread, error) {
	var allThreads []*gmail.Thread
	pageToken := ""

	for {
		remaining := maxResults - int64(len(allThreads))
		if remaining <= 0 {
			break
		}

		pageSize := remaining
		if pageSize > threadListPageSize {
			pageSize = threadListPageSize
		}

		req := c.svc.Threads.List("me").Q(q).MaxResults(pageSize)
		if pageToken != "" {
			req = req.PageToken(pageToken)
		}

		res, err := req.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list threads: %w", err)
		}

		allThreads = append(allThreads, res.Threads...)

		if res.NextPageToken == "" || int64(len(allThreads)) >= maxResults {
			break
		}

		pageToken = res.NextPageToken
	}

	if int64(len(allThreads)) > maxResults {
		allThreads = allThreads[:maxResults]
	}

	return allThreads, nil
}

// GetThread retrieves a full Gmail thread with all its messages
func (c *Client) GetThread(threadID string) (*gmail.Thread, error) {
	thread, err := c.svc.Threads.Get("me", threadID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get thread %s: %w", threadID, err)
	}
	return thread, nil
}

// ModifyThread adds and removes labels on every message of a thread
func (c *Client) ModifyThread(threadID string, addLabelIDs, removeLabelIDs []string) (*gmail.Thread, error) {
	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return nil, fmt.Errorf("at least one label change is required")
	}
	thread, err := c.svc.Threads.Modify("me", threadID, &gmail.ModifyThreadRequest{
		AddLabelIds:    addLabelIDs,
		RemoveLabelIds: removeLabelIDs,
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to modify thread %s: %w", threadID, err)
	}
	return thread, nil
}

// TrashThread moves a thread and all its messages to the trash
func (c *Client) TrashThread(threadID string) (*gmail.Thread, error) {
	thread, err := c.svc.Threads.Trash("me", threadID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to trash thread %s: %w", threadID, err)
	}
	return thread, nil
}

// UntrashThread restores a thread from the trash
func (c *Client) UntrashThread(threadID string) (*gmail.Thread, error) {
	thread, err := c.svc.Threads.Untrash("me", threadID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to untrash thread %s: %w", threadID, err)
	}
	return thread, nil
}

// DeleteThread permanently deletes a thread and all its messages,
// bypassing the trash. This cannot be undone.
func (c *Client) DeleteThread(threadID string) error {
	if err := c.svc.Threads.Delete("me", threadID).Do(); err != nil {
		return fmt.Errorf("failed to delete thread %s: %w", threadID, err)
	}
	return nil
}

// ArchiveThread archives a thread by removing the INBOX label
func (c *Client) ArchiveThread(threadID string) error {
	_, err := c.ModifyThread(threadID, nil, []string{"INBOX"})
	return err
}

// UnarchiveThread moves a thread back to inbox by adding the INBOX label
func (c *Client) UnarchiveThread(threadID string) error {
	_, err := c.ModifyThread(threadID, []string{"INBOX"}, nil)
	return err
}

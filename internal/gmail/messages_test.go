package gmail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// testClient returns a Client good enough for exercising argument
// validation. Calls that reach the API will panic, so tests using it
// must fail validation first.
func testClient() *Client {
	return &Client{
		account:     "default",
		concurrency: DefaultConcurrency,
		limiter:     rate.NewLimiter(rate.Limit(defaultRequestsPerSecond), defaultRequestsPerSecond),
	}
}

// fakeAPIClient returns a Client backed by a local HTTP server standing in
// for the Gmail API.
func fakeAPIClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	svc, err := gmail.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(ts.URL+"/"))
	require.NoError(t, err)

	return &Client{
		svc:         svc.Users,
		account:     "default",
		concurrency: 2,
		limiter:     rate.NewLimiter(rate.Inf, 1),
	}
}

func TestBatchDeleteMessages_RequiresIDs(t *testing.T) {
	c := testClient()

	err := c.BatchDeleteMessages(nil)
	assert.ErrorContains(t, err, "at least one message ID")

	err = c.BatchDeleteMessages([]string{})
	assert.ErrorContains(t, err, "at least one message ID")
}

func TestModifyMessage_RequiresLabelChange(t *testing.T) {
	c := testClient()

	_, err := c.ModifyMessage("msg-1", nil, nil)
	assert.ErrorContains(t, err, "at least one label change")
}

func TestBatchModifyMessages_Validation(t *testing.T) {
	c := testClient()

	err := c.BatchModifyMessages(nil, []string{"STARRED"}, nil)
	assert.ErrorContains(t, err, "at least one message ID")

	err = c.BatchModifyMessages([]string{"msg-1"}, nil, nil)
	assert.ErrorContains(t, err, "at least one label change")
}

func TestGetAttachment_Validation(t *testing.T) {
	c := testClient()

	_, err := c.GetAttachment("", "att-1")
	assert.ErrorContains(t, err, "messageID is required")

	_, err = c.GetAttachment("msg-1", "")
	assert.ErrorContains(t, err, "attachmentID is required")
}

func TestGetMessageBody_InvalidFormat(t *testing.T) {
	c := testClient()

	_, err := c.GetMessageBody("msg-1", "markdown")
	assert.ErrorContains(t, err, "must be 'text' or 'html'")
}

func TestListMessagesWithDetails_PartialResults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&gmail.ListMessagesResponse{
			Messages: []*gmail.Message{
				{Id: "msg-1"}, {Id: "msg-2"}, {Id: "msg-3"},
			},
			NextPageToken:      "next-page",
			ResultSizeEstimate: 3,
		})
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/", func(w http.ResponseWriter, r *http.Request) {
		id := path.Base(r.URL.Path)
		if id == "msg-2" {
			http.Error(w, "backend error", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(&gmail.Message{Id: id, ThreadId: "thread-1"})
	})

	c := fakeAPIClient(t, mux)

	list, err := c.ListMessagesWithDetails(context.Background(), ListMessagesOptions{}, "metadata")
	require.NoError(t, err)

	// The failing fetch is dropped, the rest of the page survives
	ids := make([]string, 0, len(list.Messages))
	for _, m := range list.Messages {
		ids = append(ids, m.Id)
	}
	assert.Equal(t, []string{"msg-1", "msg-3"}, ids)
	assert.Equal(t, "next-page", list.NextPageToken)
	assert.Equal(t, int64(3), list.ResultSizeEstimate)
}

func TestListMessagesWithDetails_ContextCancelled(t *testing.T) {
	var detailFetches int
	mux := http.NewServeMux()
	mux.HandleFunc("/gmail/v1/users/me/messages", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(&gmail.ListMessagesResponse{
			Messages: []*gmail.Message{{Id: "msg-1"}, {Id: "msg-2"}},
		})
	})
	mux.HandleFunc("/gmail/v1/users/me/messages/", func(w http.ResponseWriter, r *http.Request) {
		detailFetches++
		_ = json.NewEncoder(w).Encode(&gmail.Message{Id: path.Base(r.URL.Path)})
	})

	c := fakeAPIClient(t, mux)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListMessagesWithDetails(ctx, ListMessagesOptions{}, "metadata")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, detailFetches)
}

func TestSetConcurrency(t *testing.T) {
	c := testClient()

	c.SetConcurrency(10)
	assert.Equal(t, 10, c.concurrency)

	// Values below one keep the previous setting
	c.SetConcurrency(0)
	assert.Equal(t, 10, c.concurrency)

	c.SetConcurrency(-3)
	assert.Equal(t, 10, c.concurrency)
}

package gmail

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmail "google.golang.org/api/gmail/v1"
)

// b64url encodes the way the Gmail API does: base64url without padding.
func b64url(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestHeaderValue(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "alice@example.com"},
				{Name: "Subject", Value: "Hello"},
				{Name: "Message-ID", Value: "<abc@example.com>"},
			},
		},
	}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"exact match", "From", "alice@example.com"},
		{"case insensitive", "subject", "Hello"},
		{"mixed case", "MESSAGE-id", "<abc@example.com>"},
		{"missing header", "Date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HeaderValue(msg, tt.header))
		})
	}
}

func TestHeaderValue_NilSafety(t *testing.T) {
	assert.Equal(t, "", HeaderValue(nil, "From"))
	assert.Equal(t, "", HeaderValue(&gmail.Message{}, "From"))
}

func TestMetadata(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "alice@example.com"},
				{Name: "To", Value: "bob@example.com"},
				{Name: "Cc", Value: "carol@example.com"},
				{Name: "Subject", Value: "Status"},
				{Name: "Date", Value: "Mon, 2 Jan 2006 15:04:05 -0700"},
				{Name: "Message-ID", Value: "<m1@example.com>"},
			},
		},
	}

	meta := Metadata(msg)
	assert.Equal(t, "alice@example.com", meta.From)
	assert.Equal(t, "bob@example.com", meta.To)
	assert.Equal(t, "carol@example.com", meta.Cc)
	assert.Equal(t, "Status", meta.Subject)
	assert.Equal(t, "Mon, 2 Jan 2006 15:04:05 -0700", meta.Date)
	assert.Equal(t, "<m1@example.com>", meta.MessageID)
}

func TestReceivedTime(t *testing.T) {
	// 2021-07-01T00:00:00Z in milliseconds
	ts := ReceivedTime(1625097600000)
	assert.Equal(t, time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC), ts.UTC())
}

func TestDecodeBase64URL(t *testing.T) {
	t.Run("unpadded base64url input", func(t *testing.T) {
		encoded := base64.RawURLEncoding.EncodeToString([]byte("hello"))
		require.NotContains(t, encoded, "=")

		data, err := decodeBase64URL(encoded)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("padded base64url input", func(t *testing.T) {
		data, err := decodeBase64URL(base64.URLEncoding.EncodeToString([]byte("hello")))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("standard base64 fallback", func(t *testing.T) {
		// Pick content whose standard encoding contains '+' or '/' so the
		// URL decoder rejects it first.
		content := []byte{0xfb, 0xff, 0xfe}
		std := base64.StdEncoding.EncodeToString(content)
		require.Contains(t, std, "+")

		data, err := decodeBase64URL(std)
		require.NoError(t, err)
		assert.Equal(t, content, data)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := decodeBase64URL("!!not base64!!")
		assert.Error(t, err)
	})
}

func TestExtractBody_PlainText(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "text/plain",
			Body:     &gmail.MessagePartBody{Data: b64url("plain body")},
		},
	}
	assert.Equal(t, "plain body", ExtractBody(msg))
}

func TestExtractBody_UnpaddedBase64URL(t *testing.T) {
	// The API omits base64 padding, so "hello" arrives as 7 characters.
	encoded := base64.RawURLEncoding.EncodeToString([]byte("hello"))
	require.Len(t, encoded, 7)

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "text/plain",
			Body:     &gmail.MessagePartBody{Data: encoded},
		},
	}
	assert.Equal(t, "hello", ExtractBody(msg))
}

func TestExtractBody_PrefersPlainOverHTML(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/alternative",
			Parts: []*gmail.MessagePart{
				{
					MimeType: "text/html",
					Body:     &gmail.MessagePartBody{Data: b64url("<p>html body</p>")},
				},
				{
					MimeType: "text/plain",
					Body:     &gmail.MessagePartBody{Data: b64url("plain body")},
				},
			},
		},
	}
	assert.Equal(t, "plain body", ExtractBody(msg))
}

func TestExtractBody_FallsBackToHTML(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/alternative",
			Parts: []*gmail.MessagePart{
				{
					MimeType: "text/html",
					Body:     &gmail.MessagePartBody{Data: b64url("<p>html only</p>")},
				},
			},
		},
	}
	assert.Equal(t, "<p>html only</p>", ExtractBody(msg))
}

func TestExtractBody_NestedMultipart(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/mixed",
			Parts: []*gmail.MessagePart{
				{
					MimeType: "multipart/alternative",
					Parts: []*gmail.MessagePart{
						{
							MimeType: "text/plain",
							Body:     &gmail.MessagePartBody{Data: b64url("nested body")},
						},
					},
				},
				{
					MimeType: "application/pdf",
					Filename: "report.pdf",
					Body:     &gmail.MessagePartBody{AttachmentId: "att1"},
				},
			},
		},
	}
	assert.Equal(t, "nested body", ExtractBody(msg))
}

func TestExtractBody_NoDisplayablePart(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "multipart/mixed",
			Parts: []*gmail.MessagePart{
				{
					MimeType: "application/octet-stream",
					Filename: "blob.bin",
					Body:     &gmail.MessagePartBody{AttachmentId: "att1"},
				},
			},
		},
	}
	assert.Equal(t, "", ExtractBody(msg))
}

func TestExtractBody_NilSafety(t *testing.T) {
	assert.Equal(t, "", ExtractBody(nil))
	assert.Equal(t, "", ExtractBody(&gmail.Message{}))
}

func TestExtractBody_StandardBase64Fallback(t *testing.T) {
	// Standard base64 of content that the URL decoder rejects
	content := "body with \xfb\xff\xfe bytes"
	std := base64.StdEncoding.EncodeToString([]byte(content))
	_, err := base64.URLEncoding.DecodeString(std)
	require.Error(t, err)

	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			MimeType: "text/plain",
			Body:     &gmail.MessagePartBody{Data: std},
		},
	}
	assert.Equal(t, content, ExtractBody(msg))
}

func TestWalkParts_VisitsAllParts(t *testing.T) {
	payload := &gmail.MessagePart{
		MimeType: "multipart/mixed",
		Parts: []*gmail.MessagePart{
			{MimeType: "text/plain"},
			{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{MimeType: "text/html"},
				},
			},
		},
	}

	var visited []string
	walkParts(payload, func(p *gmail.MessagePart) {
		visited = append(visited, p.MimeType)
	})

	assert.Equal(t, []string{"multipart/mixed", "text/plain", "multipart/alternative", "text/html"}, visited)
}

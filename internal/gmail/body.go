package gmail

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	gmail "google.golang.org/api/gmail/v1"
)

// HeaderValue returns the value of the named header from a message's payload.
// Header name matching is case-insensitive per RFC 2822. Returns an empty
// string if the header is absent.
func HeaderValue(msg *gmail.Message, name string) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// PartialMetadata holds the commonly needed headers of a message.
type PartialMetadata struct {
	From      string
	To        string
	Cc        string
	Subject   string
	Date      string
	MessageID string
}

// Metadata extracts the common headers from a message.
func Metadata(msg *gmail.Message) *PartialMetadata {
	return &PartialMetadata{
		From:      HeaderValue(msg, "From"),
		To:        HeaderValue(msg, "To"),
		Cc:        HeaderValue(msg, "Cc"),
		Subject:   HeaderValue(msg, "Subject"),
		Date:      HeaderValue(msg, "Date"),
		MessageID: HeaderValue(msg, "Message-ID"),
	}
}

// ReceivedTime converts a message's internal date (milliseconds since the
// epoch) to a time.Time.
func ReceivedTime(internalDate int64) time.Time {
	return time.UnixMilli(internalDate)
}

// decodeBase64URL decodes Gmail body data. The API emits RFC 4648 base64url
// without padding, but some payloads arrive padded or in standard base64, so
// try those on failure.
func decodeBase64URL(data string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	for _, enc := range []*base64.Encoding{base64.URLEncoding, base64.StdEncoding, base64.RawStdEncoding} {
		if d, fallbackErr := enc.DecodeString(data); fallbackErr == nil {
			return d, nil
		}
	}
	return nil, fmt.Errorf("failed to decode body data: %w", err)
}

// walkParts recursively walks through message parts
func walkParts(part *gmail.MessagePart, fn func(*gmail.MessagePart)) {
	if part == nil {
		return
	}

	fn(part)

	for _, subpart := range part.Parts {
		walkParts(subpart, fn)
	}
}

// findBodyData returns the base64 data of the first part with the given MIME
// type, searching the payload itself and then the part tree depth-first.
func findBodyData(payload *gmail.MessagePart, mimeType string) string {
	if payload == nil {
		return ""
	}
	if payload.MimeType == mimeType && payload.Body != nil && payload.Body.Data != "" {
		return payload.Body.Data
	}

	var data string
	walkParts(payload, func(part *gmail.MessagePart) {
		if data == "" && part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
			data = part.Body.Data
		}
	})
	return data
}

// ExtractBody produces a displayable body for a message: text/plain is
// preferred, text/html is the fallback, nested multipart parts are searched
// recursively. A message without a decodable displayable part yields an empty
// string, not an error.
func ExtractBody(msg *gmail.Message) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}

	for _, mimeType := range []string{"text/plain", "text/html"} {
		data := findBodyData(msg.Payload, mimeType)
		if data == "" {
			continue
		}
		decoded, err := decodeBase64URL(data)
		if err != nil {
			continue
		}
		return string(decoded)
	}

	return ""
}

// GetMessageBody extracts the text or HTML body from a message. format is
// "text" or "html".
func (c *Client) GetMessageBody(messageID string, format string) (string, error) {
	if format == "" {
		format = "text"
	}

	var targetMimeType string
	switch format {
	case "text":
		targetMimeType = "text/plain"
	case "html":
		targetMimeType = "text/html"
	default:
		return "", fmt.Errorf("invalid format %s, must be 'text' or 'html'", format)
	}

	msg, err := c.GetMessage(messageID)
	if err != nil {
		return "", err
	}

	data := findBodyData(msg.Payload, targetMimeType)
	if data == "" {
		return "", fmt.Errorf("no %s body found in message", format)
	}

	decoded, err := decodeBase64URL(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode message body: %w", err)
	}

	return string(decoded), nil
}

package gmail

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
)

// EmailMessage represents an email to be sent
type EmailMessage struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
	IsHTML  bool
}

// Validate checks that the message has the minimum required fields.
func (m *EmailMessage) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}
	if m.Subject == "" {
		return fmt.Errorf("subject is required")
	}
	if m.Body == "" {
		return fmt.Errorf("body is required")
	}
	return nil
}

// Raw builds the RFC 2822 representation of the message and encodes it in
// base64url format as expected by the Gmail API's Message.Raw field.
func (m *EmailMessage) Raw() (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	return buildRawMessage(m.To, m.Cc, m.Bcc, m.Subject, nil, m.Body, m.IsHTML), nil
}

// encodeRFC2047 encodes a string for use in email headers according to RFC 2047
// This is necessary for non-ASCII characters (like German umlauts) in subjects
func encodeRFC2047(s string) string {
	needsEncoding := false
	for _, r := range s {
		if r > 127 {
			needsEncoding = true
			break
		}
	}

	if !needsEncoding {
		return s
	}

	// Use Go's mime package which implements RFC 2047 encoding
	return mime.BEncoding.Encode("UTF-8", s)
}

// headerLine appends a single "Name: value" header with CRLF.
func headerLine(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\r\n")
}

// buildRawMessage assembles an RFC 2822 message and encodes it in base64url.
// extraHeaders are written verbatim after the Subject header (used for
// threading headers like In-Reply-To and References).
func buildRawMessage(to, cc, bcc []string, subject string, extraHeaders [][2]string, body string, isHTML bool) string {
	var b strings.Builder

	headerLine(&b, "To", strings.Join(to, ", "))
	if len(cc) > 0 {
		headerLine(&b, "Cc", strings.Join(cc, ", "))
	}
	if len(bcc) > 0 {
		headerLine(&b, "Bcc", strings.Join(bcc, ", "))
	}

	// Subject must be encoded for non-ASCII characters
	headerLine(&b, "Subject", encodeRFC2047(subject))

	for _, h := range extraHeaders {
		if h[1] != "" {
			headerLine(&b, h[0], h[1])
		}
	}

	if isHTML {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// replySubject adds the "Re: " prefix unless one is already present.
func replySubject(subject string) string {
	if strings.HasPrefix(strings.ToLower(subject), "re:") {
		return subject
	}
	return "Re: " + subject
}

// forwardSubject adds the "Fwd: " prefix unless one is already present.
func forwardSubject(subject string) string {
	lower := strings.ToLower(subject)
	if strings.HasPrefix(lower, "fwd:") || strings.HasPrefix(lower, "fw:") {
		return subject
	}
	return "Fwd: " + subject
}

// buildReferences appends the original Message-ID to the existing References
// chain for correct threading in the recipient's mail client.
func buildReferences(existing, messageID string) string {
	if messageID == "" {
		return existing
	}
	if existing == "" {
		return messageID
	}
	return existing + " " + messageID
}

// GetSignature fetches the user's Gmail signature (primary send-as address)
// The signature is cached after the first fetch
func (c *Client) GetSignature() (string, error) {
	if c.signature != "" {
		return c.signature, nil
	}

	sendAs, err := c.svc.Settings.SendAs.Get("me", "me").Do()
	if err != nil {
		// Emails should still go out if signature fetching fails
		return "", nil
	}

	if sendAs.Signature != "" {
		c.signature = sendAs.Signature
	}

	return c.signature, nil
}

// appendSignature adds the user's signature to the email body
func (c *Client) appendSignature(body string, isHTML bool) string {
	signature, err := c.GetSignature()
	if err != nil || signature == "" {
		return body
	}

	if isHTML {
		return body + "<br><br>-- <br>" + signature
	}
	return body + "\n\n-- \n" + signature
}

// SendEmail sends an email through the Gmail API and returns the message ID.
func (c *Client) SendEmail(msg *EmailMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", err
	}

	body := c.appendSignature(msg.Body, msg.IsHTML)
	raw := buildRawMessage(msg.To, msg.Cc, msg.Bcc, msg.Subject, nil, body, msg.IsHTML)

	sent, err := c.svc.Messages.Send("me", &gmail.Message{Raw: raw}).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}

// ReplyToEmail sends a reply to an existing email message. The reply is
// addressed to the original sender with In-Reply-To and References headers so
// mail clients thread it correctly, and is sent on the original thread.
func (c *Client) ReplyToEmail(messageID, threadID, body string, cc, bcc []string, isHTML bool) (string, error) {
	if messageID == "" {
		return "", fmt.Errorf("messageID is required")
	}
	if threadID == "" {
		return "", fmt.Errorf("threadID is required")
	}
	if body == "" {
		return "", fmt.Errorf("body is required")
	}

	msg, err := c.GetMessage(messageID)
	if err != nil {
		return "", fmt.Errorf("failed to get original message: %w", err)
	}

	originalFrom := HeaderValue(msg, "From")
	originalSubject := HeaderValue(msg, "Subject")
	originalMessageID := HeaderValue(msg, "Message-ID")
	originalReferences := HeaderValue(msg, "References")

	if originalFrom == "" {
		return "", fmt.Errorf("original message has no From header")
	}

	extraHeaders := [][2]string{
		{"In-Reply-To", originalMessageID},
		{"References", buildReferences(originalReferences, originalMessageID)},
	}

	bodyWithSignature := c.appendSignature(body, isHTML)
	raw := buildRawMessage([]string{originalFrom}, cc, bcc, replySubject(originalSubject), extraHeaders, bodyWithSignature, isHTML)

	sent, err := c.svc.Messages.Send("me", &gmail.Message{Raw: raw, ThreadId: threadID}).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send reply: %w", err)
	}

	return sent.Id, nil
}

// ForwardEmail forwards an existing email message to new recipients. The
// original message body is quoted below a "Forwarded message" preamble with
// the original From/Date/Subject/To headers.
func (c *Client) ForwardEmail(messageID string, to, cc, bcc []string, additionalBody string, isHTML bool) (string, error) {
	if messageID == "" {
		return "", fmt.Errorf("messageID is required")
	}
	if len(to) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}

	msg, err := c.GetMessage(messageID)
	if err != nil {
		return "", fmt.Errorf("failed to get original message: %w", err)
	}

	originalFrom := HeaderValue(msg, "From")
	originalTo := HeaderValue(msg, "To")
	originalSubject := HeaderValue(msg, "Subject")
	originalDate := HeaderValue(msg, "Date")

	// Prefer the body matching the requested format, fall back to text
	var originalBody string
	if isHTML {
		originalBody, _ = c.GetMessageBody(messageID, "html")
		if originalBody == "" {
			originalBody, _ = c.GetMessageBody(messageID, "text")
		}
	} else {
		originalBody, _ = c.GetMessageBody(messageID, "text")
	}

	additionalBodyWithSignature := c.appendSignature(additionalBody, isHTML)

	var forwardedBody string
	if isHTML {
		forwardedBody = additionalBodyWithSignature + "<br><br>"
		forwardedBody += "---------- Forwarded message ---------<br>"
		forwardedBody += fmt.Sprintf("From: %s<br>", originalFrom)
		forwardedBody += fmt.Sprintf("Date: %s<br>", originalDate)
		forwardedBody += fmt.Sprintf("Subject: %s<br>", originalSubject)
		forwardedBody += fmt.Sprintf("To: %s<br><br>", originalTo)
		forwardedBody += originalBody
	} else {
		forwardedBody = additionalBodyWithSignature + "\n\n"
		forwardedBody += "---------- Forwarded message ---------\n"
		forwardedBody += fmt.Sprintf("From: %s\n", originalFrom)
		forwardedBody += fmt.Sprintf("Date: %s\n", originalDate)
		forwardedBody += fmt.Sprintf("Subject: %s\n", originalSubject)
		forwardedBody += fmt.Sprintf("To: %s\n\n", originalTo)
		forwardedBody += originalBody
	}

	raw := buildRawMessage(to, cc, bcc, forwardSubject(originalSubject), nil, forwardedBody, isHTML)

	sent, err := c.svc.Messages.Send("me", &gmail.Message{Raw: raw}).Do()
	if err != nil {
		return "", fmt.Errorf("failed to forward email: %w", err)
	}

	return sent.Id, nil
}

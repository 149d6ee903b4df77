// Package gmail provides a Gmail API client covering messages, drafts,
// threads, labels, filters, settings, delegates, S/MIME certificates and
// client-side encryption resources.
//
// The Client wraps the generated gmail/v1 service and adds the pieces the
// generated client does not give you:
//
//   - RFC 2822 message composition (send, reply, forward) with base64url
//     encoding into Message.Raw
//   - MIME body extraction from a message's part tree
//   - Bulk detail fetching with a bounded worker pool and rate limiting
//   - Attachment listing and decoding with size limits
//
// All operations act on the authenticated user ("me"). Clients are created
// per account via NewClientForAccount; OAuth tokens are managed by the
// internal/google package.
package gmail

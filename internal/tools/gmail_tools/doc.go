// Package gmail_tools provides MCP (Model Context Protocol) tools for interacting with Gmail.
//
// This package exposes the Gmail client through MCP tools that can be called by
// AI agents or other MCP clients. Tools are grouped by resource:
//
// Messages:
//   - get_profile, list_messages, get_message
//   - send_email, reply_email, forward_email
//   - modify_messages, trash_messages, untrash_messages, delete_messages
//
// Drafts:
//   - list_drafts, get_draft, create_draft, update_draft, delete_draft, send_draft
//
// Threads:
//   - list_threads, get_thread, modify_threads, archive_threads
//   - trash_threads, untrash_threads, delete_threads
//
// Labels:
//   - list_labels, get_label, create_label, update_label, delete_label
//
// Filters:
//   - list_filters, get_filter, create_filter, delete_filter
//
// Settings:
//   - get_vacation_settings, update_vacation_settings
//   - get_language_settings, update_language_settings
//   - get_mail_access_settings (IMAP, POP, auto-forwarding)
//   - list_send_as, verify_send_as
//   - list_forwarding_addresses, create_forwarding_address, delete_forwarding_address
//   - list_delegates, create_delegate, delete_delegate
//
// History and push notifications:
//   - list_history, start_watch, stop_watch
//
// Attachments and bodies:
//   - list_attachments, get_attachment, get_message_bodies
//
// Every tool accepts an optional "account" argument (default "default") so a
// single server can manage multiple Google accounts. Tools that modify the
// mailbox are only registered when the server runs with writes enabled.
//
// Batch-capable tools (modify_messages, trash_messages, delete_messages and
// the thread equivalents) accept either a single ID or a JSON array of IDs
// and report per-item success and failure.
//
// All handlers are wrapped with instrumentation: tool invocations and the
// underlying Gmail API operations are recorded as metrics, and an audit
// log entry is emitted per invocation.
//
// Security considerations:
//   - Attachment downloads are capped at 25MB
//   - Attachment filenames are sanitized before display to prevent path traversal
//   - OAuth2 tokens are stored per account and refreshed automatically
package gmail_tools

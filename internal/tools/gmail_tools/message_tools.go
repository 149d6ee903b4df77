package gmail_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/google-mail/internal/gmail"
	"github.com/universal-mcp/google-mail/internal/instrumentation"
	"github.com/universal-mcp/google-mail/internal/server"
	"github.com/universal-mcp/google-mail/internal/tools/batch"
	"github.com/universal-mcp/google-mail/internal/tools/common"
)

// RegisterMessageTools registers message-related tools with the MCP server
func RegisterMessageTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Get profile tool
	getProfileTool := mcp.NewTool("get_profile",
		mcp.WithDescription("Get the Gmail profile of the authenticated user: email address, total message and thread counts, and current history ID"),
		withAccountOption(),
	)

	s.AddTool(getProfileTool, common.InstrumentedToolHandlerWithCategory("get_profile",
		instrumentation.CategoryMessages, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetProfile(ctx, request, sc)
		}))

	// List messages tool
	listMessagesTool := mcp.NewTool("list_messages",
		mcp.WithDescription("List Gmail messages matching a search query. Set withDetails to fetch sender, subject and snippet for each message in parallel."),
		withAccountOption(),
		mcp.WithString("query",
			mcp.Description("Gmail search query (e.g., 'is:unread', 'from:user@example.com')"),
		),
		mcp.WithString("labelIds",
			mcp.Description("Comma-separated list of label IDs to filter by (e.g., 'INBOX,UNREAD')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return (default: 10, max: 500)"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token from a previous listing to fetch the next page"),
		),
		mcp.WithBoolean("includeSpamTrash",
			mcp.Description("Include messages from SPAM and TRASH (default: false)"),
		),
		mcp.WithBoolean("withDetails",
			mcp.Description("Fetch message metadata (sender, subject, date) for each result (default: false)"),
		),
	)

	s.AddTool(listMessagesTool, common.InstrumentedToolHandlerWithCategory("list_messages",
		instrumentation.CategoryMessages, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListMessages(ctx, request, sc)
		}))

	// Get message tool
	getMessageTool := mcp.NewTool("get_message",
		mcp.WithDescription("Get a Gmail message with its headers and body"),
		withAccountOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to retrieve"),
		),
	)

	s.AddTool(getMessageTool, common.InstrumentedToolHandlerWithCategory("get_message",
		instrumentation.CategoryMessages, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMessage(ctx, request, sc)
		}))

	// Write operations are only registered when mutations are allowed
	if readOnly {
		return nil
	}

	// Send email tool
	sendEmailTool := mcp.NewTool("send_email",
		mcp.WithDescription("Send an email through Gmail. The account's signature is appended automatically when one is configured."),
		withAccountOption(),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body content"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false for plain text)"),
		),
	)

	s.AddTool(sendEmailTool, common.InstrumentedToolHandlerWithCategory("send_email",
		instrumentation.CategoryMessages, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendEmail(ctx, request, sc)
		}))

	// Reply email tool
	replyEmailTool := mcp.NewTool("reply_email",
		mcp.WithDescription("Reply to a Gmail message in its thread. The reply goes to the original sender with proper In-Reply-To and References headers."),
		withAccountOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to reply to"),
		),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The ID of the thread the message belongs to"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Reply body content"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false)"),
		),
	)

	s.AddTool(replyEmailTool, common.InstrumentedToolHandlerWithCategory("reply_email",
		instrumentation.CategoryMessages, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReplyEmail(ctx, request, sc)
		}))

	// Forward email tool
	forwardEmailTool := mcp.NewTool("forward_email",
		mcp.WithDescription("Forward a Gmail message to other recipients, quoting the original message"),
		withAccountOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to forward"),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("cc",
			mcp.Description("CC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC email address(es), comma-separated for multiple recipients"),
		),
		mcp.WithString("additionalBody",
			mcp.Description("Text to add above the forwarded message"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false)"),
		),
	)

	s.AddTool(forwardEmailTool, common.InstrumentedToolHandlerWithCategory("forward_email",
		instrumentation.CategoryMessages, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleForwardEmail(ctx, request, sc)
		}))

	// Modify messages tool (labels, supports batch)
	modifyMessagesTool := mcp.NewTool("modify_messages",
		mcp.WithDescription("Add or remove labels on one or more Gmail messages. Use removeLabelIds='UNREAD' to mark as read."),
		withAccountOption(),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Message ID (string) or array of message IDs to modify"),
		),
		mcp.WithString("addLabelIds",
			mcp.Description("Comma-separated list of label IDs to add"),
		),
		mcp.WithString("removeLabelIds",
			mcp.Description("Comma-separated list of label IDs to remove"),
		),
	)

	s.AddTool(modifyMessagesTool, common.InstrumentedToolHandlerWithCategory("modify_messages",
		instrumentation.CategoryMessages, instrumentation.OperationModify, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleModifyMessages(ctx, request, sc)
		}))

	// Trash messages tool
	trashMessagesTool := mcp.NewTool("trash_messages",
		mcp.WithDescription("Move one or more Gmail messages to the trash"),
		withAccountOption(),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Message ID (string) or array of message IDs to trash"),
		),
	)

	s.AddTool(trashMessagesTool, common.InstrumentedToolHandlerWithCategory("trash_messages",
		instrumentation.CategoryMessages, instrumentation.OperationTrash, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleTrashMessages(ctx, request, sc)
		}))

	// Untrash messages tool
	untrashMessagesTool := mcp.NewTool("untrash_messages",
		mcp.WithDescription("Restore one or more Gmail messages from the trash"),
		withAccountOption(),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Message ID (string) or array of message IDs to restore"),
		),
	)

	s.AddTool(untrashMessagesTool, common.InstrumentedToolHandlerWithCategory("untrash_messages",
		instrumentation.CategoryMessages, instrumentation.OperationUntrash, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUntrashMessages(ctx, request, sc)
		}))

	// Delete messages tool (permanent)
	deleteMessagesTool := mcp.NewTool("delete_messages",
		mcp.WithDescription("Permanently delete one or more Gmail messages, bypassing the trash. This cannot be undone."),
		withAccountOption(),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("Message ID (string) or array of message IDs to delete permanently"),
		),
	)

	s.AddTool(deleteMessagesTool, common.InstrumentedToolHandlerWithCategory("delete_messages",
		instrumentation.CategoryMessages, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteMessages(ctx, request, sc)
		}))

	return nil
}

func handleGetProfile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	profile, err := client.GetProfile()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get profile: %v", err)), nil
	}

	result := fmt.Sprintf("Email: %s\nTotal messages: %d\nTotal threads: %d\nHistory ID: %d",
		profile.EmailAddress, profile.MessagesTotal, profile.ThreadsTotal, profile.HistoryId)

	return mcp.NewToolResultText(result), nil
}

func handleListMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	opts := gmail.ListMessagesOptions{
		Query:            optionalString(args, "query", ""),
		MaxResults:       optionalInt(args, "maxResults", 10),
		PageToken:        optionalString(args, "pageToken", ""),
		IncludeSpamTrash: optionalBool(args, "includeSpamTrash"),
	}
	if labelIDs := optionalString(args, "labelIds", ""); labelIDs != "" {
		opts.LabelIDs = splitLabelIDs(labelIDs)
	}

	if optionalBool(args, "withDetails") {
		list, err := client.ListMessagesWithDetails(ctx, opts, "metadata")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list messages: %v", err)), nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "Found %d messages:\n", len(list.Messages))
		for i, msg := range list.Messages {
			meta := gmail.Metadata(msg)
			fmt.Fprintf(&b, "%d. ID: %s\n   From: %s\n   Subject: %s\n   Date: %s\n   Snippet: %s\n",
				i+1, msg.Id, meta.From, meta.Subject, meta.Date, msg.Snippet)
		}
		if list.NextPageToken != "" {
			fmt.Fprintf(&b, "Next page token: %s\n", list.NextPageToken)
		}
		return mcp.NewToolResultText(b.String()), nil
	}

	resp, err := client.ListMessages(opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list messages: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d messages:\n", len(resp.Messages))
	for i, msg := range resp.Messages {
		fmt.Fprintf(&b, "%d. Message ID: %s (Thread ID: %s)\n", i+1, msg.Id, msg.ThreadId)
	}
	if resp.NextPageToken != "" {
		fmt.Fprintf(&b, "Next page token: %s\n", resp.NextPageToken)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetMessage(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, errResult := requiredString(args, "messageId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	msg, err := client.GetMessage(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get message: %v", err)), nil
	}

	meta := gmail.Metadata(msg)
	body := gmail.ExtractBody(msg)

	result := fmt.Sprintf("From: %s\nTo: %s\nSubject: %s\nDate: %s\nMessage ID: %s\nThread ID: %s\nLabels: %s\n\n%s",
		meta.From, meta.To, meta.Subject, meta.Date, msg.Id, msg.ThreadId,
		strings.Join(msg.LabelIds, ", "), body)

	return mcp.NewToolResultText(result), nil
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	toStr, errResult := requiredString(args, "to")
	if errResult != nil {
		return errResult, nil
	}
	subject, errResult := requiredString(args, "subject")
	if errResult != nil {
		return errResult, nil
	}
	body, errResult := requiredString(args, "body")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	to := splitAddresses(toStr)
	cc := splitAddresses(optionalString(args, "cc", ""))
	bcc := splitAddresses(optionalString(args, "bcc", ""))

	msg := &gmail.EmailMessage{
		To:      to,
		Cc:      cc,
		Bcc:     bcc,
		Subject: subject,
		Body:    body,
		IsHTML:  optionalBool(args, "isHTML"),
	}

	messageID, err := client.SendEmail(msg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send email: %v", err)), nil
	}

	result := fmt.Sprintf("Email sent successfully!\nMessage ID: %s\nTo: %s\nSubject: %s",
		messageID, strings.Join(to, ", "), subject)
	if len(cc) > 0 {
		result += fmt.Sprintf("\nCC: %s", strings.Join(cc, ", "))
	}
	if len(bcc) > 0 {
		result += fmt.Sprintf("\nBCC: %s", strings.Join(bcc, ", "))
	}

	return mcp.NewToolResultText(result), nil
}

func handleReplyEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, errResult := requiredString(args, "messageId")
	if errResult != nil {
		return errResult, nil
	}
	threadID, errResult := requiredString(args, "threadId")
	if errResult != nil {
		return errResult, nil
	}
	body, errResult := requiredString(args, "body")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	cc := splitAddresses(optionalString(args, "cc", ""))
	bcc := splitAddresses(optionalString(args, "bcc", ""))

	replyID, err := client.ReplyToEmail(messageID, threadID, body, cc, bcc, optionalBool(args, "isHTML"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reply to email: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reply sent successfully!\nMessage ID: %s", replyID)), nil
}

func handleForwardEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, errResult := requiredString(args, "messageId")
	if errResult != nil {
		return errResult, nil
	}
	toStr, errResult := requiredString(args, "to")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	to := splitAddresses(toStr)
	cc := splitAddresses(optionalString(args, "cc", ""))
	bcc := splitAddresses(optionalString(args, "bcc", ""))
	additionalBody := optionalString(args, "additionalBody", "")

	forwardID, err := client.ForwardEmail(messageID, to, cc, bcc, additionalBody, optionalBool(args, "isHTML"))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to forward email: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Email forwarded successfully!\nMessage ID: %s\nTo: %s",
		forwardID, strings.Join(to, ", "))), nil
}

func handleModifyMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	addLabelIDs := splitLabelIDs(optionalString(args, "addLabelIds", ""))
	removeLabelIDs := splitLabelIDs(optionalString(args, "removeLabelIds", ""))
	if len(addLabelIDs) == 0 && len(removeLabelIDs) == 0 {
		return mcp.NewToolResultError("at least one of addLabelIds or removeLabelIds is required"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	// A single batch call is cheaper than per-message modifies
	if len(messageIDs) > 1 {
		if err := client.BatchModifyMessages(messageIDs, addLabelIDs, removeLabelIDs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to modify messages: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Modified %d messages", len(messageIDs))), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.ModifyMessage(messageID, addLabelIDs, removeLabelIDs); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s modified successfully", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleTrashMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.TrashMessage(messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s moved to trash", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleUntrashMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if _, err := client.UntrashMessage(messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s restored from trash", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleDeleteMessages(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if len(messageIDs) > 1 {
		if err := client.BatchDeleteMessages(messageIDs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete messages: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Permanently deleted %d messages", len(messageIDs))), nil
	}

	results := batch.ProcessBatch(messageIDs, func(messageID string) (string, error) {
		if err := client.DeleteMessage(messageID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Message %s permanently deleted", messageID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

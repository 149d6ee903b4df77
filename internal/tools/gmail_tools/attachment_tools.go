package gmail_tools

import (
	"context"
	"encoding/base64"
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

// RegisterAttachmentTools registers attachment and body extraction tools with the MCP server
func RegisterAttachmentTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// List attachments tool
	listAttachmentsTool := mcp.NewTool("list_attachments",
		mcp.WithDescription("List the attachments of a message with their IDs, filenames, MIME types, and sizes"),
		withAccountOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message to inspect"),
		),
	)

	s.AddTool(listAttachmentsTool, common.InstrumentedToolHandlerWithCategory("list_attachments",
		instrumentation.CategoryAttachments, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListAttachments(ctx, request, sc)
		}))

	// Get attachment tool
	getAttachmentTool := mcp.NewTool("get_attachment",
		mcp.WithDescription("Download the content of a message attachment. Use list_attachments to find attachment IDs."),
		withAccountOption(),
		mcp.WithString("messageId",
			mcp.Required(),
			mcp.Description("The ID of the message containing the attachment"),
		),
		mcp.WithString("attachmentId",
			mcp.Required(),
			mcp.Description("The ID of the attachment to download"),
		),
		mcp.WithString("encoding",
			mcp.Description("Output encoding: 'base64' (default, safe for binary data) or 'text' (UTF-8 text files only)"),
		),
	)

	s.AddTool(getAttachmentTool, common.InstrumentedToolHandlerWithCategory("get_attachment",
		instrumentation.CategoryAttachments, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAttachment(ctx, request, sc)
		}))

	// Get message bodies tool
	getBodiesTool := mcp.NewTool("get_message_bodies",
		mcp.WithDescription("Extract the decoded body text of one or more messages, walking nested MIME parts"),
		withAccountOption(),
		mcp.WithString("messageIds",
			mcp.Required(),
			mcp.Description("A message ID or JSON array of message IDs"),
		),
		mcp.WithString("format",
			mcp.Description("Body format to prefer: 'text' (default) or 'html'"),
		),
	)

	s.AddTool(getBodiesTool, common.InstrumentedToolHandlerWithCategory("get_message_bodies",
		instrumentation.CategoryAttachments, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMessageBodies(ctx, request, sc)
		}))

	return nil
}

func handleListAttachments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, errResult := requiredString(args, "messageId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	attachments, err := client.ListAttachments(messageID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list attachments: %v", err)), nil
	}

	if len(attachments) == 0 {
		return mcp.NewToolResultText("Message has no attachments"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d attachments:\n", len(attachments))
	for _, a := range attachments {
		fmt.Fprintf(&b, "- %s (%s, %d bytes)\n  ID: %s\n",
			gmail.SanitizeFilename(a.Filename), a.MimeType, a.Size, a.AttachmentID)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetAttachment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageID, errResult := requiredString(args, "messageId")
	if errResult != nil {
		return errResult, nil
	}
	attachmentID, errResult := requiredString(args, "attachmentId")
	if errResult != nil {
		return errResult, nil
	}

	encoding := optionalString(args, "encoding", "base64")
	if encoding != "base64" && encoding != "text" {
		return mcp.NewToolResultError("encoding must be 'base64' or 'text'"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	data, err := client.GetAttachment(messageID, attachmentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get attachment: %v", err)), nil
	}

	if encoding == "text" {
		return mcp.NewToolResultText(string(data)), nil
	}
	return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(data)), nil
}

func handleGetMessageBodies(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	messageIDs, err := batch.ParseStringOrArray(args["messageIds"], "messageIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format := optionalString(args, "format", "text")
	if format != "text" && format != "html" {
		return mcp.NewToolResultError("format must be 'text' or 'html'"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if len(messageIDs) == 1 {
		body, err := client.GetMessageBody(messageIDs[0], format)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get message body: %v", err)), nil
		}
		return mcp.NewToolResultText(body), nil
	}

	var b strings.Builder
	for _, id := range messageIDs {
		body, err := client.GetMessageBody(id, format)
		fmt.Fprintf(&b, "=== Message %s ===\n", id)
		if err != nil {
			fmt.Fprintf(&b, "Error: %v\n\n", err)
			continue
		}
		fmt.Fprintf(&b, "%s\n\n", body)
	}

	return mcp.NewToolResultText(b.String()), nil
}

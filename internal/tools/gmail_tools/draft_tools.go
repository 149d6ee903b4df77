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
	"github.com/universal-mcp/google-mail/internal/tools/common"
)

// RegisterDraftTools registers draft-related tools with the MCP server
func RegisterDraftTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List drafts tool
	listDraftsTool := mcp.NewTool("list_drafts",
		mcp.WithDescription("List Gmail drafts, optionally filtered by a search query"),
		withAccountOption(),
		mcp.WithString("query",
			mcp.Description("Gmail search query to filter drafts"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token from a previous listing to fetch the next page"),
		),
	)

	s.AddTool(listDraftsTool, common.InstrumentedToolHandlerWithCategory("list_drafts",
		instrumentation.CategoryDrafts, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDrafts(ctx, request, sc)
		}))

	// Get draft tool
	getDraftTool := mcp.NewTool("get_draft",
		mcp.WithDescription("Get a Gmail draft with its headers and body"),
		withAccountOption(),
		mcp.WithString("draftId",
			mcp.Required(),
			mcp.Description("The ID of the draft to retrieve"),
		),
	)

	s.AddTool(getDraftTool, common.InstrumentedToolHandlerWithCategory("get_draft",
		instrumentation.CategoryDrafts, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetDraft(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Create draft tool
	createDraftTool := mcp.NewTool("create_draft",
		mcp.WithDescription("Create a Gmail draft. The draft can later be updated, sent, or deleted."),
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
		mcp.WithString("threadId",
			mcp.Description("Thread ID to attach the draft to (for drafting replies)"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false for plain text)"),
		),
	)

	s.AddTool(createDraftTool, common.InstrumentedToolHandlerWithCategory("create_draft",
		instrumentation.CategoryDrafts, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDraft(ctx, request, sc)
		}))

	// Update draft tool
	updateDraftTool := mcp.NewTool("update_draft",
		mcp.WithDescription("Replace the content of an existing Gmail draft"),
		withAccountOption(),
		mcp.WithString("draftId",
			mcp.Required(),
			mcp.Description("The ID of the draft to update"),
		),
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
		mcp.WithString("threadId",
			mcp.Description("Thread ID to attach the draft to"),
		),
		mcp.WithBoolean("isHTML",
			mcp.Description("Whether the body is HTML (default: false)"),
		),
	)

	s.AddTool(updateDraftTool, common.InstrumentedToolHandlerWithCategory("update_draft",
		instrumentation.CategoryDrafts, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateDraft(ctx, request, sc)
		}))

	// Delete draft tool
	deleteDraftTool := mcp.NewTool("delete_draft",
		mcp.WithDescription("Permanently delete a Gmail draft"),
		withAccountOption(),
		mcp.WithString("draftId",
			mcp.Required(),
			mcp.Description("The ID of the draft to delete"),
		),
	)

	s.AddTool(deleteDraftTool, common.InstrumentedToolHandlerWithCategory("delete_draft",
		instrumentation.CategoryDrafts, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteDraft(ctx, request, sc)
		}))

	// Send draft tool
	sendDraftTool := mcp.NewTool("send_draft",
		mcp.WithDescription("Send an existing Gmail draft"),
		withAccountOption(),
		mcp.WithString("draftId",
			mcp.Required(),
			mcp.Description("The ID of the draft to send"),
		),
	)

	s.AddTool(sendDraftTool, common.InstrumentedToolHandlerWithCategory("send_draft",
		instrumentation.CategoryDrafts, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendDraft(ctx, request, sc)
		}))

	return nil
}

func handleListDrafts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	opts := gmail.ListDraftsOptions{
		Query:      optionalString(args, "query", ""),
		MaxResults: optionalInt(args, "maxResults", 10),
		PageToken:  optionalString(args, "pageToken", ""),
	}

	resp, err := client.ListDrafts(opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list drafts: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d drafts:\n", len(resp.Drafts))
	for i, draft := range resp.Drafts {
		fmt.Fprintf(&b, "%d. Draft ID: %s", i+1, draft.Id)
		if draft.Message != nil {
			fmt.Fprintf(&b, " (Message ID: %s)", draft.Message.Id)
		}
		b.WriteString("\n")
	}
	if resp.NextPageToken != "" {
		fmt.Fprintf(&b, "Next page token: %s\n", resp.NextPageToken)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	draftID, errResult := requiredString(args, "draftId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	draft, err := client.GetDraft(draftID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get draft: %v", err)), nil
	}

	if draft.Message == nil {
		return mcp.NewToolResultText(fmt.Sprintf("Draft ID: %s (no message content)", draft.Id)), nil
	}

	meta := gmail.Metadata(draft.Message)
	body := gmail.ExtractBody(draft.Message)

	result := fmt.Sprintf("Draft ID: %s\nTo: %s\nCc: %s\nSubject: %s\n\n%s",
		draft.Id, meta.To, meta.Cc, meta.Subject, body)

	return mcp.NewToolResultText(result), nil
}

// draftMessageFromArgs builds the EmailMessage shared by create and update
func draftMessageFromArgs(args map[string]interface{}) (*gmail.EmailMessage, *mcp.CallToolResult) {
	toStr, errResult := requiredString(args, "to")
	if errResult != nil {
		return nil, errResult
	}
	subject, errResult := requiredString(args, "subject")
	if errResult != nil {
		return nil, errResult
	}
	body, errResult := requiredString(args, "body")
	if errResult != nil {
		return nil, errResult
	}

	return &gmail.EmailMessage{
		To:      splitAddresses(toStr),
		Cc:      splitAddresses(optionalString(args, "cc", "")),
		Bcc:     splitAddresses(optionalString(args, "bcc", "")),
		Subject: subject,
		Body:    body,
		IsHTML:  optionalBool(args, "isHTML"),
	}, nil
}

func handleCreateDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	msg, errResult := draftMessageFromArgs(args)
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	draft, err := client.CreateDraft(msg, optionalString(args, "threadId", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create draft: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Draft created successfully!\nDraft ID: %s", draft.Id)), nil
}

func handleUpdateDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	draftID, errResult := requiredString(args, "draftId")
	if errResult != nil {
		return errResult, nil
	}

	msg, errResult := draftMessageFromArgs(args)
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	draft, err := client.UpdateDraft(draftID, msg, optionalString(args, "threadId", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update draft: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Draft updated successfully!\nDraft ID: %s", draft.Id)), nil
}

func handleDeleteDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	draftID, errResult := requiredString(args, "draftId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.DeleteDraft(draftID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete draft: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Draft %s deleted successfully", draftID)), nil
}

func handleSendDraft(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	draftID, errResult := requiredString(args, "draftId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	sent, err := client.SendDraft(draftID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send draft: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Draft sent successfully!\nMessage ID: %s", sent.Id)), nil
}

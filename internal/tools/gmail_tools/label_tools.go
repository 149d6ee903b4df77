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

// RegisterLabelTools registers label-related tools with the MCP server
func RegisterLabelTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List labels tool
	listLabelsTool := mcp.NewTool("list_labels",
		mcp.WithDescription("List all Gmail labels for the account, system and user-created. Use this to get label IDs for filtering and modification."),
		withAccountOption(),
	)

	s.AddTool(listLabelsTool, common.InstrumentedToolHandlerWithCategory("list_labels",
		instrumentation.CategoryLabels, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListLabels(ctx, request, sc)
		}))

	// Get label tool
	getLabelTool := mcp.NewTool("get_label",
		mcp.WithDescription("Get a Gmail label with its message and thread counts"),
		withAccountOption(),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label to retrieve"),
		),
	)

	s.AddTool(getLabelTool, common.InstrumentedToolHandlerWithCategory("get_label",
		instrumentation.CategoryLabels, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetLabel(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Create label tool
	createLabelTool := mcp.NewTool("create_label",
		mcp.WithDescription("Create a new Gmail label"),
		withAccountOption(),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The display name of the label. Use '/' for nesting (e.g., 'Work/Projects')."),
		),
		mcp.WithString("labelListVisibility",
			mcp.Description("Visibility in the label list: 'labelShow' (default), 'labelShowIfUnread', or 'labelHide'"),
		),
		mcp.WithString("messageListVisibility",
			mcp.Description("Visibility in the message list: 'show' (default) or 'hide'"),
		),
		mcp.WithString("textColor",
			mcp.Description("Text color as a hex code (e.g., '#ffffff'). Must be from Gmail's palette."),
		),
		mcp.WithString("backgroundColor",
			mcp.Description("Background color as a hex code (e.g., '#16a765'). Must be from Gmail's palette."),
		),
	)

	s.AddTool(createLabelTool, common.InstrumentedToolHandlerWithCategory("create_label",
		instrumentation.CategoryLabels, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateLabel(ctx, request, sc)
		}))

	// Update label tool
	updateLabelTool := mcp.NewTool("update_label",
		mcp.WithDescription("Update a Gmail label's name, visibility, or colors"),
		withAccountOption(),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label to update"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("The new display name of the label"),
		),
		mcp.WithString("labelListVisibility",
			mcp.Description("Visibility in the label list: 'labelShow', 'labelShowIfUnread', or 'labelHide'"),
		),
		mcp.WithString("messageListVisibility",
			mcp.Description("Visibility in the message list: 'show' or 'hide'"),
		),
		mcp.WithString("textColor",
			mcp.Description("Text color as a hex code"),
		),
		mcp.WithString("backgroundColor",
			mcp.Description("Background color as a hex code"),
		),
	)

	s.AddTool(updateLabelTool, common.InstrumentedToolHandlerWithCategory("update_label",
		instrumentation.CategoryLabels, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateLabel(ctx, request, sc)
		}))

	// Delete label tool
	deleteLabelTool := mcp.NewTool("delete_label",
		mcp.WithDescription("Delete a user-created Gmail label. The label is removed from all messages it was applied to."),
		withAccountOption(),
		mcp.WithString("labelId",
			mcp.Required(),
			mcp.Description("The ID of the label to delete"),
		),
	)

	s.AddTool(deleteLabelTool, common.InstrumentedToolHandlerWithCategory("delete_label",
		instrumentation.CategoryLabels, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteLabel(ctx, request, sc)
		}))

	return nil
}

func handleListLabels(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	labels, err := client.ListLabels()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list labels: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d labels:\n", len(labels))
	for _, label := range labels {
		fmt.Fprintf(&b, "- %s (ID: %s, type: %s)\n", label.Name, label.Id, label.Type)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelID, errResult := requiredString(args, "labelId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	label, err := client.GetLabel(labelID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get label: %v", err)), nil
	}

	result := fmt.Sprintf("Label: %s\nID: %s\nType: %s\nMessages: %d (%d unread)\nThreads: %d (%d unread)",
		label.Name, label.Id, label.Type,
		label.MessagesTotal, label.MessagesUnread,
		label.ThreadsTotal, label.ThreadsUnread)

	return mcp.NewToolResultText(result), nil
}

// labelFromArgs builds the NewLabel shared by create and update
func labelFromArgs(args map[string]interface{}) *gmail.NewLabel {
	return &gmail.NewLabel{
		Name:                  optionalString(args, "name", ""),
		LabelListVisibility:   optionalString(args, "labelListVisibility", ""),
		MessageListVisibility: optionalString(args, "messageListVisibility", ""),
		TextColor:             optionalString(args, "textColor", ""),
		BackgroundColor:       optionalString(args, "backgroundColor", ""),
	}
}

func handleCreateLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	if _, errResult := requiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	label, err := client.CreateLabel(labelFromArgs(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create label: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label created successfully!\nName: %s\nID: %s", label.Name, label.Id)), nil
}

func handleUpdateLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelID, errResult := requiredString(args, "labelId")
	if errResult != nil {
		return errResult, nil
	}
	if _, errResult := requiredString(args, "name"); errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	label, err := client.UpdateLabel(labelID, labelFromArgs(args))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update label: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label updated successfully!\nName: %s\nID: %s", label.Name, label.Id)), nil
}

func handleDeleteLabel(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	labelID, errResult := requiredString(args, "labelId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.DeleteLabel(labelID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete label: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Label %s deleted successfully", labelID)), nil
}

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

// RegisterFilterTools registers filter-related tools with the MCP server
func RegisterFilterTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List filters tool
	listFiltersTool := mcp.NewTool("list_filters",
		mcp.WithDescription("List all existing Gmail filters for the account"),
		withAccountOption(),
	)

	s.AddTool(listFiltersTool, common.InstrumentedToolHandlerWithCategory("list_filters",
		instrumentation.CategoryFilters, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListFilters(ctx, request, sc)
		}))

	// Get filter tool
	getFilterTool := mcp.NewTool("get_filter",
		mcp.WithDescription("Get a Gmail filter by its ID (obtain IDs from list_filters)"),
		withAccountOption(),
		mcp.WithString("filterId",
			mcp.Required(),
			mcp.Description("The ID of the filter to retrieve"),
		),
	)

	s.AddTool(getFilterTool, common.InstrumentedToolHandlerWithCategory("get_filter",
		instrumentation.CategoryFilters, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetFilter(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Create filter tool
	createFilterTool := mcp.NewTool("create_filter",
		mcp.WithDescription("Create a new Gmail filter to automatically organize incoming emails. Filters can match on sender, recipient, subject, or custom queries, and perform actions like labeling, archiving, or marking as read."),
		withAccountOption(),
		// Criteria fields
		mcp.WithString("from",
			mcp.Description("Filter emails from this sender (e.g., 'newsletter@example.com')"),
		),
		mcp.WithString("to",
			mcp.Description("Filter emails sent to this recipient (e.g., 'myalias@example.com')"),
		),
		mcp.WithString("subject",
			mcp.Description("Filter emails with this subject (e.g., 'Weekly Report')"),
		),
		mcp.WithString("query",
			mcp.Description("Gmail search query for advanced filtering (e.g., 'has:attachment larger:10M')"),
		),
		mcp.WithString("negatedQuery",
			mcp.Description("Filter emails that do NOT match this query"),
		),
		mcp.WithBoolean("hasAttachment",
			mcp.Description("Filter emails that have attachments"),
		),
		mcp.WithBoolean("excludeChats",
			mcp.Description("Exclude chats from the filter"),
		),
		mcp.WithNumber("size",
			mcp.Description("Message size in bytes, used with sizeComparison"),
		),
		mcp.WithString("sizeComparison",
			mcp.Description("How to compare message size: 'larger' or 'smaller'"),
		),
		// Action fields
		mcp.WithString("addLabelIds",
			mcp.Description("Comma-separated list of label IDs to add (e.g., 'Label_1,Label_2'). Use list_labels to get label IDs."),
		),
		mcp.WithString("removeLabelIds",
			mcp.Description("Comma-separated list of label IDs to remove (e.g., 'INBOX,UNREAD')"),
		),
		mcp.WithBoolean("archive",
			mcp.Description("Remove from inbox (archive)"),
		),
		mcp.WithBoolean("markAsRead",
			mcp.Description("Mark as read"),
		),
		mcp.WithBoolean("star",
			mcp.Description("Add star"),
		),
		mcp.WithBoolean("markAsSpam",
			mcp.Description("Mark as spam"),
		),
		mcp.WithBoolean("neverSpam",
			mcp.Description("Never send matching emails to spam"),
		),
		mcp.WithBoolean("markImportant",
			mcp.Description("Always mark as important"),
		),
		mcp.WithBoolean("delete",
			mcp.Description("Send to trash"),
		),
		mcp.WithString("forward",
			mcp.Description("Forward to this email address (must be a verified forwarding address)"),
		),
	)

	s.AddTool(createFilterTool, common.InstrumentedToolHandlerWithCategory("create_filter",
		instrumentation.CategoryFilters, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateFilter(ctx, request, sc)
		}))

	// Delete filter tool
	deleteFilterTool := mcp.NewTool("delete_filter",
		mcp.WithDescription("Delete a Gmail filter by its ID (obtain ID from list_filters)"),
		withAccountOption(),
		mcp.WithString("filterId",
			mcp.Required(),
			mcp.Description("The ID of the filter to delete"),
		),
	)

	s.AddTool(deleteFilterTool, common.InstrumentedToolHandlerWithCategory("delete_filter",
		instrumentation.CategoryFilters, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteFilter(ctx, request, sc)
		}))

	return nil
}

func handleCreateFilter(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	criteria := gmail.FilterCriteria{
		From:           optionalString(args, "from", ""),
		To:             optionalString(args, "to", ""),
		Subject:        optionalString(args, "subject", ""),
		Query:          optionalString(args, "query", ""),
		NegatedQuery:   optionalString(args, "negatedQuery", ""),
		HasAttachment:  optionalBool(args, "hasAttachment"),
		ExcludeChats:   optionalBool(args, "excludeChats"),
		Size:           optionalInt(args, "size", 0),
		SizeComparison: optionalString(args, "sizeComparison", ""),
	}

	if criteria.From == "" && criteria.To == "" && criteria.Subject == "" &&
		criteria.Query == "" && criteria.NegatedQuery == "" &&
		!criteria.HasAttachment && criteria.Size == 0 {
		return mcp.NewToolResultError("At least one filter criteria must be specified (from, to, subject, query, negatedQuery, hasAttachment, or size)"), nil
	}

	action := gmail.FilterAction{
		AddLabelIDs:    splitLabelIDs(optionalString(args, "addLabelIds", "")),
		RemoveLabelIDs: splitLabelIDs(optionalString(args, "removeLabelIds", "")),
		Forward:        optionalString(args, "forward", ""),
		Archive:        optionalBool(args, "archive"),
		MarkAsRead:     optionalBool(args, "markAsRead"),
		Star:           optionalBool(args, "star"),
		MarkAsSpam:     optionalBool(args, "markAsSpam"),
		NeverSpam:      optionalBool(args, "neverSpam"),
		MarkImportant:  optionalBool(args, "markImportant"),
		Delete:         optionalBool(args, "delete"),
	}

	if len(action.AddLabelIDs) == 0 && len(action.RemoveLabelIDs) == 0 && action.Forward == "" &&
		!action.Archive && !action.MarkAsRead && !action.Star && !action.MarkAsSpam &&
		!action.NeverSpam && !action.MarkImportant && !action.Delete {
		return mcp.NewToolResultError("At least one filter action must be specified"), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	filter, err := client.CreateFilter(criteria, action)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create filter: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Filter created successfully!\n%s", formatFilter(filter))), nil
}

func handleListFilters(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	client, errResult := resolveClient(ctx, sc, request.GetArguments())
	if errResult != nil {
		return errResult, nil
	}

	filters, err := client.ListFilters()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list filters: %v", err)), nil
	}

	if len(filters) == 0 {
		return mcp.NewToolResultText("No filters found"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d filters:\n\n", len(filters))
	for i, filter := range filters {
		fmt.Fprintf(&b, "%d. %s\n", i+1, formatFilter(filter))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetFilter(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filterID, errResult := requiredString(args, "filterId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	filter, err := client.GetFilter(filterID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get filter: %v", err)), nil
	}

	return mcp.NewToolResultText(formatFilter(filter)), nil
}

func handleDeleteFilter(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	filterID, errResult := requiredString(args, "filterId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	if err := client.DeleteFilter(filterID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete filter: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Filter %s deleted successfully", filterID)), nil
}

// formatFilter renders a filter's criteria and actions for tool output
func formatFilter(filter *gmail.FilterInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Filter ID: %s\n", filter.ID)

	b.WriteString("Criteria:\n")
	if filter.Criteria.From != "" {
		fmt.Fprintf(&b, "  From: %s\n", filter.Criteria.From)
	}
	if filter.Criteria.To != "" {
		fmt.Fprintf(&b, "  To: %s\n", filter.Criteria.To)
	}
	if filter.Criteria.Subject != "" {
		fmt.Fprintf(&b, "  Subject: %s\n", filter.Criteria.Subject)
	}
	if filter.Criteria.Query != "" {
		fmt.Fprintf(&b, "  Query: %s\n", filter.Criteria.Query)
	}
	if filter.Criteria.NegatedQuery != "" {
		fmt.Fprintf(&b, "  Negated query: %s\n", filter.Criteria.NegatedQuery)
	}
	if filter.Criteria.HasAttachment {
		b.WriteString("  Has attachment: true\n")
	}
	if filter.Criteria.Size > 0 {
		fmt.Fprintf(&b, "  Size: %s than %d bytes\n", filter.Criteria.SizeComparison, filter.Criteria.Size)
	}

	b.WriteString("Actions:\n")
	if len(filter.Action.AddLabelIDs) > 0 {
		fmt.Fprintf(&b, "  Add labels: %s\n", strings.Join(filter.Action.AddLabelIDs, ", "))
	}
	if len(filter.Action.RemoveLabelIDs) > 0 {
		fmt.Fprintf(&b, "  Remove labels: %s\n", strings.Join(filter.Action.RemoveLabelIDs, ", "))
	}
	if filter.Action.Forward != "" {
		fmt.Fprintf(&b, "  Forward to: %s\n", filter.Action.Forward)
	}
	if filter.Action.Archive {
		b.WriteString("  Archive (skip inbox)\n")
	}
	if filter.Action.MarkAsRead {
		b.WriteString("  Mark as read\n")
	}
	if filter.Action.Star {
		b.WriteString("  Star\n")
	}
	if filter.Action.MarkAsSpam {
		b.WriteString("  Mark as spam\n")
	}
	if filter.Action.NeverSpam {
		b.WriteString("  Never send to spam\n")
	}
	if filter.Action.MarkImportant {
		b.WriteString("  Mark as important\n")
	}
	if filter.Action.Delete {
		b.WriteString("  Delete (send to trash)\n")
	}

	return b.String()
}

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

// RegisterThreadTools registers thread-related tools with the MCP server
func RegisterThreadTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// List threads tool
	listThreadsTool := mcp.NewTool("list_threads",
		mcp.WithDescription("List Gmail threads matching a search query"),
		withAccountOption(),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query (e.g., 'in:inbox', 'from:user@example.com')"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of results to return (default: 10)"),
		),
	)

	s.AddTool(listThreadsTool, common.InstrumentedToolHandlerWithCategory("list_threads",
		instrumentation.CategoryThreads, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListThreads(ctx, request, sc)
		}))

	// Get thread tool
	getThreadTool := mcp.NewTool("get_thread",
		mcp.WithDescription("Get a Gmail thread with all of its messages"),
		withAccountOption(),
		mcp.WithString("threadId",
			mcp.Required(),
			mcp.Description("The ID of the thread to retrieve"),
		),
	)

	s.AddTool(getThreadTool, common.InstrumentedToolHandlerWithCategory("get_thread",
		instrumentation.CategoryThreads, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetThread(ctx, request, sc)
		}))

	if readOnly {
		return nil
	}

	// Modify threads tool
	modifyThreadsTool := mcp.NewTool("modify_threads",
		mcp.WithDescription("Add or remove labels on one or more Gmail threads. The change applies to every message in each thread."),
		withAccountOption(),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to modify"),
		),
		mcp.WithString("addLabelIds",
			mcp.Description("Comma-separated list of label IDs to add"),
		),
		mcp.WithString("removeLabelIds",
			mcp.Description("Comma-separated list of label IDs to remove"),
		),
	)

	s.AddTool(modifyThreadsTool, common.InstrumentedToolHandlerWithCategory("modify_threads",
		instrumentation.CategoryThreads, instrumentation.OperationModify, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleModifyThreads(ctx, request, sc)
		}))

	// Archive threads tool
	archiveThreadsTool := mcp.NewTool("archive_threads",
		mcp.WithDescription("Archive one or more Gmail threads by removing them from the inbox"),
		withAccountOption(),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to archive"),
		),
	)

	s.AddTool(archiveThreadsTool, common.InstrumentedToolHandlerWithCategory("archive_threads",
		instrumentation.CategoryThreads, instrumentation.OperationModify, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleArchiveThreads(ctx, request, sc)
		}))

	// Trash threads tool
	trashThreadsTool := mcp.NewTool("trash_threads",
		mcp.WithDescription("Move one or more Gmail threads to the trash"),
		withAccountOption(),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to trash"),
		),
	)

	s.AddTool(trashThreadsTool, common.InstrumentedToolHandlerWithCategory("trash_threads",
		instrumentation.CategoryThreads, instrumentation.OperationTrash, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleTrashThreads(ctx, request, sc)
		}))

	// Untrash threads tool
	untrashThreadsTool := mcp.NewTool("untrash_threads",
		mcp.WithDescription("Restore one or more Gmail threads from the trash"),
		withAccountOption(),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to restore"),
		),
	)

	s.AddTool(untrashThreadsTool, common.InstrumentedToolHandlerWithCategory("untrash_threads",
		instrumentation.CategoryThreads, instrumentation.OperationUntrash, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUntrashThreads(ctx, request, sc)
		}))

	// Delete threads tool (permanent)
	deleteThreadsTool := mcp.NewTool("delete_threads",
		mcp.WithDescription("Permanently delete one or more Gmail threads, bypassing the trash. This cannot be undone."),
		withAccountOption(),
		mcp.WithString("threadIds",
			mcp.Required(),
			mcp.Description("Thread ID (string) or array of thread IDs to delete permanently"),
		),
	)

	s.AddTool(deleteThreadsTool, common.InstrumentedToolHandlerWithCategory("delete_threads",
		instrumentation.CategoryThreads, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteThreads(ctx, request, sc)
		}))

	return nil
}

func handleListThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	query, errResult := requiredString(args, "query")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	threads, err := client.ListThreads(query, optionalInt(args, "maxResults", 10))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list threads: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d threads:\n", len(threads))
	for i, thread := range threads {
		fmt.Fprintf(&b, "%d. Thread ID: %s (Snippet: %s)\n", i+1, thread.Id, thread.Snippet)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleGetThread(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadID, errResult := requiredString(args, "threadId")
	if errResult != nil {
		return errResult, nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	thread, err := client.GetThread(threadID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get thread: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thread ID: %s\nMessages: %d\n\n", thread.Id, len(thread.Messages))
	for i, msg := range thread.Messages {
		meta := gmail.Metadata(msg)
		fmt.Fprintf(&b, "--- Message %d ---\nID: %s\nFrom: %s\nDate: %s\nSubject: %s\n\n%s\n\n",
			i+1, msg.Id, meta.From, meta.Date, meta.Subject, gmail.ExtractBody(msg))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func handleModifyThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
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

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		if _, err := client.ModifyThread(threadID, addLabelIDs, removeLabelIDs); err != nil {
			return "", err
		}
		return fmt.Sprintf("Thread %s modified successfully", threadID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleArchiveThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		if err := client.ArchiveThread(threadID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Thread %s archived successfully", threadID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleTrashThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		if _, err := client.TrashThread(threadID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Thread %s moved to trash", threadID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleUntrashThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		if _, err := client.UntrashThread(threadID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Thread %s restored from trash", threadID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

func handleDeleteThreads(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	threadIDs, err := batch.ParseStringOrArray(args["threadIds"], "threadIds")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, errResult := resolveClient(ctx, sc, args)
	if errResult != nil {
		return errResult, nil
	}

	results := batch.ProcessBatch(threadIDs, func(threadID string) (string, error) {
		if err := client.DeleteThread(threadID); err != nil {
			return "", err
		}
		return fmt.Sprintf("Thread %s permanently deleted", threadID), nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}

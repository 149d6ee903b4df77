package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/universal-mcp/google-mail/internal/instrumentation"
)

// ToolHandlerFunc is the handler signature mcp-go expects for tools.
type ToolHandlerFunc = mcpserver.ToolHandlerFunc

// Instrumenter exposes the instrumentation hooks a tool handler wrapper
// needs. *server.ServerContext satisfies it.
type Instrumenter interface {
	Metrics() *instrumentation.Metrics
	AuditLogger() *instrumentation.AuditLogger
}

// InstrumentedToolHandler wraps a tool handler with metrics and audit
// logging. When no instrumentation is configured on the server context
// the handler runs unwrapped.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(toolName string, sc Instrumenter, handler ToolHandlerFunc) ToolHandlerFunc {
	return instrumented(toolName, "", "", sc, handler)
}

// InstrumentedToolHandlerWithCategory is like InstrumentedToolHandler but
// also records the Gmail API category and operation, so the per-category
// operation metrics get populated alongside the tool metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithCategory("my_tool", instrumentation.CategoryMessages, instrumentation.OperationList, sc, handler))
func InstrumentedToolHandlerWithCategory(toolName, category, operation string, sc Instrumenter, handler ToolHandlerFunc) ToolHandlerFunc {
	return instrumented(toolName, category, operation, sc, handler)
}

func instrumented(toolName, category, operation string, sc Instrumenter, handler ToolHandlerFunc) ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx)
		if category != "" {
			invocation.WithOperation(category, operation)
		}

		account := GetAccountFromArgs(ctx, request.GetArguments())
		if account != "" {
			invocation.WithAccount(account)
		}

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
			} else {
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
		}

		if metrics != nil {
			metrics.RecordToolInvocationWithAccount(ctx, toolName, account, status, duration)
			if category != "" {
				metrics.RecordGmailAPIOperation(ctx, category, operation, status, duration)
			}
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}

package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"get_auth_url", "Authentication"},
		{"save_auth_code", "Authentication"},
		{"list_messages", "Messages"},
		{"send_email", "Messages"},
		{"get_profile", "Messages"},
		{"create_draft", "Drafts"},
		{"archive_threads", "Threads"},
		{"update_label", "Labels"},
		{"delete_filter", "Filters"},
		{"get_attachment", "Attachments"},
		{"get_message_bodies", "Attachments"},
		{"list_history", "History"},
		{"start_watch", "History"},
		{"get_vacation_settings", "Settings"},
		{"list_send_as", "Settings"},
		{"create_forwarding_address", "Settings"},
		{"delete_delegate", "Settings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getCategoryFromToolName(tt.name); got != tt.expected {
				t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestGenerateToolMarkdown(t *testing.T) {
	tool := mcp.Tool{
		Name:        "get_message",
		Description: "Get a message by ID",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"messageId": map[string]interface{}{
					"type":        "string",
					"description": "The ID of the message",
				},
				"account": map[string]interface{}{
					"type":        "string",
					"description": "Account name",
				},
			},
			Required: []string{"messageId"},
		},
	}

	got := generateToolMarkdown(tool)

	for _, want := range []string{
		"### get_message",
		"Get a message by ID",
		"`messageId` (required): The ID of the message",
		"`account` (optional): Account name",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generateToolMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestGenerateToolsMarkdown_TableOfContents(t *testing.T) {
	tools := []mcp.Tool{
		{Name: "list_messages"},
		{Name: "create_draft"},
		{Name: "list_labels"},
	}

	got := generateToolsMarkdown(tools)

	for _, want := range []string{
		"# MCP Tools Reference",
		"- [Drafts](#drafts)",
		"- [Labels](#labels)",
		"- [Messages](#messages)",
		"## Multi-Account Support",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generateToolsMarkdown() missing %q", want)
		}
	}
}

package gmail_tools

import (
	"strings"
	"testing"

	"github.com/universal-mcp/google-mail/internal/gmail"
)

func TestFormatFilter(t *testing.T) {
	filter := &gmail.FilterInfo{
		ID: "filter-1",
		Criteria: gmail.FilterCriteria{
			From:           "newsletter@example.com",
			Subject:        "weekly digest",
			HasAttachment:  true,
			Size:           1048576,
			SizeComparison: "larger",
		},
		Action: gmail.FilterAction{
			AddLabelIDs: []string{"Label_17"},
			Archive:     true,
			MarkAsRead:  true,
		},
	}

	got := formatFilter(filter)

	for _, want := range []string{
		"Filter ID: filter-1",
		"From: newsletter@example.com",
		"Subject: weekly digest",
		"Has attachment: true",
		"Size: larger than 1048576 bytes",
		"Add labels: Label_17",
		"Archive (skip inbox)",
		"Mark as read",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatFilter() missing %q in:\n%s", want, got)
		}
	}

	for _, unwanted := range []string{"To:", "Query:", "Forward to:", "Star", "Delete"} {
		if strings.Contains(got, unwanted) {
			t.Errorf("formatFilter() unexpectedly contains %q in:\n%s", unwanted, got)
		}
	}
}

func TestFormatFilter_Empty(t *testing.T) {
	got := formatFilter(&gmail.FilterInfo{ID: "empty"})

	if !strings.Contains(got, "Filter ID: empty") {
		t.Errorf("formatFilter() missing filter ID in:\n%s", got)
	}
	if !strings.Contains(got, "Criteria:") || !strings.Contains(got, "Actions:") {
		t.Errorf("formatFilter() missing section headers in:\n%s", got)
	}
}

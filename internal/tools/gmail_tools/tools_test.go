package gmail_tools

import (
	"reflect"
	"testing"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		wantErr bool
	}{
		{
			name: "present",
			args: map[string]interface{}{"messageId": "msg123"},
			want: "msg123",
		},
		{
			name:    "missing",
			args:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    map[string]interface{}{"messageId": ""},
			wantErr: true,
		},
		{
			name:    "wrong type",
			args:    map[string]interface{}{"messageId": 123},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errResult := requiredString(tt.args, "messageId")
			if (errResult != nil) != tt.wantErr {
				t.Fatalf("requiredString() error result = %v, wantErr %v", errResult, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("requiredString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	args := map[string]interface{}{
		"format": "html",
		"empty":  "",
		"number": 42,
	}

	if got := optionalString(args, "format", "text"); got != "html" {
		t.Errorf("optionalString(format) = %q, want html", got)
	}
	if got := optionalString(args, "empty", "text"); got != "text" {
		t.Errorf("optionalString(empty) = %q, want fallback text", got)
	}
	if got := optionalString(args, "number", "text"); got != "text" {
		t.Errorf("optionalString(number) = %q, want fallback text", got)
	}
	if got := optionalString(args, "missing", "text"); got != "text" {
		t.Errorf("optionalString(missing) = %q, want fallback text", got)
	}
}

func TestOptionalBool(t *testing.T) {
	args := map[string]interface{}{
		"isHtml": true,
		"string": "true",
	}

	if !optionalBool(args, "isHtml") {
		t.Error("optionalBool(isHtml) = false, want true")
	}
	if optionalBool(args, "string") {
		t.Error("optionalBool(string) = true, want false for non-bool value")
	}
	if optionalBool(args, "missing") {
		t.Error("optionalBool(missing) = true, want false")
	}
}

func TestOptionalInt(t *testing.T) {
	// JSON numbers always arrive as float64
	args := map[string]interface{}{
		"maxResults": float64(50),
		"string":     "50",
	}

	if got := optionalInt(args, "maxResults", 100); got != 50 {
		t.Errorf("optionalInt(maxResults) = %d, want 50", got)
	}
	if got := optionalInt(args, "string", 100); got != 100 {
		t.Errorf("optionalInt(string) = %d, want fallback 100", got)
	}
	if got := optionalInt(args, "missing", 100); got != 100 {
		t.Errorf("optionalInt(missing) = %d, want fallback 100", got)
	}
}

func TestSplitAddresses(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "single address",
			input: "a@example.com",
			want:  []string{"a@example.com"},
		},
		{
			name:  "multiple with spaces",
			input: "a@example.com, b@example.com ,c@example.com",
			want:  []string{"a@example.com", "b@example.com", "c@example.com"},
		},
		{
			name:  "trailing comma",
			input: "a@example.com,",
			want:  []string{"a@example.com"},
		},
		{
			name:  "only commas",
			input: ",,",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAddresses(tt.input)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAddresses(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitLabelIDs(t *testing.T) {
	got := splitLabelIDs("INBOX, UNREAD,Label_42")
	want := []string{"INBOX", "UNREAD", "Label_42"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitLabelIDs() = %v, want %v", got, want)
	}
}

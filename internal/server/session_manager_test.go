package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestResolveSessionID(t *testing.T) {
	m := NewSessionIDManager()
	defer m.Stop()

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer token-a")

	id1, err := m.ResolveSessionID(req)
	if err != nil {
		t.Fatalf("ResolveSessionID() error = %v", err)
	}

	// Same token yields the same session ID
	id2, err := m.ResolveSessionID(req)
	if err != nil {
		t.Fatalf("ResolveSessionID() error = %v", err)
	}
	if id1 != id2 {
		t.Errorf("session IDs differ for the same token: %q vs %q", id1, id2)
	}

	// A different token yields a different session ID
	req2 := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req2.Header.Set("Authorization", "Bearer token-b")
	id3, err := m.ResolveSessionID(req2)
	if err != nil {
		t.Fatalf("ResolveSessionID() error = %v", err)
	}
	if id1 == id3 {
		t.Error("session IDs collide for different tokens")
	}
}

func TestResolveSessionID_MissingHeader(t *testing.T) {
	m := NewSessionIDManager()
	defer m.Stop()

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	if _, err := m.ResolveSessionID(req); err != ErrNoAuthorizationHeader {
		t.Errorf("err = %v, want %v", err, ErrNoAuthorizationHeader)
	}
}

func TestAccountForSession(t *testing.T) {
	m := NewSessionIDManager()
	defer m.Stop()

	// Unknown sessions map to the default account
	if got := m.GetAccountForSession("nope"); got != "default" {
		t.Errorf("GetAccountForSession(unknown) = %q, want %q", got, "default")
	}

	m.SetAccountForSession("s1", "work")
	if got := m.GetAccountForSession("s1"); got != "work" {
		t.Errorf("GetAccountForSession(s1) = %q, want %q", got, "work")
	}

	if got := len(m.ListSessions()); got != 1 {
		t.Errorf("ListSessions() length = %d, want 1", got)
	}

	m.RemoveSession("s1")
	if got := m.GetAccountForSession("s1"); got != "default" {
		t.Errorf("GetAccountForSession after removal = %q, want %q", got, "default")
	}
}

func TestSessionTimeout(t *testing.T) {
	m := NewSessionIDManagerWithTimeout(10 * time.Millisecond)
	defer m.Stop()

	m.SetAccountForSession("s1", "work")
	time.Sleep(20 * time.Millisecond)

	// The cleanup ticker fires every 10 minutes, so expire manually
	m.mu.Lock()
	now := time.Now()
	for id, info := range m.sessions {
		if now.Sub(info.lastAccess) > m.sessionTimeout {
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	if got := m.GetAccountForSession("s1"); got != "default" {
		t.Errorf("GetAccountForSession after expiry = %q, want %q", got, "default")
	}
}

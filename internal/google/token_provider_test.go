package google

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenProvider_HasTokenForAccount(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)

	p := NewFileTokenProvider()

	if p.HasTokenForAccount("work") {
		t.Error("HasTokenForAccount() should return false before a token is stored")
	}

	tokenDir := filepath.Join(cacheDir, cacheDirName)
	if err := os.MkdirAll(tokenDir, 0700); err != nil {
		t.Fatal(err)
	}
	tokenFile := filepath.Join(tokenDir, "google-work.token")
	if err := os.WriteFile(tokenFile, []byte("access refresh"), 0600); err != nil {
		t.Fatal(err)
	}

	if !p.HasTokenForAccount("work") {
		t.Error("HasTokenForAccount() should return true once a token file exists")
	}
	if p.HasTokenForAccount("other") {
		t.Error("HasTokenForAccount() should not see another account's token")
	}
}

func TestFileTokenProvider_TokenSourceForAccount_MissingToken(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	p := NewFileTokenProvider()
	if _, err := p.TokenSourceForAccount(context.Background(), "work"); err == nil {
		t.Error("TokenSourceForAccount() should fail when no token is stored")
	}
}

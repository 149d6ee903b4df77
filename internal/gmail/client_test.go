package gmail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClientForAccount_MissingToken(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	_, err := NewClientForAccount(context.Background(), "no-such-account-for-tests")
	assert.ErrorContains(t, err, "no valid Google OAuth token")
}

func TestHasTokenForAccount_Unknown(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	assert.False(t, HasTokenForAccount("no-such-account-for-tests"))
	assert.False(t, HasToken())
}

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/pttech/storefront/internal/errors"
)

func TestSessionRoundTrip(t *testing.T) {
	c := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "pttech", "session.json"))

	_, err := store.Current(c)
	assert.ErrorIs(t, err, inErrors.ErrNoSession)

	require.NoError(t, store.Login(c, "user-1", "token-1"))

	sess, err := store.Current(c)
	require.NoError(t, err)
	assert.EqualValues(t, "user-1", sess.UserID)
	assert.EqualValues(t, "token-1", sess.AccessToken)

	require.NoError(t, store.Logout(c))

	_, err = store.Current(c)
	assert.ErrorIs(t, err, inErrors.ErrNoSession)
}

func TestLogoutWithoutSession(t *testing.T) {
	c := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	assert.NoError(t, store.Logout(c))
}

func TestLoginOverwritesPreviousSession(t *testing.T) {
	c := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Login(c, "user-1", "token-1"))
	require.NoError(t, store.Login(c, "user-2", "token-2"))

	sess, err := store.Current(c)
	require.NoError(t, err)
	assert.EqualValues(t, "user-2", sess.UserID)
	assert.EqualValues(t, "token-2", sess.AccessToken)
}

func TestIncompleteSessionFile(t *testing.T) {
	c := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"userId":"user-1"}`), 0o600))

	_, err := NewStore(path).Current(c)

	assert.ErrorIs(t, err, inErrors.ErrNoSession)
}

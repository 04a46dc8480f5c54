package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"loyalty_admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.Config{TokenFile: filepath.Join(t.TempDir(), "tokens.json")}
	return NewStore(cfg, zap.NewNop())
}

func TestNewStore_FreshFileStartsLoggedOut(t *testing.T) {
	s := newTestStore(t)

	sess := s.Current()
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.AccessToken)
	assert.Empty(t, sess.RefreshToken)
}

func TestLogIn_PersistsBothTokens(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LogIn("AT1", "RT1"))

	sess := s.Current()
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "AT1", sess.AccessToken)
	assert.Equal(t, "RT1", sess.RefreshToken)

	data, err := os.ReadFile(s.path)
	require.NoError(t, err)
	entries := map[string]string{}
	require.NoError(t, json.Unmarshal(data, &entries))
	assert.Equal(t, "AT1", entries["access_token"])
	assert.Equal(t, "RT1", entries["refresh_token"])
}

func TestLogIn_OverwritesPriorSession(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LogIn("AT1", "RT1"))
	require.NoError(t, s.LogIn("AT2", "RT2"))

	sess := s.Current()
	assert.Equal(t, "AT2", sess.AccessToken)
	assert.Equal(t, "RT2", sess.RefreshToken)
}

func TestLogOut_ClearsSessionAndRemovesEntries(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LogIn("AT1", "RT1"))
	require.NoError(t, s.LogOut())

	sess := s.Current()
	assert.False(t, sess.IsLoggedIn)
	assert.Empty(t, sess.AccessToken)
	assert.Empty(t, sess.RefreshToken)

	_, err := os.ReadFile(s.path)
	assert.True(t, os.IsNotExist(err))
}

func TestLogOut_IdempotentWhenLoggedOut(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.LogOut())
	require.NoError(t, s.LogOut())
	assert.False(t, s.IsLoggedIn())
}

func TestNewStore_RestoresPersistedSession(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{TokenFile: filepath.Join(dir, "tokens.json")}

	first := NewStore(cfg, zap.NewNop())
	require.NoError(t, first.LogIn("AT1", "RT1"))

	second := NewStore(cfg, zap.NewNop())
	sess := second.Current()
	assert.True(t, sess.IsLoggedIn)
	assert.Equal(t, "AT1", sess.AccessToken)
	assert.Equal(t, "RT1", sess.RefreshToken)
}

func TestIsLoggedIn_TracksAccessToken(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.IsLoggedIn())
	require.NoError(t, s.LogIn("AT1", "RT1"))
	assert.True(t, s.IsLoggedIn())
	require.NoError(t, s.LogOut())
	assert.False(t, s.IsLoggedIn())
}

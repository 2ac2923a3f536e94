package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fishlog/cli/internal/models"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestOpen_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := Open(dir)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAuthSlot_RoundTrip(t *testing.T) {
	s := openStore(t)
	prefs := models.DefaultPreferences()
	prefs.Theme = models.ThemeDark
	in := &models.Snapshot{
		User:        &models.User{ID: "u1", Email: "a@b.c", Name: "Ann", Avatar: "av1"},
		Preferences: &prefs,
	}

	require.NoError(t, s.SaveAuth(in))

	out, ok, err := s.LoadAuth()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestLoadAuth_AbsentSlot(t *testing.T) {
	s := openStore(t)
	snap, ok, err := s.LoadAuth()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSaveAuth_OverwritesPrevious(t *testing.T) {
	s := openStore(t)
	prefs := models.DefaultPreferences()
	require.NoError(t, s.SaveAuth(&models.Snapshot{User: &models.User{ID: "u1"}, Preferences: &prefs}))
	require.NoError(t, s.SaveAuth(&models.Snapshot{User: &models.User{ID: "u2"}, Preferences: &prefs}))

	out, ok, err := s.LoadAuth()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "u2", out.User.ID)
}

func TestClearAuth_IsIdempotent(t *testing.T) {
	s := openStore(t)
	prefs := models.DefaultPreferences()
	require.NoError(t, s.SaveAuth(&models.Snapshot{User: &models.User{ID: "u1"}, Preferences: &prefs}))

	require.NoError(t, s.ClearAuth())
	_, ok, err := s.LoadAuth()
	require.NoError(t, err)
	assert.False(t, ok)

	// clearing an already-absent slot is fine
	require.NoError(t, s.ClearAuth())
}

func TestSessionSlot_RoundTrip(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveSession("tok-123"))
	secret, ok, err := s.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-123", secret)

	require.NoError(t, s.ClearSession())
	_, ok, err = s.LoadSession()
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, s.ClearSession())
}

func TestSlots_AreIndependent(t *testing.T) {
	s := openStore(t)
	prefs := models.DefaultPreferences()
	require.NoError(t, s.SaveAuth(&models.Snapshot{User: &models.User{ID: "u1"}, Preferences: &prefs}))
	require.NoError(t, s.SaveSession("tok-123"))

	require.NoError(t, s.ClearAuth())

	secret, ok, err := s.LoadSession()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-123", secret)
}

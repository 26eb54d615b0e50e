package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobalt/screentime/internal/domain"
)

func TestLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "settings.json"))

	settings, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationMessage, settings.NotificationMessage)
	assert.Empty(t, settings.UserLockoutSchedules)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "settings.json"))

	settings := domain.DefaultSettings()
	settings.NotificationMessage = "back up now"
	settings.SetLockout(domain.LockoutWindow{Username: "alice", Enabled: true, StartHour: 22, EndHour: 7})
	require.NoError(t, store.Save(settings))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "back up now", loaded.NotificationMessage)

	w, ok := loaded.Lockout("alice")
	require.True(t, ok)
	assert.True(t, w.Enabled)
	assert.Equal(t, 22, w.StartHour)
	assert.Equal(t, 7, w.EndHour)
}

func TestSaveStampsRevision(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "settings.json"))

	settings := domain.DefaultSettings()
	require.NoError(t, store.Save(settings))
	first := settings.Revision
	require.NotEmpty(t, first)

	require.NoError(t, store.Save(settings))
	assert.NotEqual(t, first, settings.Revision)
}

func TestLoadPartialDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user_lockout_schedules":{"bob":{"enabled":false,"lock_start_hh":"21","lock_start_mm":"00","lock_end_hh":"06","lock_end_mm":"00"}}}`), 0644))

	loaded, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultNotificationMessage, loaded.NotificationMessage)

	w, ok := loaded.Lockout("bob")
	require.True(t, ok)
	assert.False(t, w.Enabled)
	assert.Equal(t, 21, w.StartHour)
	assert.Equal(t, 6, w.EndHour)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path).Load()
	require.Error(t, err)
}

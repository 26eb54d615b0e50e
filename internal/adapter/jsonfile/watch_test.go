package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cobalt/screentime/internal/domain"
)

func TestWatchReportsSettledChange(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "settings.json"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Save(domain.DefaultSettings()))

	select {
	case _, ok := <-ch:
		require.True(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "settings.json"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))

	select {
	case <-ch:
		t.Fatal("change reported for an unrelated file")
	case <-time.After(3 * debounceDelay):
	}
}

func TestWatchCancelDuringDebounce(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "settings.json"))
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := store.Watch(ctx)
	require.NoError(t, err)

	// Cancel while the change is still inside the debounce window, then wait
	// past it: a stale debounce fire must not touch the closed channel.
	require.NoError(t, store.Save(domain.DefaultSettings()))
	time.Sleep(debounceDelay / 5)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				time.Sleep(2 * debounceDelay)
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}

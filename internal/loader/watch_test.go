package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Ashfaaq98/openday-console/internal/cache"
	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherRejectsRemoteSource(t *testing.T) {
	l := New(Options{Source: "https://example.org/OpenDay.json", Logger: quietLogger()})
	_, err := NewWatcher(l, WatchOptions{})
	assert.Error(t, err)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "OpenDay.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	reloaded := make(chan *openday.Event, 4)
	l := New(Options{Source: path, Logger: quietLogger()})
	w, err := NewWatcher(l, WatchOptions{
		Debounce: 50 * time.Millisecond,
		OnReload: func(ev *openday.Event) { reloaded <- ev },
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	updated := strings.Replace(sampleDoc, `"description": "Open Day"`, `"description": "Open Day (updated)"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case ev := <-reloaded:
		assert.Equal(t, "Open Day (updated)", ev.Description)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a reload after writing the watched file")
	}

	// Drain reloads caused by the same write arriving as several events
	time.Sleep(200 * time.Millisecond)
	for len(reloaded) > 0 {
		<-reloaded
	}

	// Unrelated files in the same directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))
	select {
	case <-reloaded:
		t.Fatal("unexpected reload for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatcherReloadIgnoresCachedCopy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "OpenDay.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

	c := newMemCache()
	c.data[cache.Key(path)] = []byte(sampleDoc)
	l := New(Options{Source: path, Cache: c, Logger: quietLogger()})

	ev, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Open Day", ev.Description)

	reloaded := make(chan *openday.Event, 4)
	w, err := NewWatcher(l, WatchOptions{
		Debounce: 50 * time.Millisecond,
		OnReload: func(ev *openday.Event) { reloaded <- ev },
		Logger:   quietLogger(),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	updated := strings.Replace(sampleDoc, `"description": "Open Day"`, `"description": "Open Day (updated)"`, 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	select {
	case ev := <-reloaded:
		assert.Equal(t, "Open Day (updated)", ev.Description)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a reload after writing the watched file")
	}
}

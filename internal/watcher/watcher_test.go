package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name   string
		event  fsnotify.Event
		want   Event
		wantOK bool
	}{
		{
			name:   "create",
			event:  fsnotify.Event{Name: "modules/module1.json", Op: fsnotify.Create},
			want:   Event{Module: "module1", Op: OpCreated, Path: "modules/module1.json"},
			wantOK: true,
		},
		{
			name:   "write",
			event:  fsnotify.Event{Name: "modules/module2.json", Op: fsnotify.Write},
			want:   Event{Module: "module2", Op: OpModified, Path: "modules/module2.json"},
			wantOK: true,
		},
		{
			name:   "rename counts as removal",
			event:  fsnotify.Event{Name: "modules/events.json", Op: fsnotify.Rename},
			want:   Event{Module: "events", Op: OpRemoved, Path: "modules/events.json"},
			wantOK: true,
		},
		{
			name:  "chmod ignored",
			event: fsnotify.Event{Name: "modules/module1.json", Op: fsnotify.Chmod},
		},
		{
			name:  "non-json ignored",
			event: fsnotify.Event{Name: "modules/notes.txt", Op: fsnotify.Create},
		},
		{
			name:  "editor swap file ignored",
			event: fsnotify.Event{Name: "modules/.module1.json", Op: fsnotify.Create},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWatcher_ReportsModuleChanges(t *testing.T) {
	dir := t.TempDir()
	events := make(chan Event, 16)

	w := New(dir, func(ev Event) { events <- ev })
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Close()

	// The text file must be ignored, so the first event is the module.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module1.json"), []byte(`{}`), 0644))

	select {
	case ev := <-events:
		assert.Equal(t, "module1", ev.Module)
		assert.Equal(t, OpCreated, ev.Op)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for module event")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing"), nil)

	require.NoError(t, w.Start(context.Background()))
	assert.NoError(t, w.Close())
}

package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func (r *recorder) waitFor(t *testing.T, path string, timeout time.Duration) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, p := range r.snapshot() {
			if p == path {
				return true
			}
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

func TestMatchExtension(t *testing.T) {
	exts := []string{".txt", "md", ".PDF"}
	tests := []struct {
		path string
		want bool
	}{
		{"/k/a.txt", true},
		{"/k/a.md", true},
		{"/k/a.pdf", true},
		{"/k/a.TXT", true},
		{"/k/a.jpg", false},
		{"/k/noext", false},
	}
	for _, tt := range tests {
		if got := matchExtension(tt.path, exts); got != tt.want {
			t.Errorf("matchExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if !matchExtension("/k/anything.bin", nil) {
		t.Error("empty extension list should match everything")
	}
}

func TestWatcherIndexesNewFile(t *testing.T) {
	root := t.TempDir()
	rec := &recorder{}
	w := NewWatcher(root, []string{".txt"}, rec.record, WithDebounce(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	path := filepath.Join(root, "note.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !rec.waitFor(t, path, 3*time.Second) {
		t.Fatalf("file %s was not indexed", path)
	}
}

func TestWatcherFiltersExtensions(t *testing.T) {
	root := t.TempDir()
	rec := &recorder{}
	w := NewWatcher(root, []string{".txt"}, rec.record, WithDebounce(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	skipped := filepath.Join(root, "image.jpg")
	if err := os.WriteFile(skipped, []byte{0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	wanted := filepath.Join(root, "keep.txt")
	if err := os.WriteFile(wanted, []byte("kept"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !rec.waitFor(t, wanted, 3*time.Second) {
		t.Fatalf("file %s was not indexed", wanted)
	}
	for _, p := range rec.snapshot() {
		if p == skipped {
			t.Errorf("filtered extension was indexed: %s", p)
		}
	}
}

func TestWatcherCreatesMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "knowledge")
	w := NewWatcher(root, nil, func(string) {})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if _, err := os.Stat(root); err != nil {
		t.Errorf("root was not created: %v", err)
	}
}

func TestSyncExistingFiles(t *testing.T) {
	root := t.TempDir()
	pre := filepath.Join(root, "existing.md")
	if err := os.WriteFile(pre, []byte("# pre"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "skip.bin"), []byte{0x0}, 0o644); err != nil {
		t.Fatal(err)
	}

	rec := &recorder{}
	w := NewWatcher(root, []string{".md"}, rec.record)
	w.SyncExistingFiles()

	got := rec.snapshot()
	if len(got) != 1 || got[0] != pre {
		t.Errorf("synced %v, want only %s", got, pre)
	}
}

func TestHandleEventCombinedOp(t *testing.T) {
	root := t.TempDir()
	rec := &recorder{}
	w := NewWatcher(root, []string{".txt"}, rec.record, WithDebounce(10*time.Millisecond))

	path := filepath.Join(root, "combined.txt")
	if err := os.WriteFile(path, []byte("body"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Backends can coalesce ops into one event, e.g. Create|Write.
	w.handleEvent(fsnotify.Event{Name: path, Op: fsnotify.Create | fsnotify.Write})
	if !rec.waitFor(t, path, 3*time.Second) {
		t.Fatalf("combined-op event for %s was not indexed", path)
	}
}

func TestSyncExistingFilesLogsWalkFailure(t *testing.T) {
	core, observed := observer.New(zap.WarnLevel)
	missing := filepath.Join(t.TempDir(), "gone")
	w := NewWatcher(missing, nil, func(string) {}, WithLogger(zap.New(core)))

	w.SyncExistingFiles()

	entries := observed.FilterMessage("watcher sync failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d sync failures, want 1", len(entries))
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w := NewWatcher(t.TempDir(), nil, func(string) {})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	w.Stop()
	w.Stop()
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiskUsageBytes(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(f, []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "a"), []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := DiskUsageBytes(f, sub)
	if err != nil {
		t.Fatal(err)
	}
	if got != 8 {
		t.Errorf("file+dir: got %d bytes, want 8", got)
	}

	got, err = DiskUsageBytes("", filepath.Join(dir, "missing"), f)
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("empty and missing paths should be skipped: got %d, want 5", got)
	}
}

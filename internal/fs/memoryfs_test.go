package fs_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/keshon/mgit/internal/fs"
)

func TestMemoryFS_WriteReadFile(t *testing.T) {
	m := fs.NewMemoryFS()

	// Create dirs first
	if err := m.MkdirAll("dir/sub", 0o755); err != nil {
		t.Fatal(err)
	}

	content := []byte("hello world")
	if err := m.WriteFile("dir/sub/file.txt", content, 0o644); err != nil {
		t.Fatal(err)
	}

	read, err := m.ReadFile("dir/sub/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(read, content) {
		t.Fatalf("expected %q, got %q", content, read)
	}
}

func TestMemoryFS_WriteFileNonExistentDir(t *testing.T) {
	m := fs.NewMemoryFS()
	err := m.WriteFile("nope/file.txt", []byte("x"), 0o644)
	if err == nil {
		t.Fatal("expected error writing to non-existent dir")
	}
}

func TestMemoryFS_OpenAndClose(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)
	m.WriteFile("d/f", []byte("abc"), 0o644)

	f, err := m.Open("d/f")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	buf := make([]byte, 3)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatal(err)
	}
	if n != 3 || string(buf) != "abc" {
		t.Fatalf("unexpected read %q", buf)
	}
}

func TestMemoryFS_Remove(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)
	m.WriteFile("d/f", []byte("x"), 0o644)

	if !m.Exists("d/f") {
		t.Fatal("file should exist")
	}

	if err := m.Remove("d/f"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("d/f") {
		t.Fatal("file should be removed")
	}

	// remove non-existent
	if err := m.Remove("missing"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_RenameFileAndDir(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("dir/sub", 0o755)
	m.WriteFile("dir/f", []byte("data"), 0o644)

	// File rename
	if err := m.Rename("dir/f", "dir/f2"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("dir/f") || !m.Exists("dir/f2") {
		t.Fatal("file rename failed")
	}

	// Dir rename
	if err := m.Rename("dir/sub", "dir/sub2"); err != nil {
		t.Fatal(err)
	}
	if m.Exists("dir/sub") || !m.Exists("dir/sub2") {
		t.Fatal("dir rename failed")
	}

	// Rename non-existent
	if err := m.Rename("nope", "new"); !m.IsNotExist(err) {
		t.Fatal("expected not-exist error")
	}
}

func TestMemoryFS_StatAndReadDir(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("a/b", 0o755)
	m.WriteFile("a/b/f.txt", []byte("xy"), 0o644)

	info, err := m.Stat("a/b/f.txt")
	if err != nil || info.IsDir() {
		t.Fatal("expected file info")
	}
	if info.Size() != 2 {
		t.Fatalf("expected size 2, got %d", info.Size())
	}

	info, err = m.Stat("a/b")
	if err != nil || !info.IsDir() {
		t.Fatal("expected dir info")
	}

	entries, err := m.ReadDir("a/b")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "f.txt" {
		t.Fatalf("unexpected entries %v", entries)
	}
}

func TestMemoryFS_TempFileThenRename(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)

	wc, tmpPath, err := m.CreateTempFile("d", ".tmp-*")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := wc.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := wc.Close(); err != nil {
		t.Fatal(err)
	}

	if err := m.Rename(tmpPath, "d/final"); err != nil {
		t.Fatal(err)
	}

	data, err := m.ReadFile("d/final")
	if err != nil || string(data) != "payload" {
		t.Fatalf("unexpected final content %q (%v)", data, err)
	}
}

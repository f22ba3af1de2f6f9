package fs_test

import (
	"errors"
	"os"
	"testing"

	"github.com/keshon/mgit/internal/fs"
)

func TestHookOverrides(t *testing.T) {
	// writeFile hook
	origWF := fs.GetWriteFile()
	defer fs.SetWriteFile(origWF)

	called := false
	fs.SetWriteFile(func(path string, data []byte, perm os.FileMode) error {
		called = true
		if path != "a" || string(data) != "b" || perm != 0o644 {
			t.Fatalf("unexpected args")
		}
		return nil
	})
	if err := fs.NewOSFS().WriteFile("a", []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("WriteFile hook not called")
	}

	// rename hook
	origRn := fs.GetRename()
	defer fs.SetRename(origRn)

	called = false
	fs.SetRename(func(oldPath, newPath string) error {
		called = true
		return errors.New("rename-error")
	})
	if err := fs.NewOSFS().Rename("x", "y"); err == nil || err.Error() != "rename-error" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatal("Rename hook not called")
	}

	// createTemp hook
	origCT := fs.GetCreateTemp()
	defer fs.SetCreateTemp(origCT)

	called = false
	fs.SetCreateTemp(func(dir, pattern string) (*os.File, error) {
		called = true
		return nil, errors.New("temp-error")
	})
	if _, _, err := fs.NewOSFS().CreateTempFile("d", "p-*"); err == nil {
		t.Fatal("expected error from temp hook")
	}
	if !called {
		t.Fatal("CreateTemp hook not called")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/fs"
)

func TestRepoConfig_SaveLoad(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll(".mgit", 0o755)

	cfg := config.NewRepoConfig(".mgit")
	cfg.HashFormat = "blake3"
	if err := cfg.Save(m); err != nil {
		t.Fatal(err)
	}

	reloaded := config.NewRepoConfig(".mgit")
	reloaded.Load(m)
	if reloaded.HashFormat != "blake3" {
		t.Fatalf("expected blake3, got %q", reloaded.HashFormat)
	}
}

func TestRepoConfig_LoadMissingFallsBack(t *testing.T) {
	m := fs.NewMemoryFS()

	cfg := config.NewRepoConfig(".mgit")
	cfg.HashFormat = "something-else"
	cfg.Load(m)
	if cfg.HashFormat != config.DefaultHash {
		t.Fatalf("expected default hash, got %q", cfg.HashFormat)
	}
}

func TestResolveRepoRoot_Pointer(t *testing.T) {
	work := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })

	if got := config.ResolveRepoRoot(); got != config.RepoDir {
		t.Fatalf("expected default root, got %q", got)
	}

	target := filepath.Join(work, "elsewhere", ".mgit")
	if err := os.WriteFile(config.PointerFile, []byte(target), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := config.ResolveRepoRoot(); got != target {
		t.Fatalf("expected %q, got %q", target, got)
	}
}

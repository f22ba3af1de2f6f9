package repo

import (
	"fmt"
	"os"

	"github.com/keshon/mgit/internal/commit"
	"github.com/keshon/mgit/internal/config"
	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/hash"
	"github.com/keshon/mgit/internal/index"
	"github.com/keshon/mgit/internal/object"
)

// Repository is an explicit handle over one repository root. All
// operations go through a handle, so multiple repositories can coexist
// in one process and tests run against isolated temporary roots.
type Repository struct {
	Config  *config.RepoConfig
	FS      fs.FS
	Objects *object.Store
	Index   *index.Index
	Commits *commit.Builder
}

func wire(cfg *config.RepoConfig, fsys fs.FS) (*Repository, error) {
	h, err := hash.New(cfg.HashFormat)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", cfg.Root, err)
	}

	st := object.NewStore(cfg.ObjectsPath(), fsys, h)
	ix := index.NewIndex(cfg.IndexPath(), fsys)

	return &Repository{
		Config:  cfg,
		FS:      fsys,
		Objects: st,
		Index:   ix,
		Commits: commit.NewBuilder(st, ix),
	}, nil
}

// InitAt initializes a repository at the provided root.
// Returns (*Repository, created, error); an already-initialized root
// is reported via os.ErrExist with the opened repository.
func InitAt(root, algo string) (*Repository, bool, error) {
	return InitAtFS(root, algo, fs.NewOSFS())
}

// InitAtFS is InitAt over an explicit filesystem.
func InitAtFS(root, algo string, fsys fs.FS) (*Repository, bool, error) {
	if algo == "" {
		algo = config.DefaultHash
	}

	cfg := config.NewRepoConfig(root)

	// Detect existing repo
	if fi, err := fsys.Stat(cfg.ConfigPath()); err == nil && !fi.IsDir() {
		r, err := OpenAtFS(cfg.Root, fsys)
		if err != nil {
			return nil, false, err
		}
		return r, false, os.ErrExist
	}

	for _, d := range []string{cfg.Root, cfg.ObjectsPath()} {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return nil, false, fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}

	cfg.HashFormat = algo
	if err := cfg.Save(fsys); err != nil {
		return nil, false, fmt.Errorf("failed to save config: %w", err)
	}

	r, err := wire(cfg, fsys)
	if err != nil {
		return nil, false, err
	}

	// Start with an explicitly empty staging index.
	if err := r.Index.Save(map[string]string{}); err != nil {
		return nil, false, fmt.Errorf("failed to write empty index: %w", err)
	}

	return r, true, nil
}

// OpenAt opens an existing repository.
func OpenAt(root string) (*Repository, error) {
	return OpenAtFS(root, fs.NewOSFS())
}

// OpenAtFS is OpenAt over an explicit filesystem.
func OpenAtFS(root string, fsys fs.FS) (*Repository, error) {
	cfg := config.NewRepoConfig(root)

	if fi, err := fsys.Stat(cfg.ConfigPath()); err != nil || fi.IsDir() {
		return nil, fmt.Errorf("not a repository (missing %q)", cfg.ConfigPath())
	}
	cfg.Load(fsys)

	return wire(cfg, fsys)
}

// Commit snapshots the current staging state with message and returns
// the commit digest. The staging index is left unchanged.
func (r *Repository) Commit(message string) (string, error) {
	return r.Commits.Build(message)
}

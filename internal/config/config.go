package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/keshon/mgit/internal/fs"
)

const IsDev = false

const (
	RepoDir    = ".mgit"
	ObjectsDir = "objects"
	IndexFile  = "index.json"
	ConfigFile = "config.json"

	PointerFile = ".mgit-pointer"
)

const (
	DefaultHash = "xxh3" // "xxh3" | "blake3"
)

// RepoConfig carries the repository root and derived paths.
// Every operation receives an explicit config instead of relying on a
// process-global repository location, so multiple repositories can
// coexist in one process and tests run against isolated roots.
type RepoConfig struct {
	Root       string
	HashFormat string
}

// NewRepoConfig constructs a RepoConfig rooted at the given directory,
// or the resolved default root when empty.
func NewRepoConfig(root string) *RepoConfig {
	if root == "" {
		root = ResolveRepoRoot()
	}
	return &RepoConfig{Root: root, HashFormat: DefaultHash}
}

func (c *RepoConfig) ObjectsPath() string {
	return filepath.Join(c.Root, ObjectsDir)
}

func (c *RepoConfig) IndexPath() string {
	return filepath.Join(c.Root, IndexFile)
}

func (c *RepoConfig) ConfigPath() string {
	return filepath.Join(c.Root, ConfigFile)
}

// Save persists the repository settings (currently the hash algorithm).
func (c *RepoConfig) Save(fsys fs.FS) error {
	data, err := json.MarshalIndent(struct {
		Hash string `json:"hash"`
	}{Hash: c.HashFormat}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := fsys.WriteFile(c.ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("write config %q: %w", c.ConfigPath(), err)
	}
	return nil
}

// Load reads the persisted settings. A missing or unreadable config file
// falls back to the default hash, matching repositories created before
// the setting existed.
func (c *RepoConfig) Load(fsys fs.FS) {
	data, err := fsys.ReadFile(c.ConfigPath())
	if err != nil {
		c.HashFormat = DefaultHash
		return
	}
	var cfg struct {
		Hash string `json:"hash"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil || cfg.Hash == "" {
		c.HashFormat = DefaultHash
		return
	}
	c.HashFormat = cfg.Hash
}

package index

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/util"
)

// ErrCorrupt is returned when the persisted index exists but cannot be
// decoded. It is deliberately distinct from "no index yet": treating a
// corrupt index as empty would silently discard staged work.
var ErrCorrupt = errors.New("index corrupt")

// Index is the staging area: a persisted mapping from tracked path to
// object digest. Staging a path that is already tracked replaces its
// digest (last write wins).
type Index struct {
	Path string // path to the index file
	FS   fs.FS
}

// NewIndex creates an Index persisted at the given file path.
func NewIndex(path string, fsys fs.FS) *Index {
	return &Index{Path: path, FS: fsys}
}

// Load returns the full staging mapping. A missing index file yields an
// empty mapping, not an error; a malformed one yields ErrCorrupt.
func (ix *Index) Load() (map[string]string, error) {
	data, err := ix.FS.ReadFile(ix.Path)
	if err != nil {
		if ix.FS.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read index %q: %w", ix.Path, err)
	}

	entries := map[string]string{}
	if len(data) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode index %q: %w: %v", ix.Path, ErrCorrupt, err)
	}
	return entries, nil
}

// Save persists the full mapping, atomically replacing any prior state.
func (ix *Index) Save(entries map[string]string) error {
	if entries == nil {
		entries = map[string]string{}
	}
	if err := util.WriteJSON(ix.FS, ix.Path, entries); err != nil {
		return fmt.Errorf("write index %q: %w", ix.Path, err)
	}
	return nil
}

// Stage inserts or replaces the entry for path.
func (ix *Index) Stage(path, digest string) error {
	entries, err := ix.Load()
	if err != nil {
		return err
	}
	entries[path] = digest
	return ix.Save(entries)
}

// Clear resets the staging area to empty. Commit never calls this:
// staged state persists across commits unless explicitly re-staged.
func (ix *Index) Clear() error {
	return ix.Save(map[string]string{})
}

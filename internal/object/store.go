package object

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/hash"
)

// ErrNotFound is returned by Get when no object exists for a digest.
var ErrNotFound = errors.New("object not found")

// Store is a content-addressable object store. Every byte blob is
// persisted exactly once under its hex digest; writing the same content
// again is a silent no-op.
type Store struct {
	Dir    string // path to the objects directory
	FS     fs.FS
	Hasher hash.Hasher
}

// NewStore creates a Store over the given objects directory.
func NewStore(dir string, fsys fs.FS, h hash.Hasher) *Store {
	return &Store{Dir: dir, FS: fsys, Hasher: h}
}

func (s *Store) objectPath(digest string) string {
	return filepath.Join(s.Dir, digest+".bin")
}

// Put stores data under its digest and returns the digest.
// If an object with that digest already exists the write is skipped:
// content addressing guarantees the stored bytes are identical.
func (s *Store) Put(data []byte) (string, error) {
	digest := s.Hasher.Sum(data)
	dst := s.objectPath(digest)

	if fi, err := s.FS.Stat(dst); err == nil && !fi.IsDir() {
		return digest, nil
	}

	if err := s.writeAtomic(dst, data); err != nil {
		return "", fmt.Errorf("store object %q: %w", digest, err)
	}
	return digest, nil
}

// writeAtomic writes data via a temp file and rename, so a concurrent
// Put of the same digest or a crash mid-write never leaves a torn
// object. Both racing writers rename identical bytes onto the same name.
func (s *Store) writeAtomic(dst string, data []byte) error {
	tmp, tmpPath, err := s.FS.CreateTempFile(filepath.Dir(dst), ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer s.FS.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := s.FS.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("rename temp %q to %q: %w", tmpPath, dst, err)
	}
	return nil
}

// Get retrieves the bytes stored under digest.
func (s *Store) Get(digest string) ([]byte, error) {
	data, err := s.FS.ReadFile(s.objectPath(digest))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, fmt.Errorf("get object %q: %w", digest, ErrNotFound)
		}
		return nil, fmt.Errorf("read object %q: %w", digest, err)
	}
	return data, nil
}

// Has reports whether an object exists for digest.
func (s *Store) Has(digest string) bool {
	fi, err := s.FS.Stat(s.objectPath(digest))
	return err == nil && !fi.IsDir()
}

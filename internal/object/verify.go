package object

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Status indicates the state of a stored object on disk.
type Status int

const (
	OK Status = iota
	Missing
	Damaged
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	case Damaged:
		return "damaged"
	default:
		return "unknown"
	}
}

// Verify checks a single object by recomputing its digest.
// A mismatch means the stored bytes were silently corrupted.
func (s *Store) Verify(digest string) (Status, error) {
	data, err := s.FS.ReadFile(s.objectPath(digest))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return Missing, nil
		}
		return Damaged, fmt.Errorf("read object %q: %w", digest, err)
	}

	if s.Hasher.Sum(data) == digest {
		return OK, nil
	}
	return Damaged, nil
}

// List returns the digests of all stored objects.
func (s *Store) List() ([]string, error) {
	entries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("list objects in %q: %w", s.Dir, err)
	}

	var digests []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".bin") {
			continue
		}
		digests = append(digests, strings.TrimSuffix(name, ".bin"))
	}
	return digests, nil
}

// CleanupTemp removes orphaned temp files left behind by interrupted writes.
func (s *Store) CleanupTemp() error {
	entries, err := s.FS.ReadDir(s.Dir)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "tmp-") || strings.HasPrefix(name, ".tmp-") {
			_ = s.FS.Remove(filepath.Join(s.Dir, name))
		}
	}
	return nil
}

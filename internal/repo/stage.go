package repo

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"golang.org/x/exp/mmap"

	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/progress"
	"github.com/keshon/mgit/internal/util"
)

// mmapThreshold is the file size above which staging reads the working
// file through a memory map instead of a plain read.
const mmapThreshold = 8 * 1024 * 1024 // 8 MiB

// Stage reads the working file at path, stores its contents as a blob
// object, and records path → digest in the staging index. Staging the
// same path again replaces the previous entry.
func (r *Repository) Stage(path string) (string, error) {
	data, err := r.readWorkingFile(path)
	if err != nil {
		return "", fmt.Errorf("stage %q: %w", path, err)
	}

	digest, err := r.Objects.Put(data)
	if err != nil {
		return "", fmt.Errorf("stage %q: %w", path, err)
	}

	rel := filepath.ToSlash(filepath.Clean(path))
	if err := r.Index.Stage(rel, digest); err != nil {
		return "", fmt.Errorf("stage %q: %w", path, err)
	}
	return digest, nil
}

// StageAll stages many paths, hashing and storing blobs concurrently
// and writing the index once at the end.
func (r *Repository) StageAll(paths []string) (int, error) {
	if len(paths) == 0 {
		return 0, nil
	}

	bar := progress.NewProgress(len(paths), "Staging files ")
	defer bar.Finish()

	var mu sync.Mutex
	staged := make(map[string]string, len(paths))

	err := util.Parallel(paths, util.WorkerCount(), func(p string) error {
		data, err := r.readWorkingFile(p)
		if err != nil {
			return fmt.Errorf("stage %q: %w", p, err)
		}
		digest, err := r.Objects.Put(data)
		if err != nil {
			return fmt.Errorf("stage %q: %w", p, err)
		}

		mu.Lock()
		staged[filepath.ToSlash(filepath.Clean(p))] = digest
		mu.Unlock()
		bar.Increment()
		return nil
	})
	if err != nil {
		return 0, err
	}

	entries, err := r.Index.Load()
	if err != nil {
		return 0, err
	}
	for p, d := range staged {
		entries[p] = d
	}
	if err := r.Index.Save(entries); err != nil {
		return 0, err
	}
	return len(staged), nil
}

// readWorkingFile returns the bytes of a working-tree file. Large files
// on the real filesystem are read via mmap.
func (r *Repository) readWorkingFile(path string) ([]byte, error) {
	fi, err := r.FS.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	if _, onDisk := r.FS.(*fs.OSFS); onDisk && fi.Size() >= mmapThreshold {
		if data, err := readMmap(path, fi.Size()); err == nil {
			return data, nil
		}
		// fall back to a plain read when mmap is unavailable
	}

	return r.FS.ReadFile(path)
}

func readMmap(path string, size int64) ([]byte, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data := make([]byte, size)
	n, err := reader.ReadAt(data, 0)
	if err != nil && !(err == io.EOF && int64(n) == size) {
		return nil, err
	}
	return data[:n], nil
}

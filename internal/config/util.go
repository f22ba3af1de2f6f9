package config

import (
	"os"
	"path/filepath"
)

// ResolveRepoRoot determines the actual repository root.
// It respects the .mgit-pointer file, if it exists.
func ResolveRepoRoot() string {
	root := RepoDir

	if fi, err := os.Stat(PointerFile); err == nil && !fi.IsDir() {
		if data, err := os.ReadFile(PointerFile); err == nil {
			target := filepath.Clean(string(data))
			if filepath.IsAbs(target) {
				root = target
			} else {
				root = filepath.Join(".", target)
			}
		}
	}

	return root
}

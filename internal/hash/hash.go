package hash

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Supported digest algorithm names.
const (
	XXH3   = "xxh3"
	Blake3 = "blake3"
)

// Hasher computes a stable hex-encoded digest of a byte sequence.
// Identical input always produces an identical digest; the digest is
// used as the storage key and identity of objects.
type Hasher interface {
	Name() string
	Sum(data []byte) string
}

// New returns the Hasher for the given algorithm name.
func New(algo string) (Hasher, error) {
	switch algo {
	case XXH3:
		return xxh3Hasher{}, nil
	case Blake3:
		return blake3Hasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %q", algo)
	}
}

type xxh3Hasher struct{}

func (xxh3Hasher) Name() string { return XXH3 }

func (xxh3Hasher) Sum(data []byte) string {
	h := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(h[:])
}

type blake3Hasher struct{}

func (blake3Hasher) Name() string { return Blake3 }

func (blake3Hasher) Sum(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

package commit

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/keshon/mgit/internal/index"
	"github.com/keshon/mgit/internal/object"
)

// ErrNothingToCommit is returned when a commit is attempted on an empty
// staging area and empty commits are not allowed.
var ErrNothingToCommit = errors.New("nothing to commit")

// Commit is an immutable snapshot of the staging mapping plus a message,
// identified by the digest of its serialized form. The payload carries no
// timestamp: identical staged state and message always produce the same
// digest, and re-committing is a store no-op.
type Commit struct {
	Parent  string            `json:"parent,omitempty"` // reserved for history chaining
	Message string            `json:"message"`
	Files   map[string]string `json:"files"`
}

// Encode serializes a commit to its canonical byte form. encoding/json
// emits map keys in sorted order, so the same staged state serializes
// identically regardless of insertion order.
func Encode(c *Commit) ([]byte, error) {
	if c.Files == nil {
		c.Files = map[string]string{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode commit: %w", err)
	}
	return data, nil
}

// Decode parses the canonical byte form back into a Commit.
func Decode(data []byte) (*Commit, error) {
	var c Commit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode commit: %w", err)
	}
	return &c, nil
}

// Builder constructs commits from the current staging state. It owns no
// persistent state of its own: reads go through the Index, writes
// through the Store.
type Builder struct {
	Store *object.Store
	Index *index.Index

	// AllowEmpty permits committing an empty staging area. Off by
	// default: an empty commit is almost always a mistake.
	AllowEmpty bool
}

// NewBuilder creates a Builder over the given store and index.
func NewBuilder(st *object.Store, ix *index.Index) *Builder {
	return &Builder{Store: st, Index: ix}
}

// Build snapshots the current staging mapping together with message,
// stores the serialized commit, and returns its digest. The staging
// area is left unchanged. Nothing is written before validation, so a
// failed Build has no side effects.
func (b *Builder) Build(message string) (string, error) {
	files, err := b.Index.Load()
	if err != nil {
		return "", fmt.Errorf("load staging index: %w", err)
	}
	if len(files) == 0 && !b.AllowEmpty {
		return "", ErrNothingToCommit
	}

	data, err := Encode(&Commit{Message: message, Files: files})
	if err != nil {
		return "", err
	}

	digest, err := b.Store.Put(data)
	if err != nil {
		return "", fmt.Errorf("store commit: %w", err)
	}
	return digest, nil
}

// Read fetches and decodes a commit object by digest.
func (b *Builder) Read(digest string) (*Commit, error) {
	data, err := b.Store.Get(digest)
	if err != nil {
		return nil, err
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("commit %q: %w", digest, err)
	}
	return c, nil
}

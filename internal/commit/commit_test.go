package commit_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/keshon/mgit/internal/commit"
	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/hash"
	"github.com/keshon/mgit/internal/index"
	"github.com/keshon/mgit/internal/object"
)

func newTestBuilder(t *testing.T) *commit.Builder {
	t.Helper()
	m := fs.NewMemoryFS()
	if err := m.MkdirAll("repo/objects", 0o755); err != nil {
		t.Fatal(err)
	}
	h, err := hash.New(hash.XXH3)
	if err != nil {
		t.Fatal(err)
	}
	st := object.NewStore("repo/objects", m, h)
	ix := index.NewIndex("repo/index.json", m)
	return commit.NewBuilder(st, ix)
}

func TestBuild_EmptyIndexFails(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Build("message")
	if !errors.Is(err, commit.ErrNothingToCommit) {
		t.Fatalf("expected ErrNothingToCommit, got %v", err)
	}

	// a failed build writes nothing
	digests, err := b.Store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(digests) != 0 {
		t.Fatalf("failed commit left %d object(s) behind", len(digests))
	}
}

func TestBuild_AllowEmpty(t *testing.T) {
	b := newTestBuilder(t)
	b.AllowEmpty = true

	digest, err := b.Build("empty but allowed")
	if err != nil {
		t.Fatal(err)
	}

	c, err := b.Read(digest)
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Files) != 0 || c.Message != "empty but allowed" {
		t.Fatalf("unexpected commit %+v", c)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	b := newTestBuilder(t)

	if err := b.Index.Save(map[string]string{"a.txt": "d1", "b.txt": "d2"}); err != nil {
		t.Fatal(err)
	}

	c1, err := b.Build("same message")
	if err != nil {
		t.Fatal(err)
	}
	c2, err := b.Build("same message")
	if err != nil {
		t.Fatal(err)
	}
	if c1 != c2 {
		t.Fatalf("identical state and message produced %q and %q", c1, c2)
	}

	// the re-commit was a store no-op: one commit object only
	digests, _ := b.Store.List()
	if len(digests) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(digests))
	}
}

func TestBuild_DigestSensitivity(t *testing.T) {
	b := newTestBuilder(t)

	if err := b.Index.Save(map[string]string{"a.txt": "d1"}); err != nil {
		t.Fatal(err)
	}
	base, err := b.Build("m1")
	if err != nil {
		t.Fatal(err)
	}

	// changing the message changes the digest
	other, err := b.Build("m2")
	if err != nil {
		t.Fatal(err)
	}
	if other == base {
		t.Fatal("different message produced identical digest")
	}

	// changing a staged digest changes the commit digest
	if err := b.Index.Save(map[string]string{"a.txt": "d1-changed"}); err != nil {
		t.Fatal(err)
	}
	changed, err := b.Build("m1")
	if err != nil {
		t.Fatal(err)
	}
	if changed == base {
		t.Fatal("different staged state produced identical digest")
	}
}

func TestBuild_LeavesIndexUnchanged(t *testing.T) {
	b := newTestBuilder(t)

	staged := map[string]string{"a.txt": "d1"}
	if err := b.Index.Save(staged); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build("snapshot"); err != nil {
		t.Fatal(err)
	}

	after, err := b.Index.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(after, staged) {
		t.Fatalf("commit mutated the index: %v", after)
	}
}

func TestBuildAndRead(t *testing.T) {
	b := newTestBuilder(t)

	staged := map[string]string{"x": "dx", "y": "dy"}
	if err := b.Index.Save(staged); err != nil {
		t.Fatal(err)
	}
	digest, err := b.Build("round trip")
	if err != nil {
		t.Fatal(err)
	}

	c, err := b.Read(digest)
	if err != nil {
		t.Fatal(err)
	}
	if c.Message != "round trip" || !reflect.DeepEqual(c.Files, staged) {
		t.Fatalf("unexpected commit %+v", c)
	}
	if c.Parent != "" {
		t.Fatalf("expected empty parent, got %q", c.Parent)
	}
}

func TestBuild_CorruptIndexSurfaces(t *testing.T) {
	b := newTestBuilder(t)

	if err := b.Index.FS.WriteFile(b.Index.Path, []byte("][not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := b.Build("doomed")
	if !errors.Is(err, index.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestRead_NotFound(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.Read("cafebabe")
	if !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

package util_test

import (
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/keshon/mgit/internal/fs"
	"github.com/keshon/mgit/internal/util"
)

func TestWriteReadJSON(t *testing.T) {
	m := fs.NewMemoryFS()
	m.MkdirAll("d", 0o755)

	want := map[string]string{"k": "v"}
	if err := util.WriteJSON(m, "d/f.json", want); err != nil {
		t.Fatal(err)
	}

	got := map[string]string{}
	if err := util.ReadJSON(m, "d/f.json", &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch: %v", got)
	}

	// no temp files left behind
	entries, _ := m.ReadDir("d")
	if len(entries) != 1 {
		t.Fatalf("expected only the target file, got %d entries", len(entries))
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"c": 3, "a": 1, "b": 2}
	got := util.SortedKeys(m)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParallel(t *testing.T) {
	var count int64
	inputs := make([]int, 100)
	err := util.Parallel(inputs, 8, func(int) error {
		atomic.AddInt64(&count, 1)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 100 {
		t.Fatalf("expected 100 calls, got %d", count)
	}
}

func TestParallel_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := util.Parallel([]int{1, 2, 3}, 2, func(n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

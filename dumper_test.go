package octree

import (
	"strings"
	"testing"
)

func TestStringEmptyTree(t *testing.T) {
	t.Parallel()
	tree := New[int]()
	if got := tree.String(); got != "[EMPTY]\n" {
		t.Fatalf("String() = %q, want %q", got, "[EMPTY]\n")
	}
}

func TestStringContainsLeafValue(t *testing.T) {
	t.Parallel()
	tree := New[int]()
	if err := tree.Set(mustChild(t, NewRoot(), BLF), 42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	tree.Sort()

	got := tree.String()
	if got == "" {
		t.Fatalf("String() returned empty output for a non-empty tree")
	}
	if !containsAll(got, "[BRANCH]", "[LEAF]", "value: 42") {
		t.Fatalf("String() = %q, missing expected markers", got)
	}
}

func TestStringMarksDirtySubtree(t *testing.T) {
	t.Parallel()
	tree := New[int]()
	if err := tree.Set(mustChild(t, NewRoot(), BLF), 1); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got := tree.String()
	if !containsAll(got, "[DIRTY]") {
		t.Fatalf("String() before Sort should mark dirty nodes, got %q", got)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

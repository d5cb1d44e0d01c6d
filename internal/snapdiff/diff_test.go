// File: internal/snapdiff/diff_test.go
// Brief: Ordered set difference between event snapshots.

package snapdiff

import (
	"reflect"
	"testing"
)

func TestDiffIdenticalSnapshotsIsEmpty(t *testing.T) {
	snap := []string{"a", "b", "c"}
	if got := Diff(snap, snap); len(got) != 0 {
		t.Fatalf("expected empty diff for identical snapshots, got %v", got)
	}
}

func TestDiffEmptyPreviousYieldsCurrent(t *testing.T) {
	curr := []string{"a", "b", "c"}
	if got := Diff(nil, curr); !reflect.DeepEqual(got, curr) {
		t.Fatalf("expected %v, got %v", curr, got)
	}
}

func TestDiffPreservesCurrentOrder(t *testing.T) {
	prev := []string{"b"}
	curr := []string{"c", "b", "a"}
	want := []string{"c", "a"}
	if got := Diff(prev, curr); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDiffSuppressesDuplicates(t *testing.T) {
	prev := []string{"a"}
	curr := []string{"a", "b", "b", "a"}
	want := []string{"b"}
	if got := Diff(prev, curr); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected duplicate-suppressed %v, got %v", want, got)
	}
}

func TestDiffToleratesReorderedHistory(t *testing.T) {
	// The remote service may return already-seen events in a different
	// order between polls; none of them should be re-emitted.
	prev := []string{"a", "b", "c"}
	curr := []string{"c", "a", "b", "d"}
	want := []string{"d"}
	if got := Diff(prev, curr); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDiffEmptyCurrent(t *testing.T) {
	if got := Diff([]string{"a"}, nil); got != nil {
		t.Fatalf("expected nil diff for empty current, got %v", got)
	}
}

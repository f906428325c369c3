// File: extent/extent_test.go
package extent_test

import (
	"testing"

	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
)

func TestNewCollapsesInverted(t *testing.T) {
	e := extent.New(index.New(2, 2, 2), index.New(1, 1, 1))
	if !e.IsEmpty() {
		t.Fatalf("expected empty extent, got %+v", e)
	}
}

func TestIterateRowMajorOrder(t *testing.T) {
	e := extent.New(index.New(0, 0, 0), index.New(2, 2, 1))
	got := e.Collect()
	want := []index.Index{
		index.New(0, 0, 0), index.New(1, 0, 0),
		index.New(0, 1, 0), index.New(1, 1, 0),
	}
	if len(got) != len(want) {
		t.Fatalf("len: got %d want %d", len(got), len(want))
	}
	for idx := range want {
		if got[idx] != want[idx] {
			t.Fatalf("at %d: got %+v want %+v", idx, got[idx], want[idx])
		}
	}
}

// TestIntersectMatchesSetIntersection covers spec.md §8 property #5.
func TestIntersectMatchesSetIntersection(t *testing.T) {
	a := extent.New(index.New(0, 0, 0), index.New(4, 4, 4))
	b := extent.New(index.New(2, 2, 2), index.New(6, 6, 6))

	inter := a.Intersect(b)

	setA := map[index.Index]bool{}
	for _, i := range a.Collect() {
		setA[i] = true
	}
	setB := map[index.Index]bool{}
	for _, i := range b.Collect() {
		setB[i] = true
	}

	for _, i := range inter.Collect() {
		if !setA[i] || !setB[i] {
			t.Fatalf("index %+v in intersection but not in both operands", i)
		}
	}
	wantCount := 0
	for i := range setA {
		if setB[i] {
			wantCount++
		}
	}
	if inter.Count() != wantCount {
		t.Fatalf("Count: got %d want %d", inter.Count(), wantCount)
	}
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	a := extent.New(index.New(0, 0, 0), index.New(1, 1, 1))
	b := extent.New(index.New(5, 5, 5), index.New(6, 6, 6))
	if !a.Intersect(b).IsEmpty() {
		t.Fatal("disjoint extents must intersect to empty")
	}
}

// TestStampsExtent mirrors wfc_3d/src/extent.rs's own "edge" test: an 8-cube
// worth of 2x2x2 stamp offsets inside a 4x4x4 extent should be 3x3x3.
func TestStampsExtent(t *testing.T) {
	e := extent.FromShape(index.New(0, 0, 0), shape.MustNew(4, 4, 4))
	st := e.StampsExtent(shape.MustNew(2, 2, 2))
	if got, want := st.Count(), 3*3*3; got != want {
		t.Fatalf("StampsExtent count: got %d want %d", got, want)
	}
}

// TestStampsContaining mirrors wfc_3d/src/extent.rs's own "containing"
// test.
func TestStampsContaining(t *testing.T) {
	e := extent.New(index.New(0, 0, 0), index.New(5, 5, 5))
	target := index.New(2, 2, 2)
	containing := e.StampsContaining(shape.MustNew(2, 2, 2), target)

	found := false
	for _, i := range containing.Collect() {
		if i == target {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %+v to be a stamp offset containing itself", target)
	}
}

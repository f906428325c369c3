// File: index/index_test.go
package index_test

import (
	"testing"

	"github.com/katalvlaran/voxelwave/index"
)

// TestAddSubDelta verifies Index/Displacement round-tripping.
func TestAddSubDelta(t *testing.T) {
	i := index.New(3, -2, 5)
	d := index.NewDisplacement(1, 1, -1)

	got := i.Add(d)
	want := index.New(4, -1, 4)
	if got != want {
		t.Fatalf("Add: got %+v want %+v", got, want)
	}

	back := got.Sub(d)
	if back != i {
		t.Fatalf("Sub: got %+v want %+v", back, i)
	}

	delta := got.Delta(i)
	if delta != d {
		t.Fatalf("Delta: got %+v want %+v", delta, d)
	}
}

// TestNeighbors6Order locks in the x+,x-,y+,y-,z+,z- contract order.
func TestNeighbors6Order(t *testing.T) {
	i := index.New(0, 0, 0)
	n := index.Neighbors6(i)
	want := [6]index.Index{
		index.New(1, 0, 0),
		index.New(-1, 0, 0),
		index.New(0, 1, 0),
		index.New(0, -1, 0),
		index.New(0, 0, 1),
		index.New(0, 0, -1),
	}
	if n != want {
		t.Fatalf("Neighbors6: got %+v want %+v", n, want)
	}

	named := index.NamedNeighbors6(i)
	if named.XPlus != want[0] || named.ZMinus != want[5] {
		t.Fatalf("NamedNeighbors6 mismatch: %+v", named)
	}
}

// TestEnclosingChunk_Negative reproduces the original source's own worked
// example: a negative index must floor toward -infinity, not truncate
// toward zero.
func TestEnclosingChunk_Negative(t *testing.T) {
	got := index.EnclosingChunk(index.New(-1, -1, -1), 16)
	want := index.ChunkIndex{X: -16, Y: -16, Z: -16}
	if got != want {
		t.Fatalf("EnclosingChunk(-1,-1,-1): got %+v want %+v", got, want)
	}
}

// TestEnclosingChunk_Positive checks the straightforward positive case.
func TestEnclosingChunk_Positive(t *testing.T) {
	cases := []struct {
		in   index.Index
		want index.ChunkIndex
	}{
		{index.New(0, 0, 0), index.ChunkIndex{X: 0, Y: 0, Z: 0}},
		{index.New(15, 15, 15), index.ChunkIndex{X: 0, Y: 0, Z: 0}},
		{index.New(16, 31, 32), index.ChunkIndex{X: 16, Y: 16, Z: 32}},
	}
	for _, c := range cases {
		got := index.EnclosingChunk(c.in, 16)
		if got != c.want {
			t.Fatalf("EnclosingChunk(%+v): got %+v want %+v", c.in, got, c.want)
		}
	}
}

// TestInternalOffset checks that internal offsets land in [0, edge).
func TestInternalOffset(t *testing.T) {
	const edge = int32(16)
	i := index.New(-1, 20, 33)
	ci := index.EnclosingChunk(i, edge)
	off := index.InternalOffset(ci, i)

	for _, c := range []int32{off.X, off.Y, off.Z} {
		if c < 0 || c >= edge {
			t.Fatalf("InternalOffset component out of [0,%d): %d (offset=%+v)", edge, c, off)
		}
	}

	want := index.NewDisplacement(15, 4, 1)
	if off != want {
		t.Fatalf("InternalOffset: got %+v want %+v", off, want)
	}
}

// Package extent implements half-open axis-aligned integer boxes
// (spec.md §3, §4.4) with deterministic row-major iteration and
// intersection, the geometry the stamp extraction and wave propagation
// passes both walk.
//
// Grounded on original_source/crates/wfc_3d/src/extent.rs (Extent::new,
// intersection, iter, the Stamped trait's get_stamps_extent and
// get_stamps_containing).
package extent

import (
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
)

// Extent is a half-open box [Start, End). The invariant is Start.k < End.k
// for every axis k, OR Start == End == (0,0,0), which denotes the empty
// extent. Constructing an inverted or degenerate box collapses to empty
// rather than panicking — callers that intersect disjoint extents rely on
// this.
type Extent struct {
	Start, End index.Index
}

// Empty is the canonical empty extent.
var Empty = Extent{}

// New builds an Extent from its corners, collapsing to Empty if the box is
// degenerate or inverted on any axis.
func New(start, end index.Index) Extent {
	if start.X < end.X && start.Y < end.Y && start.Z < end.Z {
		return Extent{Start: start, End: end}
	}
	return Empty
}

// FromShape builds the extent [offset, offset+dims) for the given shape.
func FromShape(offset index.Index, s shape.Shape) Extent {
	dims := s.Dims()
	end := offset.Add(index.NewDisplacement(int32(dims[0]), int32(dims[1]), int32(dims[2])))
	return New(offset, end)
}

// IsEmpty reports whether e is the empty extent.
func (e Extent) IsEmpty() bool {
	return e == Empty
}

// Dims returns End - Start as a Displacement. Zero for the empty extent.
func (e Extent) Dims() index.Displacement {
	return e.End.Delta(e.Start)
}

// Contains reports whether i lies inside the half-open box.
func (e Extent) Contains(i index.Index) bool {
	if e.IsEmpty() {
		return false
	}
	return i.X >= e.Start.X && i.X < e.End.X &&
		i.Y >= e.Start.Y && i.Y < e.End.Y &&
		i.Z >= e.Start.Z && i.Z < e.End.Z
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Intersect returns the overlap of e and other, clamping per axis and
// collapsing to Empty on inversion (i.e. when the boxes are disjoint on any
// axis). Matches spec.md §8 property #5: iter(A∩B) equals the
// set-intersection of iter(A) and iter(B).
func (e Extent) Intersect(other Extent) Extent {
	start := index.New(
		max32(e.Start.X, other.Start.X),
		max32(e.Start.Y, other.Start.Y),
		max32(e.Start.Z, other.Start.Z),
	)
	end := index.New(
		min32(e.End.X, other.End.X),
		min32(e.End.Y, other.End.Y),
		min32(e.End.Z, other.End.Z),
	)
	return New(start, end)
}

// Iterate invokes f once per index in e, in deterministic row-major order
// (x fastest, then y, then z). Iteration stops early if f returns false.
func (e Extent) Iterate(f func(index.Index) bool) {
	if e.IsEmpty() {
		return
	}
	for z := e.Start.Z; z < e.End.Z; z++ {
		for y := e.Start.Y; y < e.End.Y; y++ {
			for x := e.Start.X; x < e.End.X; x++ {
				if !f(index.New(x, y, z)) {
					return
				}
			}
		}
	}
}

// Collect materializes every index in e, in row-major order. Intended for
// tests and small extents; hot paths should use Iterate directly.
func (e Extent) Collect() []index.Index {
	dims := e.Dims()
	out := make([]index.Index, 0, int(dims.X)*int(dims.Y)*int(dims.Z))
	e.Iterate(func(i index.Index) bool {
		out = append(out, i)
		return true
	})
	return out
}

// Count returns the number of indices in e without allocating.
func (e Extent) Count() int {
	if e.IsEmpty() {
		return 0
	}
	d := e.Dims()
	return int(d.X) * int(d.Y) * int(d.Z)
}

// StampsExtent returns the set of offsets at which a window of shape st
// fits entirely inside e: the extent whose upper corner is
// e.End - st.Dims() + 1 (spec.md §4.8). Empty if st does not fit inside e
// on every axis.
func (e Extent) StampsExtent(st shape.Shape) Extent {
	if e.IsEmpty() {
		return Empty
	}
	dims := st.Dims()
	end := e.End.Sub(index.NewDisplacement(int32(dims[0]), int32(dims[1]), int32(dims[2]))).
		Add(index.NewDisplacement(1, 1, 1))
	return New(e.Start, end)
}

// StampsContaining returns the extent of stamp offsets (for stamp shape st)
// whose window contains the voxel i, clamped to e's own stamps-extent:
// offsets o with i - Dims(st) + 1 <= o <= i.
func (e Extent) StampsContaining(st shape.Shape, i index.Index) Extent {
	dims := st.Dims()
	lower := i.Sub(index.NewDisplacement(int32(dims[0]), int32(dims[1]), int32(dims[2]))).
		Add(index.NewDisplacement(1, 1, 1))
	upper := i.Add(index.NewDisplacement(1, 1, 1))
	return e.StampsExtent(st).Intersect(New(lower, upper))
}

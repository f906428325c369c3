// Package cuboid provides the concrete Space implementations the rest of
// the system stores and mutates voxels through: Cuboid (a dense, owning,
// padded array), View (a translated read-only window), and the chunked
// copy-on-write overlay (World/Chunk/Cow).
//
// Grounded on matrix.Dense (flat-slice-backed storage, indexOf-gated bounds
// checking, wrapped errors from a single helper) generalized from a 2D
// float64 matrix to a generic 3D voxel array, and on
// original_source/crates/baustein/src/world.rs and
// crates/baustein/src/prefab/mod.rs for the chunk/world/overlay shape.
package cuboid

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/space"
)

// ErrOutOfBounds indicates a write (Set) whose target index lies outside
// the cuboid's extent.
var ErrOutOfBounds = errors.New("cuboid: index out of bounds")

// cuboidErrorf wraps an underlying error with call-site context, mirroring
// matrix.denseErrorf.
func cuboidErrorf(method string, i index.Index, err error) error {
	return fmt.Errorf("Cuboid.%s(%+v): %w", method, i, err)
}

// Cuboid is a dense, padded, owning 3D array of V in row-major order, at a
// fixed offset in voxel space. It is the only mutable Space the core needs.
//
// Invariants (spec.md §4.5):
//  1. len(data) == Shape.Size().
//  2. Get(i) returns the stored element when i is inside
//     [offset, offset+dims), otherwise the zero value of V.
//  3. Set(i,v) updates that same cell, or fails with ErrOutOfBounds.
//  4. offset is never mutated after construction.
type Cuboid[V any] struct {
	offset index.Index
	shape  shape.Shape
	data   []V
}

// New constructs an empty Cuboid of shape s at the given offset, with every
// cell set to the zero value of V.
func New[V any](offset index.Index, s shape.Shape) *Cuboid[V] {
	return &Cuboid[V]{
		offset: offset,
		shape:  s,
		data:   make([]V, s.Size()),
	}
}

// SampleFrom constructs a Cuboid of shape s at the given offset by sampling
// every cell once from src (spec.md §4.5: "construction from another Space
// samples every cell once").
func SampleFrom[V any](src space.Space[V], offset index.Index, s shape.Shape) *Cuboid[V] {
	c := New[V](offset, s)
	dims := s.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				n := s.Linearize(i, j, k)
				c.data[n] = src.Get(offset.Add(index.NewDisplacement(int32(i), int32(j), int32(k))))
			}
		}
	}
	return c
}

// Offset returns the cuboid's minimum corner in voxel space.
func (c *Cuboid[V]) Offset() index.Index { return c.offset }

// Shape returns the cuboid's fixed shape.
func (c *Cuboid[V]) Shape() shape.Shape { return c.shape }

// Dims returns [Dx,Dy,Dz].
func (c *Cuboid[V]) Dims() [3]int { return c.shape.Dims() }

// localCoord converts a voxel-space index to local [i,j,k] coordinates, and
// reports whether the index falls inside the cuboid's extent.
func (c *Cuboid[V]) localCoord(at index.Index) (i, j, k int, ok bool) {
	d := at.Delta(c.offset)
	i, j, k = int(d.X), int(d.Y), int(d.Z)
	return i, j, k, c.shape.InBounds(i, j, k)
}

// Get returns the stored value at at, or the zero value of V when at falls
// outside the cuboid's extent.
func (c *Cuboid[V]) Get(at index.Index) V {
	i, j, k, ok := c.localCoord(at)
	if !ok {
		var zero V
		return zero
	}
	return c.data[c.shape.Linearize(i, j, k)]
}

// Set writes v at at. Returns ErrOutOfBounds if at falls outside the
// cuboid's extent; the cuboid is left unchanged in that case.
func (c *Cuboid[V]) Set(at index.Index, v V) error {
	i, j, k, ok := c.localCoord(at)
	if !ok {
		return cuboidErrorf("Set", at, ErrOutOfBounds)
	}
	c.data[c.shape.Linearize(i, j, k)] = v
	return nil
}

// VisitIndices invokes f once per index in the cuboid's extent, in
// row-major order (offset + delinearize(n) for n in [0, Size())).
func (c *Cuboid[V]) VisitIndices(f func(index.Index)) {
	dims := c.shape.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				f(c.offset.Add(index.NewDisplacement(int32(i), int32(j), int32(k))))
			}
		}
	}
}

// Clone returns a deep copy of the cuboid.
func (c *Cuboid[V]) Clone() *Cuboid[V] {
	data := make([]V, len(c.data))
	copy(data, c.data)
	return &Cuboid[V]{offset: c.offset, shape: c.shape, data: data}
}

// RawData exposes the backing row-major slice directly, for callers (such
// as cuboid.Persisted) that need to serialize or bulk-process it without
// going through Get/Set. Callers must not resize the slice in place.
func (c *Cuboid[V]) RawData() []V { return c.data }

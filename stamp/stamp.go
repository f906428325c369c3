// Package stamp implements fixed-shape sub-cuboid windows ("stamps") over
// any Space, their content-equality/hash, extraction from a template with
// occurrence counts, and the fit query that lets a wave cell "see" which
// stamps it is compatible with (spec.md §4.8).
//
// Grounded almost 1:1 on original_source/crates/wfc_3d/src/stamp.rs
// (ViewStamp, gather_stamps, popcount, StampCollection, CollapseOutcomes):
// the closest direct port in this system, translated from Rust's
// Hash/Eq-deriving borrow types into Go value types keyed by a
// materialized byte encoding.
package stamp

import (
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/space"
	"github.com/katalvlaran/voxelwave/superposition"
	"github.com/katalvlaran/voxelwave/voxel"
)

// Wrapping is a reserved marker for future wrapping modes. Only "no wrap"
// is specified: stamps must fit entirely inside their source (spec.md
// §4.8). Accepted by Gather and ignored.
type Wrapping struct{}

// NoWrap is the only currently-implemented Wrapping mode.
func NoWrap() Wrapping { return Wrapping{} }

// View is a fixed-shape window (offset, shape) into a voxel space. Two
// Views are content-equal iff the multiset of voxels inside their windows
// matches, traversed in canonical row-major order.
type View struct {
	Source space.Space[voxel.ID]
	Offset index.Index
	Shape  shape.Shape
}

// NewView constructs a stamp view of shape st at offset into src.
func NewView(src space.Space[voxel.ID], offset index.Index, st shape.Shape) View {
	return View{Source: src, Offset: offset, Shape: st}
}

// Get returns the voxel at the stamp-local coordinate (i,j,k).
func (v View) Get(i, j, k int) voxel.ID {
	return v.Source.Get(v.Offset.Add(index.NewDisplacement(int32(i), int32(j), int32(k))))
}

// samples materializes the stamp's contents in canonical row-major order.
// This allocates — unavoidable unless a custom fold equality is supplied
// (spec.md §9); Gather pays this cost exactly once per distinct
// offset, never per comparison (see Collection below).
func (v View) samples() []voxel.ID {
	out := make([]voxel.ID, 0, v.Shape.Size())
	dims := v.Shape.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				out = append(out, v.Get(i, j, k))
			}
		}
	}
	return out
}

// key returns a string encoding of samples(), suitable as a Go map key for
// content-equality deduplication (the Go analogue of the original's
// derived Hash/Eq on a materialized Vec).
func key(samples []voxel.ID) string {
	buf := make([]byte, len(samples))
	for i, s := range samples {
		buf[i] = byte(s)
	}
	return string(buf)
}

// Content is a stamp whose voxel contents have been materialized once, at
// Gather time, and are compared/hashed directly rather than re-sampled
// from a live Space on every call (spec.md §9's "one-time materialization"
// alternative, adopted unconditionally — see DESIGN.md).
type Content struct {
	Offset  index.Index
	Shape   shape.Shape
	samples []voxel.ID
}

// At returns the voxel at the stamp-local coordinate (i,j,k).
func (c Content) At(i, j, k int) voxel.ID {
	return c.samples[c.Shape.Linearize(i, j, k)]
}

// AllowedBy reports whether every voxel of c is allowed by the
// corresponding cell of a superposition view sv (spec.md §4.8's fit
// query): sv.allows(t) := for all j, sv[j].allows(t[j]).
func (c Content) AllowedBy(sv func(i, j, k int) superposition.Superposition) bool {
	dims := c.Shape.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				if !sv(i, j, k).Allows(uint8(c.At(i, j, k))) {
					return false
				}
			}
		}
	}
	return true
}

// File: view.go
// Role: Lightweight translated read-only window into any Space.
package cuboid

import (
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/space"
)

// View is a translated handle (&S, offset) onto an underlying Space.
// View.Get(i) = underlying.Get(i + offset). It does not own storage:
// copies share the underlying space (View holds an interface value, copying
// the View struct copies only the reference and the offset).
type View[V any] struct {
	Source space.Space[V]
	Offset index.Index
	Extent shape.Shape
}

// NewView constructs a View of the given shape, translated by offset.
func NewView[V any](src space.Space[V], offset index.Index, s shape.Shape) View[V] {
	return View[V]{Source: src, Offset: offset, Extent: s}
}

// Get implements space.Space: view-local coordinates are translated into
// the underlying space's coordinates by adding the view's offset.
// Spec.md §8 property #2: View(&c,d).Get(i) == c.Get(i+d) for all i.
func (v View[V]) Get(i index.Index) V {
	return v.Source.Get(i.Add(i2d(v.Offset)))
}

// i2d reinterprets an Index as the Displacement with the same components,
// for use when a View's offset (a point in the underlying space) needs to
// be added to a view-local coordinate.
func i2d(i index.Index) index.Displacement {
	return index.NewDisplacement(i.X, i.Y, i.Z)
}

// VisitIndices walks the view's local shape in canonical row-major order,
// translated by -offset so that view-local coordinates (starting at the
// zero index) are what gets visited, mirroring spec.md §4.6.
func (v View[V]) VisitIndices(f func(index.Index)) {
	dims := v.Extent.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				f(index.New(int32(i), int32(j), int32(k)))
			}
		}
	}
}

// IntoVec materializes a dense buffer of Extent.Size() samples, in
// canonical (view-local) row-major order.
func (v View[V]) IntoVec() []V {
	out := make([]V, 0, v.Extent.Size())
	v.VisitIndices(func(local index.Index) {
		out = append(out, v.Get(local))
	})
	return out
}

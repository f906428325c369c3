// Package shape describes fixed 3D extents and their canonical row-major
// linearization, shared by every dense-storage type in cuboid/ and stamp/.
//
// The source system (original_source/crates/baustein, a Rust codebase)
// parametrizes this with compile-time integer generics (`ConstShape`). Go
// has no equivalent const-generic facility, so Shape is carried as an
// ordinary runtime value, the way matrix.MatrixOptions or
// gridgraph.GridOptions carry their configuration — see DESIGN.md and
// SPEC_FULL.md's Open Question decision. The semantic contract (SIZE,
// linearize, delinearize, and their mutual-inverse property) is unchanged.
package shape

import "errors"

// ErrInvalidDimensions indicates that one or more requested dimensions are
// not strictly positive.
var ErrInvalidDimensions = errors.New("shape: dimensions must be > 0")

// Shape is a fixed 3D extent [Dx,Dy,Dz], known at construction time.
type Shape struct {
	Dx, Dy, Dz int
}

// New constructs a Shape, validating that every dimension is positive.
func New(dx, dy, dz int) (Shape, error) {
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return Shape{}, ErrInvalidDimensions
	}
	return Shape{Dx: dx, Dy: dy, Dz: dz}, nil
}

// MustNew is New but panics on error; intended for package-level constants
// and tests where the dimensions are known-good literals.
func MustNew(dx, dy, dz int) Shape {
	s, err := New(dx, dy, dz)
	if err != nil {
		panic(err)
	}
	return s
}

// Cube is a convenience constructor for a shape with equal dimensions on
// every axis.
func Cube(edge int) (Shape, error) {
	return New(edge, edge, edge)
}

// Size returns Dx*Dy*Dz, the total number of cells described by the shape.
func (s Shape) Size() int {
	return s.Dx * s.Dy * s.Dz
}

// Dims returns the [Dx,Dy,Dz] triple.
func (s Shape) Dims() [3]int {
	return [3]int{s.Dx, s.Dy, s.Dz}
}

// Linearize maps a local coordinate [i,j,k] (each component in
// [0,Dx), [0,Dy), [0,Dz) respectively) to a flat offset in [0, Size()),
// using row-major order with x as the fastest-varying axis:
// linearize([i,j,k]) = (k*Dy + j)*Dx + i.
func (s Shape) Linearize(i, j, k int) int {
	return (k*s.Dy+j)*s.Dx + i
}

// Delinearize maps a flat offset n in [0, Size()) back to its local
// coordinate [i,j,k]. Linearize and Delinearize are mutual inverses over
// that range.
func (s Shape) Delinearize(n int) (i, j, k int) {
	i = n % s.Dx
	rest := n / s.Dx
	j = rest % s.Dy
	k = rest / s.Dy
	return i, j, k
}

// InBounds reports whether the local coordinate [i,j,k] lies inside the
// shape's extent.
func (s Shape) InBounds(i, j, k int) bool {
	return i >= 0 && i < s.Dx &&
		j >= 0 && j < s.Dy &&
		k >= 0 && k < s.Dz
}

// FitsWithin reports whether a stamp shape st can be placed at at least one
// offset inside s — i.e. every axis of st is no larger than the
// corresponding axis of s.
func (s Shape) FitsWithin(st Shape) bool {
	return st.Dx <= s.Dx && st.Dy <= s.Dy && st.Dz <= s.Dz
}

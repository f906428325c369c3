// File: index.go
// Role: 3D integer coordinate algebra — the leaf layer every other package
// builds on (voxel positions, chunk/voxel conversion, face neighborhoods).
// Determinism:
//   - All operations are pure arithmetic; no allocation, no randomness.
// Concurrency:
//   - Value types, safe to share and copy across goroutines.
// AI-HINT (file):
//   - Index is a point, Displacement is a vector. Do not mix them up:
//     Index-Index yields Displacement, Index+Displacement yields Index.
package index

// Index is a signed 3D integer coordinate in voxel units.
type Index struct {
	X, Y, Z int32
}

// Displacement is a 3D integer vector. Same representation as Index, but a
// distinct type so the compiler catches point/vector confusion.
type Displacement struct {
	X, Y, Z int32
}

// New builds an Index from its three components.
func New(x, y, z int32) Index { return Index{X: x, Y: y, Z: z} }

// NewDisplacement builds a Displacement from its three components.
func NewDisplacement(x, y, z int32) Displacement { return Displacement{X: x, Y: y, Z: z} }

// Add returns i translated by d.
func (i Index) Add(d Displacement) Index {
	return Index{X: i.X + d.X, Y: i.Y + d.Y, Z: i.Z + d.Z}
}

// Sub returns i translated backwards by d.
func (i Index) Sub(d Displacement) Index {
	return Index{X: i.X - d.X, Y: i.Y - d.Y, Z: i.Z - d.Z}
}

// Delta returns the displacement from other to i (i.e. i - other).
func (i Index) Delta(other Index) Displacement {
	return Displacement{X: i.X - other.X, Y: i.Y - other.Y, Z: i.Z - other.Z}
}

// Add returns the sum of two displacements.
func (d Displacement) Add(other Displacement) Displacement {
	return Displacement{X: d.X + other.X, Y: d.Y + other.Y, Z: d.Z + other.Z}
}

// Neg returns the opposite displacement.
func (d Displacement) Neg() Displacement {
	return Displacement{X: -d.X, Y: -d.Y, Z: -d.Z}
}

// Xc, Yc and Zc are the X, Y and Z accessors. Defined as methods (rather than exposing the fields
// exclusively) so Index satisfies the same access pattern the rest of the
// system expects from coordinate-like values.
func (i Index) Xc() int32 { return i.X }
func (i Index) Yc() int32 { return i.Y }
func (i Index) Zc() int32 { return i.Z }

// Array returns the [3]int32 triple backing the Index, in x,y,z order.
func (i Index) Array() [3]int32 { return [3]int32{i.X, i.Y, i.Z} }

// FromArray constructs an Index from a [3]int32 triple in x,y,z order.
func FromArray(a [3]int32) Index { return Index{X: a[0], Y: a[1], Z: a[2]} }

// Neighbors6 returns the ordered 6-tuple of face-adjacent indices:
// (x+1, x-1, y+1, y-1, z+1, z-1). This order is a contract — callers are
// entitled to index the result positionally.
func Neighbors6(i Index) [6]Index {
	return [6]Index{
		i.Add(Displacement{X: 1}),
		i.Sub(Displacement{X: 1}),
		i.Add(Displacement{Y: 1}),
		i.Sub(Displacement{Y: 1}),
		i.Add(Displacement{Z: 1}),
		i.Sub(Displacement{Z: 1}),
	}
}

// Neighbors6Named is Neighbors6 but unpacked into accessor-style fields, for
// call sites that want xp/xm/yp/ym/zp/zm-style names instead of indices.
type Neighbors6Named struct {
	XPlus, XMinus, YPlus, YMinus, ZPlus, ZMinus Index
}

// NamedNeighbors6 returns the same 6 neighbors as Neighbors6, labeled.
func NamedNeighbors6(i Index) Neighbors6Named {
	n := Neighbors6(i)
	return Neighbors6Named{
		XPlus: n[0], XMinus: n[1],
		YPlus: n[2], YMinus: n[3],
		ZPlus: n[4], ZMinus: n[5],
	}
}

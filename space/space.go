// Package space defines the read-only random-access voxel field abstraction
// (spec.md §4.3/§4.4) and its lazy, composable derivations: map,
// map-with-index and zip. Every concrete storage type in cuboid/ implements
// Space; every derived type here is itself a Space, so compositions nest
// freely (s.Map(f).Map(g), s.Zip(t).Map(h), ...).
//
// Grounded on original_source/crates/baustein/src/traits.rs's Space/Map/
// MapIndex: a struct wrapping the source space plus a captured closure,
// translated from Rust's impl-Trait return types to Go generics.
package space

import "github.com/katalvlaran/voxelwave/index"

// Space is a read-only, total random-access voxel field: Get is defined for
// every index.Index (out-of-extent queries return the zero value of V by
// convention at the concrete-type level; Space itself makes no such
// promise, it only requires totality).
type Space[V any] interface {
	Get(i index.Index) V
}

// IterableSpace adds a finite, implementation-defined traversal over the
// space's indices. Cuboid's traversal is its extent in row-major order;
// derived spaces (Mapped, MappedWithIndex, Zipped) forward the left-hand
// operand's traversal.
type IterableSpace[V any] interface {
	Space[V]
	VisitIndices(f func(index.Index))
}

// Func adapts a plain function into a Space.
type Func[V any] func(i index.Index) V

// Get implements Space.
func (f Func[V]) Get(i index.Index) V { return f(i) }

// Mapped is the lazy pointwise-mapped space: Mapped{S,F}.Get(i) == F(S.Get(i)).
type Mapped[V, U any] struct {
	Source Space[V]
	Fn     func(V) U
}

// Map returns a Space applying fn to every value read from s.
func Map[V, U any](s Space[V], fn func(V) U) Mapped[V, U] {
	return Mapped[V, U]{Source: s, Fn: fn}
}

// Get implements Space. Satisfies composition law:
// s.Map(f).Get(i) == f(s.Get(i)).
func (m Mapped[V, U]) Get(i index.Index) U {
	return m.Fn(m.Source.Get(i))
}

// VisitIndices forwards the source's traversal, when the source is
// iterable. Present so Mapped over an IterableSpace is itself iterable.
func (m Mapped[V, U]) VisitIndices(f func(index.Index)) {
	if it, ok := m.Source.(IterableSpace[V]); ok {
		it.VisitIndices(f)
	}
}

// MappedWithIndex is the lazy index-aware mapped space:
// MappedWithIndex{S,F}.Get(i) == F(i, S.Get(i)).
type MappedWithIndex[V, U any] struct {
	Source Space[V]
	Fn     func(index.Index, V) U
}

// MapWithIndex returns a Space applying fn to each (index, value) pair.
func MapWithIndex[V, U any](s Space[V], fn func(index.Index, V) U) MappedWithIndex[V, U] {
	return MappedWithIndex[V, U]{Source: s, Fn: fn}
}

// Get implements Space. Satisfies composition law:
// s.MapWithIndex(g).Get(i) == g(i, s.Get(i)).
func (m MappedWithIndex[V, U]) Get(i index.Index) U {
	return m.Fn(i, m.Source.Get(i))
}

// VisitIndices forwards the source's traversal, when iterable.
func (m MappedWithIndex[V, U]) VisitIndices(f func(index.Index)) {
	if it, ok := m.Source.(IterableSpace[V]); ok {
		it.VisitIndices(f)
	}
}

// Pair is the co-indexed product of two values, as produced by Zip.
type Pair[V, U any] struct {
	First  V
	Second U
}

// Zipped is the lazy co-indexed product of two spaces:
// Zipped{S,T}.Get(i) == Pair{S.Get(i), T.Get(i)}.
//
// Iteration is inherited from the left operand only. If the right operand's
// natural extent differs from the left's, values outside the left's extent
// are simply never read — acceptable here because this system only zips
// co-extent cuboids (documented caveat, spec.md §4.4).
type Zipped[V, U any] struct {
	Left  Space[V]
	Right Space[U]
}

// Zip returns a Space pairing up values read from s and t at each index.
func Zip[V, U any](s Space[V], t Space[U]) Zipped[V, U] {
	return Zipped[V, U]{Left: s, Right: t}
}

// Get implements Space. Satisfies composition law:
// s.Zip(t).Get(i) == (s.Get(i), t.Get(i)).
func (z Zipped[V, U]) Get(i index.Index) Pair[V, U] {
	return Pair[V, U]{First: z.Left.Get(i), Second: z.Right.Get(i)}
}

// VisitIndices forwards the left operand's traversal, when iterable.
func (z Zipped[V, U]) VisitIndices(f func(index.Index)) {
	if it, ok := z.Left.(IterableSpace[V]); ok {
		it.VisitIndices(f)
	}
}

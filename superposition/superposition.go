// Package superposition implements the bit-mask "allowed voxel ids" type
// the wave grid is built from (spec.md §3, §4.9).
//
// A Superposition is a bitmask over voxel ids in [0, D): bit k set means
// "id k is forbidden". D is carried separately as a Domain value (not a
// type parameter — Go has no const generics, see SPEC_FULL.md's Open
// Question decision), the same way matrix.MatrixOptions carries its own
// small config rather than being baked into the Dense type itself.
package superposition

import (
	"errors"
	"math/bits"
)

// ErrInvalidDomain indicates a requested palette size D is not in [1,64].
var ErrInvalidDomain = errors.New("superposition: domain size must be in [1,64]")

// ErrInvalidPaletteID indicates Only(id) was called with id >= D.
var ErrInvalidPaletteID = errors.New("superposition: palette id out of domain")

// Domain carries the palette size D for a family of Superposition values.
// D must satisfy 1 <= D <= 64 (spec.md §3: "D <= 64").
type Domain struct {
	D uint8
}

// NewDomain validates d and returns a Domain wrapping it.
func NewDomain(d int) (Domain, error) {
	if d <= 0 || d > 64 {
		return Domain{}, ErrInvalidDomain
	}
	return Domain{D: uint8(d)}, nil
}

// MustNewDomain is NewDomain but panics on error; for known-good literals.
func MustNewDomain(d int) Domain {
	dom, err := NewDomain(d)
	if err != nil {
		panic(err)
	}
	return dom
}

// Superposition is a bitmask over voxel ids: bit k set means id k is
// forbidden. The zero value is Free (nothing forbidden).
type Superposition uint64

// Free is the superposition admitting every id: the zero mask.
const Free Superposition = 0

// allBitsBelow returns a mask with exactly the low n bits set (0 <= n <= 64),
// avoiding the undefined-shift-by-64 pitfall spec.md §9 calls out.
func allBitsBelow(n uint8) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << n) - 1
}

// Impossible returns the superposition forbidding every id in [0, d.D):
// all D low bits set. (spec.md §9: the sources' impossible() shifts D left
// by 2, which is a bug; "all low D bits set" is the specified, intended
// behavior.)
func Impossible(d Domain) Superposition {
	return Superposition(allBitsBelow(d.D))
}

// Only returns the superposition allowing exactly id: every bit set except
// bit id. Panics if id >= d.D — forming an out-of-domain Only is a
// programmer error per spec.md §7 (ErrInvalidPaletteID), not a recoverable
// runtime condition.
func Only(d Domain, id uint8) Superposition {
	if id >= d.D {
		panic(ErrInvalidPaletteID)
	}
	return Impossible(d) &^ (1 << id)
}

// TryOnly is Only but returns an error instead of panicking, for call sites
// that receive an externally-supplied id they have not already validated.
func TryOnly(d Domain, id uint8) (Superposition, error) {
	if id >= d.D {
		return 0, ErrInvalidPaletteID
	}
	return Only(d, id), nil
}

// Allows reports whether id is allowed (its forbidding bit is zero).
func (s Superposition) Allows(id uint8) bool {
	return s&(1<<id) == 0
}

// CountAllowed returns D - popcount(mask): the number of still-allowed ids.
func (s Superposition) CountAllowed(d Domain) uint8 {
	return d.D - uint8(bits.OnesCount64(uint64(s)))
}

// Intersect returns the more-restrictive combination of a and b: the
// bitwise OR of their disallowed sets (spec.md §4.9).
func Intersect(a, b Superposition) Superposition {
	return a | b
}

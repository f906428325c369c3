// File: shape/shape_test.go
package shape_test

import (
	"testing"

	"github.com/katalvlaran/voxelwave/shape"
)

func TestNewValidation(t *testing.T) {
	if _, err := shape.New(0, 1, 1); err != shape.ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := shape.New(-1, 1, 1); err != shape.ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
	s, err := shape.New(2, 3, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Size() != 24 {
		t.Fatalf("Size: got %d want 24", s.Size())
	}
}

// TestLinearizeDelinearizeBijection covers property #4 of spec.md §8: for
// every local coordinate p, linearize(p) lies in [0,Size()),
// delinearize(linearize(p)) == p, and no two coordinates share an offset.
func TestLinearizeDelinearizeBijection(t *testing.T) {
	s := shape.MustNew(3, 4, 5)
	seen := make(map[int]bool, s.Size())
	for k := 0; k < s.Dz; k++ {
		for j := 0; j < s.Dy; j++ {
			for i := 0; i < s.Dx; i++ {
				n := s.Linearize(i, j, k)
				if n < 0 || n >= s.Size() {
					t.Fatalf("Linearize(%d,%d,%d)=%d out of range", i, j, k, n)
				}
				if seen[n] {
					t.Fatalf("collision at n=%d for (%d,%d,%d)", n, i, j, k)
				}
				seen[n] = true

				gi, gj, gk := s.Delinearize(n)
				if gi != i || gj != j || gk != k {
					t.Fatalf("Delinearize(%d): got (%d,%d,%d) want (%d,%d,%d)", n, gi, gj, gk, i, j, k)
				}
			}
		}
	}
	if len(seen) != s.Size() {
		t.Fatalf("visited %d distinct offsets, want %d", len(seen), s.Size())
	}
}

func TestFitsWithin(t *testing.T) {
	s := shape.MustNew(4, 4, 4)
	if !s.FitsWithin(shape.MustNew(2, 2, 2)) {
		t.Fatal("2x2x2 should fit within 4x4x4")
	}
	if s.FitsWithin(shape.MustNew(5, 1, 1)) {
		t.Fatal("5x1x1 should not fit within 4x4x4")
	}
}

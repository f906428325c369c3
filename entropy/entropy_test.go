// File: entropy/entropy_test.go
package entropy_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/voxelwave/entropy"
	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/space"
	"github.com/katalvlaran/voxelwave/stamp"
	"github.com/katalvlaran/voxelwave/superposition"
	"github.com/katalvlaran/voxelwave/voxel"
)

// splitSpace returns id 1 when Y < split, else id 0, matching the S2
// scenario template from spec.md §8.
type splitSpace struct{ split int32 }

func (s splitSpace) Get(i index.Index) voxel.ID {
	if i.Y < s.split {
		return 1
	}
	return 0
}

func s2Stamps() stamp.Collection {
	src := splitSpace{split: 2}
	e := extent.FromShape(index.New(0, 0, 0), shape.MustNew(4, 4, 4))
	st := shape.MustNew(2, 2, 2)
	return stamp.Gather(space.Space[voxel.ID](src), e, st, stamp.NoWrap())
}

// TestClassifyFreeIsOpen covers the |F| >= 2 branch: a Free view admits all
// 3 distinct S2 stamps.
func TestClassifyFreeIsOpen(t *testing.T) {
	coll := s2Stamps()
	view := func(i, j, k int) superposition.Superposition { return superposition.Free }
	c := entropy.Classify(coll, view)
	if c.State != entropy.Open {
		t.Fatalf("expected Open, got %v", c.State)
	}
	if c.H <= 0 {
		t.Fatalf("expected strictly positive H for an open distribution, got %v", c.H)
	}
}

// TestClassifyOnlyMatchIsCollapsed covers the |F| == 1 branch.
func TestClassifyOnlyMatchIsCollapsed(t *testing.T) {
	coll := s2Stamps()
	allOnes, _ := coll.At(0)
	view := func(i, j, k int) superposition.Superposition {
		return superposition.Only(superposition.MustNewDomain(2), uint8(allOnes.At(i, j, k)))
	}
	c := entropy.Classify(coll, view)
	if c.State != entropy.Collapsed {
		t.Fatalf("expected Collapsed, got %v", c.State)
	}
}

// TestClassifyImpossibleView covers the |F| == 0 branch.
func TestClassifyImpossibleView(t *testing.T) {
	coll := s2Stamps()
	d := superposition.MustNewDomain(2)
	view := func(i, j, k int) superposition.Superposition { return superposition.Impossible(d) }
	c := entropy.Classify(coll, view)
	if c.State != entropy.Impossible {
		t.Fatalf("expected Impossible, got %v", c.State)
	}
}

// TestEntropyRanksWiderDistributionHigher covers spec.md §8 property #9:
// among equally-weighted stamps, the cell admitting more options scores a
// strictly higher H than one admitting fewer.
func TestEntropyRanksWiderDistributionHigher(t *testing.T) {
	coll := s2Stamps()

	free := func(i, j, k int) superposition.Superposition { return superposition.Free }
	wide := entropy.Classify(coll, free)
	if wide.State != entropy.Open {
		t.Fatalf("expected Open for the free view, got %v", wide.State)
	}

	allOnes, _ := coll.At(0)
	bottomTop, _ := coll.At(1)
	d := superposition.MustNewDomain(2)
	narrowView := func(i, j, k int) superposition.Superposition {
		a := allOnes.At(i, j, k)
		b := bottomTop.At(i, j, k)
		if a == b {
			return superposition.Only(d, uint8(a))
		}
		return superposition.Free
	}
	narrow := entropy.Classify(coll, narrowView)
	if narrow.State != entropy.Open {
		t.Fatalf("expected Open for the narrowed view, got %v", narrow.State)
	}

	if !(wide.H > narrow.H) {
		t.Fatalf("expected wider distribution to score higher: wide=%v narrow=%v", wide.H, narrow.H)
	}
}

// TestLog2OfPowersOfTwoViaUniformSplit covers spec.md §8 property #7 indirectly: every
// power-of-two occurrence count must score as an exact integer log2 inside
// Classify's H computation, so we pin it down via a synthetic uniform
// 2-stamp, power-of-two-count distribution where H collapses to a known
// closed form.
func TestLog2OfPowersOfTwoViaUniformSplit(t *testing.T) {
	// A collection of 2 equally-likely stamps (W=8,c=4 each) gives
	// H = (1/8) * (4*(log2(8)-log2(4)) * 2) = (1/8)*(4*1*2) = 1.
	src := splitSpace{split: 1}
	e := extent.FromShape(index.New(0, 0, 0), shape.MustNew(4, 2, 1))
	st := shape.MustNew(1, 1, 1)
	coll := stamp.Gather(space.Space[voxel.ID](src), e, st, stamp.NoWrap())

	view := func(i, j, k int) superposition.Superposition { return superposition.Free }
	c := entropy.Classify(coll, view)
	if c.State != entropy.Open {
		t.Fatalf("expected Open, got %v", c.State)
	}
	if math.Abs(c.H-1.0) > 1e-9 {
		t.Fatalf("expected H == 1.0 for a uniform 2-way split, got %v", c.H)
	}
}

// Package entropy implements the pseudo-entropy heuristic (spec.md §4.10)
// that the collapse driver uses to choose its next site: a cell's
// admitted-stamp distribution is scored so that, among open cells, the one
// with the lowest score is collapsed next.
//
// Grounded on original_source/src/generate/mod.rs's use of
// find_lowest_pseudo_entropy (the call site survives in the sources; the
// scoring function itself does not, and is built here directly from
// spec.md §4.10's formula).
package entropy

import (
	"math/bits"

	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/stamp"
	"github.com/katalvlaran/voxelwave/superposition"
)

// State classifies a single cell's admitted-stamp distribution.
type State int

const (
	// Impossible means no stamp fits: a contradiction.
	Impossible State = iota
	// Collapsed means exactly one stamp fits: nothing left to choose.
	Collapsed
	// Open means two or more stamps fit; H carries the pseudo-entropy score.
	Open
)

// Classification is the result of scoring a single cell.
type Classification struct {
	State State
	H     float64
}

// log2 returns floor(log2(v)) for v > 0, via bits.Len (spec.md §4.10's
// "bits(usize) - 1 - leading_zeros(v)", restated in terms of the stdlib's
// bit-length primitive). Undefined for v == 0 — callers here only ever
// call it with strictly positive counts, guaranteed by stamp-collection
// invariants (spec.md §8 property #7).
func log2(v int) float64 {
	return float64(bits.Len(uint(v)) - 1)
}

// Classify scores a single cell's admitted-stamp distribution against the
// view sv (spec.md §4.10):
//
//	F = stamps allowed by sv
//	|F| == 0 -> Impossible
//	|F| == 1 -> Collapsed
//	|F| >= 2 -> Open(H), H = (1/W) * sum_{(t,c) in F} c*(log2(W) - log2(c))
//
// W is the collection's total occurrence count, not renormalized to F.
func Classify(stamps stamp.Collection, sv func(i, j, k int) superposition.Superposition) Classification {
	matches := stamps.Matches(sv)
	switch len(matches) {
	case 0:
		return Classification{State: Impossible}
	case 1:
		return Classification{State: Collapsed}
	}

	w := stamps.Total()
	logW := log2(w)
	var h float64
	for _, m := range matches {
		h += float64(m.Count) * (logW - log2(m.Count))
	}
	h /= float64(w)
	return Classification{State: Open, H: h}
}

// FindLowest scans every stamp offset inside the wave's stamps-extent,
// classifies it against view, and returns the Open cell with the lowest H,
// breaking ties by first-in-row-major-order (spec.md §4.10's "Lowest-
// entropy site"). The second return is false if no Open cell exists.
func FindLowest(
	waveExtent extent.Extent,
	stampShape shape.Shape,
	stamps stamp.Collection,
	view func(at index.Index) func(i, j, k int) superposition.Superposition,
) (index.Index, bool) {
	stampsExtent := waveExtent.StampsExtent(stampShape)

	var best index.Index
	bestH := 0.0
	found := false

	stampsExtent.Iterate(func(o index.Index) bool {
		c := Classify(stamps, view(o))
		if c.State != Open {
			return true
		}
		if !found || c.H < bestH {
			best = o
			bestH = c.H
			found = true
		}
		return true
	})

	return best, found
}

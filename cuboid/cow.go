// File: cow.go
// Role: Copy-on-write overlay over a read-only World (spec.md §3, §4.7).
// Determinism:
//   - Reads prefer overrides, falling back to the base World.
//   - Writes auto-COW the affected chunk: copy from base (or a fresh empty
//     chunk) into the override map before mutating.
// AI-HINT (file):
//   - Apply does not verify the target World is the Cow's original base —
//     that invariant is the caller's to keep, exactly as spec.md §4.7
//     documents as a deliberate caveat, not an oversight.
package cuboid

import (
	"github.com/katalvlaran/voxelwave/index"
)

// Cow wraps a read-only World and an owned map of chunk overrides. Reads
// resolve overrides first, falling back to the base world; writes copy
// the affected chunk into the override map before mutating it.
type Cow[V any] struct {
	base      *World[V]
	overrides map[index.ChunkIndex]*Chunk[V]
}

// NewCow constructs a Cow overlaying base, with no overrides yet.
func NewCow[V any](base *World[V]) *Cow[V] {
	return &Cow[V]{
		base:      base,
		overrides: make(map[index.ChunkIndex]*Chunk[V]),
	}
}

// Get implements space.Space: overrides are consulted first, falling back
// to the base World when the enclosing chunk has not been overridden.
func (c *Cow[V]) Get(at index.Index) V {
	ci := index.EnclosingChunk(at, c.base.Config.ChunkEdge)
	local := index.InternalOffset(ci, at)
	localIdx := index.New(local.X, local.Y, local.Z)

	if chunk, ok := c.overrides[ci]; ok {
		return chunk.Get(localIdx)
	}
	return c.base.GetChunk(ci).Get(localIdx)
}

// Set writes v at at, auto-COWing the affected chunk: if no override
// exists yet for that chunk, one is cloned from the base world (or a fresh
// empty chunk, if the base has none there) before the write lands.
func (c *Cow[V]) Set(at index.Index, v V) error {
	ci := index.EnclosingChunk(at, c.base.Config.ChunkEdge)
	local := index.InternalOffset(ci, at)
	localIdx := index.New(local.X, local.Y, local.Z)

	chunk, ok := c.overrides[ci]
	if !ok {
		chunk = c.base.GetChunk(ci).Clone()
		c.overrides[ci] = chunk
	}
	return chunk.Set(localIdx, v)
}

// Overlay is the extracted set of chunk overrides a Cow accumulated,
// detached from the Cow that produced it.
type Overlay[V any] struct {
	chunks map[index.ChunkIndex]*Chunk[V]
}

// IntoChanges extracts c's override map as a standalone Overlay, per
// spec.md §4.7. The Cow retains no further use after this call (its
// overrides map is handed off, not copied).
func (c *Cow[V]) IntoChanges() *Overlay[V] {
	ov := &Overlay[V]{chunks: c.overrides}
	c.overrides = nil
	return ov
}

// Apply inserts every override chunk into target, replacing wholesale by
// chunk index. Per spec.md §4.7, Apply does not check that target is the
// Cow's original base world — that invariant is the caller's responsibility.
func (ov *Overlay[V]) Apply(target *World[V]) {
	for ci, chunk := range ov.chunks {
		target.PutChunk(ci, chunk)
	}
}

// Len reports how many chunks were overridden.
func (ov *Overlay[V]) Len() int {
	return len(ov.chunks)
}

// File: world.go
// Role: Sparse chunked voxel storage backing the copy-on-write overlay.
// Grounded on original_source/crates/baustein/src/prefab/mod.rs's World
// (a HashMap<ChunkIndex, PaletteIdChunk>) and world.rs's Space impl for it.
package cuboid

import (
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
)

// DefaultChunkEdge is the chunk edge used when no explicit Config is given,
// matching the original source's ConstPow2Shape3u32<16,16,16> (spec.md §6:
// "Chunk edge for COW: power of two (default 16)").
const DefaultChunkEdge = 16

// Config carries the tunable chunk edge for a World/Cow pair.
type Config struct {
	// ChunkEdge must be a positive power of two.
	ChunkEdge int32
}

// DefaultConfig returns Config{ChunkEdge: DefaultChunkEdge}.
func DefaultConfig() Config {
	return Config{ChunkEdge: DefaultChunkEdge}
}

// chunkShape returns the fixed cube shape of one chunk.
func (cfg Config) chunkShape() shape.Shape {
	return shape.MustNew(int(cfg.ChunkEdge), int(cfg.ChunkEdge), int(cfg.ChunkEdge))
}

// Chunk is a dense cube of voxels, DefaultChunkEdge (or Config.ChunkEdge)
// on a side, anchored at a ChunkIndex's origin.
type Chunk[V any] = Cuboid[V]

// World is a sparse map of ChunkIndex to Chunk: a "really terrible, simple
// world type" per the original source's own comment — reads resolve by
// locating the enclosing chunk; absent chunks read as the zero value of V
// without allocating one, via a shared empty chunk.
type World[V any] struct {
	Config Config
	chunks map[index.ChunkIndex]*Chunk[V]
	empty  *Chunk[V]
}

// NewWorld constructs an empty World using cfg for its chunk geometry.
func NewWorld[V any](cfg Config) *World[V] {
	return &World[V]{
		Config: cfg,
		chunks: make(map[index.ChunkIndex]*Chunk[V]),
		empty:  New[V](index.Index{}, cfg.chunkShape()),
	}
}

// GetChunk returns the chunk at ci, or a shared all-zero-value chunk if
// none has been written there yet. The returned pointer must not be
// mutated by the caller when it is the shared empty chunk (Cow.Set always
// copies before writing, see cow.go).
func (w *World[V]) GetChunk(ci index.ChunkIndex) *Chunk[V] {
	if c, ok := w.chunks[ci]; ok {
		return c
	}
	return w.empty
}

// PutChunk installs (replacing wholesale) the chunk at ci.
func (w *World[V]) PutChunk(ci index.ChunkIndex, c *Chunk[V]) {
	w.chunks[ci] = c
}

// IterChunkIndices returns the set of chunk indices with an explicit
// (non-empty-default) chunk present.
func (w *World[V]) IterChunkIndices() []index.ChunkIndex {
	out := make([]index.ChunkIndex, 0, len(w.chunks))
	for ci := range w.chunks {
		out = append(out, ci)
	}
	return out
}

// Get implements space.Space: resolves the enclosing chunk for offset and
// reads the internal-offset cell from it (zero value if no chunk is
// present there). Chunks are always stored local-indexed (their own
// Cuboid.Offset is the zero Index); the voxel-space index is converted to
// the chunk-local internal offset before the read.
func (w *World[V]) Get(at index.Index) V {
	ci := index.EnclosingChunk(at, w.Config.ChunkEdge)
	chunk := w.GetChunk(ci)
	local := index.InternalOffset(ci, at)
	return chunk.Get(index.New(local.X, local.Y, local.Z))
}

// Cow constructs a fresh copy-on-write overlay reading from w.
func (w *World[V]) Cow() *Cow[V] {
	return NewCow[V](w)
}

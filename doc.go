// Package voxelwave synthesizes a 3D voxel field by example: given a small
// source cuboid (a "template"), it extracts every fixed-size sub-cuboid
// pattern ("stamp") the template contains, then collapses a larger output
// grid of per-cell possibility sets until every cell admits one pattern,
// admits none (a local contradiction), or is left under-constrained.
//
// This is a 3D realization of the overlapping Wave Function Collapse
// algorithm. The work is organized under these subpackages:
//
//	index/         — 3D integer coordinates, chunk/voxel conversion, face neighborhoods
//	shape/         — fixed 3D extents and their row-major linearization
//	space/         — lazy, composable read-only voxel fields (map, map-with-index, zip)
//	extent/        — half-open axis-aligned integer boxes, iteration, intersection
//	cuboid/        — dense padded arrays, translated views, chunked copy-on-write overlays
//	stamp/         — fixed-shape window extraction, content equality, occurrence counts
//	superposition/ — bitmask over allowed voxel ids
//	entropy/       — pseudo-entropy scoring used to pick the next site to collapse
//	wave/          — the mutable superposition grid and its propagation pass
//	collapse/      — the outer driver loop tying the above together
//	voxel/         — the shared voxel identity type
//
// None of this package renders, meshes, persists, or edits a scene — it is
// the synthesis core only; a surrounding application supplies a template
// and a seeded output region and consumes the resulting collapsed field.
package voxelwave

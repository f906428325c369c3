// Package voxel defines the voxel identity type shared across the system:
// an 8-bit id the core treats as opaque. Id 0 is the designated
// default/empty voxel (spec.md §3: "Voxel identity").
//
// A surrounding application may map ids to rendering or material data; the
// core never inspects that mapping, so no such palette type lives here.
package voxel

// ID is an unsigned 8-bit voxel identifier, in [0,255].
type ID uint8

// Empty is the designated default/empty voxel id.
const Empty ID = 0

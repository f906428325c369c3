// File: persist.go
// Role: JSON persistence record for Cuboid, for compatibility with
// surrounding tooling (spec.md §6). Not required by the core itself.
// Grounded on original_source/crates/baustein/src/prefab/serialize.rs's
// serde Serialize/Deserialize impls for FlatPaddedGridCuboid, translated to
// Go's encoding/json (no serialization library appears anywhere in the
// retrieved pack, so the stdlib's own record-marshaling facility is the
// only grounded choice — see DESIGN.md).
package cuboid

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
)

// ErrMalformedPersistence indicates a dimension/length mismatch when
// decoding a Persisted record.
var ErrMalformedPersistence = errors.New("cuboid: malformed persistence record")

// Persisted is the on-disk record shape: {data, offset, dimensions}, with
// N = product(dimensions) and len(data) == N enforced on decode.
type Persisted[V any] struct {
	Data       []V     `json:"data"`
	Offset     [3]int64 `json:"offset"`
	Dimensions [3]int   `json:"dimensions"`
}

// ToPersisted converts a Cuboid into its persistence record.
func ToPersisted[V any](c *Cuboid[V]) Persisted[V] {
	data := make([]V, len(c.data))
	copy(data, c.data)
	dims := c.shape.Dims()
	off := c.offset
	return Persisted[V]{
		Data:       data,
		Offset:     [3]int64{int64(off.X), int64(off.Y), int64(off.Z)},
		Dimensions: [3]int{dims[0], dims[1], dims[2]},
	}
}

// FromPersisted reconstructs a Cuboid from a persistence record, failing
// with ErrMalformedPersistence if len(data) does not match the product of
// the recorded dimensions.
func FromPersisted[V any](p Persisted[V]) (*Cuboid[V], error) {
	expected := p.Dimensions[0] * p.Dimensions[1] * p.Dimensions[2]
	if expected != len(p.Data) {
		return nil, fmt.Errorf("cuboid.FromPersisted: data len %d, want %d: %w", len(p.Data), expected, ErrMalformedPersistence)
	}
	s, err := shape.New(p.Dimensions[0], p.Dimensions[1], p.Dimensions[2])
	if err != nil {
		return nil, fmt.Errorf("cuboid.FromPersisted: %w: %v", ErrMalformedPersistence, err)
	}
	data := make([]V, len(p.Data))
	copy(data, p.Data)
	offset := index.New(int32(p.Offset[0]), int32(p.Offset[1]), int32(p.Offset[2]))
	return &Cuboid[V]{offset: offset, shape: s, data: data}, nil
}

// MarshalJSON implements json.Marshaler by round-tripping through Persisted.
func (c *Cuboid[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToPersisted(c))
}

// UnmarshalJSON implements json.Unmarshaler by round-tripping through
// Persisted, validating dimensions against data length.
func (c *Cuboid[V]) UnmarshalJSON(data []byte) error {
	var p Persisted[V]
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	decoded, err := FromPersisted(p)
	if err != nil {
		return err
	}
	*c = *decoded
	return nil
}

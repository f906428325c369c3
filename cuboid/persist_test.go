// File: cuboid/persist_test.go
package cuboid_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/voxelwave/cuboid"
	"github.com/katalvlaran/voxelwave/index"
	"github.com/katalvlaran/voxelwave/shape"
	"github.com/stretchr/testify/require"
)

func TestPersistRoundTrip(t *testing.T) {
	s := shape.MustNew(2, 2, 2)
	c := cuboid.New[uint8](index.New(1, 2, 3), s)
	require.NoError(t, c.Set(index.New(1, 2, 3), 9))

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded cuboid.Cuboid[uint8]
	require.NoError(t, json.Unmarshal(raw, &decoded))

	require.Equal(t, uint8(9), decoded.Get(index.New(1, 2, 3)))
	require.Equal(t, c.Offset(), decoded.Offset())
}

func TestPersistRejectsLengthMismatch(t *testing.T) {
	p := cuboid.Persisted[uint8]{
		Data:       []uint8{1, 2, 3},
		Offset:     [3]int64{0, 0, 0},
		Dimensions: [3]int{2, 2, 2}, // expects 8, got 3
	}
	_, err := cuboid.FromPersisted(p)
	require.ErrorIs(t, err, cuboid.ErrMalformedPersistence)
}

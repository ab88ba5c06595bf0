package seed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerive_Deterministic(t *testing.T) {
	require.Equal(t, Derive(42, 0), Derive(42, 0))
	require.Equal(t, Derive(42, 7), Derive(42, 7))
}

func TestDerive_DistinctWorkers(t *testing.T) {
	seen := make(map[uint64]uint64)
	for worker := uint64(0); worker < 128; worker++ {
		s := Derive(42, worker)
		prev, dup := seen[s]
		require.False(t, dup, "workers %d and %d collided", prev, worker)
		seen[s] = worker
	}
}

func TestDerive_DistinctBaseSeeds(t *testing.T) {
	require.NotEqual(t, Derive(42, 3), Derive(43, 3))
}

func TestDerive_NotCorrelatedWithWorkerID(t *testing.T) {
	// Nearby worker IDs must not produce nearby seeds.
	a := Derive(42, 1)
	b := Derive(42, 2)
	require.NotEqual(t, a+1, b)
	require.NotEqual(t, a, b+1)
}

package rocket

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomAllocationAlwaysFeasible(t *testing.T) {
	s, err := NewSettings(validArgs())
	require.NoError(t, err)

	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a, err := RandomAllocation(s, rng)
		require.NoError(t, err)
		require.NoError(t, ValidateAllocation(s, a))
	}
}

func TestRandomAllocationDeterministic(t *testing.T) {
	s, err := NewSettings(validArgs())
	require.NoError(t, err)

	a1, err := RandomAllocation(s, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	a2, err := RandomAllocation(s, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a1, a2)
}

func TestRandomAllocationTightCapacity(t *testing.T) {
	// Суммарная вместимость равна числу модулей:
	// единственная свобода — порядок заполнения
	s, err := NewSettings(3, 6,
		[]int{2, 2, 2},
		[]float64{1, 1, 1},
		make([]float64, 18),
	)
	require.NoError(t, err)

	for seed := int64(0); seed < 50; seed++ {
		a, err := RandomAllocation(s, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)
		require.NoError(t, ValidateAllocation(s, a))
	}
}

func TestRandomAllocationNilRng(t *testing.T) {
	s, err := NewSettings(validArgs())
	require.NoError(t, err)

	_, err = RandomAllocation(s, nil)
	require.Error(t, err)
}

func TestRandomSettingsFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		s := RandomSettings(4, 30, 1, 5, 100.0, 10.0, rng)
		require.NoError(t, s.Validate())
		require.GreaterOrEqual(t, s.TotalCapacity(), s.NumModules)
	}
}

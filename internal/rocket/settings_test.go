package rocket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validArgs() (int, int, []int, []float64, []float64) {
	capacities := []int{3, 2}
	baseFuel := []float64{10, 5}
	costMatrix := []float64{
		1, 2, 3, 4,
		4, 3, 2, 1,
	}
	return 2, 4, capacities, baseFuel, costMatrix
}

func TestNewSettingsValid(t *testing.T) {
	s, err := NewSettings(validArgs())
	require.NoError(t, err)
	require.Equal(t, 5, s.TotalCapacity())
	require.Equal(t, 3.0, s.Cost(0, 2))
	require.Equal(t, 4.0, s.Cost(1, 0))
}

func TestNewSettingsConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero rockets", func(s *Settings) { s.NumRockets = 0 }},
		{"zero modules", func(s *Settings) { s.NumModules = 0 }},
		{"capacities length mismatch", func(s *Settings) { s.Capacities = []int{3} }},
		{"baseFuel length mismatch", func(s *Settings) { s.BaseFuel = []float64{10} }},
		{"costMatrix length mismatch", func(s *Settings) { s.CostMatrix = s.CostMatrix[:5] }},
		{"negative capacity", func(s *Settings) { s.Capacities = []int{-1, 2} }},
		{"negative base fuel", func(s *Settings) { s.BaseFuel = []float64{-0.1, 5} }},
		{"negative cost", func(s *Settings) { s.CostMatrix[3] = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			numRockets, numModules, capacities, baseFuel, costMatrix := validArgs()
			s := &Settings{
				NumRockets: numRockets,
				NumModules: numModules,
				Capacities: capacities,
				BaseFuel:   baseFuel,
				CostMatrix: costMatrix,
			}
			tc.mutate(s)
			err := s.Validate()
			require.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewSettingsInfeasible(t *testing.T) {
	// Суммарная вместимость 2 < 3 модулей
	_, err := NewSettings(2, 3,
		[]int{1, 1},
		[]float64{1, 1},
		[]float64{1, 1, 1, 1, 1, 1},
	)
	require.ErrorIs(t, err, ErrInfeasible)
	require.NotErrorIs(t, err, ErrConfiguration)
}

func TestValidateAllocation(t *testing.T) {
	s, err := NewSettings(validArgs())
	require.NoError(t, err)

	require.NoError(t, ValidateAllocation(s, Allocation{0, 0, 1, 1}))
	require.True(t, Allocation{0, 0, 0, 1}.Feasible(s))

	// Неверная длина
	require.ErrorIs(t, ValidateAllocation(s, Allocation{0, 1}), ErrInvariant)
	// Номер ракеты вне диапазона
	require.ErrorIs(t, ValidateAllocation(s, Allocation{0, 0, 1, 2}), ErrInvariant)
	// Перегрузка ракеты 1 (вместимость 2)
	require.ErrorIs(t, ValidateAllocation(s, Allocation{1, 1, 1, 0}), ErrInvariant)
}

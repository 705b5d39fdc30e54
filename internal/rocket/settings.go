package rocket

import (
	"errors"
	"fmt"
)

// Классы ошибок модели.
// Ошибки конфигурации и неразрешимости возникают только при построении
// условий задачи; нарушение инварианта означает ошибку в самом алгоритме.
var (
	ErrConfiguration = errors.New("invalid problem settings")
	ErrInfeasible    = errors.New("infeasible problem")
	ErrInvariant     = errors.New("algorithm invariant violation")
)

// Settings — неизменяемое описание задачи распределения модулей по ракетам.
type Settings struct {
	NumRockets int
	NumModules int
	// Capacities length must be NumRockets.
	Capacities []int
	// BaseFuel length must be NumRockets.
	BaseFuel []float64
	// CostMatrix length must be NumRockets*NumModules (row-major).
	CostMatrix []float64
}

// NewSettings возвращает провалидированные условия задачи.
// Неразрешимая задача (суммарная вместимость меньше числа модулей)
// отклоняется сразу, а не в процессе поиска.
func NewSettings(numRockets, numModules int, capacities []int, baseFuel, costMatrix []float64) (*Settings, error) {
	s := &Settings{
		NumRockets: numRockets,
		NumModules: numModules,
		Capacities: capacities,
		BaseFuel:   baseFuel,
		CostMatrix: costMatrix,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if total := s.TotalCapacity(); total < s.NumModules {
		return nil, fmt.Errorf("%w: total capacity %d < %d modules", ErrInfeasible, total, s.NumModules)
	}
	return s, nil
}

// Validate проверяет размерности и неотрицательность всех величин.
func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: settings is nil", ErrConfiguration)
	}
	if s.NumRockets <= 0 {
		return fmt.Errorf("%w: numRockets must be > 0 (got %d)", ErrConfiguration, s.NumRockets)
	}
	if s.NumModules <= 0 {
		return fmt.Errorf("%w: numModules must be > 0 (got %d)", ErrConfiguration, s.NumModules)
	}
	if len(s.Capacities) != s.NumRockets {
		return fmt.Errorf("%w: capacities length must be %d (got %d)", ErrConfiguration, s.NumRockets, len(s.Capacities))
	}
	if len(s.BaseFuel) != s.NumRockets {
		return fmt.Errorf("%w: baseFuel length must be %d (got %d)", ErrConfiguration, s.NumRockets, len(s.BaseFuel))
	}
	if len(s.CostMatrix) != s.NumRockets*s.NumModules {
		return fmt.Errorf("%w: costMatrix length must be rockets*modules=%d (got %d)",
			ErrConfiguration, s.NumRockets*s.NumModules, len(s.CostMatrix))
	}
	for i, c := range s.Capacities {
		if c < 0 {
			return fmt.Errorf("%w: capacities[%d] must be >= 0 (got %d)", ErrConfiguration, i, c)
		}
	}
	for i, f := range s.BaseFuel {
		if f < 0 {
			return fmt.Errorf("%w: baseFuel[%d] must be >= 0 (got %f)", ErrConfiguration, i, f)
		}
	}
	for i, c := range s.CostMatrix {
		if c < 0 {
			return fmt.Errorf("%w: costMatrix[%d] must be >= 0 (got %f)", ErrConfiguration, i, c)
		}
	}
	return nil
}

// TotalCapacity возвращает суммарную вместимость всех ракет.
func (s *Settings) TotalCapacity() int {
	total := 0
	for _, c := range s.Capacities {
		total += c
	}
	return total
}

// Cost возвращает переменный расход топлива за перевозку модуля на ракете.
func (s *Settings) Cost(rocket, module int) float64 {
	return s.CostMatrix[rocket*s.NumModules+module]
}

package rocket

import "fmt"

// Evaluator вычисляет расход топлива для распределения модулей.
type Evaluator struct {
	s *Settings
}

func NewEvaluator(s *Settings) (*Evaluator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Evaluator{s: s}, nil
}

// Fuel возвращает суммарный расход топлива:
// для каждой ракеты с хотя бы одним модулем — базовый расход
// плюс переменный расход за каждый её модуль.
// Пустые ракеты топлива не расходуют.
// Функция детерминирована и безопасна для конкурентного вызова.
func (e *Evaluator) Fuel(a Allocation) (float64, error) {
	if e == nil || e.s == nil {
		return 0, fmt.Errorf("nil evaluator")
	}
	if err := ValidateAllocation(e.s, a); err != nil {
		return 0, err
	}

	counts := make([]int, e.s.NumRockets)
	total := 0.0
	for m, r := range a {
		total += e.s.Cost(r, m)
		counts[r]++
	}
	for r, cnt := range counts {
		if cnt > 0 {
			total += e.s.BaseFuel[r]
		}
	}
	return total, nil
}

func (e *Evaluator) MustFuel(a Allocation) float64 {
	fuel, err := e.Fuel(a)
	if err != nil {
		panic(err)
	}
	return fuel
}

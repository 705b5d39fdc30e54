package rocket

import "fmt"

// Allocation задаёт распределение модулей по ракетам:
// индекс — модуль, значение — номер ракеты.
type Allocation []int

// Clone возвращает независимую копию распределения.
func (a Allocation) Clone() Allocation {
	out := make(Allocation, len(a))
	copy(out, a)
	return out
}

// ValidateAllocation проверяет покрытие и вместимость:
// каждый модуль размещён ровно один раз, номера ракет корректны,
// ни одна ракета не перегружена. Нарушение — ошибка алгоритма,
// а не пользовательской конфигурации.
func ValidateAllocation(s *Settings, a Allocation) error {
	if len(a) != s.NumModules {
		return fmt.Errorf("%w: allocation length must be %d (got %d)", ErrInvariant, s.NumModules, len(a))
	}
	counts := make([]int, s.NumRockets)
	for m, r := range a {
		if r < 0 || r >= s.NumRockets {
			return fmt.Errorf("%w: allocation[%d]=%d out of range [0,%d)", ErrInvariant, m, r, s.NumRockets)
		}
		counts[r]++
	}
	for r, cnt := range counts {
		if cnt > s.Capacities[r] {
			return fmt.Errorf("%w: rocket %d carries %d modules (capacity %d)", ErrInvariant, r, cnt, s.Capacities[r])
		}
	}
	return nil
}

// Feasible проверяет допустимость распределения.
func (a Allocation) Feasible(s *Settings) bool {
	return ValidateAllocation(s, a) == nil
}

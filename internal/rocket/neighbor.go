package rocket

import "math/rand"

// maxMoveAttempts ограничивает число попыток подобрать ракету
// для переносимого модуля. Цикл обязан быть конечным.
const maxMoveAttempts = 8

// Neighbor строит соседнее распределение: до patchSize случайных модулей
// переносятся на случайные ракеты со свободной вместимостью.
// Родительское распределение не изменяется.
// Модуль, для которого за maxMoveAttempts попыток не нашлась ракета,
// остаётся на исходной — результат допустим по построению.
func Neighbor(s *Settings, parent Allocation, patchSize int, rng *rand.Rand) Allocation {
	a := parent.Clone()
	if patchSize <= 0 || s.NumRockets < 2 {
		return a
	}
	if patchSize > s.NumModules {
		patchSize = s.NumModules
	}

	counts := make([]int, s.NumRockets)
	for _, r := range a {
		counts[r]++
	}

	for _, m := range rng.Perm(s.NumModules)[:patchSize] {
		cur := a[m]
		counts[cur]--

		moved := false
		for try := 0; try < maxMoveAttempts; try++ {
			r := rng.Intn(s.NumRockets)
			if counts[r] < s.Capacities[r] {
				a[m] = r
				counts[r]++
				moved = true
				break
			}
		}
		if !moved {
			// Возврат модуля на исходную ракету
			counts[cur]++
		}
	}
	return a
}

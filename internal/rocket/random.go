package rocket

import (
	"fmt"
	"math/rand"
)

// RandomAllocation строит случайное допустимое распределение:
// модули перемешиваются, каждый модуль помещается на равновероятно
// выбранную ракету со свободной вместимостью.
// При разрешимой задаче свободная ракета существует всегда;
// исчерпание вместимости означает ошибку в алгоритме.
func RandomAllocation(s *Settings, rng *rand.Rand) (Allocation, error) {
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	remaining := make([]int, s.NumRockets)
	copy(remaining, s.Capacities)

	// Список ракет с ненулевой свободной вместимостью
	open := make([]int, 0, s.NumRockets)
	for r, c := range remaining {
		if c > 0 {
			open = append(open, r)
		}
	}

	a := make(Allocation, s.NumModules)
	for _, m := range rng.Perm(s.NumModules) {
		if len(open) == 0 {
			return nil, fmt.Errorf("%w: no rocket with spare capacity for module %d", ErrInvariant, m)
		}
		k := rng.Intn(len(open))
		r := open[k]
		a[m] = r
		remaining[r]--
		if remaining[r] == 0 {
			open[k] = open[len(open)-1]
			open = open[:len(open)-1]
		}
	}
	return a, nil
}

// RandomSettings генерирует случайные условия задачи для бенчмарков.
// Вместимость при необходимости добирается до числа модулей,
// чтобы задача гарантированно была разрешимой.
func RandomSettings(numRockets, numModules, capMin, capMax int, baseFuelMax, costMax float64, rng *rand.Rand) *Settings {
	if rng == nil {
		panic("генератор случайных чисел не инициализирован (nil)")
	}
	if numRockets <= 0 || numModules <= 0 {
		panic("invalid problem dimensions")
	}
	if capMin < 0 || capMax < capMin {
		panic("invalid capacity bounds")
	}
	if baseFuelMax < 0 || costMax < 0 {
		panic("invalid fuel bounds")
	}

	capacities := make([]int, numRockets)
	total := 0
	span := capMax - capMin + 1
	for r := range capacities {
		capacities[r] = capMin
		if span > 1 {
			capacities[r] += rng.Intn(span)
		}
		total += capacities[r]
	}
	for total < numModules {
		capacities[rng.Intn(numRockets)]++
		total++
	}

	baseFuel := make([]float64, numRockets)
	for r := range baseFuel {
		baseFuel[r] = rng.Float64() * baseFuelMax
	}

	costMatrix := make([]float64, numRockets*numModules)
	for i := range costMatrix {
		costMatrix[i] = rng.Float64() * costMax
	}

	s, err := NewSettings(numRockets, numModules, capacities, baseFuel, costMatrix)
	if err != nil {
		panic(err)
	}
	return s
}

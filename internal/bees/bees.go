package bees

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"rocketAlloc/internal/opt"
	"rocketAlloc/internal/rocket"
)

// Solver — реализация пчелиного алгоритма для задачи распределения
// модулей по ракетам.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый bees-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
// Используется в фабриках.
func New(cfg Config, rng *rand.Rand) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}
	return &Solver{Cfg: cfg, Rng: rng}, nil
}

// site — один участок популяции: распределение, его стоимость
// и счётчик итераций без улучшения.
type site struct {
	alloc      rocket.Allocation
	fuel       float64
	stagnation int
}

// Solve — реализация эвристики.
func (s *Solver) Solve(ctx context.Context, set *rocket.Settings) (opt.Result, error) {
	start := time.Now()

	// Проверка корректности входных данных и конфигурации.
	// Неразрешимая задача отклоняется до первой итерации.
	if err := set.Validate(); err != nil {
		return opt.Result{}, err
	}
	if total := set.TotalCapacity(); total < set.NumModules {
		return opt.Result{}, fmt.Errorf("%w: total capacity %d < %d modules", rocket.ErrInfeasible, total, set.NumModules)
	}
	if err := s.Cfg.Validate(); err != nil {
		return opt.Result{}, err
	}
	if s.Rng == nil {
		return opt.Result{}, fmt.Errorf("генератор случайных чисел не инициализирован (nil)")
	}

	// Оценщик значения целевой функции
	eval, err := rocket.NewEvaluator(set)
	if err != nil {
		return opt.Result{}, err
	}

	// Разведка: начальная популяция случайных решений
	pop := make([]site, s.Cfg.Population)
	for i := range pop {
		alloc, err := rocket.RandomAllocation(set, s.Rng)
		if err != nil {
			return opt.Result{}, err
		}
		pop[i] = site{alloc: alloc, fuel: eval.MustFuel(alloc)}
	}
	evals := s.Cfg.Population

	// Глобально лучшее решение
	best := pop[0].alloc.Clone()
	bestFuel := pop[0].fuel
	for i := 1; i < len(pop); i++ {
		if pop[i].fuel < bestFuel {
			bestFuel = pop[i].fuel
			best = pop[i].alloc.Clone()
		}
	}

	searchSites := s.Cfg.EliteSites + s.Cfg.BestSites
	beesPerIter := s.Cfg.EliteSites*s.Cfg.EliteBees + s.Cfg.BestSites*s.Cfg.BestBees

	history := make([]float64, 0, s.Cfg.Iterations)
	patch := s.Cfg.PatchSize
	noImprove := 0
	stopped := ""

	iter := 0
	for ; iter < s.Cfg.Iterations; iter++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Allocation:  best,
				Fuel:        bestFuel,
				Evaluations: evals,
				Iterations:  iter,
				History:     history,
				Duration:    time.Since(start),
				Meta:        map[string]any{"stopped": "context"},
			}, err
		}

		// Сортировка популяции по возрастанию расхода топлива
		sort.Slice(pop, func(i, j int) bool {
			return pop[i].fuel < pop[j].fuel
		})

		// Целочисленный размер окрестности на текущей итерации
		patchSize := int(math.Round(patch))
		if patchSize < 1 {
			patchSize = 1
		}

		// Локальный поиск вокруг элитных и перспективных участков
		found := s.exploreSites(set, eval, pop[:searchSites], patchSize)
		evals += beesPerIter

		// Отбор: участок принимает соседа только при строгом улучшении
		for i := 0; i < searchSites; i++ {
			if found[i].improved {
				pop[i].alloc = found[i].alloc
				pop[i].fuel = found[i].fuel
				pop[i].stagnation = 0
			} else {
				pop[i].stagnation++
			}

			// Исчерпавший лимит стагнации участок покидается
			if pop[i].stagnation >= s.Cfg.StagnationLimit {
				alloc, err := rocket.RandomAllocation(set, s.Rng)
				if err != nil {
					return opt.Result{}, err
				}
				pop[i] = site{alloc: alloc, fuel: eval.MustFuel(alloc)}
				evals++
			}
		}

		// Разведчики: оставшиеся участки замещаются случайными решениями
		for i := searchSites; i < len(pop); i++ {
			alloc, err := rocket.RandomAllocation(set, s.Rng)
			if err != nil {
				return opt.Result{}, err
			}
			pop[i] = site{alloc: alloc, fuel: eval.MustFuel(alloc)}
			evals++
		}

		// Обновление глобально лучшего решения
		improved := false
		for i := range pop {
			if pop[i].fuel < bestFuel {
				bestFuel = pop[i].fuel
				best = pop[i].alloc.Clone()
				improved = true
			}
		}
		history = append(history, bestFuel)

		// Ранняя остановка при длительном отсутствии улучшения
		if improved {
			noImprove = 0
		} else {
			noImprove++
			if s.Cfg.NoImproveLimit > 0 && noImprove >= s.Cfg.NoImproveLimit {
				stopped = "no_improve"
				iter++
				break
			}
		}

		// Затухание размера окрестности
		patch *= s.Cfg.PatchDecay
		if patch < s.Cfg.PatchFloor {
			patch = s.Cfg.PatchFloor
		}
	}

	// Защитная проверка итогового распределения
	if err := rocket.ValidateAllocation(set, best); err != nil {
		return opt.Result{}, err
	}

	meta := map[string]any{
		"population":  s.Cfg.Population,
		"elite_sites": s.Cfg.EliteSites,
		"best_sites":  s.Cfg.BestSites,
		"patch_final": patch,
	}
	if stopped != "" {
		meta["stopped"] = stopped
	}

	return opt.Result{
		Allocation:  best,
		Fuel:        bestFuel,
		Evaluations: evals,
		Iterations:  iter,
		History:     history,
		Duration:    time.Since(start),
		Meta:        meta,
	}, nil
}

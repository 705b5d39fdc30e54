package rnd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"rocketAlloc/internal/opt"
	"rocketAlloc/internal/rocket"
)

// Solver — базовый солвер равномерной случайной выборки.
// Используется как точка отсчёта для сравнения с эвристиками.
type Solver struct {
	Cfg Config
	Rng *rand.Rand
}

// New возвращает новый RND-солвер с валидацией конфигурации, с использованием инициализированного генератора случайных чисел.
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

// Solve перебирает случайные допустимые распределения и запоминает лучшее.
func (s *Solver) Solve(ctx context.Context, set *rocket.Settings) (opt.Result, error) {
	start := time.Now()

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

	eval, err := rocket.NewEvaluator(set)
	if err != nil {
		return opt.Result{}, err
	}

	var best rocket.Allocation
	bestFuel := 0.0
	evals := 0

	for i := 0; i < s.Cfg.Samples; i++ {
		// Для поддержки отмены через context
		if err := ctx.Err(); err != nil {
			return opt.Result{
				Allocation:  best,
				Fuel:        bestFuel,
				Evaluations: evals,
				Iterations:  i,
				Duration:    time.Since(start),
				Meta:        map[string]any{"stopped": "context"},
			}, err
		}

		alloc, err := rocket.RandomAllocation(set, s.Rng)
		if err != nil {
			return opt.Result{}, err
		}
		fuel := eval.MustFuel(alloc)
		evals++

		if best == nil || fuel < bestFuel {
			best = alloc
			bestFuel = fuel
		}
	}

	return opt.Result{
		Allocation:  best,
		Fuel:        bestFuel,
		Evaluations: evals,
		Iterations:  s.Cfg.Samples,
		Duration:    time.Since(start),
		Meta: map[string]any{
			"samples": s.Cfg.Samples,
		},
	}, nil
}

package opt

import (
	"context"
	"time"

	"rocketAlloc/internal/rocket"
)

type Optimizer interface {
	Solve(ctx context.Context, s *rocket.Settings) (Result, error)
}

type Result struct {
	Allocation  rocket.Allocation
	Fuel        float64
	Evaluations int
	Iterations  int
	// History — глобально лучший расход топлива по итерациям.
	History  []float64
	Duration time.Duration
	Meta     map[string]any
}

package bench

import (
	"context"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"rocketAlloc/internal/opt"
	"rocketAlloc/internal/rocket"
)

type Algorithm struct {
	Name    string
	Factory func(seed int64) opt.Optimizer
}

type Case struct {
	Rockets      int
	Modules      int
	InstanceSeed int64
	// Settings, если задано, используется вместо случайной генерации
	// (например, задача из файла).
	Settings *rocket.Settings
}

type Record struct {
	Algo    string
	Rockets int
	Modules int
	Runs    int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	FuelBest float64
	FuelMean float64
	FuelStd  float64
}

type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
}

func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	set := c.Settings
	if set == nil {
		instRng := rand.New(rand.NewSource(c.InstanceSeed))
		capMax := 2*c.Modules/c.Rockets + 1
		set = rocket.RandomSettings(c.Rockets, c.Modules, 1, capMax, 100.0, 10.0, instRng)
	}

	fuels := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)

		op := algo.Factory(runSeed)

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}
		start := time.Now()
		res, err := op.Solve(runCtx, set)
		dur := time.Since(start)
		cancel()

		if err != nil && runCtx.Err() != nil {
			return Record{}, fmt.Errorf("run %d: cancelled/timeout: %w", i, err)
		}
		if err != nil {
			return Record{}, fmt.Errorf("run %d: solve error: %w", i, err)
		}
		if err := rocket.ValidateAllocation(set, res.Allocation); err != nil {
			return Record{}, fmt.Errorf("run %d: %w", i, err)
		}

		fuels = append(fuels, res.Fuel)
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	fStats := CalcFloatStats(fuels)
	tStats := CalcFloatStats(timesMs)

	return Record{
		Algo:    algo.Name,
		Rockets: set.NumRockets,
		Modules: set.NumModules,
		Runs:    r.Runs,

		TimeBestMs: tStats.Best,
		TimeMeanMs: tStats.Mean,
		TimeStdMs:  tStats.Std,

		FuelBest: fStats.Best,
		FuelMean: fStats.Mean,
		FuelStd:  fStats.Std,
	}, nil
}

func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "rockets", "modules", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"fuel_best", "fuel_mean", "fuel_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Algo,
			itoa(r.Rockets),
			itoa(r.Modules),
			itoa(r.Runs),

			ftoa(r.TimeBestMs),
			ftoa(r.TimeMeanMs),
			ftoa(r.TimeStdMs),

			ftoa(r.FuelBest),
			ftoa(r.FuelMean),
			ftoa(r.FuelStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

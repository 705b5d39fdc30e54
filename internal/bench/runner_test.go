package bench

import (
	"context"
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rocketAlloc/internal/opt"
	"rocketAlloc/internal/rnd"
	"rocketAlloc/internal/rocket"
)

func rndAlgorithm(samples int) Algorithm {
	return Algorithm{
		Name: "RND",
		Factory: func(seed int64) opt.Optimizer {
			solver, _ := rnd.New(rnd.Config{Samples: samples}, rand.New(rand.NewSource(seed)))
			return solver
		},
	}
}

func TestRunCaseGeneratedInstance(t *testing.T) {
	r := Runner{Runs: 3, BaseSeed: 100}
	c := Case{Rockets: 3, Modules: 12, InstanceSeed: 7}

	rec, err := r.RunCase(context.Background(), c, rndAlgorithm(200))
	require.NoError(t, err)
	require.Equal(t, "RND", rec.Algo)
	require.Equal(t, 3, rec.Rockets)
	require.Equal(t, 12, rec.Modules)
	require.Equal(t, 3, rec.Runs)
	require.LessOrEqual(t, rec.FuelBest, rec.FuelMean)
	require.Greater(t, rec.FuelBest, 0.0)
}

func TestRunCaseExplicitSettings(t *testing.T) {
	set, err := rocket.NewSettings(2, 4,
		[]int{3, 2},
		[]float64{10, 5},
		[]float64{
			1, 2, 3, 4,
			4, 3, 2, 1,
		},
	)
	require.NoError(t, err)

	r := Runner{Runs: 2, BaseSeed: 1}
	c := Case{Settings: set}

	rec, err := r.RunCase(context.Background(), c, rndAlgorithm(100))
	require.NoError(t, err)
	require.Equal(t, 2, rec.Rockets)
	require.Equal(t, 4, rec.Modules)
}

func TestRunCaseDeterministic(t *testing.T) {
	r := Runner{Runs: 2, BaseSeed: 50}
	c := Case{Rockets: 4, Modules: 16, InstanceSeed: 3}

	rec1, err := r.RunCase(context.Background(), c, rndAlgorithm(150))
	require.NoError(t, err)
	rec2, err := r.RunCase(context.Background(), c, rndAlgorithm(150))
	require.NoError(t, err)

	require.Equal(t, rec1.FuelBest, rec2.FuelBest)
	require.Equal(t, rec1.FuelMean, rec2.FuelMean)
	require.Equal(t, rec1.FuelStd, rec2.FuelStd)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results", "bench.csv")

	records := []Record{
		{
			Algo: "RND", Rockets: 3, Modules: 12, Runs: 2,
			TimeBestMs: 1.5, TimeMeanMs: 2.0, TimeStdMs: 0.5,
			FuelBest: 90.0, FuelMean: 95.0, FuelStd: 5.0,
		},
	}
	require.NoError(t, WriteCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "algo", rows[0][0])
	require.Equal(t, "fuel_std", rows[0][9])
	require.Equal(t, "RND", rows[1][0])
	require.Equal(t, "12", rows[1][2])
}

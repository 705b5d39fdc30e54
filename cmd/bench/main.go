package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"rocketAlloc/internal/bees"
	"rocketAlloc/internal/bench"
	"rocketAlloc/internal/opt"
	"rocketAlloc/internal/rnd"
)

// Фабрики

func newBeesFactory(cfg bees.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := bees.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func newRNDFactory(cfg rnd.Config) func(seed int64) opt.Optimizer {
	return func(seed int64) opt.Optimizer {
		solver, _ := rnd.New(cfg, rand.New(rand.NewSource(seed)))
		return solver
	}
}

func main() {
	// CLI флаги для настройки параметров алгоритмов и политики запуска
	var (
		out          = flag.String("out", "artifacts/results.csv", "путь к выходному CSV-файлу")
		pairs        = flag.String("pairs", "4x30,8x60,16x120", "конфигурации: количество ракет Х количество модулей (через запятую)")
		algos        = flag.String("algos", "BEES,RND", "список алгоритмов: BEES, RND (через запятую)")
		runs         = flag.Int("runs", 30, "количество запусков каждого алгоритма (с разными сидами)")
		baseSeed     = flag.Int64("seed", 1000, "базовый сид для запусков алгоритмов")
		instanceSeed = flag.Int64("instance_seed", 777, "базовый сид для генерации экземпляров задачи (фиксирован для конфигурации)")
		perRunTO     = flag.Duration("per_run_timeout", 0, "таймаут одного запуска; 0 — без ограничения")
		problemPath  = flag.String("problem", "", "путь к YAML-файлу с условиями задачи (вместо случайной генерации)")

		// --- Пчелиный алгоритм ---
		beesPop        = flag.Int("bees_pop", 40, "размер популяции")
		beesEliteSites = flag.Int("bees_elite_sites", 3, "число элитных участков")
		beesBestSites  = flag.Int("bees_best_sites", 5, "число перспективных участков")
		beesEliteBees  = flag.Int("bees_elite_bees", 7, "число пчёл на элитный участок")
		beesBestBees   = flag.Int("bees_best_bees", 3, "число пчёл на перспективный участок")
		beesPatch      = flag.Float64("bees_patch", 4.0, "начальный размер окрестности (число переносимых модулей)")
		beesDecay      = flag.Float64("bees_decay", 0.98, "коэффициент затухания окрестности за итерацию")
		beesFloor      = flag.Float64("bees_floor", 1.0, "нижняя граница размера окрестности")
		beesStagnation = flag.Int("bees_stagnation", 15, "лимит итераций стагнации до покидания участка")
		beesIter       = flag.Int("bees_iter", 500, "количество итераций")
		beesNoImprove  = flag.Int("bees_no_improve", 0, "ранняя остановка после N итераций без улучшения (0 — отключено)")
		beesWorkers    = flag.Int("bees_workers", 0, "число воркеров локального поиска (0/1 — последовательно)")

		// --- Случайная выборка ---
		rndSamples = flag.Int("rnd_samples", 20000, "количество случайных выборок")
	)
	flag.Parse()

	ctx := context.Background()

	var cases []bench.Case
	if *problemPath != "" {
		set, err := loadProblem(*problemPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Ошибка загрузки задачи:", err)
			os.Exit(2)
		}
		cases = []bench.Case{{
			Rockets:  set.NumRockets,
			Modules:  set.NumModules,
			Settings: set,
		}}
	} else {
		var err error
		cases, err = parsePairs(*pairs, *instanceSeed)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Конфликт:", err)
			os.Exit(2)
		}
	}

	beesCfg := bees.Config{
		Population:      *beesPop,
		EliteSites:      *beesEliteSites,
		BestSites:       *beesBestSites,
		EliteBees:       *beesEliteBees,
		BestBees:        *beesBestBees,
		PatchSize:       *beesPatch,
		PatchDecay:      *beesDecay,
		PatchFloor:      *beesFloor,
		StagnationLimit: *beesStagnation,
		Iterations:      *beesIter,
		NoImproveLimit:  *beesNoImprove,
		Workers:         *beesWorkers,
	}
	if err := beesCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт в конфигурации пчелиного алгоритма:", err)
		os.Exit(2)
	}

	rndCfg := rnd.Config{
		Samples: *rndSamples,
	}
	if err := rndCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Конфликт в конфигурации случайной выборки:", err)
		os.Exit(2)
	}

	available := map[string]bench.Algorithm{
		"BEES": {Name: "BEES", Factory: newBeesFactory(beesCfg)},
		"RND":  {Name: "RND", Factory: newRNDFactory(rndCfg)},
	}

	var selected []bench.Algorithm
	for _, a := range splitCSV(*algos) {
		al, ok := available[a]
		if !ok {
			fmt.Fprintf(os.Stderr, "Алгоритм не предоставлен в программе %q; доступные: %v\n", a, keys(available))
			os.Exit(2)
		}
		selected = append(selected, al)
	}

	runner := bench.Runner{
		Runs:          *runs,
		BaseSeed:      *baseSeed,
		PerRunTimeout: *perRunTO,
	}

	var records []bench.Record
	for _, c := range cases {
		for _, a := range selected {
			fmt.Printf("Запущен алгоритм %s; %d ракет %d модулей (общее кол-во запусков=%d)...\n", a.Name, c.Rockets, c.Modules, runner.Runs)

			rec, err := runner.RunCase(ctx, c, a)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Ошибка:", err)
				os.Exit(1)
			}
			records = append(records, rec)

			fmt.Printf("  Расход топлива: лучший=%.3f средний=%.3f стандартное отклонение=%.3f | Время: среднее=%.2fms среднее отклонение=%.2fms\n",
				rec.FuelBest, rec.FuelMean, rec.FuelStd,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка при записи в CSV:", err)
		os.Exit(1)
	}
	fmt.Println("Saved:", *out)
}

// helpers

func parsePairs(s string, baseInstanceSeed int64) ([]bench.Case, error) {
	parts := splitCSV(s)
	cases := make([]bench.Case, 0, len(parts))

	for i, p := range parts {
		rm := strings.Split(p, "x")
		if len(rm) != 2 {
			return nil, fmt.Errorf("пара %q невалидной схемы, пример: 8x60", p)
		}
		rockets, err := atoiStrict(rm[0])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества ракет: %w", p, err)
		}
		modules, err := atoiStrict(rm[1])
		if err != nil {
			return nil, fmt.Errorf("пара %q: ошибка парсинга количества модулей: %w", p, err)
		}
		if rockets <= 0 || modules <= 0 {
			return nil, fmt.Errorf("пара %q: количество ракет и модулей должно быть > 0", p)
		}

		seed := baseInstanceSeed + int64(i)*10_000 + int64(rockets)*100 + int64(modules)

		cases = append(cases, bench.Case{
			Rockets:      rockets,
			Modules:      modules,
			InstanceSeed: seed,
		})
	}

	return cases, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func atoiStrict(s string) (int, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

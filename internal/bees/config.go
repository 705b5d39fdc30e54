package bees

import "fmt"

type Config struct {
	Population int

	EliteSites int
	BestSites  int

	EliteBees int
	BestBees  int

	PatchSize  float64
	PatchDecay float64
	PatchFloor float64

	StagnationLimit int

	Iterations     int
	NoImproveLimit int

	Workers int
}

func DefaultConfig() Config {
	return Config{
		Population: 40,

		EliteSites: 3,
		BestSites:  5,

		EliteBees: 7,
		BestBees:  3,

		PatchSize:  4.0,
		PatchDecay: 0.98,
		PatchFloor: 1.0,

		StagnationLimit: 15,

		Iterations:     500,
		NoImproveLimit: 0,

		Workers: 0,
	}
}

func (c Config) Validate() error {
	if c.Population <= 1 {
		return fmt.Errorf(
			"размер популяции должен быть > 1 (получено %d)",
			c.Population,
		)
	}
	if c.EliteSites <= 0 {
		return fmt.Errorf(
			"число элитных участков должно быть > 0 (получено %d)",
			c.EliteSites,
		)
	}
	if c.BestSites < 0 {
		return fmt.Errorf(
			"число перспективных участков должно быть >= 0 (получено %d)",
			c.BestSites,
		)
	}
	if c.EliteSites+c.BestSites > c.Population {
		return fmt.Errorf(
			"сумма элитных и перспективных участков должна быть <= размера популяции (получено %d > %d)",
			c.EliteSites+c.BestSites,
			c.Population,
		)
	}
	if c.EliteBees <= 0 {
		return fmt.Errorf(
			"число пчёл на элитный участок должно быть > 0 (получено %d)",
			c.EliteBees,
		)
	}
	if c.BestSites > 0 && c.BestBees <= 0 {
		return fmt.Errorf(
			"число пчёл на перспективный участок должно быть > 0 (получено %d)",
			c.BestBees,
		)
	}
	if c.PatchSize < 1 {
		return fmt.Errorf(
			"начальный размер окрестности должен быть >= 1 (получено %f)",
			c.PatchSize,
		)
	}
	if c.PatchDecay <= 0 || c.PatchDecay > 1 {
		return fmt.Errorf(
			"коэффициент затухания окрестности должен лежать в интервале (0,1] (получено %f)",
			c.PatchDecay,
		)
	}
	if c.PatchFloor < 1 || c.PatchFloor > c.PatchSize {
		return fmt.Errorf(
			"нижняя граница окрестности должна лежать в диапазоне [1, PatchSize] (получено %f)",
			c.PatchFloor,
		)
	}
	if c.StagnationLimit <= 0 {
		return fmt.Errorf(
			"лимит стагнации участка должен быть > 0 (получено %d)",
			c.StagnationLimit,
		)
	}
	if c.Iterations <= 0 {
		return fmt.Errorf(
			"количество итераций должно быть > 0 (получено %d)",
			c.Iterations,
		)
	}
	if c.NoImproveLimit < 0 {
		return fmt.Errorf(
			"лимит итераций без улучшения должен быть >= 0 (получено %d)",
			c.NoImproveLimit,
		)
	}
	if c.Workers < 0 {
		return fmt.Errorf(
			"число воркеров должно быть >= 0 (получено %d)",
			c.Workers,
		)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"rocketAlloc/internal/rocket"
)

// problemFile — схема YAML-файла с условиями задачи.
// Число ракет — длина capacities, число модулей — длина строки cost_matrix.
type problemFile struct {
	Capacities []int       `yaml:"capacities"`
	BaseFuel   []float64   `yaml:"base_fuel"`
	CostMatrix [][]float64 `yaml:"cost_matrix"`
}

// loadProblem читает условия задачи из YAML-файла.
func loadProblem(path string) (*rocket.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf problemFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	numRockets := len(pf.Capacities)
	if numRockets == 0 {
		return nil, fmt.Errorf("%s: capacities не задано", path)
	}
	if len(pf.CostMatrix) != numRockets {
		return nil, fmt.Errorf("%s: cost_matrix должна содержать %d строк (получено %d)",
			path, numRockets, len(pf.CostMatrix))
	}

	numModules := len(pf.CostMatrix[0])
	costMatrix := make([]float64, 0, numRockets*numModules)
	for r, row := range pf.CostMatrix {
		if len(row) != numModules {
			return nil, fmt.Errorf("%s: строка %d cost_matrix имеет длину %d (ожидалось %d)",
				path, r, len(row), numModules)
		}
		costMatrix = append(costMatrix, row...)
	}

	return rocket.NewSettings(numRockets, numModules, pf.Capacities, pf.BaseFuel, costMatrix)
}

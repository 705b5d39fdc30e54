package bees

import (
	"math/rand"
	"sync"

	"rocketAlloc/internal/rocket"
)

// localResult — лучший сосед, найденный вокруг одного участка.
type localResult struct {
	alloc    rocket.Allocation
	fuel     float64
	improved bool
}

// exploreSites выполняет локальный поиск вокруг участков sites.
// Первые EliteSites участков получают EliteBees соседей, остальные — BestBees.
//
// Каждому участку выделяется дочерний генератор, сиды которых берутся
// из основного потока строго в порядке участков — результат побитово
// совпадает при любом числе воркеров. Популяция внутри не изменяется:
// запись идёт только в соответствующий элемент результата.
func (s *Solver) exploreSites(set *rocket.Settings, eval *rocket.Evaluator, sites []site, patchSize int) []localResult {
	seeds := make([]int64, len(sites))
	for i := range seeds {
		seeds[i] = s.Rng.Int63()
	}

	out := make([]localResult, len(sites))
	explore := func(i int) {
		rng := rand.New(rand.NewSource(seeds[i]))
		bees := s.Cfg.EliteBees
		if i >= s.Cfg.EliteSites {
			bees = s.Cfg.BestBees
		}

		res := localResult{fuel: sites[i].fuel}
		for b := 0; b < bees; b++ {
			cand := rocket.Neighbor(set, sites[i].alloc, patchSize, rng)
			fuel := eval.MustFuel(cand)
			if fuel < res.fuel {
				res.alloc = cand
				res.fuel = fuel
				res.improved = true
			}
		}
		out[i] = res
	}

	if s.Cfg.Workers > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, s.Cfg.Workers)
		for i := range sites {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				explore(i)
				<-sem
			}(i)
		}
		wg.Wait()
	} else {
		for i := range sites {
			explore(i)
		}
	}
	return out
}

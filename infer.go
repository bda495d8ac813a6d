package heredity

import (
	"runtime"

	"github.com/carbocation/pfx"
	"golang.org/x/sync/errgroup"
)

// Infer computes every person's posterior gene-count and trait distributions
// by exact enumeration: every subset of people who might have the trait,
// filtered against the observed phenotypes, crossed with every disjoint
// partition of the population into zero-, one-, and two-copy carriers.
func Infer(pop Population, m Model) (Results, error) {
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	names := pop.Names()
	results := NewResults(pop)

	for _, haveTrait := range Powerset(names) {
		// Prune before the 3^n gene enumeration.
		if !pop.ConsistentTraits(haveTrait) {
			continue
		}
		accumulate(pop, m, names, haveTrait, results)
	}

	if err := results.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}
	return results, nil
}

// accumulate folds every disjoint (oneGene, twoGenes) partition against a
// fixed trait subset into results. Enumerating twoGenes over the complement
// of oneGene covers each three-way gene partition exactly once.
func accumulate(pop Population, m Model, names []string, haveTrait Set, results Results) {
	for _, oneGene := range Powerset(names) {
		for _, twoGenes := range Powerset(without(names, oneGene)) {
			h := Hypothesis{OneGene: oneGene, TwoGenes: twoGenes, HaveTrait: haveTrait}
			results.Add(h, JointProbability(pop, m, h))
		}
	}
}

// InferParallel is Infer with the trait-subset enumeration fanned out across
// workers. Each worker accumulates into a private partial sum, merged after
// all workers finish, so no locking is needed around accumulation. workers
// of zero or below means one per CPU. The output matches Infer up to
// floating-point rounding in the accumulation order.
func InferParallel(pop Population, m Model, workers int) (Results, error) {
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	names := pop.Names()
	traitSets := make(chan Set)
	partials := make([]Results, workers)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		partials[i] = NewResults(pop)
		g.Go(func() error {
			for haveTrait := range traitSets {
				accumulate(pop, m, names, haveTrait, partials[i])
			}
			return nil
		})
	}

	for _, haveTrait := range Powerset(names) {
		if pop.ConsistentTraits(haveTrait) {
			traitSets <- haveTrait
		}
	}
	close(traitSets)

	if err := g.Wait(); err != nil {
		return nil, pfx.Err(err)
	}

	results := NewResults(pop)
	for _, partial := range partials {
		results.Merge(partial)
	}

	if err := results.Normalize(); err != nil {
		return nil, pfx.Err(err)
	}
	return results, nil
}

// Package heredity computes, for every member of a pedigree, the exact
// posterior distribution over gene copy number (0, 1, or 2) and trait status,
// by enumerating every joint assignment consistent with the observed traits.
package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// Tolerance when checking that a probability table row sums to 1
const probabilityTolerance = 1e-9

// Model holds the probability tables that define the inheritance model. It is
// never mutated during a run; the evaluator captures it by value.
type Model struct {
	// GenePrior[g] is the unconditional probability that a person with no
	// recorded parents carries g copies of the gene.
	GenePrior [3]float64

	// TraitEmission[g] is the {false, true} trait distribution for a person
	// carrying g copies.
	TraitEmission [3][2]float64

	// MutationRate is the probability that a transmitted copy flips value
	// during inheritance.
	MutationRate float64
}

// DefaultModel returns the standard heredity model tables.
func DefaultModel() Model {
	return Model{
		GenePrior: [3]float64{0.96, 0.03, 0.01},
		TraitEmission: [3][2]float64{
			{0.99, 0.01}, // no copies
			{0.44, 0.56}, // one copy
			{0.35, 0.65}, // two copies
		},
		MutationRate: 0.01,
	}
}

// Validate checks that every table row is a proper probability distribution.
func (m Model) Validate() error {
	if m.MutationRate < 0 || m.MutationRate > 1 {
		return pfx.Err(fmt.Errorf("mutation rate %f is not a probability", m.MutationRate))
	}

	if sum := floats.Sum(m.GenePrior[:]); math.Abs(sum-1) > probabilityTolerance {
		return pfx.Err(fmt.Errorf("gene prior sums to %f; expected 1", sum))
	}

	for copies, row := range m.TraitEmission {
		if sum := row[0] + row[1]; math.Abs(sum-1) > probabilityTolerance {
			return pfx.Err(fmt.Errorf("trait emission row for %d copies sums to %f; expected 1", copies, sum))
		}
	}

	return nil
}

// Transmission returns the probability that a parent carrying the given
// number of copies transmits the variant to a child. A heterozygous parent
// transmits with probability exactly 0.5 because the mutation chances in the
// two directions cancel.
func (m Model) Transmission(copies int) float64 {
	switch copies {
	case 2:
		return 1 - m.MutationRate
	case 1:
		return 0.5
	default:
		return m.MutationRate
	}
}

// Emission returns the probability of the given trait status conditional on
// carrying copies copies of the gene.
func (m Model) Emission(copies int, trait bool) float64 {
	return m.TraitEmission[copies][traitIndex(trait)]
}

func traitIndex(trait bool) int {
	if trait {
		return 1
	}
	return 0
}

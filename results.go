package heredity

import (
	"fmt"
	"io"
	"sort"

	"github.com/carbocation/pfx"
	"gonum.org/v1/gonum/floats"
)

// Distribution holds one person's accumulated probability mass over gene
// copy number and trait status. Until Normalize runs the values are raw
// joint-probability sums.
type Distribution struct {
	Gene  [3]float64 // indexed by copy number
	Trait [2]float64 // {false, true}
}

// Results maps each person to their accumulated, and after Normalize
// posterior, distributions.
type Results map[string]*Distribution

// NewResults returns zeroed distributions for every population member.
func NewResults(pop Population) Results {
	r := make(Results, len(pop))
	for name := range pop {
		r[name] = &Distribution{}
	}
	return r
}

// Add folds one hypothesis's joint probability into every person's gene and
// trait buckets. It must be called exactly once per evidence-consistent
// hypothesis; no normalization happens here.
func (r Results) Add(h Hypothesis, p float64) {
	for name, d := range r {
		d.Gene[h.Copies(name)] += p
		d.Trait[traitIndex(h.HaveTrait.Has(name))] += p
	}
}

// Merge adds every bucket of other into r. The parallel driver uses this to
// combine per-worker partial sums.
func (r Results) Merge(other Results) {
	for name, od := range other {
		d := r[name]
		floats.Add(d.Gene[:], od.Gene[:])
		floats.Add(d.Trait[:], od.Trait[:])
	}
}

// Normalize rescales each person's gene distribution to sum to 1 and
// likewise their trait distribution, preserving relative proportions. A zero
// total means no enumerated hypothesis carried mass for that person, which
// signals jointly unsatisfiable evidence and is reported rather than left to
// divide into NaN.
func (r Results) Normalize() error {
	for name, d := range r {
		for _, dist := range []struct {
			label string
			vals  []float64
		}{
			{"gene", d.Gene[:]},
			{"trait", d.Trait[:]},
		} {
			total := floats.Sum(dist.vals)
			if total <= 0 {
				return pfx.Err(fmt.Errorf("no probability mass accumulated for the %s distribution of %q; the evidence is unsatisfiable", dist.label, name))
			}
			floats.Scale(1/total, dist.vals)
		}
	}
	return nil
}

// WriteReport prints each person's distributions to w at four decimal
// places, people in name order.
func (r Results) WriteReport(w io.Writer) error {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := r[name]
		_, err := fmt.Fprintf(w,
			"%s:\n  Gene:\n    2: %.4f\n    1: %.4f\n    0: %.4f\n  Trait:\n    True: %.4f\n    False: %.4f\n",
			name, d.Gene[2], d.Gene[1], d.Gene[0], d.Trait[1], d.Trait[0])
		if err != nil {
			return pfx.Err(err)
		}
	}
	return nil
}

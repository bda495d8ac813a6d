package heredity

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// Person is one pedigree member. Mother and Father are either both blank or
// both name other members of the same population. Trait is nil when the
// phenotype is unobserved.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  *bool
}

// HasParents reports whether the person has recorded parents. Load-time
// validation guarantees Mother and Father are populated together.
func (p Person) HasParents() bool {
	return p.Mother != ""
}

// Population is the full set of people under inference, keyed by name. It is
// constructed once and never mutated afterward.
type Population map[string]Person

// NewPopulation validates the records and builds the population: names must
// be unique and nonempty, parent references must resolve, parents must be
// recorded in pairs, and nobody may be their own ancestor.
func NewPopulation(people []Person) (Population, error) {
	pop := make(Population, len(people))
	for _, p := range people {
		if p.Name == "" {
			return nil, pfx.Err(fmt.Errorf("a person record has no name"))
		}
		if _, dup := pop[p.Name]; dup {
			return nil, pfx.Err(fmt.Errorf("person %q appears more than once", p.Name))
		}
		pop[p.Name] = p
	}

	for _, p := range pop {
		if (p.Mother == "") != (p.Father == "") {
			return nil, pfx.Err(fmt.Errorf("person %q has only one recorded parent; mother and father must be blank together or named together", p.Name))
		}
		if p.Mother == "" {
			continue
		}
		for _, parent := range []string{p.Mother, p.Father} {
			if _, ok := pop[parent]; !ok {
				return nil, pfx.Err(fmt.Errorf("person %q references parent %q, who is not in the population", p.Name, parent))
			}
		}
	}

	if err := pop.checkAcyclic(); err != nil {
		return nil, pfx.Err(err)
	}

	return pop, nil
}

// Names returns every member name in sorted order, so that enumeration over
// the population is deterministic.
func (pop Population) Names() []string {
	names := make([]string, 0, len(pop))
	for name := range pop {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConsistentTraits reports whether haveTrait agrees with every observed
// phenotype: anyone with a known trait value must appear in haveTrait exactly
// when that value is true.
func (pop Population) ConsistentTraits(haveTrait Set) bool {
	for name, p := range pop {
		if p.Trait != nil && *p.Trait != haveTrait.Has(name) {
			return false
		}
	}
	return true
}

func (pop Population) checkAcyclic() error {
	// 0 unvisited, 1 on the current ancestry path, 2 fully explored
	state := make(map[string]int, len(pop))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case 2:
			return nil
		case 1:
			return fmt.Errorf("person %q is their own ancestor", name)
		}
		state[name] = 1

		if p := pop[name]; p.HasParents() {
			if err := visit(p.Mother); err != nil {
				return err
			}
			if err := visit(p.Father); err != nil {
				return err
			}
		}

		state[name] = 2
		return nil
	}

	for name := range pop {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}

package heredity

// Hypothesis is one complete candidate assignment over the population:
// everyone in OneGene carries one copy of the gene, everyone in TwoGenes
// carries two, everyone else carries none, and exactly the members of
// HaveTrait express the trait. OneGene and TwoGenes are disjoint.
type Hypothesis struct {
	OneGene   Set
	TwoGenes  Set
	HaveTrait Set
}

// Copies returns the gene count the hypothesis assigns to name.
func (h Hypothesis) Copies(name string) int {
	switch {
	case h.TwoGenes.Has(name):
		return 2
	case h.OneGene.Has(name):
		return 1
	default:
		return 0
	}
}

// JointProbability returns the probability under m that every person's gene
// count and trait status match h exactly. The product runs over the whole
// population; a person with an unobserved trait still contributes the trait
// factor for their HaveTrait membership. Multiplication follows name order
// so repeated runs are bit-identical.
func JointProbability(pop Population, m Model, h Hypothesis) float64 {
	joint := 1.0
	for _, name := range pop.Names() {
		person := pop[name]
		copies := h.Copies(name)

		var gene float64
		if person.HasParents() {
			// Each parent transmits one copy; the child's count is the
			// number of variant copies received.
			pm := m.Transmission(h.Copies(person.Mother))
			pf := m.Transmission(h.Copies(person.Father))
			switch copies {
			case 2:
				gene = pm * pf
			case 1:
				gene = pm*(1-pf) + (1-pm)*pf
			default:
				gene = (1 - pm) * (1 - pf)
			}
		} else {
			gene = m.GenePrior[copies]
		}

		joint *= gene * m.Emission(copies, h.HaveTrait.Has(name))
	}
	return joint
}

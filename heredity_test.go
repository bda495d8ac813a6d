package heredity

import (
	"math"
	"testing"
)

const testTolerance = 1e-12

func boolPtr(b bool) *bool {
	return &b
}

func TestDefaultModelValid(t *testing.T) {
	if err := DefaultModel().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRejectsBadTables(t *testing.T) {
	m := DefaultModel()
	m.GenePrior[0] = 0.5
	if err := m.Validate(); err == nil {
		t.Error("A gene prior that does not sum to 1 was accepted")
	}

	m = DefaultModel()
	m.MutationRate = 1.5
	if err := m.Validate(); err == nil {
		t.Error("A mutation rate above 1 was accepted")
	}

	m = DefaultModel()
	m.TraitEmission[1][0] = 0.9
	if err := m.Validate(); err == nil {
		t.Error("An emission row that does not sum to 1 was accepted")
	}
}

// For every combination of parental gene counts, the child's three
// inheritance probabilities must sum to exactly 1.
func TestTransmissionTermsSumToOne(t *testing.T) {
	m := DefaultModel()
	for motherCopies := 0; motherCopies <= 2; motherCopies++ {
		for fatherCopies := 0; fatherCopies <= 2; fatherCopies++ {
			pm := m.Transmission(motherCopies)
			pf := m.Transmission(fatherCopies)

			sum := pm*pf + pm*(1-pf) + (1-pm)*pf + (1-pm)*(1-pf)
			if math.Abs(sum-1) > testTolerance {
				t.Errorf("Parents with %d and %d copies: inheritance terms sum to %g, expected 1",
					motherCopies, fatherCopies, sum)
			}
		}
	}
}

func TestTransmissionValues(t *testing.T) {
	m := DefaultModel()
	for _, tc := range []struct {
		copies   int
		expected float64
	}{
		{0, 0.01},
		{1, 0.5},
		{2, 0.99},
	} {
		if got := m.Transmission(tc.copies); math.Abs(got-tc.expected) > testTolerance {
			t.Errorf("Transmission(%d): got %g, expected %g", tc.copies, got, tc.expected)
		}
	}
}

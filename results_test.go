package heredity

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestResultsMerge(t *testing.T) {
	pop, err := NewPopulation([]Person{{Name: "Ada"}})
	if err != nil {
		t.Fatal(err)
	}

	left := NewResults(pop)
	right := NewResults(pop)
	left.Add(Hypothesis{OneGene: NewSet("Ada")}, 0.25)
	right.Add(Hypothesis{HaveTrait: NewSet("Ada")}, 0.5)

	left.Merge(right)

	d := left["Ada"]
	if math.Abs(d.Gene[1]-0.25) > testTolerance {
		t.Errorf("Gene 1 bucket holds %g, expected 0.25", d.Gene[1])
	}
	if math.Abs(d.Gene[0]-0.5) > testTolerance {
		t.Errorf("Gene 0 bucket holds %g, expected 0.5", d.Gene[0])
	}
	if math.Abs(d.Trait[1]-0.5) > testTolerance {
		t.Errorf("Trait true bucket holds %g, expected 0.5", d.Trait[1])
	}
	if math.Abs(d.Trait[0]-0.25) > testTolerance {
		t.Errorf("Trait false bucket holds %g, expected 0.25", d.Trait[0])
	}
}

func TestWriteReport(t *testing.T) {
	pop := familyPopulation(t)
	results, err := Infer(pop, DefaultModel())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := results.WriteReport(&buf); err != nil {
		t.Fatal(err)
	}
	report := buf.String()

	// People appear in name order, each with both distributions.
	harry := strings.Index(report, "Harry:")
	james := strings.Index(report, "James:")
	lily := strings.Index(report, "Lily:")
	if harry < 0 || james < 0 || lily < 0 {
		t.Fatalf("Report is missing a person:\n%s", report)
	}
	if !(harry < james && james < lily) {
		t.Errorf("People are not in name order:\n%s", report)
	}

	// James's trait was observed true.
	if !strings.Contains(report, "True: 1.0000") {
		t.Errorf("Expected a certain trait line for James:\n%s", report)
	}
}

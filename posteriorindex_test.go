package heredity

import (
	"math"
	"path/filepath"
	"testing"
)

func TestPosteriorIndexRoundTrip(t *testing.T) {
	pop := familyPopulation(t)
	results, err := Infer(pop, DefaultModel())
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "family.phi")

	idx, err := CreatePosteriorIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := idx.Save("family.csv", pop, results); err != nil {
		t.Fatal(err)
	}
	if err := idx.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenPosteriorIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	if reopened.Metadata.Filename != "family.csv" {
		t.Errorf("Got metadata filename %q, expected %q", reopened.Metadata.Filename, "family.csv")
	}
	if reopened.Metadata.NPeople != 3 {
		t.Errorf("Got metadata n_people %d, expected 3", reopened.Metadata.NPeople)
	}

	rows, err := reopened.Posteriors()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("Got %d rows, expected 3", len(rows))
	}

	expectedOrder := []string{"Harry", "James", "Lily"}
	for i, row := range rows {
		if row.Name != expectedOrder[i] {
			t.Errorf("Row %d is %q, expected %q", i, row.Name, expectedOrder[i])
			continue
		}

		d := results[row.Name]
		for _, check := range []struct {
			label    string
			got      float64
			expected float64
		}{
			{"gene0", row.GeneZero, d.Gene[0]},
			{"gene1", row.GeneOne, d.Gene[1]},
			{"gene2", row.GeneTwo, d.Gene[2]},
			{"trait", row.TraitTrue, d.Trait[1]},
		} {
			if math.Abs(check.got-check.expected) > testTolerance {
				t.Errorf("%s %s: got %g, expected %g", row.Name, check.label, check.got, check.expected)
			}
		}
	}
}

func TestWhichSQLiteDriver(t *testing.T) {
	switch WhichSQLiteDriver() {
	case "sqlite", "sqlite3":
	default:
		t.Errorf("Unexpected driver %q", WhichSQLiteDriver())
	}
}

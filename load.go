package heredity

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/zstd"
)

// LoadPopulation reads a population table from path. The table must be a CSV
// with columns name, mother, father, and trait; mother and father must both
// be blank or both name other rows, and trait is "1", "0", or blank when
// unknown. Paths beginning with gs:// are read from Google Cloud Storage,
// and a .zst suffix is decompressed transparently.
func LoadPopulation(path string) (Population, error) {
	rc, err := open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(rc)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer zr.Close()
		r = zr
	}

	return ReadPopulation(r)
}

func open(path string) (io.ReadCloser, error) {
	if strings.HasPrefix(path, "gs://") {
		return openGoogleStorage(path)
	}
	return os.Open(path)
}

// ReadPopulation parses the CSV population table from r and validates it via
// NewPopulation.
func ReadPopulation(r io.Reader) (Population, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	col := make(map[string]int, len(header))
	for i, field := range header {
		col[strings.TrimSpace(field)] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("population table is missing the %q column", required))
		}
	}

	var people []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		p := Person{
			Name:   record[col["name"]],
			Mother: record[col["mother"]],
			Father: record[col["father"]],
		}
		switch traitField := record[col["trait"]]; traitField {
		case "1":
			t := true
			p.Trait = &t
		case "0":
			t := false
			p.Trait = &t
		case "":
			// Unobserved
		default:
			return nil, pfx.Err(fmt.Errorf("person %q has trait value %q; expected 1, 0, or blank", p.Name, traitField))
		}
		people = append(people, p)
	}

	return NewPopulation(people)
}

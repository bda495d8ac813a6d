package heredity

import (
	"fmt"
	"time"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PosteriorIndex wraps the SQLite file (.phi) that stores one inference
// run's normalized posteriors, so other tools can query them with sqlx
// without re-running the enumeration.
type PosteriorIndex struct {
	DB       *sqlx.DB
	Metadata *PosteriorMetadata
}

func (idx *PosteriorIndex) Close() error {
	return idx.DB.Close()
}

// PersonPosterior conforms to the rows of the SQLite table "Posterior" and
// can be easily parsed with sqlx.
type PersonPosterior struct {
	Name      string  `db:"name"`
	GeneZero  float64 `db:"gene0"`
	GeneOne   float64 `db:"gene1"`
	GeneTwo   float64 `db:"gene2"`
	TraitTrue float64 `db:"trait"`
}

// PosteriorMetadata conforms to the rows of the SQLite table "Metadata",
// recording the provenance of the stored run.
type PosteriorMetadata struct {
	Filename     string `db:"filename"`
	NPeople      int    `db:"n_people"`
	CreationTime Time   `db:"creation_time"`
}

const posteriorSchema = `
CREATE TABLE IF NOT EXISTS Posterior (
	name TEXT PRIMARY KEY,
	gene0 REAL NOT NULL,
	gene1 REAL NOT NULL,
	gene2 REAL NOT NULL,
	trait REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS Metadata (
	filename TEXT,
	n_people INTEGER,
	creation_time INTEGER
);`

// CreatePosteriorIndex opens (creating if needed) an index file at path and
// ensures its schema exists.
func CreatePosteriorIndex(path string) (*PosteriorIndex, error) {
	idx, err := OpenPosteriorIndex(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if _, err := idx.DB.Exec(posteriorSchema); err != nil {
		idx.Close()
		return nil, pfx.Err(err)
	}

	return idx, nil
}

// Save replaces the index contents with one row per population member, the
// trait column holding the posterior probability of expressing the trait,
// and records provenance in the Metadata table.
func (idx *PosteriorIndex) Save(sourceFilename string, pop Population, results Results) error {
	tx, err := idx.DB.Beginx()
	if err != nil {
		return pfx.Err(err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM Posterior`); err != nil {
		return pfx.Err(err)
	}
	if _, err := tx.Exec(`DELETE FROM Metadata`); err != nil {
		return pfx.Err(err)
	}

	for _, name := range pop.Names() {
		d := results[name]
		if d == nil {
			return pfx.Err(fmt.Errorf("no accumulated results for %q", name))
		}
		if _, err := tx.Exec(
			`INSERT INTO Posterior (name, gene0, gene1, gene2, trait) VALUES (?, ?, ?, ?, ?)`,
			name, d.Gene[0], d.Gene[1], d.Gene[2], d.Trait[1],
		); err != nil {
			return pfx.Err(err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO Metadata (filename, n_people, creation_time) VALUES (?, ?, ?)`,
		sourceFilename, len(pop), time.Now().Unix(),
	); err != nil {
		return pfx.Err(err)
	}

	if err := tx.Commit(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// Posteriors returns every stored row in name order.
func (idx *PosteriorIndex) Posteriors() ([]PersonPosterior, error) {
	var rows []PersonPosterior
	if err := idx.DB.Select(&rows, `SELECT * FROM Posterior ORDER BY name ASC`); err != nil {
		return nil, pfx.Err(err)
	}
	return rows, nil
}

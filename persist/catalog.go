package persist

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rnetlab/go-rnet/compile"
)

// Catalog records compile runs in a SQLite database.
type Catalog struct {
	db *sql.DB
}

// Run is one recorded compilation.
type Run struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	CID       string    `json:"cid"`
	Species   int       `json:"species"`
	Reactions int       `json:"reactions"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// OpenCatalog opens (creating if necessary) a catalog at the given path.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return c, nil
}

func (c *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		cid TEXT NOT NULL,
		species INTEGER NOT NULL,
		reactions INTEGER NOT NULL,
		source TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_cid ON runs(cid);
	CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record stores one compile run and returns it with its new ID.
func (c *Catalog) Record(res *compile.Result, source string) (*Run, error) {
	run := &Run{
		ID:        uuid.New().String(),
		Model:     res.Net.Name,
		CID:       res.Net.CID(),
		Species:   len(res.Net.Species),
		Reactions: len(res.Reactions),
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	_, err := c.db.Exec(
		`INSERT INTO runs (id, model, cid, species, reactions, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Model, run.CID, run.Species, run.Reactions, run.Source, run.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Get retrieves a run by ID.
func (c *Catalog) Get(id string) (*Run, error) {
	row := c.db.QueryRow(
		`SELECT id, model, cid, species, reactions, source, created_at
		 FROM runs WHERE id = ?`, id,
	)

	var run Run
	err := row.Scan(&run.ID, &run.Model, &run.CID, &run.Species,
		&run.Reactions, &run.Source, &run.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// Runs returns the most recent runs, newest first.
func (c *Catalog) Runs(limit int) ([]*Run, error) {
	rows, err := c.db.Query(
		`SELECT id, model, cid, species, reactions, source, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		err := rows.Scan(&run.ID, &run.Model, &run.CID, &run.Species,
			&run.Reactions, &run.Source, &run.CreatedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

// RunsByCID returns all runs recorded for a given network fingerprint.
func (c *Catalog) RunsByCID(cid string) ([]*Run, error) {
	rows, err := c.db.Query(
		`SELECT id, model, cid, species, reactions, source, created_at
		 FROM runs WHERE cid = ? ORDER BY created_at DESC`, cid,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var run Run
		err := rows.Scan(&run.ID, &run.Model, &run.CID, &run.Species,
			&run.Reactions, &run.Source, &run.CreatedAt)
		if err != nil {
			return nil, err
		}
		runs = append(runs, &run)
	}
	return runs, rows.Err()
}

package vgacoe

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog records which source images have been converted with which
// settings so unchanged sources can be skipped
type Catalog struct {
	db *sql.DB
}

// Conversion is a single recorded conversion
type Conversion struct {
	SHA1     string
	Settings string
	Output   string
	Depth    int
	Created  time.Time
}

// NewCatalog opens or creates the SQLite catalog in file
func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// Batch workers share the catalog and SQLite only allows one writer
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS source (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS conversion (source_id INTEGER NOT NULL, settings TEXT NOT NULL, output TEXT NOT NULL, depth INTEGER NOT NULL, created INTEGER NOT NULL, PRIMARY KEY(source_id, settings, output), FOREIGN KEY(source_id) REFERENCES source(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &Catalog{
		db: db,
	}, nil
}

// Close closes the catalog
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) addSource(sha string) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM source WHERE sha1 = ?", sha).Scan(&id); err {
	case sql.ErrNoRows:
		result, err := c.db.Exec("INSERT INTO source (sha1) VALUES (?)", sha)
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Record stores a conversion, replacing any earlier record for the same
// source, settings, and output
func (c *Catalog) Record(conv Conversion) error {
	source, err := c.addSource(conv.SHA1)
	if err != nil {
		return err
	}

	if conv.Created.IsZero() {
		conv.Created = time.Now()
	}

	if _, err := c.db.Exec("INSERT OR REPLACE INTO conversion (source_id, settings, output, depth, created) VALUES (?, ?, ?, ?, ?)", source, conv.Settings, conv.Output, conv.Depth, conv.Created.Unix()); err != nil {
		return err
	}
	return nil
}

// Find returns the recorded conversion of the source with the given
// SHA-1 to output using settings, or nil if there is none
func (c *Catalog) Find(sha, settings, output string) (*Conversion, error) {
	conv := Conversion{
		SHA1:     sha,
		Settings: settings,
		Output:   output,
	}
	var created int64
	switch err := c.db.QueryRow("SELECT c.depth, c.created FROM conversion AS c JOIN source AS s ON c.source_id = s.id WHERE s.sha1 = ? AND c.settings = ? AND c.output = ?", sha, settings, output).Scan(&conv.Depth, &created); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		conv.Created = time.Unix(created, 0)
		return &conv, nil
	default:
		return nil, err
	}
}

// Conversions returns every recorded conversion ordered by output
func (c *Catalog) Conversions() ([]Conversion, error) {
	rows, err := c.db.Query("SELECT s.sha1, c.settings, c.output, c.depth, c.created FROM conversion AS c JOIN source AS s ON c.source_id = s.id ORDER BY c.output, c.created")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []Conversion
	for rows.Next() {
		var conv Conversion
		var created int64
		if err := rows.Scan(&conv.SHA1, &conv.Settings, &conv.Output, &conv.Depth, &created); err != nil {
			return nil, err
		}
		conv.Created = time.Unix(created, 0)
		convs = append(convs, conv)
	}

	return convs, rows.Err()
}

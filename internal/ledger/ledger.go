// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger keeps a local SQLite index of every candidate the
// sourcer has recorded. The CSV backup is the durable artifact; the
// ledger exists so stats, recent, and dedup preload do not have to
// re-scan files or call the spreadsheet.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/a9austin/sdr-sourcer/pkg/types"
)

// Store manages the candidate ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded candidate row.
type Entry struct {
	URL         string
	Name        string
	Headline    string
	RoleFit     types.RoleFit
	Years       string
	SourceQuery string
	DateAdded   string
}

// Stats summarizes the ledger by role fit.
type Stats struct {
	Total   int
	SDR     int
	AE      int
	Both    int
	Unknown int
}

// Open opens or creates the ledger database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name returns the sink identifier; Store doubles as a pipeline sink.
func (s *Store) Name() string { return "ledger" }

// Append satisfies the sink interface by recording the candidate.
func (s *Store) Append(_ context.Context, c *types.Candidate) error {
	return s.Record(c)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS candidates (
			url TEXT PRIMARY KEY,
			name TEXT,
			headline TEXT,
			role_fit TEXT,
			years TEXT,
			source_query TEXT,
			date_added TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_role_fit ON candidates(role_fit)`,
		`CREATE INDEX IF NOT EXISTS idx_candidates_date_added ON candidates(date_added)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts a candidate keyed by normalized profile URL. A re-sourced
// candidate refreshes role fit, source query, and date added.
func (s *Store) Record(c *types.Candidate) error {
	_, err := s.db.Exec(
		`INSERT INTO candidates (url, name, headline, role_fit, years, source_query, date_added)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(url) DO UPDATE SET
			name = excluded.name,
			headline = excluded.headline,
			role_fit = excluded.role_fit,
			years = excluded.years,
			source_query = excluded.source_query,
			date_added = excluded.date_added`,
		c.LinkedInURL, c.FullName, c.Headline, string(c.RoleFit),
		c.YearsExperience, c.SourceQuery, c.DateAdded.Format("2006-01-02"),
	)
	if err != nil {
		return fmt.Errorf("recording candidate %s: %w", c.LinkedInURL, err)
	}
	return nil
}

// SeenURLs returns every recorded profile URL, for dedup preload.
func (s *Store) SeenURLs() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT url FROM candidates`)
	if err != nil {
		return nil, fmt.Errorf("querying recorded URLs: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, fmt.Errorf("scanning URL row: %w", err)
		}
		seen[url] = true
	}
	return seen, rows.Err()
}

// Summarize counts recorded candidates per role fit.
func (s *Store) Summarize() (Stats, error) {
	rows, err := s.db.Query(`SELECT role_fit, count(*) FROM candidates GROUP BY role_fit`)
	if err != nil {
		return Stats{}, fmt.Errorf("querying ledger stats: %w", err)
	}
	defer rows.Close()

	var st Stats
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return Stats{}, fmt.Errorf("scanning stats row: %w", err)
		}
		st.Total += n
		switch types.RoleFit(role) {
		case types.RoleSDR:
			st.SDR += n
		case types.RoleAE:
			st.AE += n
		case types.RoleSDRAE:
			st.Both += n
		default:
			st.Unknown += n
		}
	}
	return st, rows.Err()
}

// Recent returns the n most recently added candidates, newest first.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.Query(
		`SELECT url, name, headline, role_fit, years, source_query, date_added
		 FROM candidates ORDER BY date_added DESC, rowid DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying recent candidates: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var role string
		if err := rows.Scan(&e.URL, &e.Name, &e.Headline, &role, &e.Years, &e.SourceQuery, &e.DateAdded); err != nil {
			return nil, fmt.Errorf("scanning candidate row: %w", err)
		}
		e.RoleFit = types.RoleFit(role)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

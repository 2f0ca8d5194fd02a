// Package audit persists per-run candidate diagnostics in DuckDB. The store
// is append-only and queryable; it is optional and never on the critical
// path of pair selection.
package audit

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/oklog/ulid/v2"
)

// Store manages a DuckDB connection for audit data.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create audit directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		run_id VARCHAR PRIMARY KEY,
		structure_path VARCHAR,
		residues INTEGER,
		created_at TIMESTAMP
	)`); err != nil {
		return err
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS candidates (
		run_id VARCHAR,
		i INTEGER,
		j INTEGER,
		valid BOOLEAN,
		origin_dist DOUBLE,
		vertical_dist DOUBLE,
		plane_angle DOUBLE,
		glyco_dist DOUBLE,
		overlap DOUBLE,
		score DOUBLE,
		pair_type VARCHAR,
		hbonds INTEGER
	)`)
	return err
}

// NewRunID returns a fresh lexicographically sortable run identifier.
func NewRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// RecordRun registers a run and returns its id.
func (s *Store) RecordRun(structurePath string, residues int) (string, error) {
	id := NewRunID()
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, structure_path, residues, created_at) VALUES (?, ?, ?, ?)`,
		id, structurePath, residues, time.Now())
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return id, nil
}

// RunInfo is one registered analysis run.
type RunInfo struct {
	RunID         string
	StructurePath string
	Residues      int
	CreatedAt     time.Time
}

// ListRuns returns all runs, newest first.
func (s *Store) ListRuns() ([]RunInfo, error) {
	rows, err := s.db.Query(
		`SELECT run_id, structure_path, residues, created_at FROM runs ORDER BY run_id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var r RunInfo
		if err := rows.Scan(&r.RunID, &r.StructurePath, &r.Residues, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

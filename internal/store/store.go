// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store caches normalized record sets in a SQLite database so that
// repeated invocations over an unchanged source CSV skip reparsing. Entries
// are keyed by source path and invalidated when the file's modification
// time or size changes.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ahlawatsakshi6/ai-vs-human-content-analysis-dashboard/pkg/types"
)

const dbFile = "datasets.db"

// Store manages the dataset cache database. It satisfies dataset.Cache.
type Store struct {
	db *sql.DB
}

// Open opens or creates the cache database under dir, creating the schema
// if it does not exist.
func Open(cfg types.CacheConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = ".cache"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			source TEXT PRIMARY KEY,
			mod_time TEXT NOT NULL,
			size INTEGER NOT NULL,
			row_count INTEGER NOT NULL,
			features TEXT NOT NULL,
			extra_columns TEXT,
			cached_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			source TEXT NOT NULL REFERENCES datasets(source) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			date TEXT,
			author_type TEXT,
			content_type TEXT,
			likes REAL,
			comments REAL,
			shares REAL,
			engagement REAL,
			extra TEXT,
			PRIMARY KEY (source, idx)
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Lookup returns the cached set for source when the stored identity matches
// modTime and size exactly. A missing or stale entry is not an error.
func (s *Store) Lookup(source string, modTime time.Time, size int64) (*types.RecordSet, bool, error) {
	var storedMod string
	var storedSize, rowCount int64
	var featuresJSON string
	var extraJSON sql.NullString

	err := s.db.QueryRow(
		`SELECT mod_time, size, row_count, features, extra_columns FROM datasets WHERE source = ?`,
		source,
	).Scan(&storedMod, &storedSize, &rowCount, &featuresJSON, &extraJSON)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying dataset entry: %w", err)
	}

	if storedMod != modTime.UTC().Format(time.RFC3339Nano) || storedSize != size {
		return nil, false, nil
	}

	rs := &types.RecordSet{Source: source}
	if err := json.Unmarshal([]byte(featuresJSON), &rs.Features); err != nil {
		return nil, false, fmt.Errorf("decoding features: %w", err)
	}
	if extraJSON.Valid && extraJSON.String != "" {
		if err := json.Unmarshal([]byte(extraJSON.String), &rs.ExtraColumns); err != nil {
			return nil, false, fmt.Errorf("decoding extra columns: %w", err)
		}
	}

	rows, err := s.db.Query(
		`SELECT idx, date, author_type, content_type, likes, comments, shares, engagement, extra
		 FROM records WHERE source = ? ORDER BY idx`,
		source,
	)
	if err != nil {
		return nil, false, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	rs.Records = make([]types.Record, 0, rowCount)
	for rows.Next() {
		var r types.Record
		var date sql.NullString
		var likes, comments, shares, engagement sql.NullFloat64
		var extra sql.NullString

		if err := rows.Scan(&r.Index, &date, &r.AuthorType, &r.ContentType,
			&likes, &comments, &shares, &engagement, &extra); err != nil {
			return nil, false, fmt.Errorf("scanning record: %w", err)
		}

		if date.Valid {
			t, err := time.Parse(time.RFC3339, date.String)
			if err != nil {
				return nil, false, fmt.Errorf("decoding cached date: %w", err)
			}
			r.Date = &t
		}
		r.Likes = nullableFloat(likes)
		r.Comments = nullableFloat(comments)
		r.Shares = nullableFloat(shares)
		r.EngagementScore = nullableFloat(engagement)
		if extra.Valid && extra.String != "" {
			if err := json.Unmarshal([]byte(extra.String), &r.Extra); err != nil {
				return nil, false, fmt.Errorf("decoding extra cells: %w", err)
			}
		}

		rs.Records = append(rs.Records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating records: %w", err)
	}

	return rs, true, nil
}

// Store saves rs under the source identity inside one transaction,
// replacing any previous entry for the same source.
func (s *Store) Store(source string, modTime time.Time, size int64, rs *types.RecordSet) error {
	featuresJSON, err := json.Marshal(rs.Features)
	if err != nil {
		return fmt.Errorf("encoding features: %w", err)
	}
	var extraJSON []byte
	if len(rs.ExtraColumns) > 0 {
		if extraJSON, err = json.Marshal(rs.ExtraColumns); err != nil {
			return fmt.Errorf("encoding extra columns: %w", err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE source = ?`, source); err != nil {
		return fmt.Errorf("clearing stale records: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO datasets (source, mod_time, size, row_count, features, extra_columns, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		source, modTime.UTC().Format(time.RFC3339Nano), size, len(rs.Records),
		string(featuresJSON), string(extraJSON), time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("inserting dataset entry: %w", err)
	}

	insert, err := tx.Prepare(
		`INSERT INTO records (source, idx, date, author_type, content_type, likes, comments, shares, engagement, extra)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, r := range rs.Records {
		var date any
		if r.Date != nil {
			date = r.Date.Format(time.RFC3339)
		}
		var extra any
		if len(r.Extra) > 0 {
			b, err := json.Marshal(r.Extra)
			if err != nil {
				return fmt.Errorf("encoding extra cells: %w", err)
			}
			extra = string(b)
		}
		if _, err := insert.Exec(source, r.Index, date, r.AuthorType, r.ContentType,
			floatOrNil(r.Likes), floatOrNil(r.Comments), floatOrNil(r.Shares),
			floatOrNil(r.EngagementScore), extra); err != nil {
			return fmt.Errorf("inserting record %d: %w", r.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Status describes one cached dataset entry.
type Status struct {
	Source   string    `json:"source" yaml:"source"`
	RowCount int       `json:"row_count" yaml:"row_count"`
	CachedAt time.Time `json:"cached_at" yaml:"cached_at"`
}

// List returns the cached dataset entries ordered by source.
func (s *Store) List() ([]Status, error) {
	rows, err := s.db.Query(`SELECT source, row_count, cached_at FROM datasets ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("querying datasets: %w", err)
	}
	defer rows.Close()

	var out []Status
	for rows.Next() {
		var st Status
		var cachedAt string
		if err := rows.Scan(&st.Source, &st.RowCount, &cachedAt); err != nil {
			return nil, fmt.Errorf("scanning dataset entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, cachedAt); err == nil {
			st.CachedAt = t
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Clear removes every cached entry.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("clearing records: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM datasets`); err != nil {
		return fmt.Errorf("clearing datasets: %w", err)
	}
	return nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

package storage

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps every score in a SQLite database and reports the best.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at the given path and runs
// migrations. The parent directory must exist.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	// SSH sessions save concurrently; one connection serialises the writes.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save records a new score.
func (s *SQLiteStore) Save(e Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	var err error
	if e.CreatedAt.IsZero() {
		_, err = s.db.Exec(
			"INSERT INTO scores (run_id, score, lines, level, name) VALUES (?, ?, ?, ?, ?)",
			e.ID.String(), e.Score, e.Lines, e.Level, e.Name,
		)
	} else {
		_, err = s.db.Exec(
			"INSERT INTO scores (run_id, score, lines, level, name, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			e.ID.String(), e.Score, e.Lines, e.Level, e.Name, e.CreatedAt.UTC().Format(timeLayout),
		)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}
	return nil
}

// Top retrieves the top n scores, ordered by score descending.
func (s *SQLiteStore) Top(n int) ([]Entry, error) {
	if n <= 0 {
		n = MaxEntries
	}

	rows, err := s.db.Query(
		`SELECT run_id, score, lines, level, name, created_at
		 FROM scores
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var runID string
		var createdAt any
		if err := rows.Scan(&runID, &e.Score, &e.Lines, &e.Level, &e.Name, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.ID, _ = uuid.Parse(runID)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

var _ ScoreStore = (*SQLiteStore)(nil)

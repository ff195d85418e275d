// Package storage persists high scores.
//
// Two backends share the ScoreStore interface: a JSON file (the default,
// scores.json next to the binary's working directory) and SQLite through the
// pure-Go modernc.org/sqlite driver. Open picks one from the file extension.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxEntries is how many scores a store keeps and reports.
const MaxEntries = 10

const timeLayout = "2006-01-02 15:04:05"

// Entry is one finished game.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Score     int       `json:"score"`
	Lines     int       `json:"lines"`
	Level     int       `json:"level"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewEntry stamps a result with a fresh run ID and the current time.
func NewEntry(score, lines, level int, name string) Entry {
	return Entry{
		ID:        uuid.New(),
		Score:     score,
		Lines:     lines,
		Level:     level,
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

// UnmarshalJSON accepts either an entry object or a bare number,
// which older score files stored.
func (e *Entry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] != '{' {
		var score int
		if err := json.Unmarshal(data, &score); err != nil {
			return fmt.Errorf("storage: score entry must be an object or a number: %w", err)
		}
		*e = Entry{Score: score}
		return nil
	}

	type plain Entry
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Entry(p)
	return nil
}

// ScoreStore is the high-score persistence the game shell depends on.
type ScoreStore interface {
	// Save records a finished game.
	Save(e Entry) error
	// Top returns up to n entries, highest score first.
	Top(n int) ([]Entry, error)
	Close() error
}

// Open returns the store for path: SQLite for .db/.sqlite/.sqlite3 files,
// JSON otherwise. A leading ~ expands to the home directory and missing
// parent directories are created.
func Open(path string) (ScoreStore, error) {
	path, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return OpenJSON(path), nil
	}
}

// expandPath replaces a leading ~ with the home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("storage: empty score path")
	}
	if path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// rank sorts entries highest score first, oldest first among ties, and
// trims the list to limit.
func rank(entries []Entry, limit int) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

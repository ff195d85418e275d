package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// ErrCorrupt marks a score file that exists but does not decode.
var ErrCorrupt = errors.New("storage: corrupt score file")

// JSONStore keeps the top scores in a single JSON array file.
// It is safe for concurrent use within one process.
type JSONStore struct {
	path string
	mu   sync.Mutex
}

// OpenJSON returns a store backed by path. The file is created on the
// first Save.
func OpenJSON(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load reads the file. A missing file is an empty list. A file that cannot
// be read or decoded also yields an empty list, together with the error so
// the caller can log it.
func (s *JSONStore) Load() ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrCorrupt, s.path, err)
	}
	return rank(entries, MaxEntries), nil
}

// Save inserts e, keeps the best MaxEntries and rewrites the file.
// A corrupt existing file is replaced; a file that cannot be read is left
// alone and the read error returned.
func (s *JSONStore) Save(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil && !errors.Is(err, ErrCorrupt) {
		return err
	}
	entries = rank(append(entries, e), MaxEntries)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode scores: %w", err)
	}
	return writeAtomic(s.path, append(data, '\n'))
}

// Top returns up to n entries, highest first. Read failures produce an
// empty list and the error.
func (s *JSONStore) Top(n int) ([]Entry, error) {
	if n <= 0 {
		n = MaxEntries
	}
	entries, err := s.Load()
	if err != nil {
		return nil, err
	}
	return rank(entries, n), nil
}

// Close is a no-op; the file is only open during Save and Load.
func (s *JSONStore) Close() error {
	return nil
}

// writeAtomic writes data to a temp file in the same directory and renames
// it over path, so readers never observe a half-written file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write scores: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}

var _ ScoreStore = (*JSONStore)(nil)

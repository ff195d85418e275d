package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPicksBackend(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		file     string
		wantJSON bool
	}{
		{"scores.json", true},
		{"scores", true},
		{"scores.db", false},
		{"nested/dir/scores.sqlite", false},
		{"SCORES.DB", false},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			s, err := Open(filepath.Join(dir, tt.file))
			require.NoError(t, err)
			defer s.Close()

			_, isJSON := s.(*JSONStore)
			assert.Equal(t, tt.wantJSON, isJSON)

			require.NoError(t, s.Save(NewEntry(10, 1, 1, "x")))
			top, err := s.Top(1)
			require.NoError(t, err)
			require.Len(t, top, 1)
			assert.Equal(t, 10, top[0].Score)
		})
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := Open("~/.termtris/scores.json")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(NewEntry(5, 0, 1, "")))
	_, err = os.Stat(filepath.Join(home, ".termtris", "scores.json"))
	assert.NoError(t, err)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestUnmarshalEntryRejectsGarbage(t *testing.T) {
	var e Entry
	assert.Error(t, e.UnmarshalJSON([]byte(`"high"`)))
	assert.NoError(t, e.UnmarshalJSON([]byte(` 77 `)))
	assert.Equal(t, 77, e.Score)
}

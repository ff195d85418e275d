package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/storage"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextWithColor(0, 0, "ab", core.ColorRed)
	s.DrawTextWithColor(2, 0, "cd", core.ColorCyan)
	s.DrawText(1, 2, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ab")
	assert.Contains(t, lines[0], "cd")
	assert.Contains(t, lines[2], "xyz")
}

func TestRenderScreenPlainMatchesString(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.SetWithColor(3, 1, ' ', core.ColorRed)

	assert.Equal(t, s.String(), RenderScreen(s))
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", styleFor(core.Color(200)).Render("x"))
}

func TestRenderScoresEmpty(t *testing.T) {
	out := RenderScores(nil, 0)
	assert.Contains(t, out, "HIGH SCORES")
	assert.Contains(t, out, "No scores recorded yet.")
}

func TestRenderScoresTable(t *testing.T) {
	now := time.Now().UTC()
	entries := []storage.Entry{
		{Score: 12345, Lines: 40, Level: 5, Name: "alice", CreatedAt: now.Add(-2 * time.Hour)},
		{Score: 300, Lines: 2, Level: 1},
	}

	out := RenderScores(entries, 100)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "12,345")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "2 hours ago")
	assert.Less(t, strings.Index(out, "12,345"), strings.Index(out, "300"))
}

func TestScoreRowsAnonymous(t *testing.T) {
	rows := scoreRows([]storage.Entry{{Score: 7}})
	assert.Equal(t, "-", rows[0][4])
	assert.Equal(t, "-", rows[0][5])
}

func TestCenterText(t *testing.T) {
	assert.Equal(t, "  ab", centerText("ab", 6))
	assert.Equal(t, "abcdef", centerText("abcdef", 4))
}

package tui

import (
	"bytes"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/storage"
)

// fakeGame ends the session after endAfter gravity steps.
type fakeGame struct {
	state    core.GameState
	applied  []core.Action
	steps    int
	resets   int
	endAfter int
	width    int
	height   int
	seed     int64
	saveErr  string
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
	g.steps = 0
	g.state = core.GameState{Level: 1}
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
}

func (g *fakeGame) Apply(a core.Action) core.StepResult {
	g.applied = append(g.applied, a)
	switch a {
	case core.ActionQuit:
		g.state.GameOver = true
		g.state.Quit = true
	case core.ActionRestart:
		g.Reset(core.RuntimeConfig{ScreenW: g.width, ScreenH: g.height, Seed: g.seed + 1})
	}
	return core.StepResult{State: g.state, Accepted: true}
}

func (g *fakeGame) Step() core.StepResult {
	g.steps++
	if g.endAfter > 0 && g.steps >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, Accepted: true}
}

func (g *fakeGame) Interval() time.Duration { return 10 * time.Millisecond }

func (g *fakeGame) Resize(width, height int) { g.width, g.height = width, height }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SetSaveError(msg string) { g.saveErr = msg }

func (g *fakeGame) Seed() int64 { return g.seed }

type fakeStore struct {
	entries []storage.Entry
	err     error
}

func (s *fakeStore) Save(e storage.Entry) error {
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *fakeStore) Top(int) ([]storage.Entry, error) { return s.entries, nil }
func (s *fakeStore) Close() error                     { return nil }

func newTestModel(g *fakeGame, s *fakeStore) Model {
	return NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 24, Scale: 1, Seed: 7},
		Player:  "alice",
		Store:   s,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestTickStepsAndReschedules(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakeStore{})
	require.NotNil(t, m.Init())

	m, cmd := update(t, m, TickMsg{Gen: 0})
	assert.Equal(t, 1, g.steps)
	assert.NotNil(t, cmd)
}

func TestStaleTickIsDropped(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakeStore{})

	_, cmd := update(t, m, TickMsg{Gen: 3})
	assert.Equal(t, 0, g.steps)
	assert.Nil(t, cmd)
}

func TestGameOverSavesOnce(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	s := &fakeStore{}
	m := newTestModel(g, s)
	g.state.Score = 120
	g.state.Lines = 1

	m, cmd := update(t, m, TickMsg{Gen: 0})
	assert.Nil(t, cmd, "no tick after game over")
	require.Len(t, s.entries, 1)
	assert.Equal(t, 120, s.entries[0].Score)
	assert.Equal(t, 1, s.entries[0].Lines)
	assert.Equal(t, "alice", s.entries[0].Name)

	m, _ = update(t, m, TickMsg{Gen: 0})
	assert.Len(t, s.entries, 1)
	assert.Equal(t, 1, g.steps)

	out := m.Outcome()
	assert.True(t, out.Saved)
	assert.Equal(t, 120, out.Score)
	assert.NoError(t, out.SaveErr)
}

func TestGameplayKeyApplied(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakeStore{})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, []core.Action{core.ActionLeft, core.ActionDrop}, g.applied)
}

func TestQuitSavesOnlyPositiveScore(t *testing.T) {
	tests := []struct {
		name  string
		score int
		saved int
	}{
		{"zero score not saved", 0, 0},
		{"positive score saved", 50, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			s := &fakeStore{}
			m := newTestModel(g, s)
			g.state.Score = tt.score

			m, cmd := update(t, m, runeKey('x'))
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Equal(t, []core.Action{core.ActionQuit}, g.applied)
			assert.Len(t, s.entries, tt.saved)
			assert.True(t, m.Outcome().Quit)
			assert.Empty(t, m.View())
		})
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	s := &fakeStore{}
	m := newTestModel(g, s)

	m, _ = update(t, m, TickMsg{Gen: 0})
	require.True(t, m.state.GameOver)
	require.Len(t, s.entries, 1)

	m, cmd := update(t, m, runeKey('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.state.GameOver)

	// A tick scheduled before the restart is ignored.
	m, _ = update(t, m, TickMsg{Gen: 0})
	assert.Equal(t, 0, g.steps)

	_, _ = update(t, m, TickMsg{Gen: 1})
	assert.Len(t, s.entries, 2, "second session saves its own score")
}

func TestAnyKeyQuitsAfterGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(g, &fakeStore{})
	m, _ = update(t, m, TickMsg{Gen: 0})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, g.applied, "nothing reaches the game after it ended")
}

func TestSaveFailureIsReported(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	s := &fakeStore{err: errors.New("disk full")}
	m := newTestModel(g, s)

	m, _ = update(t, m, TickMsg{Gen: 0})
	assert.Equal(t, "score not saved", g.saveErr)

	out := m.Outcome()
	assert.False(t, out.Saved)
	assert.EqualError(t, out.SaveErr, "disk full")
}

func TestNilStoreIsSilent(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := NewModel(g, Options{Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 24, Seed: 1}})

	m, _ = update(t, m, TickMsg{Gen: 0})
	out := m.Outcome()
	assert.False(t, out.Saved)
	assert.NoError(t, out.SaveErr)
}

func TestResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakeStore{})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 50})
	assert.Equal(t, 1, g.resets)
	assert.Equal(t, 100, g.width)
	assert.Equal(t, 50, g.height)
	assert.Contains(t, m.View(), "fake")
}

func TestRestartLogsSessionSeed(t *testing.T) {
	var buf bytes.Buffer
	g := &fakeGame{endAfter: 1}
	m := NewModel(g, Options{
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 24, Seed: 41},
		Logger:  log.New(&buf),
	})
	m, _ = update(t, m, TickMsg{Gen: 0})
	buf.Reset()

	_, _ = update(t, m, runeKey('r'))
	assert.Contains(t, buf.String(), "restart")
	assert.Contains(t, buf.String(), "seed=42")
	assert.NotContains(t, buf.String(), "seed=41")
}

func TestInitSetsWindowTitle(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g, &fakeStore{})

	msg := m.Init()()
	batch, ok := msg.(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
}

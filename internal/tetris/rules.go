package tetris

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/termtris/internal/core"
)

// maxGravityLevel is the level at which the gravity curve stops getting faster.
const maxGravityLevel = 20

// Rules holds the tunable numbers of a session.
type Rules struct {
	Width         int
	Height        int
	StartLevel    int
	LinesPerLevel int
	// LineClearPoints[n] is the base award for clearing n rows in one lock.
	LineClearPoints []int
	// DropBonus is awarded per row descended by a quick-drop.
	DropBonus  int
	MinGravity time.Duration
}

// DefaultRules returns the classic 10x20 ruleset.
func DefaultRules() Rules {
	return Rules{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		StartLevel:      1,
		LinesPerLevel:   10,
		LineClearPoints: []int{0, 100, 300, 500, 800},
		DropBonus:       2,
		MinGravity:      50 * time.Millisecond,
	}
}

// Validate checks that a session can be played under these rules.
func (r Rules) Validate() error {
	if r.Width < 4 || r.Height < 4 {
		return fmt.Errorf("tetris: board %dx%d is smaller than a piece's 4x4 box", r.Width, r.Height)
	}
	if r.StartLevel < 1 {
		return fmt.Errorf("tetris: start level must be at least 1, got %d", r.StartLevel)
	}
	if r.LinesPerLevel < 1 {
		return fmt.Errorf("tetris: lines per level must be at least 1, got %d", r.LinesPerLevel)
	}
	if len(r.LineClearPoints) != 5 {
		return fmt.Errorf("tetris: need 5 line clear values (0-4 rows), got %d", len(r.LineClearPoints))
	}
	for n := 1; n < len(r.LineClearPoints); n++ {
		if r.LineClearPoints[n] <= r.LineClearPoints[n-1] {
			return fmt.Errorf("tetris: line clear values must increase, %d rows = %d", n, r.LineClearPoints[n])
		}
	}
	if r.DropBonus < 0 {
		return fmt.Errorf("tetris: drop bonus cannot be negative")
	}
	return nil
}

// Points returns the award for clearing n rows in one lock at the given level.
func (r Rules) Points(n, level int) int {
	if n <= 0 {
		return 0
	}
	n = core.Min(n, len(r.LineClearPoints)-1)
	return r.LineClearPoints[n] * core.Max(level, 1)
}

// LevelFor returns the level after the given number of cleared lines.
func (r Rules) LevelFor(lines int) int {
	return r.StartLevel + lines/r.LinesPerLevel
}

// GravityInterval returns the delay between gravity ticks at a level.
// It follows the guideline curve (0.8 - (L-1)*0.007)^(L-1) seconds.
func (r Rules) GravityInterval(level int) time.Duration {
	level = core.Clamp(level, 1, maxGravityLevel)
	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
	d := time.Duration(seconds * float64(time.Second))
	if d < r.MinGravity {
		return r.MinGravity
	}
	return d
}

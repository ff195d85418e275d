// Package audio plays short sound effects for game events.
// Sound is optional: a Nop player is used when it is disabled or the
// speaker cannot be opened.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/termtris/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Effect names a sound.
type Effect int

const (
	EffectLock Effect = iota
	EffectClear
	EffectTetris // four rows in one lock
	EffectGameOver
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectLock:
		return "lock"
	case EffectClear:
		return "clear"
	case EffectTetris:
		return "tetris"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player plays effects. Implementations must not block the caller.
type Player interface {
	Play(e Effect)
	Close()
}

// ForStep picks the effect for a step result, if any.
func ForStep(res core.StepResult) (Effect, bool) {
	switch {
	case res.State.GameOver && !res.State.Quit:
		return EffectGameOver, true
	case res.Cleared >= 4:
		return EffectTetris, true
	case res.Cleared > 0:
		return EffectClear, true
	case res.Locked:
		return EffectLock, true
	}
	return 0, false
}

// Nop discards every effect.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Effect) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays effects on the default audio device through a beep mixer.
type Speaker struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeaker creates a speaker player. Call Init before Play.
func NewSpeaker() *Speaker {
	return &Speaker{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it twice is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the effect into the running output. Safe before Init.
func (s *Speaker) Play(e Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st := Streamer(e)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops all sounds.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}

// Streamer returns a finite stream for the effect.
func Streamer(e Effect) beep.Streamer {
	switch e {
	case EffectLock:
		return note(220, 40*time.Millisecond, 0.2)
	case EffectClear:
		return beep.Seq(
			note(523.25, 60*time.Millisecond, 0.2),
			note(783.99, 90*time.Millisecond, 0.2),
		)
	case EffectTetris:
		return beep.Seq(
			note(523.25, 70*time.Millisecond, 0.22),
			note(659.25, 70*time.Millisecond, 0.22),
			note(783.99, 70*time.Millisecond, 0.22),
			note(1046.5, 160*time.Millisecond, 0.22),
		)
	case EffectGameOver:
		return beep.Take(sampleRate.N(400*time.Millisecond), NewBuzzGenerator(sampleRate, 110))
	default:
		return beep.Silence(0)
	}
}

func note(freq float64, d time.Duration, amp float64) beep.Streamer {
	return beep.Take(sampleRate.N(d), NewToneGenerator(sampleRate, freq, amp, d))
}

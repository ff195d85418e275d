package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator is a sine tone with a short attack and an exponential
// release that reaches silence at the end of its duration.
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	amp   float64
	decay float64 // per-second decay rate
	pos   int
}

// NewToneGenerator creates a tone that fades out over d.
func NewToneGenerator(sr beep.SampleRate, freq, amp float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		freq:  freq,
		amp:   amp,
		decay: 5 / d.Seconds(),
	}
}

// Stream fills samples with the tone. It never runs dry; callers bound it
// with beep.Take.
func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		attack := math.Min(t/0.005, 1.0)
		envelope := attack * math.Exp(-t*g.decay)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *ToneGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz that slides down in pitch.
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	phase float64 // accumulated fundamental phase, in cycles
	pos   int
}

// NewBuzzGenerator creates a buzz sound generator.
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

// Frequency returns the fundamental at t seconds: it glides down 40% over
// the first 400ms and then holds.
func (g *BuzzGenerator) Frequency(t float64) float64 {
	return g.freq * (1 - 0.4*math.Min(t/0.4, 1))
}

// Stream fills samples with the buzz. The phase is accumulated per sample so
// the glide stays continuous. It never runs dry; callers bound it with
// beep.Take.
func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		g.phase += g.Frequency(t) / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		theta := 2 * math.Pi * g.phase

		// Harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(theta)
		sample += 0.15 * math.Sin(2*theta)
		sample += 0.075 * math.Sin(3*theta)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (g *BuzzGenerator) Err() error {
	return nil
}

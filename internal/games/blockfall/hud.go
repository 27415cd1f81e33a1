package blockfall

import (
	"math"
	"time"
)

// scoreEase is the share of the gap closed per reference frame.
const scoreEase = 0.005

// ScoreDisplay eases the shown score toward the real score so points count up.
type ScoreDisplay struct {
	fps   int
	value float64
}

// NewScoreDisplay creates a display that eases at the given reference frame rate.
func NewScoreDisplay(fps int) *ScoreDisplay {
	return &ScoreDisplay{fps: max(fps, 1)}
}

// Advance moves the shown value toward target over dt.
// The shown score only counts up; a lower target snaps down immediately.
func (d *ScoreDisplay) Advance(target int, dt time.Duration) {
	t := float64(target)
	if d.value >= t {
		d.value = t
		return
	}
	frames := dt.Seconds() * float64(d.fps)
	// Per-frame easing compounded over a fractional number of frames.
	d.value += (t - d.value) * (1 - math.Pow(1-scoreEase, frames))
}

// Value returns the shown score, rounded.
func (d *ScoreDisplay) Value() int {
	return int(math.Round(d.value))
}

// Reset shows zero again.
func (d *ScoreDisplay) Reset() {
	d.value = 0
}

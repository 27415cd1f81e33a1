package engine

import (
	"math/rand"
	"time"
)

// DebrisSettings tunes the cosmetic particles spawned by cleared cells.
// Velocities are in pixels per reference frame.
type DebrisSettings struct {
	Gravity     float64 // Added to VY every frame
	MinVelocity float64 // Initial VY range (negative is up)
	MaxVelocity float64
	Spin        float64 // Degrees per frame, sign chosen at random
	Jitter      float64 // Maximum horizontal wobble per frame
}

// DefaultDebrisSettings returns the classic debris feel.
func DefaultDebrisSettings() DebrisSettings {
	return DebrisSettings{
		Gravity:     0.1,
		MinVelocity: -3.0,
		MaxVelocity: -1.0,
		Spin:        3,
		Jitter:      0.5,
	}
}

// Particle is one piece of debris in pixel space.
type Particle struct {
	X, Y  float64
	VY    float64
	Angle float64 // Degrees
	Spin  float64
}

// DebrisField animates particles until they fall out of view.
type DebrisField struct {
	settings   DebrisSettings
	fps        int
	viewHeight float64
	rng        *rand.Rand
	particles  []Particle
}

// NewDebrisField creates an empty field. Particles below viewHeight are dropped.
func NewDebrisField(settings DebrisSettings, fps int, viewHeight float64, rng *rand.Rand) *DebrisField {
	return &DebrisField{
		settings:   settings,
		fps:        fps,
		viewHeight: viewHeight,
		rng:        rng,
	}
}

// Spawn launches a particle from (x, y).
func (d *DebrisField) Spawn(x, y float64) {
	spin := d.settings.Spin
	if d.rng.Intn(2) == 0 {
		spin = -spin
	}
	span := d.settings.MaxVelocity - d.settings.MinVelocity
	d.particles = append(d.particles, Particle{
		X:    x,
		Y:    y,
		VY:   d.settings.MinVelocity + d.rng.Float64()*span,
		Spin: spin,
	})
}

// Advance moves every particle by dt and discards the ones out of view.
func (d *DebrisField) Advance(dt time.Duration) {
	if len(d.particles) == 0 {
		return
	}
	frames := dt.Seconds() * float64(d.fps)

	kept := d.particles[:0]
	for _, p := range d.particles {
		p.VY += d.settings.Gravity * frames
		p.Y += p.VY * frames
		p.X += (d.rng.Float64()*2 - 1) * d.settings.Jitter * frames
		p.Angle += p.Spin * frames
		if p.Y > d.viewHeight {
			continue
		}
		kept = append(kept, p)
	}
	d.particles = kept
}

// Particles returns a copy of the live particles.
func (d *DebrisField) Particles() []Particle {
	out := make([]Particle, len(d.particles))
	copy(out, d.particles)
	return out
}

// Len returns the number of live particles.
func (d *DebrisField) Len() int {
	return len(d.particles)
}

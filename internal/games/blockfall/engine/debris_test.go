package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneFrame = time.Second / 60

func TestDebrisSpawnRanges(t *testing.T) {
	settings := DefaultDebrisSettings()
	field := NewDebrisField(settings, 60, 800, rand.New(rand.NewSource(3)))

	for range 50 {
		field.Spawn(100, 200)
	}

	require.Equal(t, 50, field.Len())
	for _, p := range field.Particles() {
		assert.GreaterOrEqual(t, p.VY, settings.MinVelocity)
		assert.LessOrEqual(t, p.VY, settings.MaxVelocity)
		assert.Equal(t, settings.Spin, abs(p.Spin))
		assert.Zero(t, p.Angle)
	}
}

func TestDebrisAdvanceOneFrame(t *testing.T) {
	settings := DefaultDebrisSettings()
	settings.Jitter = 0
	field := NewDebrisField(settings, 60, 800, rand.New(rand.NewSource(3)))
	field.Spawn(100, 200)
	start := field.Particles()[0]

	field.Advance(oneFrame)

	p := field.Particles()[0]
	wantVY := start.VY + settings.Gravity
	assert.InDelta(t, wantVY, p.VY, 1e-6)
	assert.InDelta(t, 200+wantVY, p.Y, 1e-6)
	assert.InDelta(t, 100, p.X, 1e-9)
	assert.InDelta(t, start.Spin, p.Angle, 1e-6)
}

func TestDebrisDropsBelowView(t *testing.T) {
	settings := DebrisSettings{Gravity: 0.1, MinVelocity: 5, MaxVelocity: 5}
	field := NewDebrisField(settings, 60, 800, rand.New(rand.NewSource(3)))
	field.Spawn(0, 790)
	field.Spawn(0, 100)

	field.Advance(3 * oneFrame)

	require.Equal(t, 1, field.Len())
	assert.Less(t, field.Particles()[0].Y, 800.0)
}

func TestDebrisParticlesIsCopy(t *testing.T) {
	field := NewDebrisField(DefaultDebrisSettings(), 60, 800, rand.New(rand.NewSource(3)))
	field.Spawn(10, 10)

	field.Particles()[0].X = 999
	assert.InDelta(t, 10, field.Particles()[0].X, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package blockfall

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const frame = time.Second / 60

func inputOf(actions ...core.Action) core.InputFrame {
	return core.InputFrame{Actions: actions}
}

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FPS: 60, Seed: seed})
	return g
}

func TestRegistered(t *testing.T) {
	listed := false
	for _, info := range registry.List() {
		listed = listed || info.ID == ID
	}
	if !listed {
		t.Fatalf("game %q is not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create(%q) error: %v", ID, err)
	}
	if g.Title() != "Blockfall" {
		t.Errorf("Title() = %q, expected Blockfall", g.Title())
	}
}

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	got := SettingsFromConfig(config.DefaultBlockfallConfig())
	if got != engine.DefaultSettings() {
		t.Errorf("SettingsFromConfig(default) = %+v, expected %+v", got, engine.DefaultSettings())
	}
}

func TestSetConfigRejectsInvalid(t *testing.T) {
	cfg := config.DefaultBlockfallConfig()
	cfg.Timing.SoftDropDivisor = 0

	err := SetConfig(cfg)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("SetConfig() error = %v, expected ErrInvalidConfig", err)
	}
	if New().Config().Timing.SoftDropDivisor != 10 {
		t.Error("rejected config should not replace the active one")
	}
}

func TestMenuRender(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Difficulty 2") {
		t.Errorf("menu should show the difficulty level:\n%s", out)
	}
	if !strings.Contains(out, "██") {
		t.Errorf("menu should draw the banner:\n%s", out)
	}
	if !g.State().InMenu {
		t.Error("State().InMenu = false before the game starts")
	}
}

func TestConfirmStartsGame(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	result := g.Step(inputOf(core.ActionConfirm), frame)
	if result.State.Mode != "playing" {
		t.Fatalf("Mode = %q, expected playing", result.State.Mode)
	}

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"BLOCKFALL", "Score", "Lines", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("playing screen missing %q:\n%s", want, out)
		}
	}
}

func TestPauseOverlay(t *testing.T) {
	g := newTestGame(1)
	g.Step(inputOf(core.ActionConfirm, core.ActionPause), frame)

	if !g.State().Paused {
		t.Fatal("State().Paused = false after Pause")
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Errorf("paused screen should say PAUSED:\n%s", screen.String())
	}
}

func TestTooSmallFreezes(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}

	g.Step(inputOf(core.ActionConfirm), frame)
	if !g.State().InMenu {
		t.Error("game should not start while the screen is too small")
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	for i := range 3000 {
		var in core.InputFrame
		switch {
		case i == 0:
			in.Add(core.ActionConfirm)
		case i == 5:
			in.Add(core.ActionSoftDropStart)
		case i%7 == 0:
			in.Add(core.ActionLeft)
		case i%11 == 0:
			in.Add(core.ActionRight)
		case i%13 == 0:
			in.Add(core.ActionRotate)
		}
		g1.Step(in, frame)
		g2.Step(in, frame)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Pieces == 0 {
		t.Error("expected some pieces to lock in 3000 frames of soft drop")
	}
}

func TestScoreDisplayEases(t *testing.T) {
	d := NewScoreDisplay(60)

	d.Advance(1000, time.Second)
	// 1000 * (1 - 0.995^60) is about 260.
	if v := d.Value(); v < 255 || v > 265 {
		t.Errorf("Value() after 1s = %d, expected about 260", v)
	}

	d.Advance(1000, time.Minute)
	if v := d.Value(); v != 1000 {
		t.Errorf("Value() after 1m = %d, expected 1000", v)
	}

	d.Advance(0, frame)
	if v := d.Value(); v != 0 {
		t.Errorf("Value() after a lower target = %d, expected 0", v)
	}
}

func TestGlowRamps(t *testing.T) {
	var g Glow

	g.Advance(true, 10)
	if g.Level() != 10 {
		t.Errorf("Level() = %d, expected 10", g.Level())
	}
	g.Advance(false, 10)
	if g.Level() != 8 {
		t.Errorf("Level() = %d, expected 8", g.Level())
	}
	g.Advance(true, 1000)
	if g.Level() != 255 {
		t.Errorf("Level() = %d, expected 255", g.Level())
	}
	g.Advance(false, 10000)
	if g.Level() != 0 {
		t.Errorf("Level() = %d, expected 0", g.Level())
	}
}

func TestBannerAt(t *testing.T) {
	tests := []struct {
		col, row int
		expected BannerKind
	}{
		{0, 0, BannerBlock},
		{3, 0, BannerEmpty},
		{2, 0, BannerCornerTopRight},
		{8, 0, BannerCornerTopLeft},
		{12, 2, BannerCornerBottomLeft},
		{14, 2, BannerCornerBottomRight},
		{-1, 0, BannerEmpty},
		{15, 0, BannerEmpty},
		{0, 5, BannerEmpty},
	}

	for _, tc := range tests {
		if got := BannerAt(tc.col, tc.row); got != tc.expected {
			t.Errorf("BannerAt(%d, %d) = %d, expected %d", tc.col, tc.row, got, tc.expected)
		}
	}
}

func TestDebrisGlyph(t *testing.T) {
	tests := []struct {
		angle    float64
		expected rune
	}{
		{0, '─'},
		{45, '\\'},
		{90, '│'},
		{135, '/'},
		{180, '─'},
		{-45, '/'},
		{170, '─'},
	}

	for _, tc := range tests {
		if got := debrisGlyph(tc.angle); got != tc.expected {
			t.Errorf("debrisGlyph(%v) = %q, expected %q", tc.angle, got, tc.expected)
		}
	}
}

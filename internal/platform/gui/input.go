package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockfall/internal/core"
)

// keySet lists the physical keys bound to one action.
type keySet []ebiten.Key

func (ks keySet) pressed() bool {
	for _, k := range ks {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (ks keySet) justPressed() bool {
	for _, k := range ks {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (ks keySet) justReleased() bool {
	for _, k := range ks {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

var (
	keysLeft    = keySet{ebiten.KeyLeft, ebiten.KeyA}
	keysRight   = keySet{ebiten.KeyRight, ebiten.KeyD}
	keysRotate  = keySet{ebiten.KeyUp, ebiten.KeyW}
	keysDown    = keySet{ebiten.KeyDown, ebiten.KeyS}
	keysConfirm = keySet{ebiten.KeyEnter, ebiten.KeySpace}
	keysPause   = keySet{ebiten.KeyP}
	keysQuit    = keySet{ebiten.KeyEscape, ebiten.KeyQ}
)

// keyState is a platform-neutral snapshot of the keys this frontend reads.
type keyState struct {
	LeftHeld       bool
	RightHeld      bool
	RotatePressed  bool
	DownPressed    bool
	DownReleased   bool
	ConfirmPressed bool
	PausePressed   bool
	Clicked        bool // Left button pressed over the menu banner
}

// pollKeys reads the keyboard for this tick.
func pollKeys() keyState {
	return keyState{
		LeftHeld:       keysLeft.pressed(),
		RightHeld:      keysRight.pressed(),
		RotatePressed:  keysRotate.justPressed(),
		DownPressed:    keysDown.justPressed(),
		DownReleased:   keysDown.justReleased(),
		ConfirmPressed: keysConfirm.justPressed(),
		PausePressed:   keysPause.justPressed(),
	}
}

// actions converts a key snapshot into an ordered input frame.
// Held horizontal keys repeat every tick; the game rate-limits shifts.
func (ks keyState) actions() core.InputFrame {
	var f core.InputFrame
	if ks.ConfirmPressed || ks.Clicked {
		f.Add(core.ActionConfirm)
	}
	if ks.PausePressed {
		f.Add(core.ActionPause)
	}
	if ks.DownPressed {
		f.Add(core.ActionSoftDropStart)
	}
	if ks.DownReleased {
		f.Add(core.ActionSoftDropEnd)
	}
	if ks.LeftHeld && !ks.RightHeld {
		f.Add(core.ActionLeft)
	}
	if ks.RightHeld && !ks.LeftHeld {
		f.Add(core.ActionRight)
	}
	if ks.RotatePressed {
		f.Add(core.ActionRotate)
	}
	return f
}

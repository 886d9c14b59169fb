package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/input"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

// Mode keys switch the enabled handle set.
var modeKeys = map[sdl.Scancode]gizmo.Mode{
	sdl.SCANCODE_T: gizmo.ModeAllTranslate,
	sdl.SCANCODE_R: gizmo.ModeAllRotate,
	sdl.SCANCODE_S: gizmo.ModeAllScale,
	sdl.SCANCODE_B: gizmo.ModeArcball,
	sdl.SCANCODE_A: gizmo.ModeAll,
}

// toggles are the viewer settings driven by hotkeys.
type toggles struct {
	modes gizmo.Mode
	local bool
	snap  bool
}

// apply updates the toggles from the keys pressed this frame and reports
// whether the reset key was pressed. Modes and orientation stay fixed
// until a drag is released.
func (t *toggles) apply(keys *input.State, dragging bool, log *zap.Logger) bool {
	if !dragging {
		for key, m := range modeKeys {
			if keys.IsKeyPressed(key) {
				t.modes = m
				log.Info("modes changed", zap.Stringer("modes", m))
			}
		}
		if keys.IsKeyPressed(sdl.SCANCODE_L) {
			t.local = !t.local
			log.Info("orientation changed", zap.Bool("local", t.local))
		}
	}
	if keys.IsKeyPressed(sdl.SCANCODE_N) {
		t.snap = !t.snap
		log.Info("snapping changed", zap.Bool("snap", t.snap))
	}
	return keys.IsKeyPressed(sdl.SCANCODE_HOME)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/input"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

func pressKeys(keys ...sdl.Scancode) *input.State {
	s := input.NewState()
	for _, k := range keys {
		s.Apply(input.Event{Type: input.EventKeyDown, Key: k})
	}
	return s
}

func TestTogglesApply(t *testing.T) {
	tg := toggles{modes: gizmo.ModeAll}
	reset := tg.apply(pressKeys(sdl.SCANCODE_R, sdl.SCANCODE_L, sdl.SCANCODE_N), false, zap.NewNop())

	assert.False(t, reset)
	assert.Equal(t, gizmo.ModeAllRotate, tg.modes)
	assert.True(t, tg.local)
	assert.True(t, tg.snap)

	assert.True(t, tg.apply(pressKeys(sdl.SCANCODE_HOME), false, zap.NewNop()))
}

func TestTogglesKeepModesWhileDragging(t *testing.T) {
	tg := toggles{modes: gizmo.ModeAllTranslate}
	tg.apply(pressKeys(sdl.SCANCODE_S, sdl.SCANCODE_L, sdl.SCANCODE_N), true, zap.NewNop())

	assert.Equal(t, gizmo.ModeAllTranslate, tg.modes)
	assert.False(t, tg.local)
	assert.True(t, tg.snap, "snapping may change mid-drag")

	tg.apply(pressKeys(sdl.SCANCODE_S), false, zap.NewNop())
	assert.Equal(t, gizmo.ModeAllScale, tg.modes)
}

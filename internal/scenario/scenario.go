// Package scenario replays scripted pointer input against a gizmo.
//
// A script places a camera and an entity, then lists pointer steps:
//
//	name: drag x arrow
//	model:
//	  translation: [0, 0, 0]
//	steps:
//	  - {action: move, at: [450, 300]}
//	  - {action: press, at: [450, 300]}
//	  - {action: drag, to: [550, 300], frames: 10}
//	  - {action: release}
//	expect:
//	  translation: [1.5, 0, 0]
//	  tolerance: 0.05
//
// Coordinates are window pixels. Camera angles and model rotations are in degrees.
package scenario

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-gizmo/internal/config"
)

// Action is the kind of a scripted step.
type Action string

const (
	ActionMove    Action = "move"    // Hover without buttons
	ActionPress   Action = "press"   // Press the primary button
	ActionDrag    Action = "drag"    // Move with the button held
	ActionRelease Action = "release" // Release the primary button
)

// Script is a complete scenario.
type Script struct {
	Name   string              `yaml:"name"`
	Window config.WindowConfig `yaml:"window"`
	Camera config.CameraConfig `yaml:"camera"`
	Gizmo  config.GizmoConfig  `yaml:"gizmo"`
	Model  Model               `yaml:"model"`
	Steps  []Step              `yaml:"steps"`
	Expect *Expect             `yaml:"expect,omitempty"`
}

// Model is the initial transform of the manipulated entity.
type Model struct {
	Translation [3]float64 `yaml:"translation"`
	Rotation    [3]float64 `yaml:"rotation"` // Euler XYZ, degrees
	Scale       [3]float64 `yaml:"scale"`
}

// Matrix composes the model into translate * rotate * scale.
func (m Model) Matrix() mgl64.Mat4 {
	r := mgl64.AnglesToQuat(
		mgl64.DegToRad(m.Rotation[0]),
		mgl64.DegToRad(m.Rotation[1]),
		mgl64.DegToRad(m.Rotation[2]),
		mgl64.XYZ,
	)
	return mgl64.Translate3D(m.Translation[0], m.Translation[1], m.Translation[2]).
		Mul4(r.Mat4()).
		Mul4(mgl64.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2]))
}

// Step is one scripted input. Drag steps interpolate from the previous cursor
// position to To over Frames frames.
type Step struct {
	Action  Action      `yaml:"action"`
	At      *[2]float64 `yaml:"at,omitempty"`
	To      [2]float64  `yaml:"to,omitempty"`
	Frames  int         `yaml:"frames,omitempty"`
	Blocked bool        `yaml:"blocked,omitempty"`
}

// Expect holds optional checks on the final state.
type Expect struct {
	Translation *[3]float64 `yaml:"translation,omitempty"`
	Rotation    *[4]float64 `yaml:"rotation,omitempty"` // Quaternion x, y, z, w
	Scale       *[3]float64 `yaml:"scale,omitempty"`
	Hovered     *string     `yaml:"hovered,omitempty"` // Handle name, "" for none
	Results     *int        `yaml:"results,omitempty"` // Number of emitted results
	Tolerance   float64     `yaml:"tolerance,omitempty"`
}

// Default returns a script with the tool defaults and no steps.
func Default() *Script {
	d := config.Default()
	d.Window.Width, d.Window.Height = 800, 600
	return &Script{
		Name:   "unnamed",
		Window: d.Window,
		Camera: d.Camera,
		Gizmo:  d.Gizmo,
		Model:  Model{Scale: [3]float64{1, 1, 1}},
	}
}

// Parse decodes a script over the defaults and validates it.
func Parse(data []byte) (*Script, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the steps and the embedded settings.
func (s *Script) Validate() error {
	cfg := config.Default()
	cfg.Window, cfg.Camera, cfg.Gizmo = s.Window, s.Camera, s.Gizmo
	if err := cfg.Validate(); err != nil {
		return err
	}

	for i, st := range s.Steps {
		switch st.Action {
		case ActionMove, ActionPress:
			if st.At == nil {
				return fmt.Errorf("step %d: %s needs a cursor position", i, st.Action)
			}
		case ActionDrag:
			if st.Frames < 0 {
				return fmt.Errorf("step %d: negative frame count", i)
			}
		case ActionRelease:
		default:
			return fmt.Errorf("step %d: unknown action %q", i, st.Action)
		}
	}
	return nil
}

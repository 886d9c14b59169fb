package gizmo

import (
	"fmt"
	"math/bits"
	"strings"
)

// Mode is a set of gizmo handles. Each bit enables one handle.
type Mode uint32

// Individual handle modes.
const (
	ModeRotateX Mode = 1 << iota
	ModeRotateY
	ModeRotateZ
	ModeRotateView
	ModeTranslateX
	ModeTranslateY
	ModeTranslateZ
	ModeTranslateXY
	ModeTranslateXZ
	ModeTranslateYZ
	ModeTranslateView
	ModeScaleX
	ModeScaleY
	ModeScaleZ
	ModeScaleXY
	ModeScaleXZ
	ModeScaleYZ
	ModeScaleUniform
	ModeArcball

	modeEnd
)

// Mode groups.
const (
	ModeAllRotate    = ModeRotateX | ModeRotateY | ModeRotateZ | ModeRotateView
	ModeAllTranslate = ModeTranslateX | ModeTranslateY | ModeTranslateZ |
		ModeTranslateXY | ModeTranslateXZ | ModeTranslateYZ | ModeTranslateView
	ModeAllScale = ModeScaleX | ModeScaleY | ModeScaleZ |
		ModeScaleXY | ModeScaleXZ | ModeScaleYZ | ModeScaleUniform
	ModeAll = ModeAllRotate | ModeAllTranslate | ModeAllScale | ModeArcball
)

var modeNames = map[Mode]string{
	ModeRotateX:       "rotate_x",
	ModeRotateY:       "rotate_y",
	ModeRotateZ:       "rotate_z",
	ModeRotateView:    "rotate_view",
	ModeTranslateX:    "translate_x",
	ModeTranslateY:    "translate_y",
	ModeTranslateZ:    "translate_z",
	ModeTranslateXY:   "translate_xy",
	ModeTranslateXZ:   "translate_xz",
	ModeTranslateYZ:   "translate_yz",
	ModeTranslateView: "translate_view",
	ModeScaleX:        "scale_x",
	ModeScaleY:        "scale_y",
	ModeScaleZ:        "scale_z",
	ModeScaleXY:       "scale_xy",
	ModeScaleXZ:       "scale_xz",
	ModeScaleYZ:       "scale_yz",
	ModeScaleUniform:  "scale_uniform",
	ModeArcball:       "arcball",
}

// Group names accepted by ParseMode in addition to the individual names.
var modeGroups = map[string]Mode{
	"rotate":    ModeAllRotate,
	"translate": ModeAllTranslate,
	"scale":     ModeAllScale,
	"all":       ModeAll,
}

// Has reports whether all modes in o are enabled in m.
func (m Mode) Has(o Mode) bool {
	return o != 0 && m&o == o
}

// Count returns the number of enabled handles.
func (m Mode) Count() int {
	return bits.OnesCount32(uint32(m & ModeAll))
}

// Single reports whether m names exactly one handle.
func (m Mode) Single() bool {
	return m&ModeAll == m && m.Count() == 1
}

// Each calls fn for every enabled handle in declaration order.
func (m Mode) Each(fn func(Mode)) {
	for b := Mode(1); b < modeEnd; b <<= 1 {
		if m&b != 0 {
			fn(b)
		}
	}
}

// Kind returns the transform family of a single handle mode.
// For sets the kind of the lowest enabled handle is returned.
func (m Mode) Kind() ModeKind {
	low := m & -m
	switch {
	case low&ModeAllRotate != 0:
		return KindRotate
	case low&ModeAllTranslate != 0:
		return KindTranslate
	case low&ModeAllScale != 0:
		return KindScale
	case low&ModeArcball != 0:
		return KindArcball
	}
	return KindNone
}

// String returns the snake_case name of the mode, or the names of all
// enabled handles joined with "|".
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	if m == 0 {
		return "none"
	}
	var names []string
	m.Each(func(b Mode) { names = append(names, modeNames[b]) })
	return strings.Join(names, "|")
}

// ParseMode parses a handle or group name ("translate_x", "rotate", "all").
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if g, ok := modeGroups[name]; ok {
		return g, nil
	}
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown gizmo mode %q", name)
}

// ParseModes parses a list of handle or group names into one set.
func ParseModes(names []string) (Mode, error) {
	var set Mode
	for _, n := range names {
		m, err := ParseMode(n)
		if err != nil {
			return 0, err
		}
		set |= m
	}
	return set, nil
}

// ModeKind is the transform family a handle belongs to.
type ModeKind int

const (
	KindNone ModeKind = iota
	KindRotate
	KindTranslate
	KindScale
	KindArcball
)

// String returns the kind name.
func (k ModeKind) String() string {
	switch k {
	case KindRotate:
		return "rotate"
	case KindTranslate:
		return "translate"
	case KindScale:
		return "scale"
	case KindArcball:
		return "arcball"
	default:
		return "none"
	}
}

// Orientation selects the basis used by the axis handles.
type Orientation int

const (
	// OrientationGlobal aligns handles with the world axes.
	OrientationGlobal Orientation = iota
	// OrientationLocal aligns handles with the entity rotation.
	OrientationLocal
)

// String returns "global" or "local".
func (o Orientation) String() string {
	if o == OrientationLocal {
		return "local"
	}
	return "global"
}

// ParseOrientation parses "global" or "local".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "world", "":
		return OrientationGlobal, nil
	case "local":
		return OrientationLocal, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Direction is the axis a handle acts on.
type Direction int

const (
	DirectionX Direction = iota
	DirectionY
	DirectionZ
	// DirectionView is the camera view axis.
	DirectionView
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionX:
		return "x"
	case DirectionY:
		return "y"
	case DirectionZ:
		return "z"
	default:
		return "view"
	}
}

// PivotPoint selects the center that rotation and scale act around when
// several targets are moved together.
type PivotPoint int

const (
	// PivotMedian rotates and scales around the mean target position.
	PivotMedian PivotPoint = iota
	// PivotIndividual rotates and scales every target around its own origin.
	PivotIndividual
)

// String returns "median" or "individual".
func (p PivotPoint) String() string {
	if p == PivotIndividual {
		return "individual"
	}
	return "median"
}

// ParsePivotPoint parses "median" or "individual".
func ParsePivotPoint(s string) (PivotPoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "median", "":
		return PivotMedian, nil
	case "individual", "individual_origins":
		return PivotIndividual, nil
	}
	return 0, fmt.Errorf("unknown pivot point %q", s)
}

package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// Gizmo is one transform gizmo. It owns the current Config and the
// interaction state carried across frames.
type Gizmo struct {
	id  uuid.UUID
	log *zap.Logger

	cfg      Config
	managers []manager

	hovered    Handle
	hasHovered bool
	drag       *dragState
}

// New creates a gizmo. Returns an error wrapping ErrInvalidConfig if the
// config is unusable.
func New(cfg Config, opts ...Option) (*Gizmo, error) {
	g := &Gizmo{
		id:  uuid.New(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With(zap.Stringer("gizmo", g.id))

	if err := cfg.Validate(); err != nil {
		g.log.Warn("configuration rejected", zap.Error(err))
		return nil, err
	}
	g.cfg = cfg
	g.managers = buildManagers(cfg.EnabledModes())

	g.log.Debug("gizmo created", zap.Stringer("modes", cfg.EnabledModes()))
	return g, nil
}

// ID returns the instance id.
func (g *Gizmo) ID() uuid.UUID {
	return g.id
}

// Config returns the current config.
func (g *Gizmo) Config() Config {
	return g.cfg
}

// UpdateConfig replaces the config used by subsequent frames. An invalid
// config is rejected and the previous one kept.
//
// An in-progress drag keeps its start snapshot, so visual and snapping
// changes are safe mid-drag. Changing modes or orientation mid-drag is not
// supported.
func (g *Gizmo) UpdateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		g.log.Warn("configuration rejected", zap.Error(err))
		return err
	}
	if g.cfg.modesChanged(cfg) {
		g.managers = buildManagers(cfg.EnabledModes())
		g.hasHovered = false
		g.log.Debug("modes changed", zap.Stringer("modes", cfg.EnabledModes()))
	}
	g.cfg = cfg
	return nil
}

// Phase returns the current interaction phase.
func (g *Gizmo) Phase() Phase {
	switch {
	case g.drag != nil:
		return PhaseDragging
	case g.hasHovered:
		return PhaseHovering
	default:
		return PhaseIdle
	}
}

// Hovered returns the handle under the cursor after the last Update.
func (g *Gizmo) Hovered() (Handle, bool) {
	return g.hovered, g.hasHovered
}

// Active returns the handle being dragged.
func (g *Gizmo) Active() (Handle, bool) {
	if g.drag == nil {
		return Handle{}, false
	}
	return g.drag.handle, true
}

// IsFocused reports whether a handle is hovered or dragged.
func (g *Gizmo) IsFocused() bool {
	return g.drag != nil || g.hasHovered
}

// Update advances the interaction by one frame. It returns a result on
// dragging frames that changed the transform of the entity.
func (g *Gizmo) Update(in Interaction) (Result, bool) {
	in = in.normalized()
	cursor := mgl64.Vec2(in.Cursor)

	if g.drag != nil {
		if in.Dragging {
			return g.updateDrag(cursor)
		}
		g.log.Debug("drag ended", zap.Stringer("handle", g.drag.handle))
		g.drag = nil
		in.DragStarted = false
	}

	g.hasHovered = false
	if in.Blocked {
		return Result{}, false
	}

	f, ok := newFrame(g.cfg, TransformFromMatrix(g.cfg.Model))
	if !ok {
		return Result{}, false
	}
	ray, ok := f.ray(cursor)
	if !ok {
		return Result{}, false
	}

	var h Handle
	if g.cfg.ModeOverride != 0 {
		if !g.cfg.Viewport.Contains(cursor) || len(g.managers) == 0 || len(g.managers[0].handles) == 0 {
			return Result{}, false
		}
		h = g.managers[0].handles[0]
	} else if h, _, ok = pickHandle(g.managers, f, ray); !ok {
		return Result{}, false
	}
	g.hovered, g.hasHovered = h, true

	if in.DragStarted {
		d := newDragState(h, f, ray)
		if d.begin() {
			g.drag = d
			g.log.Debug("drag started", zap.Stringer("handle", h))
		}
	}
	return Result{}, false
}

func (g *Gizmo) updateDrag(cursor mgl64.Vec2) (Result, bool) {
	d := g.drag

	// The pointer ray follows the current camera, the constraint stays
	// where the drag started.
	ray, ok := pointerRay(g.cfg, cursor)
	if !ok {
		return Result{}, false
	}

	t, ok := d.update(g.cfg, ray, cursor)
	if !ok {
		return Result{}, false
	}
	if !t.finite() {
		g.log.Warn("suppressed non-finite transform", zap.Stringer("handle", d.handle))
		return Result{}, false
	}
	if t == d.last {
		return Result{}, false
	}

	res := Result{
		Mode:      d.handle.Mode,
		Handle:    d.handle,
		Transform: t,
		Delta:     t.relative(d.last),
		Total:     t.relative(d.start.transform),
	}
	if k := d.handle.Mode.Kind(); k == KindRotate || k == KindArcball {
		res.Angle = d.angle
	}
	d.last = t
	return res, true
}

// Draw returns the geometry of the current frame. While dragging only the
// active handle is drawn, positioned at the last reported transform.
func (g *Gizmo) Draw() DrawData {
	var out DrawData

	t := TransformFromMatrix(g.cfg.Model)
	if g.drag != nil {
		t = g.drag.last
	}
	f, ok := newFrame(g.cfg, t)
	if !ok {
		return out
	}

	b := &shapeBuilder{f: f, out: &out}
	if g.drag != nil {
		g.drag.handle.tessellate(b, true, g.drag)
		return out
	}
	for _, m := range g.managers {
		for _, h := range m.handles {
			h.tessellate(b, g.hasHovered && h == g.hovered, nil)
		}
	}
	return out
}

// pointerRay casts the pick ray for a cursor position with the camera of cfg.
func pointerRay(cfg Config, cursor mgl64.Vec2) (viewport.Ray, bool) {
	inv, ok := viewport.Invert(cfg.Projection.Mul4(cfg.View))
	if !ok {
		return viewport.Ray{}, false
	}
	return viewport.ScreenToRay(cfg.Viewport, inv, cursor)
}

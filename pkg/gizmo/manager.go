package gizmo

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

// manager owns the handles of one transform family.
type manager struct {
	kind    ModeKind
	handles []Handle
}

// buildManagers creates the managers for the enabled modes in a fixed
// order: rotate, translate, scale, arcball. Families without handles are
// left out.
func buildManagers(modes Mode) []manager {
	all := []manager{
		{kind: KindRotate, handles: rotateHandles(modes)},
		{kind: KindTranslate, handles: translateHandles(modes)},
		{kind: KindScale, handles: scaleHandles(modes)},
		{kind: KindArcball, handles: arcballHandles(modes)},
	}

	managers := all[:0]
	for _, m := range all {
		if len(m.handles) > 0 {
			managers = append(managers, m)
		}
	}
	return managers
}

// pick returns the best hit among the manager's handles.
func (m manager) pick(f *frame, ray viewport.Ray) (Handle, hit, bool) {
	var (
		best    Handle
		bestHit hit
		found   bool
	)
	for _, h := range m.handles {
		hv, ok := h.hitTest(f, ray)
		if !ok {
			continue
		}
		if !found || hv.better(h.Kind, bestHit, best.Kind) {
			best, bestHit, found = h, hv, true
		}
	}
	return best, bestHit, found
}

// pickHandle resolves the hovered handle across all managers.
func pickHandle(managers []manager, f *frame, ray viewport.Ray) (Handle, hit, bool) {
	var (
		best    Handle
		bestHit hit
		found   bool
	)
	for _, m := range managers {
		h, hv, ok := m.pick(f, ray)
		if !ok {
			continue
		}
		if !found || hv.better(h.Kind, bestHit, best.Kind) {
			best, bestHit, found = h, hv, true
		}
	}
	return best, bestHit, found
}

// begin prepares the drag-start references of the handle's family.
// Returns false if the drag cannot start from this ray.
func (d *dragState) begin() bool {
	switch d.handle.Mode.Kind() {
	case KindTranslate:
		return beginTranslate(d)
	case KindRotate:
		return beginRotate(d)
	case KindScale:
		return beginScale(d)
	case KindArcball:
		return beginArcball(d)
	}
	return false
}

// update computes the transform for the current pointer position relative
// to the drag start. Returns false if the frame has no well-defined result.
// Snapping settings are read from cfg, the current config.
func (d *dragState) update(cfg Config, ray viewport.Ray, cursor mgl64.Vec2) (Transform, bool) {
	switch d.handle.Mode.Kind() {
	case KindTranslate:
		return dragTranslate(d, cfg, ray)
	case KindRotate:
		return dragRotate(d, cfg, ray, cursor)
	case KindScale:
		return dragScale(d, cfg, cursor)
	case KindArcball:
		return dragArcball(d, cursor)
	}
	return Transform{}, false
}

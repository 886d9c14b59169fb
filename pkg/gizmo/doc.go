// Package gizmo implements a renderer-agnostic 3D transform gizmo.
//
// A Gizmo is fed a Config (camera matrices, viewport, model matrix of the
// manipulated entity, enabled modes) and one Interaction per frame. Update
// advances the hover/drag state machine and reports the new transform of the
// entity while a handle is dragged. Draw returns triangle geometry in window
// coordinates that the host renders with whatever API it uses.
//
// Typical frame:
//
//	if err := g.UpdateConfig(cfg); err != nil {
//		return err
//	}
//	in := gizmo.Interaction{
//		Cursor:      cursor,
//		DragStarted: mousePressed, // Button went down this frame
//		Dragging:    mouseDown,
//	}
//	if res, ok := g.Update(in); ok {
//		entity.SetTransform(res.Transform)
//	}
//	renderer.Draw(g.Draw())
//
// All deltas are computed against the state captured when the drag started,
// so long drags do not accumulate rounding or snapping error.
//
// A Gizmo is not safe for concurrent use; confine it to the thread that
// drives the frame loop.
package gizmo

package scenario

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

// Frame records one replayed frame.
type Frame struct {
	Index   int          `yaml:"index"`
	Cursor  [2]float64   `yaml:"cursor"`
	Phase   string       `yaml:"phase"`
	Hovered string       `yaml:"hovered,omitempty"`
	Result  *FrameResult `yaml:"result,omitempty"`
}

// FrameResult is the printable part of a gizmo.Result.
type FrameResult struct {
	Handle    string          `yaml:"handle"`
	Transform gizmo.Transform `yaml:"transform"`
	Total     gizmo.Transform `yaml:"total"`
	Angle     float64         `yaml:"angle_deg,omitempty"`
}

// Report is the outcome of a replay.
type Report struct {
	Name    string          `yaml:"name"`
	Frames  []Frame         `yaml:"frames"`
	Final   gizmo.Transform `yaml:"final"`
	Results int             `yaml:"results"`

	// Draw holds the draw data of the last frame.
	Draw gizmo.DrawData `yaml:"-"`
}

// Runner replays scripts.
type Runner struct {
	log *zap.Logger
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run replays s. The entity model follows every emitted result, the way a
// host application would apply it.
func (r *Runner) Run(s *Script) (*Report, error) {
	tool := config.Default()
	tool.Window, tool.Camera, tool.Gizmo = s.Window, s.Camera, s.Gizmo
	cam := tool.Camera.OrbitCamera()

	cfg, err := tool.GizmoConfig(cam, s.Model.Matrix())
	if err != nil {
		return nil, err
	}
	g, err := gizmo.New(cfg, gizmo.WithLogger(r.log))
	if err != nil {
		return nil, err
	}

	log := r.log.With(zap.String("scenario", s.Name))
	rep := &Report{Name: s.Name, Final: gizmo.TransformFromMatrix(cfg.Model)}

	var cursor [2]float64
	held := false
	frame := func(in gizmo.Interaction) error {
		res, ok := g.Update(in)
		f := Frame{Index: len(rep.Frames), Cursor: in.Cursor, Phase: g.Phase().String()}
		if h, hovered := g.Hovered(); hovered {
			f.Hovered = h.String()
		}
		if ok {
			rep.Results++
			rep.Final = res.Transform
			f.Result = &FrameResult{
				Handle:    res.Handle.String(),
				Transform: res.Transform,
				Total:     res.Total,
				Angle:     res.Angle * 180 / math.Pi,
			}
			cfg := g.Config()
			cfg.Model = res.Transform.Matrix()
			if err := g.UpdateConfig(cfg); err != nil {
				return fmt.Errorf("frame %d: %w", f.Index, err)
			}
		}
		rep.Frames = append(rep.Frames, f)
		return nil
	}

	for i, st := range s.Steps {
		if st.At != nil {
			cursor = *st.At
		}
		switch st.Action {
		case ActionMove:
			err = frame(gizmo.Interaction{Cursor: cursor, Dragging: held, Blocked: st.Blocked})
		case ActionPress:
			held = true
			err = frame(gizmo.Interaction{Cursor: cursor, DragStarted: true, Dragging: true, Blocked: st.Blocked})
		case ActionDrag:
			held = true
			from := cursor
			n := st.Frames
			if n == 0 {
				n = 1
			}
			for k := 1; k <= n && err == nil; k++ {
				t := float64(k) / float64(n)
				cursor = [2]float64{
					from[0] + (st.To[0]-from[0])*t,
					from[1] + (st.To[1]-from[1])*t,
				}
				err = frame(gizmo.Interaction{Cursor: cursor, Dragging: true, Blocked: st.Blocked})
			}
		case ActionRelease:
			held = false
			err = frame(gizmo.Interaction{Cursor: cursor, Blocked: st.Blocked})
		}
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}

	rep.Draw = g.Draw()
	log.Debug("scenario replayed",
		zap.Int("frames", len(rep.Frames)),
		zap.Int("results", rep.Results),
	)
	return rep, nil
}

// Check compares the report with the expectations of s.
func (s *Script) Check(rep *Report) error {
	e := s.Expect
	if e == nil {
		return nil
	}
	tol := e.Tolerance
	if tol == 0 {
		tol = 1e-6
	}

	if e.Translation != nil {
		if err := near("translation", e.Translation[:], rep.Final.Translation[:], tol); err != nil {
			return err
		}
	}
	if e.Scale != nil {
		if err := near("scale", e.Scale[:], rep.Final.Scale[:], tol); err != nil {
			return err
		}
	}
	if e.Rotation != nil {
		// q and -q are the same rotation
		want := gizmo.Transform{Rotation: *e.Rotation}.Quat()
		dot := math.Abs(want.Dot(rep.Final.Quat()))
		if 1-dot > tol {
			return fmt.Errorf("rotation: want %v, got %v", *e.Rotation, rep.Final.Rotation)
		}
	}
	if e.Results != nil && *e.Results != rep.Results {
		return fmt.Errorf("results: want %d, got %d", *e.Results, rep.Results)
	}
	if e.Hovered != nil {
		got := ""
		if n := len(rep.Frames); n > 0 {
			got = rep.Frames[n-1].Hovered
		}
		if got != *e.Hovered {
			return fmt.Errorf("hovered: want %q, got %q", *e.Hovered, got)
		}
	}
	return nil
}

func near(name string, want, got []float64, tol float64) error {
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			return fmt.Errorf("%s: want %v, got %v", name, want, got)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/camera"
	"github.com/Faultbox/midgard-gizmo/internal/config"
	"github.com/Faultbox/midgard-gizmo/internal/glrender"
	"github.com/Faultbox/midgard-gizmo/internal/input"
	"github.com/Faultbox/midgard-gizmo/internal/logger"
	"github.com/Faultbox/midgard-gizmo/internal/raster"
	"github.com/Faultbox/midgard-gizmo/internal/scene"
	"github.com/Faultbox/midgard-gizmo/internal/window"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

type viewer struct {
	cfg  *config.Config
	log  *zap.Logger
	win  *window.Window
	rend *glrender.Renderer
	in   *input.Input
	cam  *camera.OrbitCamera
	giz  *gizmo.Gizmo

	model mgl64.Mat4
	toggles
}

func newViewer(cfg *config.Config) (*viewer, error) {
	v := &viewer{
		cfg:   cfg,
		log:   logger.Named("viewer"),
		in:    input.New(),
		cam:   cfg.Camera.OrbitCamera(),
		model: mgl64.Ident4(),

		toggles: toggles{
			snap:  cfg.Gizmo.Snapping,
			local: cfg.Gizmo.Orientation == gizmo.OrientationLocal.String(),
		},
	}

	var err error
	v.win, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	}, logger.Named("window"))
	if err != nil {
		return nil, err
	}
	cfg.Window.Width, cfg.Window.Height = v.win.Size()

	v.rend, err = glrender.New()
	if err != nil {
		v.win.Close()
		return nil, err
	}

	gcfg, err := v.gizmoConfig()
	if err != nil {
		v.Close()
		return nil, err
	}
	v.modes = gcfg.Modes
	v.giz, err = gizmo.New(gcfg, gizmo.WithLogger(logger.Named("gizmo")))
	if err != nil {
		v.Close()
		return nil, err
	}
	v.log.Info("gizmo ready", zap.Stringer("id", v.giz.ID()), zap.Stringer("modes", gcfg.Modes))
	return v, nil
}

// gizmoConfig builds the library config from the tool settings and the
// viewer toggles.
func (v *viewer) gizmoConfig() (gizmo.Config, error) {
	g, err := v.cfg.GizmoConfig(v.cam, v.model)
	if err != nil {
		return g, err
	}
	if v.modes != 0 {
		g.Modes = v.modes
	}
	if v.local {
		g.Orientation = gizmo.OrientationLocal
	} else {
		g.Orientation = gizmo.OrientationGlobal
	}
	g.Snapping = v.snap != v.in.SnapHeld()
	return g, nil
}

// Run runs the frame loop until the window closes.
func (v *viewer) Run() error {
	last := time.Now()
	frames := 0
	for {
		if v.in.Update() || v.in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			return nil
		}
		if w, h, ok := v.in.Resized(); ok {
			v.cfg.Window.Width, v.cfg.Window.Height = w, h
		}
		v.handleKeys()

		// The camera stays put while a handle is dragged
		if v.giz.Phase() != gizmo.PhaseDragging {
			v.cam.HandleDrag(v.in.Orbit())
			dx, dy := v.in.Pan()
			v.cam.HandlePan(dx, dy, float64(v.cfg.Window.Height))
			v.cam.HandleZoom(v.in.Zoom())
		}

		gcfg, err := v.gizmoConfig()
		if err != nil {
			return err
		}
		if err := v.giz.UpdateConfig(gcfg); err != nil {
			v.log.Warn("gizmo config rejected", zap.Error(err))
		}

		if res, ok := v.giz.Update(v.in.Interaction(false)); ok {
			v.model = res.Transform.Matrix()
			v.win.SetTitle(fmt.Sprintf("%s - %s  angle %.1f°", v.cfg.Window.Title, res.Handle, mgl64.RadToDeg(res.Angle)))
		}

		v.draw(gcfg)
		if v.in.IsKeyPressed(sdl.SCANCODE_F12) {
			v.screenshot()
		}
		v.win.SwapBuffers()

		frames++
		if since := time.Since(last); since >= 5*time.Second {
			v.log.Debug("frame stats", zap.Float64("fps", float64(frames)/since.Seconds()))
			frames, last = 0, time.Now()
		}
	}
}

func (v *viewer) handleKeys() {
	if v.apply(&v.in.State, v.giz.Phase() == gizmo.PhaseDragging, v.log) {
		v.model = mgl64.Ident4()
		v.cam.FitToRadius(mgl64.Vec3{}, 2)
	}
}

func (v *viewer) draw(gcfg gizmo.Config) {
	var dd gizmo.DrawData
	o := scene.NewOverlay(gcfg, &dd)
	o.Grid(10, 1, 1, [4]float32{1, 1, 1, 0.12}, [4]float32{1, 0.3, 0.3, 0.5}, [4]float32{0.3, 0.5, 1, 0.5})
	o.Box(v.model, 0.5, 1.5, [4]float32{0.85, 0.85, 0.85, 1})
	dd.Append(v.giz.Draw())

	bg := gizmo.Color(v.cfg.Window.Background).Float()
	dw, dh := v.win.DrawableSize()
	v.rend.Clear(bg, dw, dh)
	v.rend.Draw(dd, v.cfg.Window.Width, v.cfg.Window.Height)
}

func (v *viewer) screenshot() {
	w, h := v.win.DrawableSize()
	img := v.rend.ReadPixels(w, h)
	path := filepath.Join("screenshots", fmt.Sprintf("gizmo_%s.png", time.Now().Format("2006-01-02_15-04-05")))
	if err := raster.Save(path, img); err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the GL objects and the window.
func (v *viewer) Close() {
	if v.rend != nil {
		v.rend.Close()
		v.rend = nil
	}
	if v.win != nil {
		v.win.Close()
		v.win = nil
	}
}

package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-gizmo/internal/logger"
	"github.com/Faultbox/midgard-gizmo/internal/raster"
	"github.com/Faultbox/midgard-gizmo/internal/scenario"
	"github.com/Faultbox/midgard-gizmo/internal/scene"
	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

var renderOpts struct {
	out       string
	cursor    []float64
	press     bool
	translate []float64
	scenario  string
	noScene   bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a gizmo snapshot to a PNG, BMP or TIFF file",
	Long: `Render draws the gizmo for the configured camera into an image file.
With --cursor the handle under the cursor is highlighted, and --press starts
a drag there. With --scenario the script is replayed first and its last frame
is rendered.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.out, "out", "o", "gizmo.png", "output image (.png, .bmp or .tiff)")
	f.Float64SliceVar(&renderOpts.cursor, "cursor", nil, "cursor position x,y in pixels")
	f.BoolVar(&renderOpts.press, "press", false, "press the primary button at --cursor")
	f.Float64SliceVar(&renderOpts.translate, "translate", []float64{0, 0, 0}, "entity position x,y,z")
	f.StringVar(&renderOpts.scenario, "scenario", "", "replay a scenario script and render its last frame")
	f.BoolVar(&renderOpts.noScene, "no-scene", false, "draw only the gizmo, without grid and entity box")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.Named("render")

	var (
		gcfg gizmo.Config
		dd   gizmo.DrawData
	)
	if renderOpts.scenario != "" {
		s, err := scenario.Load(renderOpts.scenario)
		if err != nil {
			return err
		}
		rep, err := scenario.NewRunner(log).Run(s)
		if err != nil {
			return err
		}
		tool := *cfg
		tool.Window, tool.Camera, tool.Gizmo = s.Window, s.Camera, s.Gizmo
		if gcfg, err = tool.GizmoConfig(tool.Camera.OrbitCamera(), rep.Final.Matrix()); err != nil {
			return err
		}
		dd = rep.Draw
	} else {
		if len(renderOpts.translate) != 3 {
			return fmt.Errorf("--translate needs three values")
		}
		model := mgl64.Translate3D(renderOpts.translate[0], renderOpts.translate[1], renderOpts.translate[2])
		var err error
		if gcfg, err = cfg.GizmoConfig(cfg.Camera.OrbitCamera(), model); err != nil {
			return err
		}
		g, err := gizmo.New(gcfg, gizmo.WithLogger(log))
		if err != nil {
			return err
		}
		if in, ok, err := renderInteraction(); err != nil {
			return err
		} else if ok {
			g.Update(in)
			if h, hovered := g.Hovered(); hovered {
				log.Info("hovered handle", zap.Stringer("handle", h))
			}
		}
		dd = g.Draw()
	}

	frame := dd
	if !renderOpts.noScene {
		frame = sceneDrawData(gcfg)
		frame.Append(dd)
	}

	w, h := int(gcfg.Viewport.Width), int(gcfg.Viewport.Height)
	bg := cfg.Window.Background
	img := raster.New(w, h).Render(frame, color.NRGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]})
	if err := raster.Save(renderOpts.out, img); err != nil {
		return err
	}

	log.Info("snapshot written",
		zap.String("path", renderOpts.out),
		zap.Int("triangles", frame.Triangles()),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d triangles)\n", renderOpts.out, w, h, frame.Triangles())
	return nil
}

func renderInteraction() (gizmo.Interaction, bool, error) {
	if len(renderOpts.cursor) == 0 {
		return gizmo.Interaction{}, false, nil
	}
	if len(renderOpts.cursor) != 2 {
		return gizmo.Interaction{}, false, fmt.Errorf("--cursor needs two values")
	}
	return gizmo.Interaction{
		Cursor:      [2]float64{renderOpts.cursor[0], renderOpts.cursor[1]},
		DragStarted: renderOpts.press,
	}, true, nil
}

// sceneDrawData draws the ground grid and the entity box under the gizmo.
func sceneDrawData(g gizmo.Config) gizmo.DrawData {
	var dd gizmo.DrawData
	o := scene.NewOverlay(g, &dd)
	v := g.Visuals
	o.Grid(10, 1, 1, [4]float32{1, 1, 1, 0.12}, fade(v.XColor, 0.5), fade(v.ZColor, 0.5))
	o.Box(g.Model, 0.5, 1.5, [4]float32{0.85, 0.85, 0.85, 1})
	return dd
}

func fade(c gizmo.Color, alpha float32) [4]float32 {
	f := c.Float()
	f[3] *= alpha
	return f
}

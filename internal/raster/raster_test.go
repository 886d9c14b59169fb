package raster

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
	"github.com/Faultbox/midgard-gizmo/pkg/viewport"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = [4]float32{1, 0, 0, 1}
)

func rgba(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRenderTriangle(t *testing.T) {
	var dd gizmo.DrawData
	dd.AddTriangle([2]float32{0, 0}, [2]float32{40, 0}, [2]float32{0, 40}, red)

	img := New(64, 48).Render(dd, black)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba(img, 5, 5))
	assert.Equal(t, black, rgba(img, 60, 40))
}

func TestRenderWindingIndependent(t *testing.T) {
	var cw, ccw gizmo.DrawData
	cw.AddTriangle([2]float32{0, 0}, [2]float32{40, 0}, [2]float32{0, 40}, red)
	ccw.AddTriangle([2]float32{0, 0}, [2]float32{0, 40}, [2]float32{40, 0}, red)

	r := New(64, 48)
	assert.Equal(t, r.Render(cw, black).Pix, r.Render(ccw, black).Pix)
}

func TestRenderLineHasNoSeam(t *testing.T) {
	var dd gizmo.DrawData
	dd.AddLine([2]float32{4, 20}, [2]float32{60, 20}, 10, red)

	img := New(64, 48).Render(dd, black)
	for x := 6; x < 58; x++ {
		assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba(img, x, 19), "x=%d", x)
	}
	assert.Equal(t, black, rgba(img, 30, 5))
}

func TestRenderBlendsAlpha(t *testing.T) {
	var dd gizmo.DrawData
	dd.AddTriangle([2]float32{0, 0}, [2]float32{40, 0}, [2]float32{0, 40}, [4]float32{1, 1, 1, 0.5})

	px := rgba(New(64, 48).Render(dd, black), 5, 5)
	assert.InDelta(t, 128, int(px.R), 2)
	assert.Equal(t, uint8(255), px.A)
}

func TestRenderSkipsBadGeometry(t *testing.T) {
	dd := gizmo.DrawData{
		Vertices: [][2]float32{{0, 0}, {10, 0}, {float32(math.NaN()), 5}, {1e30, 1e30}},
		Colors:   [][4]float32{red, red, red, red},
		Indices:  []uint32{0, 1, 2, 0, 1, 7, 0, 1, 3, 0},
	}
	assert.NotPanics(t, func() {
		New(32, 32).Render(dd, black)
	})
}

func TestRenderGizmo(t *testing.T) {
	cfg := gizmo.DefaultConfig()
	cfg.View = mgl64.LookAtV(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	cfg.Projection = mgl64.Perspective(mgl64.DegToRad(45), 200.0/150.0, 0.1, 100)
	cfg.Viewport = viewport.NewRect(200, 150)
	cfg.Modes = gizmo.ModeAllTranslate

	g, err := gizmo.New(cfg)
	require.NoError(t, err)

	img := New(200, 150).Render(g.Draw(), black)
	var lit int
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if rgba(img, x, y) != black {
				lit++
			}
		}
	}
	assert.Positive(t, lit)

	// The X arrow is drawn right of the center in the X color
	px := rgba(img, 140, 75)
	assert.Greater(t, px.R, px.G)
}

func TestSave(t *testing.T) {
	var dd gizmo.DrawData
	dd.AddTriangle([2]float32{0, 0}, [2]float32{16, 0}, [2]float32{0, 16}, red)
	img := New(16, 12).Render(dd, black)

	for _, name := range []string{"snap.png", "snap.bmp", "snap.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out", name)
			require.NoError(t, Save(path, img))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			decoded, _, err := image.Decode(f)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), decoded.Bounds())
			r, g, b, _ := decoded.At(2, 2).RGBA()
			assert.Equal(t, []uint32{0xffff, 0, 0}, []uint32{r, g, b})
		})
	}

	assert.Error(t, Save(filepath.Join(t.TempDir(), "snap.jpg"), img))
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/C.TIF")
	require.NoError(t, err)
	assert.Equal(t, FormatTIFF, f)

	_, err = FormatFromPath("noext")
	assert.Error(t, err)
}

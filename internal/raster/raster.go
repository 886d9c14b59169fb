// Package raster draws gizmo geometry into images on the CPU. It backs the
// snapshot command and tests that need pixels without a GPU.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

// Coordinates are clamped to this range before rasterization.
const maxCoord = 1 << 20

// Renderer rasterizes DrawData. It reuses its scratch buffers between frames
// and is not safe for concurrent use.
type Renderer struct {
	width, height int
	r             *vector.Rasterizer
}

// New creates a renderer for images of the given size.
func New(width, height int) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		r:      vector.NewRasterizer(width, height),
	}
}

// Size returns the image size.
func (rd *Renderer) Size() (int, int) {
	return rd.width, rd.height
}

// Render fills a new image with bg and draws dd over it.
func (rd *Renderer) Render(dd gizmo.DrawData, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rd.width, rd.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	rd.Draw(img, dd)
	return img
}

// Draw composites dd over dst. Consecutive triangles of the same color are
// filled as one path so shared edges leave no seams.
func (rd *Renderer) Draw(dst draw.Image, dd gizmo.DrawData) {
	var (
		run     [4]float32
		pending bool
	)
	flush := func() {
		if pending {
			rd.fill(dst, run)
			pending = false
		}
	}

	n := uint32(len(dd.Vertices))
	for i := 0; i+2 < len(dd.Indices); i += 3 {
		a, b, c := dd.Indices[i], dd.Indices[i+1], dd.Indices[i+2]
		if a >= n || b >= n || c >= n || int(a) >= len(dd.Colors) {
			continue
		}
		pa, pb, pc := dd.Vertices[a], dd.Vertices[b], dd.Vertices[c]
		if !finite(pa) || !finite(pb) || !finite(pc) {
			continue
		}

		col := dd.Colors[a]
		if pending && col != run {
			flush()
		}
		if !pending {
			rd.r.Reset(rd.width, rd.height)
			run, pending = col, true
		}

		// Same winding for every triangle, so overlaps add coverage
		if cross(pa, pb, pc) < 0 {
			pb, pc = pc, pb
		}
		rd.r.MoveTo(clamp(pa[0]), clamp(pa[1]))
		rd.r.LineTo(clamp(pb[0]), clamp(pb[1]))
		rd.r.LineTo(clamp(pc[0]), clamp(pc[1]))
		rd.r.ClosePath()
	}
	flush()
}

func (rd *Renderer) fill(dst draw.Image, c [4]float32) {
	src := image.NewUniform(color.NRGBA{
		R: channel(c[0]),
		G: channel(c[1]),
		B: channel(c[2]),
		A: channel(c[3]),
	})
	rd.r.DrawOp = draw.Over
	rd.r.Draw(dst, image.Rect(0, 0, rd.width, rd.height).Intersect(dst.Bounds()), src, image.Point{})
}

func channel(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func cross(a, b, c [2]float32) float32 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func clamp(v float32) float32 {
	if v > maxCoord {
		return maxCoord
	}
	if v < -maxCoord {
		return -maxCoord
	}
	return v
}

func finite(p [2]float32) bool {
	for _, v := range p {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

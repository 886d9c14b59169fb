package gizmo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// stepsPerRadian controls the tessellation of circles and arcs.
	stepsPerRadian = 20
	// maxMiter limits the miter length of sharp polyline joints.
	maxMiter = 4.0
	// maxCoord bounds projected coordinates so they stay finite in float32.
	maxCoord = 1e9
)

// shapeBuilder tessellates world-space shapes into window-space triangles.
type shapeBuilder struct {
	f   *frame
	out *DrawData
}

// strokeWidth converts a stroke in points to pixels, at least one pixel wide.
func (b *shapeBuilder) strokeWidth(points float64) float64 {
	return math.Max(points*b.f.pixelsPerPoint, 1)
}

// project maps every point to the window. Shapes with any point behind the
// camera are dropped as a whole.
func (b *shapeBuilder) project(pts []mgl64.Vec3) ([]mgl64.Vec2, bool) {
	out := make([]mgl64.Vec2, len(pts))
	for i, p := range pts {
		s, ok := b.f.project(p)
		if !ok || math.Abs(s[0]) > maxCoord || math.Abs(s[1]) > maxCoord {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func (b *shapeBuilder) lineSegment(from, to mgl64.Vec3, width float64, color [4]float32) {
	b.polyline([]mgl64.Vec3{from, to}, false, width, color)
}

// polyline strokes a line strip with mitered joints.
func (b *shapeBuilder) polyline(pts []mgl64.Vec3, closed bool, width float64, color [4]float32) {
	if color[3] <= 0 {
		return
	}
	screen, ok := b.project(pts)
	if !ok {
		return
	}
	addPolyline(b.out, screen, closed, b.strokeWidth(width)/2, color)
}

// arrowHead fills a triangle with its base centered on from and its tip at to.
func (b *shapeBuilder) arrowHead(from, to mgl64.Vec3, width float64, color [4]float32) {
	if color[3] <= 0 {
		return
	}
	s, ok := b.project([]mgl64.Vec3{from, to})
	if !ok {
		return
	}
	dir, ok := normalize2(s[1].Sub(s[0]))
	if !ok {
		return
	}
	n := mgl64.Vec2{-dir[1], dir[0]}.Mul(b.strokeWidth(width) / 2)
	b.out.AddTriangle(vec32(s[0].Add(n)), vec32(s[0].Sub(n)), vec32(s[1]), color)
}

// convexPolygon fills a convex polygon.
func (b *shapeBuilder) convexPolygon(pts []mgl64.Vec3, color [4]float32) {
	if color[3] <= 0 || len(pts) < 3 {
		return
	}
	s, ok := b.project(pts)
	if !ok {
		return
	}
	idx := b.out.addVertices(color, vecs32(s)...)
	for i := 1; i+1 < len(s); i++ {
		b.out.Indices = append(b.out.Indices, idx, idx+uint32(i), idx+uint32(i)+1)
	}
}

// fan fills the triangles between center and consecutive rim points.
func (b *shapeBuilder) fan(center mgl64.Vec3, rim []mgl64.Vec3, closed bool, color [4]float32) {
	if color[3] <= 0 || len(rim) < 2 {
		return
	}
	s, ok := b.project(append([]mgl64.Vec3{center}, rim...))
	if !ok {
		return
	}
	idx := b.out.addVertices(color, vecs32(s)...)
	n := uint32(len(rim))
	for i := uint32(0); i+1 < n; i++ {
		b.out.Indices = append(b.out.Indices, idx, idx+1+i, idx+2+i)
	}
	if closed {
		b.out.Indices = append(b.out.Indices, idx, idx+n, idx+1)
	}
}

// arcPoints returns points on a circle around center in the plane with
// the given normal, starting at unit vector from rotated by start and
// sweeping by sweep radians.
func arcPoints(center, normal, from mgl64.Vec3, radius, start, sweep float64) []mgl64.Vec3 {
	steps := int(math.Ceil(math.Abs(sweep) * stepsPerRadian))
	if steps < 2 {
		steps = 2
	}
	pts := make([]mgl64.Vec3, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		pts = append(pts, center.Add(circleDir(normal, from, a).Mul(radius)))
	}
	return pts
}

// circleDir rotates unit vector from, perpendicular to normal, by angle a.
func circleDir(normal, from mgl64.Vec3, a float64) mgl64.Vec3 {
	return from.Mul(math.Cos(a)).Add(normal.Cross(from).Mul(math.Sin(a)))
}

// circlePoints returns a closed ring of points without the repeated endpoint.
func circlePoints(center, normal, from mgl64.Vec3, radius float64) []mgl64.Vec3 {
	pts := arcPoints(center, normal, from, radius, 0, 2*math.Pi)
	return pts[:len(pts)-1]
}

// addPolyline emits a mitered line strip of half width hw.
func addPolyline(out *DrawData, pts []mgl64.Vec2, closed bool, hw float64, color [4]float32) {
	pts = dedupe(pts, closed)
	n := len(pts)
	if n < 2 {
		return
	}
	if n < 3 {
		closed = false
	}

	segments := n - 1
	if closed {
		segments = n
	}
	normals := make([]mgl64.Vec2, segments)
	for i := range normals {
		d, _ := normalize2(pts[(i+1)%n].Sub(pts[i]))
		normals[i] = mgl64.Vec2{-d[1], d[0]}
	}

	idx := uint32(len(out.Vertices))
	for i, p := range pts {
		var m mgl64.Vec2
		scale := 1.0
		switch {
		case !closed && i == 0:
			m = normals[0]
		case !closed && i == n-1:
			m = normals[n-2]
		default:
			prev := normals[(i-1+segments)%segments]
			next := normals[i%segments]
			var ok bool
			if m, ok = normalize2(prev.Add(next)); !ok {
				m = next
			}
			scale = 1 / math.Max(m.Dot(next), 1/maxMiter)
		}
		off := m.Mul(hw * scale)
		out.addVertices(color, vec32(p.Add(off)), vec32(p.Sub(off)))
	}

	for i := 0; i < segments; i++ {
		a := idx + uint32(2*i)
		b := idx + uint32(2*((i+1)%n))
		out.Indices = append(out.Indices, a, a+1, b, b, a+1, b+1)
	}
}

// dedupe drops consecutive points closer than a hundredth of a pixel.
func dedupe(pts []mgl64.Vec2, closed bool) []mgl64.Vec2 {
	const minDist = 1e-2

	out := make([]mgl64.Vec2, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && p.Sub(out[len(out)-1]).Len() < minDist {
			continue
		}
		out = append(out, p)
	}
	if closed && len(out) > 1 && out[0].Sub(out[len(out)-1]).Len() < minDist {
		out = out[:len(out)-1]
	}
	return out
}

func vec32(v mgl64.Vec2) [2]float32 {
	return [2]float32{float32(v[0]), float32(v[1])}
}

func vecs32(vs []mgl64.Vec2) [][2]float32 {
	out := make([][2]float32, len(vs))
	for i, v := range vs {
		out[i] = vec32(v)
	}
	return out
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

package gizmo

// DrawData is the triangle geometry of one frame in window coordinates.
// Every three indices form one triangle. Colors are per vertex, RGBA in
// [0, 1] with straight alpha.
type DrawData struct {
	Vertices [][2]float32
	Colors   [][4]float32
	Indices  []uint32
}

// Empty reports whether there is nothing to draw.
func (d DrawData) Empty() bool {
	return len(d.Indices) == 0
}

// Triangles returns the number of triangles.
func (d DrawData) Triangles() int {
	return len(d.Indices) / 3
}

// Reset clears the buffers, keeping their capacity.
func (d *DrawData) Reset() {
	d.Vertices = d.Vertices[:0]
	d.Colors = d.Colors[:0]
	d.Indices = d.Indices[:0]
}

// Append adds the geometry of o after d.
func (d *DrawData) Append(o DrawData) {
	base := uint32(len(d.Vertices))
	d.Vertices = append(d.Vertices, o.Vertices...)
	d.Colors = append(d.Colors, o.Colors...)
	for _, i := range o.Indices {
		d.Indices = append(d.Indices, base+i)
	}
}

// AddTriangle adds one filled triangle.
func (d *DrawData) AddTriangle(a, b, c [2]float32, color [4]float32) {
	if color[3] <= 0 {
		return
	}
	idx := d.addVertices(color, a, b, c)
	d.Indices = append(d.Indices, idx, idx+1, idx+2)
}

// AddLine adds a line of the given pixel width as a quad.
func (d *DrawData) AddLine(a, b [2]float32, width float32, color [4]float32) {
	if color[3] <= 0 || width <= 0 {
		return
	}

	// Normal perpendicular to the line
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := sqrt32(dx*dx + dy*dy)
	if l == 0 {
		return
	}
	nx := -dy / l * width * 0.5
	ny := dx / l * width * 0.5

	idx := d.addVertices(color,
		[2]float32{a[0] + nx, a[1] + ny},
		[2]float32{b[0] + nx, b[1] + ny},
		[2]float32{b[0] - nx, b[1] - ny},
		[2]float32{a[0] - nx, a[1] - ny},
	)
	d.Indices = append(d.Indices, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func (d *DrawData) addVertices(color [4]float32, pts ...[2]float32) uint32 {
	idx := uint32(len(d.Vertices))
	for _, p := range pts {
		d.Vertices = append(d.Vertices, p)
		d.Colors = append(d.Colors, color)
	}
	return idx
}

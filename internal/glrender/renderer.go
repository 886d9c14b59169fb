// Package glrender draws gizmo geometry with OpenGL 4.1 core.
// All calls must happen on the thread that owns the GL context.
package glrender

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-gizmo/pkg/gizmo"
)

const vertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;
uniform mat4 uProjection;
out vec4 vColor;
void main() {
    vColor = aColor;
    gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
}
`

const fragmentShader = `#version 410 core
in vec4 vColor;
out vec4 fragColor;
void main() {
    fragColor = vColor;
}
`

// floatsPerVertex is x, y, r, g, b, a.
const floatsPerVertex = 6

// Renderer draws DrawData in window pixel coordinates.
type Renderer struct {
	program uint32
	projLoc int32
	vao     uint32
	vbo     uint32
	ebo     uint32

	vertices []float32
}

// New creates the shader program and buffers. Requires a current GL context.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	program, err := CompileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("gizmo shader: %w", err)
	}
	loc, err := uniform(program, "uProjection")
	if err != nil {
		gl.DeleteProgram(program)
		return nil, err
	}

	r := &Renderer{program: program, projLoc: loc, vertices: make([]float32, 0, 4096)}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return r, nil
}

// Clear fills the framebuffer with a color.
func (r *Renderer) Clear(c [4]float32, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders dd over the current framebuffer. width and height are the
// window size in pixels, the space DrawData vertices live in.
func (r *Renderer) Draw(dd gizmo.DrawData, width, height int) {
	if dd.Empty() || width <= 0 || height <= 0 {
		return
	}
	r.vertices = interleave(r.vertices[:0], dd)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := pixelProjection(width, height)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.vertices)*4, unsafe.Pointer(&r.vertices[0]), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dd.Indices)*4, unsafe.Pointer(&dd.Indices[0]), gl.STREAM_DRAW)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(dd.Indices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// ReadPixels reads the framebuffer into an image with the origin at the top left.
func (r *Renderer) ReadPixels(width, height int) *image.RGBA {
	pix := make([]byte, width*height*4)
	if len(pix) > 0 {
		gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pix[0]))
	}
	return flipRows(pix, width, height)
}

// Close releases the GL objects.
func (r *Renderer) Close() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// interleave packs positions and colors into one vertex stream.
// Vertices without a color are drawn transparent.
func interleave(dst []float32, dd gizmo.DrawData) []float32 {
	for i, v := range dd.Vertices {
		var c [4]float32
		if i < len(dd.Colors) {
			c = dd.Colors[i]
		}
		dst = append(dst, v[0], v[1], c[0], c[1], c[2], c[3])
	}
	return dst
}

// pixelProjection maps window pixels (origin top left, Y down) to clip space.
func pixelProjection(width, height int) mgl32.Mat4 {
	return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// flipRows converts bottom-up GL rows into a top-down image.
func flipRows(pix []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pix[src:src+row])
	}
	return img
}

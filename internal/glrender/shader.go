package glrender

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// stage is one shader stage of a program.
type stage struct {
	kind   uint32
	name   string
	source string
}

// CompileProgram builds a program from a vertex and a fragment shader.
// Compile and link failures carry the driver info log.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	stages := []stage{
		{gl.VERTEX_SHADER, "vertex", vertexSrc},
		{gl.FRAGMENT_SHADER, "fragment", fragmentSrc},
	}

	shaders := make([]uint32, 0, len(stages))
	defer func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
	}()

	for _, st := range stages {
		s, err := st.compile()
		if err != nil {
			return 0, err
		}
		shaders = append(shaders, s)
	}

	program := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(program, s)
	}
	gl.LinkProgram(program)

	if msg, failed := infoLog(program, gl.LINK_STATUS, gl.GetProgramiv, gl.GetProgramInfoLog); failed {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", msg)
	}
	return program, nil
}

func (st stage) compile() (uint32, error) {
	shader := gl.CreateShader(st.kind)
	src, free := gl.Strs(st.source + "\x00")
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	if msg, failed := infoLog(shader, gl.COMPILE_STATUS, gl.GetShaderiv, gl.GetShaderInfoLog); failed {
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile %s shader: %s", st.name, msg)
	}
	return shader, nil
}

// infoLog checks the status of a shader or program object and returns its
// info log when the status is false.
func infoLog(
	obj, status uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) (string, bool) {
	var ok int32
	getiv(obj, status, &ok)
	if ok != gl.FALSE {
		return "", false
	}

	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log", true
	}
	buf := make([]byte, n)
	getLog(obj, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n "), true
}

// uniform returns the location of a required uniform.
func uniform(program uint32, name string) (int32, error) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("uniform %q not found in program %d", name, program)
	}
	return loc, nil
}

// Package opengl provides OpenGL 4.1 implementations of the tilemap
// Renderer interface.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with name-keyed uniform access.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles and links a shader program from the given
// sources. An empty geometry source skips the geometry stage.
//
// Compile and link failures return an error carrying the driver's
// info log; no partially linked program is left behind.
func NewProgram(vertexSource, fragmentSource, geometrySource string) (*Program, error) {
	stages := []struct {
		name   string
		kind   uint32
		source string
	}{
		{"vertex", gl.VERTEX_SHADER, vertexSource},
		{"fragment", gl.FRAGMENT_SHADER, fragmentSource},
		{"geometry", gl.GEOMETRY_SHADER, geometrySource},
	}

	program := gl.CreateProgram()

	var shaders []uint32
	cleanup := func() {
		for _, s := range shaders {
			gl.DeleteShader(s)
		}
		gl.DeleteProgram(program)
	}

	for _, stage := range stages {
		if stage.source == "" {
			continue
		}
		shader, err := compileShader(stage.kind, stage.source)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("%s shader: %w", stage.name, err)
		}
		shaders = append(shaders, shader)
		gl.AttachShader(program, shader)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		cleanup()
		return nil, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	// Shaders are linked into the program now.
	for _, s := range shaders {
		gl.DetachShader(program, s)
		gl.DeleteShader(s)
	}

	return &Program{handle: program, uniforms: make(map[string]int32)}, nil
}

// compileShader compiles one shader stage, returning the driver's
// info log as the error on failure.
func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compilation failed: %s", string(log))
	}

	return shader, nil
}

// Use binds the program as the active one.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// UniformLocation resolves a uniform by name. A name the linked
// program does not expose is an error: a missing uniform is a caller
// bug, and renderers resolve all of theirs at construction so it
// surfaces as a construction failure rather than a silent bad frame.
func (p *Program) UniformLocation(name string) (int32, error) {
	if loc, ok := p.uniforms[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("uniform %q not found in program", name)
	}
	p.uniforms[name] = loc
	return loc, nil
}

// SetMat4 sets a named mat4 uniform.
func (p *Program) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.ProgramUniformMatrix4fv(p.handle, loc, 1, false, &m[0])
	return nil
}

// SetInt sets a named int uniform.
func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.ProgramUniform1i(p.handle, loc, v)
	return nil
}

// SetVec2 sets a named vec2 uniform.
func (p *Program) SetVec2(name string, v mgl32.Vec2) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.ProgramUniform2f(p.handle, loc, v.X(), v.Y())
	return nil
}

// SetFloat sets a named float uniform.
func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.UniformLocation(name)
	if err != nil {
		return err
	}
	gl.ProgramUniform1f(p.handle, loc, v)
	return nil
}

// Delete releases the program. Safe to call twice, and a no-op once
// the GL context is gone.
func (p *Program) Delete() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

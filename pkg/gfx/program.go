package gfx

import "strings"

// ShaderStage is a single shader of a program.
type ShaderStage struct {
	Type   ShaderType
	Source string
}

// BuildProgram compiles the stages and links them into a new program.
// Intermediate objects are deleted on every path, so on error nothing
// is left allocated.
func BuildProgram(ctx Context, stages ...ShaderStage) (Program, error) {
	shaders := make([]Shader, 0, len(stages))
	release := func() {
		for _, s := range shaders {
			ctx.DeleteShader(s)
		}
	}

	for _, st := range stages {
		s, err := ctx.CreateShader(st.Type)
		if err != nil {
			release()
			return NoProgram, err
		}
		shaders = append(shaders, s)
		ctx.ShaderSource(s, st.Source)
		ctx.CompileShader(s)
		if !ctx.GetShaderCompileStatus(s) {
			err := &CompileError{Type: st.Type, Log: ctx.GetShaderInfoLog(s)}
			release()
			return NoProgram, err
		}
	}

	p, err := ctx.CreateProgram()
	if err != nil {
		release()
		return NoProgram, err
	}
	for _, s := range shaders {
		ctx.AttachShader(p, s)
	}
	ctx.LinkProgram(p)
	if !ctx.GetProgramLinkStatus(p) {
		err := &LinkError{Log: ctx.GetProgramInfoLog(p)}
		ctx.DeleteProgram(p)
		release()
		return NoProgram, err
	}
	for _, s := range shaders {
		ctx.DetachShader(p, s)
	}
	release()
	return p, nil
}

// GLSL dialects understood by the backends.
const (
	GLSLCore = "#version 330 core\n"
	GLSLES   = "#version 300 es\nprecision mediump float;\n"
)

// WithVersion prefixes a shader body with a version header,
// replacing any #version line it already has.
func WithVersion(header, body string) string {
	if trimmed := strings.TrimLeft(body, " \t\r\n"); strings.HasPrefix(trimmed, "#version") {
		body = trimmed
		if i := strings.IndexByte(body, '\n'); i >= 0 {
			body = body[i+1:]
		} else {
			body = ""
		}
	}
	return header + body
}

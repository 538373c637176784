//go:build !js

// Package native implements gfx.Context on top of desktop OpenGL.
// All calls must be made on the thread the GL context is current on.
package native

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/glstack/glstack/pkg/gfx"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Context struct{}

// NewContext loads the GL function pointers with getProcAddr.
// A context must be current on the calling thread.
func NewContext(getProcAddr func(name string) unsafe.Pointer) (*Context, error) {
	if err := gl.InitWithProcAddrFunc(getProcAddr); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Context{}, nil
}

func (c *Context) CreateShader(typ gfx.ShaderType) (gfx.Shader, error) {
	s := gl.CreateShader(uint32(typ))
	if s == 0 {
		return gfx.NoShader, &gfx.CreateError{Object: "shader", Reason: c.reason()}
	}
	return gfx.Shader(s), nil
}

func (c *Context) DeleteShader(s gfx.Shader) { gl.DeleteShader(uint32(s)) }

func (c *Context) ShaderSource(s gfx.Shader, source string) {
	src, free := gl.Strs(source + "\x00")
	defer free()
	length := int32(len(source))
	gl.ShaderSource(uint32(s), 1, src, &length)
}

func (c *Context) CompileShader(s gfx.Shader) { gl.CompileShader(uint32(s)) }

func (c *Context) GetShaderCompileStatus(s gfx.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetShaderInfoLog(uint32(s), n, nil, &buf[0])
	return cstr(buf)
}

func (c *Context) CreateProgram() (gfx.Program, error) {
	p := gl.CreateProgram()
	if p == 0 {
		return gfx.NoProgram, &gfx.CreateError{Object: "program", Reason: c.reason()}
	}
	return gfx.Program(p), nil
}

func (c *Context) DeleteProgram(p gfx.Program)              { gl.DeleteProgram(uint32(p)) }
func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) { gl.AttachShader(uint32(p), uint32(s)) }
func (c *Context) DetachShader(p gfx.Program, s gfx.Shader) { gl.DetachShader(uint32(p), uint32(s)) }
func (c *Context) LinkProgram(p gfx.Program)                { gl.LinkProgram(uint32(p)) }
func (c *Context) UseProgram(p gfx.Program)                 { gl.UseProgram(uint32(p)) }

func (c *Context) GetProgramLinkStatus(p gfx.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	gl.GetProgramInfoLog(uint32(p), n, nil, &buf[0])
	return cstr(buf)
}

func (c *Context) CreateBuffer() (gfx.Buffer, error) {
	var b uint32
	gl.GenBuffers(1, &b)
	if b == 0 {
		return gfx.NoBuffer, &gfx.CreateError{Object: "buffer", Reason: c.reason()}
	}
	return gfx.Buffer(b), nil
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	name := uint32(b)
	gl.DeleteBuffers(1, &name)
}

func (c *Context) BindBuffer(t gfx.BufferBindingTarget, b gfx.Buffer) {
	gl.BindBuffer(uint32(t), uint32(b))
}

func (c *Context) BufferData(t gfx.BufferBindingTarget, data []byte, usage gfx.BufferUsage) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(&data[0])
	}
	gl.BufferData(uint32(t), len(data), ptr, uint32(usage))
}

func (c *Context) CreateVertexArray() (gfx.VertexArray, error) {
	var v uint32
	gl.GenVertexArrays(1, &v)
	if v == 0 {
		return gfx.NoVertexArray, &gfx.CreateError{Object: "vertex array", Reason: c.reason()}
	}
	return gfx.VertexArray(v), nil
}

func (c *Context) DeleteVertexArray(v gfx.VertexArray) {
	name := uint32(v)
	gl.DeleteVertexArrays(1, &name)
}

func (c *Context) BindVertexArray(v gfx.VertexArray)     { gl.BindVertexArray(uint32(v)) }
func (c *Context) EnableVertexAttribArray(index uint32)  { gl.EnableVertexAttribArray(index) }
func (c *Context) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, normalized, stride, gl.PtrOffset(int(offset)))
}

func (c *Context) DrawArrays(mode gfx.PrimitiveMode, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (c *Context) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

// SupportsF64Precision is always true for desktop GL.
func (c *Context) SupportsF64Precision() bool { return true }

func (c *Context) ClearDepthF64(depth float64) { gl.ClearDepth(depth) }
func (c *Context) ClearDepthF32(depth float32) { gl.ClearDepthf(depth) }
func (c *Context) ClearStencil(stencil int32)  { gl.ClearStencil(stencil) }
func (c *Context) Clear(mask gfx.ClearMask)    { gl.Clear(uint32(mask)) }

func (c *Context) PixelStoreI32(p gfx.PixelStoreI32Parameter, value int32) {
	gl.PixelStorei(uint32(p), value)
}

func (c *Context) PixelStoreBool(p gfx.PixelStoreBoolParameter, value bool) {
	var v int32
	if value {
		v = 1
	}
	gl.PixelStorei(uint32(p), v)
}

func (c *Context) Enable(p gfx.Parameter)        { gl.Enable(uint32(p)) }
func (c *Context) Disable(p gfx.Parameter)       { gl.Disable(uint32(p)) }
func (c *Context) FrontFace(f gfx.FrontFace)     { gl.FrontFace(uint32(f)) }
func (c *Context) CullFace(f gfx.CullFace)       { gl.CullFace(uint32(f)) }
func (c *Context) ColorMask(r, g, b, a bool)     { gl.ColorMask(r, g, b, a) }
func (c *Context) BlendColor(r, g, b, a float32) { gl.BlendColor(r, g, b, a) }
func (c *Context) LineWidth(width float32)       { gl.LineWidth(width) }

func (c *Context) PolygonOffset(factor, units float32) { gl.PolygonOffset(factor, units) }

func (c *Context) Viewport(x, y, w, h int32) { gl.Viewport(x, y, w, h) }

func (c *Context) ReadPixels(x, y, w, h int32, format gfx.PixelFormat, typ gfx.PixelType, dst []byte) {
	if len(dst) == 0 {
		return
	}
	gl.ReadPixels(x, y, w, h, uint32(format), uint32(typ), gl.Ptr(&dst[0]))
}

func (c *Context) GetParameterString(p gfx.StringParameter) string {
	s := gl.GetString(uint32(p))
	if s == nil {
		return ""
	}
	return gl.GoStr(s)
}

func (c *Context) GetError() gfx.ErrorCode { return gfx.ErrorCode(gl.GetError()) }

// reason describes the pending driver error after a failed create.
func (c *Context) reason() string {
	if e := c.GetError(); e != gfx.NoError {
		return e.String()
	}
	return "driver returned no object"
}

func cstr(b []byte) string {
	if i := strings.IndexByte(string(b), 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

var _ gfx.Context = (*Context)(nil)

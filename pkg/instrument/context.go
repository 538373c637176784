// Package instrument wraps a gfx.Context with metrics and call tracing.
package instrument

import (
	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	kindShader      = "shader"
	kindProgram     = "program"
	kindBuffer      = "buffer"
	kindVertexArray = "vertex_array"
)

type Option func(*Context)

// WithRegisterer sets where metrics are registered,
// prometheus.DefaultRegisterer by default.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Context) { c.reg = reg }
}

// WithLogger traces every call at trace level.
func WithLogger(log *logger.Logger) Option {
	return func(c *Context) { c.log = log }
}

// WithErrorCheck queries the driver error after every call
// and logs anything but NoError.
func WithErrorCheck(enabled bool) Option {
	return func(c *Context) { c.check = enabled }
}

// Context forwards every call to the wrapped context.
type Context struct {
	gfx.Context

	reg   prometheus.Registerer
	log   *logger.Logger
	check bool
	m     *metrics
	// first driver error taken by the check and not yet read by GetError
	pending gfx.ErrorCode
}

func Wrap(ctx gfx.Context, opts ...Option) *Context {
	c := &Context{Context: ctx, reg: prometheus.DefaultRegisterer, log: logger.Nop()}
	for _, o := range opts {
		o(c)
	}
	c.m = newMetrics(c.reg)
	return c
}

// Unwrap returns the wrapped context.
func (c *Context) Unwrap() gfx.Context { return c.Context }

func (c *Context) record(op string, args ...any) {
	c.m.calls.WithLabelValues(op).Inc()
	c.log.Trace().Str("op", op).Interface("args", args).Msg("gl")
}

func (c *Context) after(op string, args ...any) {
	c.record(op, args...)
	if !c.check {
		return
	}
	if e := c.Context.GetError(); e != gfx.NoError {
		if c.pending == gfx.NoError {
			c.pending = e
		}
		c.m.driverErrors.WithLabelValues(op, e.String()).Inc()
		c.log.Warn().Str("op", op).Str("code", e.String()).Interface("args", args).Msg("gl error")
	}
}

func (c *Context) created(kind string, err error) {
	if err != nil {
		c.m.createErrors.WithLabelValues(kind).Inc()
		c.log.Warn().Err(err).Str("kind", kind).Msg("gl create failed")
		return
	}
	c.m.objects.WithLabelValues(kind).Inc()
}

func (c *Context) deleted(kind string, valid bool) {
	if valid {
		c.m.objects.WithLabelValues(kind).Dec()
	}
}

func (c *Context) CreateShader(typ gfx.ShaderType) (gfx.Shader, error) {
	s, err := c.Context.CreateShader(typ)
	c.after("CreateShader", typ)
	c.created(kindShader, err)
	return s, err
}

func (c *Context) DeleteShader(s gfx.Shader) {
	c.Context.DeleteShader(s)
	c.after("DeleteShader", s)
	c.deleted(kindShader, s.Valid())
}

func (c *Context) ShaderSource(s gfx.Shader, source string) {
	c.Context.ShaderSource(s, source)
	c.after("ShaderSource", s, len(source))
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.Context.CompileShader(s)
	c.after("CompileShader", s)
}

func (c *Context) GetShaderCompileStatus(s gfx.Shader) bool {
	ok := c.Context.GetShaderCompileStatus(s)
	c.after("GetShaderCompileStatus", s)
	return ok
}

func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	l := c.Context.GetShaderInfoLog(s)
	c.after("GetShaderInfoLog", s)
	return l
}

func (c *Context) CreateProgram() (gfx.Program, error) {
	p, err := c.Context.CreateProgram()
	c.after("CreateProgram")
	c.created(kindProgram, err)
	return p, err
}

func (c *Context) DeleteProgram(p gfx.Program) {
	c.Context.DeleteProgram(p)
	c.after("DeleteProgram", p)
	c.deleted(kindProgram, p.Valid())
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.Context.AttachShader(p, s)
	c.after("AttachShader", p, s)
}

func (c *Context) DetachShader(p gfx.Program, s gfx.Shader) {
	c.Context.DetachShader(p, s)
	c.after("DetachShader", p, s)
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.Context.LinkProgram(p)
	c.after("LinkProgram", p)
}

func (c *Context) GetProgramLinkStatus(p gfx.Program) bool {
	ok := c.Context.GetProgramLinkStatus(p)
	c.after("GetProgramLinkStatus", p)
	return ok
}

func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	l := c.Context.GetProgramInfoLog(p)
	c.after("GetProgramInfoLog", p)
	return l
}

func (c *Context) UseProgram(p gfx.Program) {
	c.Context.UseProgram(p)
	c.after("UseProgram", p)
}

func (c *Context) CreateBuffer() (gfx.Buffer, error) {
	b, err := c.Context.CreateBuffer()
	c.after("CreateBuffer")
	c.created(kindBuffer, err)
	return b, err
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	c.Context.DeleteBuffer(b)
	c.after("DeleteBuffer", b)
	c.deleted(kindBuffer, b.Valid())
}

func (c *Context) BindBuffer(t gfx.BufferBindingTarget, b gfx.Buffer) {
	c.Context.BindBuffer(t, b)
	c.after("BindBuffer", t, b)
}

func (c *Context) BufferData(t gfx.BufferBindingTarget, data []byte, usage gfx.BufferUsage) {
	c.Context.BufferData(t, data, usage)
	c.after("BufferData", t, len(data), usage)
}

func (c *Context) CreateVertexArray() (gfx.VertexArray, error) {
	v, err := c.Context.CreateVertexArray()
	c.after("CreateVertexArray")
	c.created(kindVertexArray, err)
	return v, err
}

func (c *Context) DeleteVertexArray(v gfx.VertexArray) {
	c.Context.DeleteVertexArray(v)
	c.after("DeleteVertexArray", v)
	c.deleted(kindVertexArray, v.Valid())
}

func (c *Context) BindVertexArray(v gfx.VertexArray) {
	c.Context.BindVertexArray(v)
	c.after("BindVertexArray", v)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.Context.EnableVertexAttribArray(index)
	c.after("EnableVertexAttribArray", index)
}

func (c *Context) DisableVertexAttribArray(index uint32) {
	c.Context.DisableVertexAttribArray(index)
	c.after("DisableVertexAttribArray", index)
}

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	c.Context.VertexAttribPointerF32(index, size, normalized, stride, offset)
	c.after("VertexAttribPointerF32", index, size, normalized, stride, offset)
}

func (c *Context) DrawArrays(mode gfx.PrimitiveMode, first, count int32) {
	c.Context.DrawArrays(mode, first, count)
	c.after("DrawArrays", mode, first, count)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.Context.ClearColor(r, g, b, a)
	c.after("ClearColor", r, g, b, a)
}

func (c *Context) ClearDepthF64(depth float64) {
	c.Context.ClearDepthF64(depth)
	c.after("ClearDepthF64", depth)
}

func (c *Context) ClearDepthF32(depth float32) {
	c.Context.ClearDepthF32(depth)
	c.after("ClearDepthF32", depth)
}

func (c *Context) ClearStencil(stencil int32) {
	c.Context.ClearStencil(stencil)
	c.after("ClearStencil", stencil)
}

func (c *Context) Clear(mask gfx.ClearMask) {
	c.Context.Clear(mask)
	c.after("Clear", mask)
}

func (c *Context) PixelStoreI32(p gfx.PixelStoreI32Parameter, value int32) {
	c.Context.PixelStoreI32(p, value)
	c.after("PixelStoreI32", p, value)
}

func (c *Context) PixelStoreBool(p gfx.PixelStoreBoolParameter, value bool) {
	c.Context.PixelStoreBool(p, value)
	c.after("PixelStoreBool", p, value)
}

func (c *Context) Enable(p gfx.Parameter) {
	c.Context.Enable(p)
	c.after("Enable", p)
}

func (c *Context) Disable(p gfx.Parameter) {
	c.Context.Disable(p)
	c.after("Disable", p)
}

func (c *Context) FrontFace(f gfx.FrontFace) {
	c.Context.FrontFace(f)
	c.after("FrontFace", f)
}

func (c *Context) CullFace(f gfx.CullFace) {
	c.Context.CullFace(f)
	c.after("CullFace", f)
}

func (c *Context) ColorMask(r, g, b, a bool) {
	c.Context.ColorMask(r, g, b, a)
	c.after("ColorMask", r, g, b, a)
}

func (c *Context) BlendColor(r, g, b, a float32) {
	c.Context.BlendColor(r, g, b, a)
	c.after("BlendColor", r, g, b, a)
}

func (c *Context) LineWidth(width float32) {
	c.Context.LineWidth(width)
	c.after("LineWidth", width)
}

func (c *Context) PolygonOffset(factor, units float32) {
	c.Context.PolygonOffset(factor, units)
	c.after("PolygonOffset", factor, units)
}

func (c *Context) Viewport(x, y, w, h int32) {
	c.Context.Viewport(x, y, w, h)
	c.after("Viewport", x, y, w, h)
}

func (c *Context) GetParameterString(p gfx.StringParameter) string {
	v := c.Context.GetParameterString(p)
	c.after("GetParameterString", p)
	return v
}

// SupportsF64Precision asks the wrapped context, no driver call is made.
func (c *Context) SupportsF64Precision() bool {
	ok := c.Context.SupportsF64Precision()
	c.record("SupportsF64Precision")
	return ok
}

// GetError returns the error kept by the error check first,
// then asks the driver.
func (c *Context) GetError() gfx.ErrorCode {
	e := c.pending
	c.pending = gfx.NoError
	if e == gfx.NoError {
		e = c.Context.GetError()
	}
	c.record("GetError", e)
	return e
}

func (c *Context) ReadPixels(x, y, w, h int32, format gfx.PixelFormat, typ gfx.PixelType, dst []byte) {
	c.Context.ReadPixels(x, y, w, h, format, typ, dst)
	c.after("ReadPixels", x, y, w, h)
}

var _ gfx.Context = (*Context)(nil)

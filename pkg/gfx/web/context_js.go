//go:build js && wasm

package web

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/glstack/glstack/pkg/gfx"
)

const glFloat = 0x1406

type Context struct {
	js.Value

	shaders  *Table[js.Value]
	programs *Table[js.Value]
	buffers  *Table[js.Value]
	arrays   *Table[js.Value]

	uint8Array   js.Value
	float32Array js.Value
}

// NewContextByID looks up a canvas element by id and creates a context on it.
func NewContextByID(id string) (*Context, error) {
	canvas := js.Global().Get("document").Call("getElementById", id)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("canvas %q not found", id)
	}
	return NewContext(canvas)
}

// NewContext obtains a WebGL2 context from canvas.
func NewContext(canvas js.Value) (*Context, error) {
	v := canvas.Call("getContext", "webgl2")
	if v.IsNull() || v.IsUndefined() {
		return nil, errors.New("webgl2 is not supported")
	}
	return &Context{
		Value:        v,
		shaders:      NewTable[js.Value](),
		programs:     NewTable[js.Value](),
		buffers:      NewTable[js.Value](),
		arrays:       NewTable[js.Value](),
		uint8Array:   js.Global().Get("Uint8Array"),
		float32Array: js.Global().Get("Float32Array"),
	}, nil
}

// DrawingBufferSize returns the size of the canvas drawing buffer in pixels.
func (c *Context) DrawingBufferSize() (int, int) {
	return c.Get("drawingBufferWidth").Int(), c.Get("drawingBufferHeight").Int()
}

func lookup(t *Table[js.Value], id uint32) js.Value {
	if v, ok := t.Get(id); ok {
		return v
	}
	return js.Null()
}

func (c *Context) create(t *Table[js.Value], kind, method string, args ...any) (uint32, error) {
	v := c.Call(method, args...)
	if v.IsNull() || v.IsUndefined() {
		reason := "driver returned no object"
		if e := c.GetError(); e != gfx.NoError {
			reason = e.String()
		}
		return 0, &gfx.CreateError{Object: kind, Reason: reason}
	}
	return t.Insert(v), nil
}

func (c *Context) CreateShader(typ gfx.ShaderType) (gfx.Shader, error) {
	id, err := c.create(c.shaders, "shader", "createShader", uint32(typ))
	return gfx.Shader(id), err
}

func (c *Context) DeleteShader(s gfx.Shader) {
	if v, ok := c.shaders.Remove(uint32(s)); ok {
		c.Call("deleteShader", v)
	}
}

func (c *Context) ShaderSource(s gfx.Shader, source string) {
	c.Call("shaderSource", lookup(c.shaders, uint32(s)), source)
}

func (c *Context) CompileShader(s gfx.Shader) {
	c.Call("compileShader", lookup(c.shaders, uint32(s)))
}

func (c *Context) GetShaderCompileStatus(s gfx.Shader) bool {
	return c.Call("getShaderParameter", lookup(c.shaders, uint32(s)), gfx.CompileStatus).Truthy()
}

func (c *Context) GetShaderInfoLog(s gfx.Shader) string {
	return jsString(c.Call("getShaderInfoLog", lookup(c.shaders, uint32(s))))
}

func (c *Context) CreateProgram() (gfx.Program, error) {
	id, err := c.create(c.programs, "program", "createProgram")
	return gfx.Program(id), err
}

func (c *Context) DeleteProgram(p gfx.Program) {
	if v, ok := c.programs.Remove(uint32(p)); ok {
		c.Call("deleteProgram", v)
	}
}

func (c *Context) AttachShader(p gfx.Program, s gfx.Shader) {
	c.Call("attachShader", lookup(c.programs, uint32(p)), lookup(c.shaders, uint32(s)))
}

func (c *Context) DetachShader(p gfx.Program, s gfx.Shader) {
	c.Call("detachShader", lookup(c.programs, uint32(p)), lookup(c.shaders, uint32(s)))
}

func (c *Context) LinkProgram(p gfx.Program) {
	c.Call("linkProgram", lookup(c.programs, uint32(p)))
}

func (c *Context) GetProgramLinkStatus(p gfx.Program) bool {
	return c.Call("getProgramParameter", lookup(c.programs, uint32(p)), gfx.LinkStatus).Truthy()
}

func (c *Context) GetProgramInfoLog(p gfx.Program) string {
	return jsString(c.Call("getProgramInfoLog", lookup(c.programs, uint32(p))))
}

func (c *Context) UseProgram(p gfx.Program) {
	c.Call("useProgram", lookup(c.programs, uint32(p)))
}

func (c *Context) CreateBuffer() (gfx.Buffer, error) {
	id, err := c.create(c.buffers, "buffer", "createBuffer")
	return gfx.Buffer(id), err
}

func (c *Context) DeleteBuffer(b gfx.Buffer) {
	if v, ok := c.buffers.Remove(uint32(b)); ok {
		c.Call("deleteBuffer", v)
	}
}

func (c *Context) BindBuffer(t gfx.BufferBindingTarget, b gfx.Buffer) {
	c.Call("bindBuffer", uint32(t), lookup(c.buffers, uint32(b)))
}

func (c *Context) BufferData(t gfx.BufferBindingTarget, data []byte, usage gfx.BufferUsage) {
	c.Call("bufferData", uint32(t), c.bytes(data), uint32(usage))
}

func (c *Context) CreateVertexArray() (gfx.VertexArray, error) {
	id, err := c.create(c.arrays, "vertex array", "createVertexArray")
	return gfx.VertexArray(id), err
}

func (c *Context) DeleteVertexArray(v gfx.VertexArray) {
	if o, ok := c.arrays.Remove(uint32(v)); ok {
		c.Call("deleteVertexArray", o)
	}
}

func (c *Context) BindVertexArray(v gfx.VertexArray) {
	c.Call("bindVertexArray", lookup(c.arrays, uint32(v)))
}

func (c *Context) EnableVertexAttribArray(index uint32)  { c.Call("enableVertexAttribArray", index) }
func (c *Context) DisableVertexAttribArray(index uint32) { c.Call("disableVertexAttribArray", index) }

func (c *Context) VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32) {
	c.Call("vertexAttribPointer", index, size, glFloat, normalized, stride, offset)
}

func (c *Context) DrawArrays(mode gfx.PrimitiveMode, first, count int32) {
	c.Call("drawArrays", uint32(mode), first, count)
}

func (c *Context) ClearColor(r, g, b, a float32) { c.Call("clearColor", r, g, b, a) }

// SupportsF64Precision is false: WebGL depth clear values are single precision.
func (c *Context) SupportsF64Precision() bool { return false }

// ClearDepthF64 narrows depth to float32.
func (c *Context) ClearDepthF64(depth float64) { c.ClearDepthF32(float32(depth)) }
func (c *Context) ClearDepthF32(depth float32) { c.Call("clearDepth", depth) }
func (c *Context) ClearStencil(stencil int32)  { c.Call("clearStencil", stencil) }
func (c *Context) Clear(mask gfx.ClearMask)    { c.Call("clear", uint32(mask)) }

func (c *Context) PixelStoreI32(p gfx.PixelStoreI32Parameter, value int32) {
	c.Call("pixelStorei", uint32(p), value)
}

func (c *Context) PixelStoreBool(p gfx.PixelStoreBoolParameter, value bool) {
	c.Call("pixelStorei", uint32(p), value)
}

func (c *Context) Enable(p gfx.Parameter)        { c.Call("enable", uint32(p)) }
func (c *Context) Disable(p gfx.Parameter)       { c.Call("disable", uint32(p)) }
func (c *Context) FrontFace(f gfx.FrontFace)     { c.Call("frontFace", uint32(f)) }
func (c *Context) CullFace(f gfx.CullFace)       { c.Call("cullFace", uint32(f)) }
func (c *Context) ColorMask(r, g, b, a bool)     { c.Call("colorMask", r, g, b, a) }
func (c *Context) BlendColor(r, g, b, a float32) { c.Call("blendColor", r, g, b, a) }
func (c *Context) LineWidth(width float32)       { c.Call("lineWidth", width) }

func (c *Context) PolygonOffset(factor, units float32) { c.Call("polygonOffset", factor, units) }

func (c *Context) Viewport(x, y, w, h int32) { c.Call("viewport", x, y, w, h) }

func (c *Context) ReadPixels(x, y, w, h int32, format gfx.PixelFormat, typ gfx.PixelType, dst []byte) {
	if len(dst) == 0 {
		return
	}
	buf := c.uint8Array.New(len(dst))
	view := buf
	if typ == gfx.Float {
		view = c.float32Array.New(buf.Get("buffer"), 0, len(dst)/4)
	}
	c.Call("readPixels", x, y, w, h, uint32(format), uint32(typ), view)
	js.CopyBytesToGo(dst, buf)
}

func (c *Context) GetParameterString(p gfx.StringParameter) string {
	return jsString(c.Call("getParameter", uint32(p)))
}

func (c *Context) GetError() gfx.ErrorCode { return gfx.ErrorCode(c.Call("getError").Int()) }

func (c *Context) bytes(data []byte) js.Value {
	arr := c.uint8Array.New(len(data))
	js.CopyBytesToJS(arr, data)
	return arr
}

func jsString(v js.Value) string {
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

var _ gfx.Context = (*Context)(nil)

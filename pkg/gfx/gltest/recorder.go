// Package gltest provides an in-memory gfx.Context for tests.
package gltest

import (
	"fmt"

	"github.com/glstack/glstack/pkg/gfx"
)

// Call is a recorded context operation.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Op, c.Args) }

// Recorder implements gfx.Context by recording every call.
// Object names are handed out from a single counter starting at 1.
// Not safe for concurrent use, same as a real context.
type Recorder struct {
	Calls []Call

	// CompileFails makes shaders of the listed types fail to compile.
	CompileFails map[gfx.ShaderType]bool
	// LinkFails makes every link fail.
	LinkFails bool
	// CreateFails makes the named object kinds (shader, program,
	// buffer, vertex array) fail to create.
	CreateFails map[string]bool
	// InfoLog is returned for failed shaders and programs.
	InfoLog string
	// Errors is drained one code per GetError call.
	Errors []gfx.ErrorCode
	// Pixels fills ReadPixels destinations when set.
	Pixels func(x, y, w, h int32, dst []byte)
	// Strings answers GetParameterString.
	Strings map[gfx.StringParameter]string
	// F64 is returned by SupportsF64Precision.
	F64 bool

	next     uint32
	shaders  map[gfx.Shader]gfx.ShaderType
	compiled map[gfx.Shader]bool
	linked   map[gfx.Program]bool
	live     map[string]map[uint32]bool
}

func New() *Recorder {
	return &Recorder{
		shaders:  map[gfx.Shader]gfx.ShaderType{},
		compiled: map[gfx.Shader]bool{},
		linked:   map[gfx.Program]bool{},
		live:     map[string]map[uint32]bool{},
	}
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) (n int) {
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return
}

// Live returns the number of created and not yet deleted objects of a kind.
func (r *Recorder) Live(kind string) int { return len(r.live[kind]) }

// Reset forgets recorded calls but keeps objects.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

func (r *Recorder) rec(op string, args ...any) { r.Calls = append(r.Calls, Call{Op: op, Args: args}) }

func (r *Recorder) create(kind string) (uint32, error) {
	if r.CreateFails[kind] {
		return 0, &gfx.CreateError{Object: kind, Reason: "out of names"}
	}
	r.next++
	if r.live[kind] == nil {
		r.live[kind] = map[uint32]bool{}
	}
	r.live[kind][r.next] = true
	return r.next, nil
}

func (r *Recorder) remove(kind string, id uint32) { delete(r.live[kind], id) }

func (r *Recorder) CreateShader(typ gfx.ShaderType) (gfx.Shader, error) {
	r.rec("CreateShader", typ)
	id, err := r.create("shader")
	if err != nil {
		return gfx.NoShader, err
	}
	s := gfx.Shader(id)
	r.shaders[s] = typ
	return s, nil
}

func (r *Recorder) DeleteShader(s gfx.Shader) {
	r.rec("DeleteShader", s)
	r.remove("shader", uint32(s))
}

func (r *Recorder) ShaderSource(s gfx.Shader, source string) { r.rec("ShaderSource", s, source) }

func (r *Recorder) CompileShader(s gfx.Shader) {
	r.rec("CompileShader", s)
	r.compiled[s] = !r.CompileFails[r.shaders[s]]
}

func (r *Recorder) GetShaderCompileStatus(s gfx.Shader) bool {
	r.rec("GetShaderCompileStatus", s)
	return r.compiled[s]
}

func (r *Recorder) GetShaderInfoLog(s gfx.Shader) string {
	r.rec("GetShaderInfoLog", s)
	if r.compiled[s] {
		return ""
	}
	return r.InfoLog
}

func (r *Recorder) CreateProgram() (gfx.Program, error) {
	r.rec("CreateProgram")
	id, err := r.create("program")
	return gfx.Program(id), err
}

func (r *Recorder) DeleteProgram(p gfx.Program) {
	r.rec("DeleteProgram", p)
	r.remove("program", uint32(p))
}

func (r *Recorder) AttachShader(p gfx.Program, s gfx.Shader) { r.rec("AttachShader", p, s) }
func (r *Recorder) DetachShader(p gfx.Program, s gfx.Shader) { r.rec("DetachShader", p, s) }

func (r *Recorder) LinkProgram(p gfx.Program) {
	r.rec("LinkProgram", p)
	r.linked[p] = !r.LinkFails
}

func (r *Recorder) GetProgramLinkStatus(p gfx.Program) bool {
	r.rec("GetProgramLinkStatus", p)
	return r.linked[p]
}

func (r *Recorder) GetProgramInfoLog(p gfx.Program) string {
	r.rec("GetProgramInfoLog", p)
	if r.linked[p] {
		return ""
	}
	return r.InfoLog
}

func (r *Recorder) UseProgram(p gfx.Program) { r.rec("UseProgram", p) }

func (r *Recorder) CreateBuffer() (gfx.Buffer, error) {
	r.rec("CreateBuffer")
	id, err := r.create("buffer")
	return gfx.Buffer(id), err
}

func (r *Recorder) DeleteBuffer(b gfx.Buffer) {
	r.rec("DeleteBuffer", b)
	r.remove("buffer", uint32(b))
}

func (r *Recorder) BindBuffer(t gfx.BufferBindingTarget, b gfx.Buffer) { r.rec("BindBuffer", t, b) }

func (r *Recorder) BufferData(t gfx.BufferBindingTarget, data []byte, usage gfx.BufferUsage) {
	r.rec("BufferData", t, len(data), usage)
}

func (r *Recorder) CreateVertexArray() (gfx.VertexArray, error) {
	r.rec("CreateVertexArray")
	id, err := r.create("vertex array")
	return gfx.VertexArray(id), err
}

func (r *Recorder) DeleteVertexArray(v gfx.VertexArray) {
	r.rec("DeleteVertexArray", v)
	r.remove("vertex array", uint32(v))
}

func (r *Recorder) BindVertexArray(v gfx.VertexArray) { r.rec("BindVertexArray", v) }
func (r *Recorder) EnableVertexAttribArray(i uint32)  { r.rec("EnableVertexAttribArray", i) }
func (r *Recorder) DisableVertexAttribArray(i uint32) { r.rec("DisableVertexAttribArray", i) }
func (r *Recorder) VertexAttribPointerF32(i uint32, size int32, norm bool, stride, offset int32) {
	r.rec("VertexAttribPointerF32", i, size, norm, stride, offset)
}

func (r *Recorder) DrawArrays(m gfx.PrimitiveMode, first, count int32) {
	r.rec("DrawArrays", m, first, count)
}

func (r *Recorder) ClearColor(cr, g, b, a float32) { r.rec("ClearColor", cr, g, b, a) }
func (r *Recorder) ClearDepthF64(d float64)        { r.rec("ClearDepthF64", d) }
func (r *Recorder) ClearDepthF32(d float32)        { r.rec("ClearDepthF32", d) }
func (r *Recorder) ClearStencil(s int32)           { r.rec("ClearStencil", s) }
func (r *Recorder) Clear(m gfx.ClearMask)          { r.rec("Clear", m) }

func (r *Recorder) SupportsF64Precision() bool {
	r.rec("SupportsF64Precision")
	return r.F64
}

func (r *Recorder) PixelStoreI32(p gfx.PixelStoreI32Parameter, v int32) {
	r.rec("PixelStoreI32", p, v)
}
func (r *Recorder) PixelStoreBool(p gfx.PixelStoreBoolParameter, v bool) {
	r.rec("PixelStoreBool", p, v)
}

func (r *Recorder) Enable(p gfx.Parameter)         { r.rec("Enable", p) }
func (r *Recorder) Disable(p gfx.Parameter)        { r.rec("Disable", p) }
func (r *Recorder) FrontFace(f gfx.FrontFace)      { r.rec("FrontFace", f) }
func (r *Recorder) CullFace(c gfx.CullFace)        { r.rec("CullFace", c) }
func (r *Recorder) ColorMask(cr, g, b, a bool)     { r.rec("ColorMask", cr, g, b, a) }
func (r *Recorder) BlendColor(cr, g, b, a float32) { r.rec("BlendColor", cr, g, b, a) }
func (r *Recorder) LineWidth(w float32)            { r.rec("LineWidth", w) }
func (r *Recorder) PolygonOffset(f, u float32)     { r.rec("PolygonOffset", f, u) }
func (r *Recorder) Viewport(x, y, w, h int32)      { r.rec("Viewport", x, y, w, h) }

func (r *Recorder) ReadPixels(x, y, w, h int32, f gfx.PixelFormat, t gfx.PixelType, dst []byte) {
	r.rec("ReadPixels", x, y, w, h, f, t)
	if r.Pixels != nil {
		r.Pixels(x, y, w, h, dst)
	}
}

func (r *Recorder) GetParameterString(p gfx.StringParameter) string {
	r.rec("GetParameterString", p)
	return r.Strings[p]
}

func (r *Recorder) GetError() gfx.ErrorCode {
	r.rec("GetError")
	if len(r.Errors) == 0 {
		return gfx.NoError
	}
	e := r.Errors[0]
	r.Errors = r.Errors[1:]
	return e
}

var _ gfx.Context = (*Recorder)(nil)

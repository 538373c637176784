// Package gfx defines a rendering context over the OpenGL family of APIs.
//
// Every Context method maps to a single driver call. Nothing is validated
// or cached here: passing a deleted handle or calling from a thread the GL
// context is not current on is undefined behaviour of the driver.
package gfx

// Context is the set of operations a backend provides to drive
// the graphics API.
type Context interface {
	CreateShader(typ ShaderType) (Shader, error)
	DeleteShader(s Shader)
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	GetShaderCompileStatus(s Shader) bool
	GetShaderInfoLog(s Shader) string

	CreateProgram() (Program, error)
	DeleteProgram(p Program)
	AttachShader(p Program, s Shader)
	DetachShader(p Program, s Shader)
	LinkProgram(p Program)
	GetProgramLinkStatus(p Program) bool
	GetProgramInfoLog(p Program) string
	// UseProgram installs p as part of the current rendering state.
	// NoProgram uninstalls the current one.
	UseProgram(p Program)

	CreateBuffer() (Buffer, error)
	DeleteBuffer(b Buffer)
	BindBuffer(target BufferBindingTarget, b Buffer)
	BufferData(target BufferBindingTarget, data []byte, usage BufferUsage)

	CreateVertexArray() (VertexArray, error)
	DeleteVertexArray(v VertexArray)
	BindVertexArray(v VertexArray)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)
	// VertexAttribPointerF32 describes a float attribute sourced from the
	// buffer bound to ArrayBuffer; offset is in bytes.
	VertexAttribPointerF32(index uint32, size int32, normalized bool, stride, offset int32)

	DrawArrays(mode PrimitiveMode, first, count int32)

	ClearColor(r, g, b, a float32)
	// SupportsF64Precision reports whether ClearDepthF64 keeps double precision.
	SupportsF64Precision() bool
	ClearDepthF64(depth float64)
	ClearDepthF32(depth float32)
	ClearStencil(stencil int32)
	Clear(mask ClearMask)

	PixelStoreI32(p PixelStoreI32Parameter, value int32)
	PixelStoreBool(p PixelStoreBoolParameter, value bool)

	Enable(p Parameter)
	Disable(p Parameter)
	FrontFace(f FrontFace)
	CullFace(c CullFace)
	ColorMask(r, g, b, a bool)
	BlendColor(r, g, b, a float32)
	LineWidth(width float32)
	PolygonOffset(factor, units float32)
	Viewport(x, y, width, height int32)

	// ReadPixels copies a block of pixels from the read framebuffer into dst,
	// which must be large enough for the format, type and pack state.
	ReadPixels(x, y, width, height int32, format PixelFormat, typ PixelType, dst []byte)
	GetParameterString(p StringParameter) string
	GetError() ErrorCode
}

// RenderLoop drives a per-frame callback on the thread owning the context.
type RenderLoop interface {
	// Run calls frame once per displayed frame until frame sets running
	// to false or the platform closes the surface.
	Run(frame func(running *bool)) error
}

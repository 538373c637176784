package gfx

import "fmt"

// ShaderType is the type of a shader object.
type ShaderType uint32

const (
	FragmentShader       ShaderType = 0x8B30
	VertexShader         ShaderType = 0x8B31
	GeometryShader       ShaderType = 0x8DD9
	TessEvaluationShader ShaderType = 0x8E87
	TessControlShader    ShaderType = 0x8E88
	ComputeShader        ShaderType = 0x91B9
)

// Parameter is a server-side capability switched with Enable and Disable.
type Parameter uint32

const (
	// Blend blends the computed fragment color values with the values in the color buffers.
	Blend Parameter = 0x0BE2
	// ClipDistance0 clips geometry against user-defined half space 0.
	ClipDistance0 Parameter = 0x3000
	ClipDistance1 Parameter = 0x3001
	ClipDistance2 Parameter = 0x3002
	ClipDistance3 Parameter = 0x3003
	ClipDistance4 Parameter = 0x3004
	ClipDistance5 Parameter = 0x3005
	ClipDistance6 Parameter = 0x3006
	ClipDistance7 Parameter = 0x3007
	// ColorLogicOp applies the selected logical operation to the fragment
	// and color buffer values.
	ColorLogicOp Parameter = 0x0BF2
	// FaceCulling culls polygons based on their winding in window coordinates (GL_CULL_FACE).
	FaceCulling Parameter = 0x0B44
	// DebugOutput turns on the debug message log of a debug context.
	DebugOutput Parameter = 0x92E0
	// DebugOutputSynchronous makes debug messages be produced on the
	// thread issuing the GL command.
	DebugOutputSynchronous Parameter = 0x8242
	// DepthClamp disables near and far plane clipping.
	DepthClamp Parameter = 0x864F
	// DepthTest does depth comparisons and updates the depth buffer.
	DepthTest Parameter = 0x0B71
	// Dither dithers color components before they are written to the color buffer.
	Dither Parameter = 0x0BD0
	// FramebufferSrgb linearizes sRGB destination values prior to blending.
	FramebufferSrgb Parameter = 0x8DB9
	// LineSmooth draws lines with correct filtering.
	LineSmooth Parameter = 0x0B20
	// Multisample uses multiple fragment samples in computing the final color of a pixel.
	Multisample        Parameter = 0x809D
	PolygonOffsetFill  Parameter = 0x8037
	PolygonOffsetLine  Parameter = 0x2A02
	PolygonOffsetPoint Parameter = 0x2A01
	// PolygonSmooth draws polygons with proper filtering.
	PolygonSmooth Parameter = 0x0B41
	// PrimitiveRestart restarts the primitive when the vertex index equals
	// the primitive restart index.
	PrimitiveRestart Parameter = 0x8F9D
	// PrimitiveRestartFixedIndex restarts the primitive at 2^n-1 where n is
	// the bit width of the index type.
	PrimitiveRestartFixedIndex Parameter = 0x8D69
	// RasterizerDiscard discards primitives before rasterization.
	RasterizerDiscard      Parameter = 0x8C89
	SampleAlphaToCoverage  Parameter = 0x809E
	SampleAlphaToOne       Parameter = 0x809F
	SampleCoverage         Parameter = 0x80A0
	SampleShading          Parameter = 0x8C36
	SampleMask             Parameter = 0x8E51
	ScissorTest            Parameter = 0x0C11
	StencilTest            Parameter = 0x0B90
	TextureCubeMapSeamless Parameter = 0x884F
	// ProgramPointSize takes the point size from gl_PointSize.
	ProgramPointSize Parameter = 0x8642
)

// BufferBindingTarget is a buffer binding point.
type BufferBindingTarget uint32

const (
	ArrayBuffer             BufferBindingTarget = 0x8892 // vertex attributes
	AtomicCounterBuffer     BufferBindingTarget = 0x92C0
	CopyReadBuffer          BufferBindingTarget = 0x8F36
	CopyWriteBuffer         BufferBindingTarget = 0x8F37
	DispatchIndirectBuffer  BufferBindingTarget = 0x90EE
	DrawIndirectBuffer      BufferBindingTarget = 0x8F3F
	ElementArrayBuffer      BufferBindingTarget = 0x8893 // vertex array indices
	PixelPackBuffer         BufferBindingTarget = 0x88EB
	PixelUnpackBuffer       BufferBindingTarget = 0x88EC
	QueryBuffer             BufferBindingTarget = 0x9192
	ShaderStorageBuffer     BufferBindingTarget = 0x90D2
	TextureBuffer           BufferBindingTarget = 0x8C2A
	TransformFeedbackBuffer BufferBindingTarget = 0x8C8E
	UniformBuffer           BufferBindingTarget = 0x8A11
)

// PrimitiveMode is the kind of primitive to render.
type PrimitiveMode uint32

const (
	Points                 PrimitiveMode = 0x0000
	Lines                  PrimitiveMode = 0x0001
	LineLoop               PrimitiveMode = 0x0002
	LineStrip              PrimitiveMode = 0x0003
	Triangles              PrimitiveMode = 0x0004
	TriangleStrip          PrimitiveMode = 0x0005
	TriangleFan            PrimitiveMode = 0x0006
	LinesAdjacency         PrimitiveMode = 0x000A
	LineStripAdjacency     PrimitiveMode = 0x000B
	TrianglesAdjacency     PrimitiveMode = 0x000C
	TriangleStripAdjacency PrimitiveMode = 0x000D
	Patches                PrimitiveMode = 0x000E
)

type PixelStoreI32Parameter uint32

const (
	PackRowLength     PixelStoreI32Parameter = 0x0D02
	PackImageHeight   PixelStoreI32Parameter = 0x806C
	PackSkipRows      PixelStoreI32Parameter = 0x0D03
	PackSkipPixels    PixelStoreI32Parameter = 0x0D04
	PackSkipImages    PixelStoreI32Parameter = 0x806B
	PackAlignment     PixelStoreI32Parameter = 0x0D05
	UnpackRowLength   PixelStoreI32Parameter = 0x0CF2
	UnpackImageHeight PixelStoreI32Parameter = 0x806E
	UnpackSkipRows    PixelStoreI32Parameter = 0x0CF3
	UnpackSkipPixels  PixelStoreI32Parameter = 0x0CF4
	UnpackSkipImages  PixelStoreI32Parameter = 0x806D
	UnpackAlignment   PixelStoreI32Parameter = 0x0CF5
)

type PixelStoreBoolParameter uint32

const (
	PackSwapBytes   PixelStoreBoolParameter = 0x0D00
	PackLsbFirst    PixelStoreBoolParameter = 0x0D01
	UnpackSwapBytes PixelStoreBoolParameter = 0x0CF0
	UnpackLsbFirst  PixelStoreBoolParameter = 0x0CF1
)

// FrontFace selects the winding of front-facing polygons.
type FrontFace uint32

const (
	Clockwise        FrontFace = 0x0900
	CounterClockwise FrontFace = 0x0901
)

// CullFace selects which polygon faces are culled.
type CullFace uint32

const (
	CullFront        CullFace = 0x0404
	CullBack         CullFace = 0x0405
	CullFrontAndBack CullFace = 0x0408
)

// ClearMask is a set of buffers to clear.
type ClearMask uint32

const (
	ClearColorBit   ClearMask = 0x00004000
	ClearStencilBit ClearMask = 0x00000400
	ClearDepthBit   ClearMask = 0x00000100
)

// Has reports whether all bits of o are set in m.
func (m ClearMask) Has(o ClearMask) bool { return m&o == o }

type BufferUsage uint32

const (
	StreamDraw  BufferUsage = 0x88E0
	StreamRead  BufferUsage = 0x88E1
	StaticDraw  BufferUsage = 0x88E4
	StaticRead  BufferUsage = 0x88E5
	DynamicDraw BufferUsage = 0x88E8
	DynamicRead BufferUsage = 0x88E9
)

type PixelFormat uint32

const (
	Red  PixelFormat = 0x1903
	RGB  PixelFormat = 0x1907
	RGBA PixelFormat = 0x1908
)

type PixelType uint32

const (
	UnsignedByte PixelType = 0x1401
	Float        PixelType = 0x1406
)

// StringParameter names a driver string queried with GetParameterString.
type StringParameter uint32

const (
	Vendor                 StringParameter = 0x1F00
	Renderer               StringParameter = 0x1F01
	Version                StringParameter = 0x1F02
	ShadingLanguageVersion StringParameter = 0x8B8C
)

// ErrorCode is a value returned by GetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
	ContextLost                 ErrorCode = 0x0507
	// ContextLostWebGL is reported by WebGL instead of ContextLost.
	ContextLostWebGL            ErrorCode = 0x9242
)

// Object query names used by backends.
const (
	CompileStatus uint32 = 0x8B81
	LinkStatus    uint32 = 0x8B82
	InfoLogLength uint32 = 0x8B84
)

var shaderTypeNames = map[ShaderType]string{
	FragmentShader:       "Fragment",
	VertexShader:         "Vertex",
	GeometryShader:       "Geometry",
	TessEvaluationShader: "TessEvaluation",
	TessControlShader:    "TessControl",
	ComputeShader:        "Compute",
}

var parameterNames = map[Parameter]string{
	Blend:                      "Blend",
	ClipDistance0:              "ClipDistance0",
	ClipDistance1:              "ClipDistance1",
	ClipDistance2:              "ClipDistance2",
	ClipDistance3:              "ClipDistance3",
	ClipDistance4:              "ClipDistance4",
	ClipDistance5:              "ClipDistance5",
	ClipDistance6:              "ClipDistance6",
	ClipDistance7:              "ClipDistance7",
	ColorLogicOp:               "ColorLogicOp",
	FaceCulling:                "CullFace",
	DebugOutput:                "DebugOutput",
	DebugOutputSynchronous:     "DebugOutputSynchronous",
	DepthClamp:                 "DepthClamp",
	DepthTest:                  "DepthTest",
	Dither:                     "Dither",
	FramebufferSrgb:            "FramebufferSrgb",
	LineSmooth:                 "LineSmooth",
	Multisample:                "Multisample",
	PolygonOffsetFill:          "PolygonOffsetFill",
	PolygonOffsetLine:          "PolygonOffsetLine",
	PolygonOffsetPoint:         "PolygonOffsetPoint",
	PolygonSmooth:              "PolygonSmooth",
	PrimitiveRestart:           "PrimitiveRestart",
	PrimitiveRestartFixedIndex: "PrimitiveRestartFixedIndex",
	RasterizerDiscard:          "RasterizerDiscard",
	SampleAlphaToCoverage:      "SampleAlphaToCoverage",
	SampleAlphaToOne:           "SampleAlphaToOne",
	SampleCoverage:             "SampleCoverage",
	SampleShading:              "SampleShading",
	SampleMask:                 "SampleMask",
	ScissorTest:                "ScissorTest",
	StencilTest:                "StencilTest",
	TextureCubeMapSeamless:     "TextureCubeMapSeamless",
	ProgramPointSize:           "ProgramPointSize",
}

var bufferTargetNames = map[BufferBindingTarget]string{
	ArrayBuffer:             "ArrayBuffer",
	AtomicCounterBuffer:     "AtomicCounterBuffer",
	CopyReadBuffer:          "CopyReadBuffer",
	CopyWriteBuffer:         "CopyWriteBuffer",
	DispatchIndirectBuffer:  "DispatchIndirectBuffer",
	DrawIndirectBuffer:      "DrawIndirect",
	ElementArrayBuffer:      "ElementArray",
	PixelPackBuffer:         "PixelPack",
	PixelUnpackBuffer:       "PixelUnpack",
	QueryBuffer:             "Query",
	ShaderStorageBuffer:     "ShaderStorage",
	TextureBuffer:           "Texture",
	TransformFeedbackBuffer: "TransformFeedback",
	UniformBuffer:           "Uniform",
}

var primitiveModeNames = map[PrimitiveMode]string{
	Points:                 "Points",
	Lines:                  "Lines",
	LineLoop:               "LineLoop",
	LineStrip:              "LineStrip",
	Triangles:              "Triangles",
	TriangleStrip:          "TriangleStrip",
	TriangleFan:            "TriangleFan",
	LinesAdjacency:         "LinesAdjacency",
	LineStripAdjacency:     "LineStripAdjacency",
	TrianglesAdjacency:     "TrianglesAdjacency",
	TriangleStripAdjacency: "TriangleStripAdjacency",
	Patches:                "Patches",
}

var pixelStoreI32Names = map[PixelStoreI32Parameter]string{
	PackRowLength:     "PackRowLength",
	PackImageHeight:   "PackImageHeight",
	PackSkipRows:      "PackSkipRows",
	PackSkipPixels:    "PackSkipPixels",
	PackSkipImages:    "PackSkipImages",
	PackAlignment:     "PackAlignment",
	UnpackRowLength:   "UnpackRowLength",
	UnpackImageHeight: "UnpackImageHeight",
	UnpackSkipRows:    "UnpackSkipRows",
	UnpackSkipPixels:  "UnpackSkipPixels",
	UnpackSkipImages:  "UnpackSkipImages",
	UnpackAlignment:   "UnpackAlignment",
}

var pixelStoreBoolNames = map[PixelStoreBoolParameter]string{
	PackSwapBytes:   "PackSwapBytes",
	PackLsbFirst:    "PackLsbFirst",
	UnpackSwapBytes: "UnpackSwapBytes",
	UnpackLsbFirst:  "UnpackLsbFirst",
}

var errorCodeNames = map[ErrorCode]string{
	NoError:                     "NoError",
	InvalidEnum:                 "InvalidEnum",
	InvalidValue:                "InvalidValue",
	InvalidOperation:            "InvalidOperation",
	OutOfMemory:                 "OutOfMemory",
	InvalidFramebufferOperation: "InvalidFramebufferOperation",
	ContextLost:                 "ContextLost",
	ContextLostWebGL:            "ContextLostWebGL",
}

var bufferUsageNames = map[BufferUsage]string{
	StreamDraw:  "StreamDraw",
	StreamRead:  "StreamRead",
	StaticDraw:  "StaticDraw",
	StaticRead:  "StaticRead",
	DynamicDraw: "DynamicDraw",
	DynamicRead: "DynamicRead",
}

var pixelFormatNames = map[PixelFormat]string{Red: "Red", RGB: "RGB", RGBA: "RGBA"}

var pixelTypeNames = map[PixelType]string{UnsignedByte: "UnsignedByte", Float: "Float"}

func name[T ~uint32](names map[T]string, v T, typ string) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(0x%04X)", typ, uint32(v))
}

func (t ShaderType) String() string          { return name(shaderTypeNames, t, "ShaderType") }
func (p Parameter) String() string           { return name(parameterNames, p, "Parameter") }
func (t BufferBindingTarget) String() string { return name(bufferTargetNames, t, "BufferBindingTarget") }
func (m PrimitiveMode) String() string       { return name(primitiveModeNames, m, "PrimitiveMode") }
func (p PixelStoreI32Parameter) String() string {
	return name(pixelStoreI32Names, p, "PixelStoreI32Parameter")
}
func (p PixelStoreBoolParameter) String() string {
	return name(pixelStoreBoolNames, p, "PixelStoreBoolParameter")
}
func (e ErrorCode) String() string   { return name(errorCodeNames, e, "ErrorCode") }
func (u BufferUsage) String() string { return name(bufferUsageNames, u, "BufferUsage") }
func (f PixelFormat) String() string { return name(pixelFormatNames, f, "PixelFormat") }
func (t PixelType) String() string   { return name(pixelTypeNames, t, "PixelType") }

func (f FrontFace) String() string {
	switch f {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	}
	return fmt.Sprintf("FrontFace(0x%04X)", uint32(f))
}

func (c CullFace) String() string {
	switch c {
	case CullFront:
		return "Front"
	case CullBack:
		return "Back"
	case CullFrontAndBack:
		return "FrontAndBack"
	}
	return fmt.Sprintf("CullFace(0x%04X)", uint32(c))
}

func (m ClearMask) String() string {
	if m == 0 {
		return "ClearMask()"
	}
	var s string
	for _, b := range []struct {
		bit  ClearMask
		name string
	}{{ClearColorBit, "Color"}, {ClearDepthBit, "Depth"}, {ClearStencilBit, "Stencil"}} {
		if m.Has(b.bit) {
			if s != "" {
				s += "|"
			}
			s += b.name
			m &^= b.bit
		}
	}
	if m != 0 {
		if s != "" {
			s += "|"
		}
		s += fmt.Sprintf("0x%04X", uint32(m))
	}
	return s
}

func (s StringParameter) String() string {
	switch s {
	case Vendor:
		return "Vendor"
	case Renderer:
		return "Renderer"
	case Version:
		return "Version"
	case ShadingLanguageVersion:
		return "ShadingLanguageVersion"
	}
	return fmt.Sprintf("StringParameter(0x%04X)", uint32(s))
}

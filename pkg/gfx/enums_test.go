package gfx

import "testing"

func TestEnumValues(t *testing.T) {
	tests := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"Fragment", uint32(FragmentShader), 0x8B30},
		{"Vertex", uint32(VertexShader), 0x8B31},
		{"Geometry", uint32(GeometryShader), 0x8DD9},
		{"TessEvaluation", uint32(TessEvaluationShader), 0x8E87},
		{"TessControl", uint32(TessControlShader), 0x8E88},
		{"Compute", uint32(ComputeShader), 0x91B9},

		{"Blend", uint32(Blend), 0x0BE2},
		{"ClipDistance0", uint32(ClipDistance0), 0x3000},
		{"ClipDistance7", uint32(ClipDistance7), 0x3007},
		{"ColorLogicOp", uint32(ColorLogicOp), 0x0BF2},
		{"CullFace", uint32(FaceCulling), 0x0B44},
		{"DebugOutput", uint32(DebugOutput), 0x92E0},
		{"DebugOutputSynchronous", uint32(DebugOutputSynchronous), 0x8242},
		{"DepthClamp", uint32(DepthClamp), 0x864F},
		{"DepthTest", uint32(DepthTest), 0x0B71},
		{"Dither", uint32(Dither), 0x0BD0},
		{"FramebufferSrgb", uint32(FramebufferSrgb), 0x8DB9},
		{"LineSmooth", uint32(LineSmooth), 0x0B20},
		{"Multisample", uint32(Multisample), 0x809D},
		{"PolygonOffsetFill", uint32(PolygonOffsetFill), 0x8037},
		{"PolygonOffsetLine", uint32(PolygonOffsetLine), 0x2A02},
		{"PolygonOffsetPoint", uint32(PolygonOffsetPoint), 0x2A01},
		{"PolygonSmooth", uint32(PolygonSmooth), 0x0B41},
		{"PrimitiveRestart", uint32(PrimitiveRestart), 0x8F9D},
		{"PrimitiveRestartFixedIndex", uint32(PrimitiveRestartFixedIndex), 0x8D69},
		{"RasterizerDiscard", uint32(RasterizerDiscard), 0x8C89},
		{"SampleAlphaToCoverage", uint32(SampleAlphaToCoverage), 0x809E},
		{"SampleAlphaToOne", uint32(SampleAlphaToOne), 0x809F},
		{"SampleCoverage", uint32(SampleCoverage), 0x80A0},
		{"SampleShading", uint32(SampleShading), 0x8C36},
		{"SampleMask", uint32(SampleMask), 0x8E51},
		{"ScissorTest", uint32(ScissorTest), 0x0C11},
		{"StencilTest", uint32(StencilTest), 0x0B90},
		{"TextureCubeMapSeamless", uint32(TextureCubeMapSeamless), 0x884F},
		{"ProgramPointSize", uint32(ProgramPointSize), 0x8642},

		{"ArrayBuffer", uint32(ArrayBuffer), 0x8892},
		{"AtomicCounterBuffer", uint32(AtomicCounterBuffer), 0x92C0},
		{"CopyReadBuffer", uint32(CopyReadBuffer), 0x8F36},
		{"CopyWriteBuffer", uint32(CopyWriteBuffer), 0x8F37},
		{"DispatchIndirectBuffer", uint32(DispatchIndirectBuffer), 0x90EE},
		{"DrawIndirect", uint32(DrawIndirectBuffer), 0x8F3F},
		{"ElementArray", uint32(ElementArrayBuffer), 0x8893},
		{"PixelPack", uint32(PixelPackBuffer), 0x88EB},
		{"PixelUnpack", uint32(PixelUnpackBuffer), 0x88EC},
		{"Query", uint32(QueryBuffer), 0x9192},
		{"ShaderStorage", uint32(ShaderStorageBuffer), 0x90D2},
		{"Texture", uint32(TextureBuffer), 0x8C2A},
		{"TransformFeedback", uint32(TransformFeedbackBuffer), 0x8C8E},
		{"Uniform", uint32(UniformBuffer), 0x8A11},

		{"Points", uint32(Points), 0x0000},
		{"Lines", uint32(Lines), 0x0001},
		{"LineLoop", uint32(LineLoop), 0x0002},
		{"LineStrip", uint32(LineStrip), 0x0003},
		{"Triangles", uint32(Triangles), 0x0004},
		{"TriangleStrip", uint32(TriangleStrip), 0x0005},
		{"TriangleFan", uint32(TriangleFan), 0x0006},
		{"LinesAdjacency", uint32(LinesAdjacency), 0x000A},
		{"LineStripAdjacency", uint32(LineStripAdjacency), 0x000B},
		{"TrianglesAdjacency", uint32(TrianglesAdjacency), 0x000C},
		{"TriangleStripAdjacency", uint32(TriangleStripAdjacency), 0x000D},
		{"Patches", uint32(Patches), 0x000E},

		{"PackRowLength", uint32(PackRowLength), 0x0D02},
		{"PackImageHeight", uint32(PackImageHeight), 0x806C},
		{"PackSkipRows", uint32(PackSkipRows), 0x0D03},
		{"PackSkipPixels", uint32(PackSkipPixels), 0x0D04},
		{"PackSkipImages", uint32(PackSkipImages), 0x806B},
		{"PackAlignment", uint32(PackAlignment), 0x0D05},
		{"UnpackRowLength", uint32(UnpackRowLength), 0x0CF2},
		{"UnpackImageHeight", uint32(UnpackImageHeight), 0x806E},
		{"UnpackSkipRows", uint32(UnpackSkipRows), 0x0CF3},
		{"UnpackSkipPixels", uint32(UnpackSkipPixels), 0x0CF4},
		{"UnpackSkipImages", uint32(UnpackSkipImages), 0x806D},
		{"UnpackAlignment", uint32(UnpackAlignment), 0x0CF5},

		{"PackSwapBytes", uint32(PackSwapBytes), 0x0D00},
		{"PackLsbFirst", uint32(PackLsbFirst), 0x0D01},
		{"UnpackSwapBytes", uint32(UnpackSwapBytes), 0x0CF0},
		{"UnpackLsbFirst", uint32(UnpackLsbFirst), 0x0CF1},

		{"Clockwise", uint32(Clockwise), 0x0900},
		{"CounterClockwise", uint32(CounterClockwise), 0x0901},
		{"Front", uint32(CullFront), 0x0404},
		{"Back", uint32(CullBack), 0x0405},
		{"FrontAndBack", uint32(CullFrontAndBack), 0x0408},

		{"Color", uint32(ClearColorBit), 0x4000},
		{"Stencil", uint32(ClearStencilBit), 0x0400},
		{"Depth", uint32(ClearDepthBit), 0x0100},

		{"COMPILE_STATUS", CompileStatus, 0x8B81},
		{"INFO_LOG_LENGTH", InfoLogLength, 0x8B84},
		{"LINK_STATUS", LinkStatus, 0x8B82},

		{"StreamDraw", uint32(StreamDraw), 0x88E0},
		{"StreamRead", uint32(StreamRead), 0x88E1},
		{"StaticDraw", uint32(StaticDraw), 0x88E4},
		{"StaticRead", uint32(StaticRead), 0x88E5},
		{"DynamicDraw", uint32(DynamicDraw), 0x88E8},
		{"DynamicRead", uint32(DynamicRead), 0x88E9},

		{"Red", uint32(Red), 0x1903},
		{"RGB", uint32(RGB), 0x1907},
		{"RGBA", uint32(RGBA), 0x1908},
		{"UnsignedByte", uint32(UnsignedByte), 0x1401},
		{"Float", uint32(Float), 0x1406},

		{"Vendor", uint32(Vendor), 0x1F00},
		{"Renderer", uint32(Renderer), 0x1F01},
		{"Version", uint32(Version), 0x1F02},
		{"ShadingLanguageVersion", uint32(ShadingLanguageVersion), 0x8B8C},

		{"NoError", uint32(NoError), 0x0000},
		{"InvalidEnum", uint32(InvalidEnum), 0x0500},
		{"InvalidValue", uint32(InvalidValue), 0x0501},
		{"InvalidOperation", uint32(InvalidOperation), 0x0502},
		{"OutOfMemory", uint32(OutOfMemory), 0x0505},
		{"InvalidFramebufferOperation", uint32(InvalidFramebufferOperation), 0x0506},
		{"ContextLost", uint32(ContextLost), 0x0507},
		{"ContextLostWebGL", uint32(ContextLostWebGL), 0x9242},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = 0x%04X, want 0x%04X", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnumString(t *testing.T) {
	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{VertexShader, "Vertex"},
		{ShaderType(1), "ShaderType(0x0001)"},
		{FaceCulling, "CullFace"},
		{ElementArrayBuffer, "ElementArray"},
		{TriangleFan, "TriangleFan"},
		{UnpackAlignment, "UnpackAlignment"},
		{PackLsbFirst, "PackLsbFirst"},
		{CounterClockwise, "CounterClockwise"},
		{CullFrontAndBack, "FrontAndBack"},
		{ClearColorBit | ClearDepthBit, "Color|Depth"},
		{ClearStencilBit | 0x1, "Stencil|0x0001"},
		{ClearMask(0), "ClearMask()"},
		{InvalidOperation, "InvalidOperation"},
		{ErrorCode(0x0507), "ContextLost"},
		{ErrorCode(0x9242), "ContextLostWebGL"},
		{DynamicRead, "DynamicRead"},
		{RGB, "RGB"},
		{Float, "Float"},
		{ShadingLanguageVersion, "ShadingLanguageVersion"},
		{Program(7), "Program(7)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestClearMaskHas(t *testing.T) {
	m := ClearColorBit | ClearStencilBit
	if !m.Has(ClearColorBit) || !m.Has(ClearStencilBit) || m.Has(ClearDepthBit) {
		t.Errorf("wrong bits in %v", m)
	}
	if !m.Has(ClearColorBit | ClearStencilBit) {
		t.Errorf("%v should contain both bits", m)
	}
}

func TestHandlesAsKeys(t *testing.T) {
	seen := map[Buffer]int{}
	for _, b := range []Buffer{3, 1, 2, 3} {
		seen[b]++
	}
	if seen[3] != 2 || len(seen) != 3 {
		t.Errorf("unexpected map %v", seen)
	}
	if !(Shader(1) < Shader(2)) || NoVertexArray.Valid() || !VertexArray(4).Valid() {
		t.Errorf("handle ordering or validity is broken")
	}
}

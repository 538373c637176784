// Package scene has a minimal coloured triangle drawn through gfx.Context.
package scene

import (
	_ "embed"
	"encoding/binary"
	"math"

	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/logger"
)

var (
	//go:embed shaders/triangle.vert
	triangleVert string
	//go:embed shaders/triangle.frag
	triangleFrag string
)

// Sources are the shader bodies of a scene program.
type Sources struct {
	Vertex   string
	Fragment string
}

// DefaultSources returns the built-in shaders prefixed with
// the GLSL header of a backend, e.g. gfx.GLSLCore.
func DefaultSources(header string) Sources {
	return Sources{
		Vertex:   gfx.WithVersion(header, triangleVert),
		Fragment: gfx.WithVersion(header, triangleFrag),
	}
}

// x, y, z, r, g, b
var vertices = []float32{
	-0.5, -0.5, 0, 1, 0, 0,
	0.5, -0.5, 0, 0, 1, 0,
	0, 0.5, 0, 0, 0, 1,
}

const (
	floatSize = 4
	stride    = 6 * floatSize
)

func vertexBytes() []byte {
	b := make([]byte, len(vertices)*floatSize)
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(b[i*floatSize:], math.Float32bits(v))
	}
	return b
}

type Triangle struct {
	ctx     gfx.Context
	log     *logger.Logger
	program gfx.Program
	vao     gfx.VertexArray
	vbo     gfx.Buffer
}

func NewTriangle(ctx gfx.Context, log *logger.Logger, src Sources) (t *Triangle, err error) {
	t = &Triangle{ctx: ctx, log: log}
	defer func() {
		if err != nil {
			t.Close()
			t = nil
		}
	}()

	if t.program, err = build(ctx, src); err != nil {
		return
	}
	if t.vao, err = ctx.CreateVertexArray(); err != nil {
		return
	}
	if t.vbo, err = ctx.CreateBuffer(); err != nil {
		return
	}

	ctx.BindVertexArray(t.vao)
	ctx.BindBuffer(gfx.ArrayBuffer, t.vbo)
	ctx.BufferData(gfx.ArrayBuffer, vertexBytes(), gfx.StaticDraw)
	ctx.VertexAttribPointerF32(0, 3, false, stride, 0)
	ctx.EnableVertexAttribArray(0)
	ctx.VertexAttribPointerF32(1, 3, false, stride, 3*floatSize)
	ctx.EnableVertexAttribArray(1)
	ctx.BindBuffer(gfx.ArrayBuffer, gfx.NoBuffer)
	ctx.BindVertexArray(gfx.NoVertexArray)

	log.Debug().Str("program", t.program.String()).Str("vao", t.vao.String()).Msg("triangle is ready")
	return t, nil
}

func build(ctx gfx.Context, src Sources) (gfx.Program, error) {
	return gfx.BuildProgram(ctx,
		gfx.ShaderStage{Type: gfx.VertexShader, Source: src.Vertex},
		gfx.ShaderStage{Type: gfx.FragmentShader, Source: src.Fragment},
	)
}

// Reload rebuilds the program from src. On error the current
// program stays in use.
func (t *Triangle) Reload(src Sources) error {
	p, err := build(t.ctx, src)
	if err != nil {
		t.log.Warn().Err(err).Msg("shader reload failed, keeping the old program")
		return err
	}
	t.ctx.DeleteProgram(t.program)
	t.program = p
	t.log.Info().Str("program", p.String()).Msg("shaders reloaded")
	return nil
}

// Draw clears the w×h viewport with the color and draws the triangle.
func (t *Triangle) Draw(w, h int, clear [4]float32) {
	t.ctx.Viewport(0, 0, int32(w), int32(h))
	t.ctx.ClearColor(clear[0], clear[1], clear[2], clear[3])
	t.ctx.Clear(gfx.ClearColorBit | gfx.ClearDepthBit)
	t.ctx.UseProgram(t.program)
	t.ctx.BindVertexArray(t.vao)
	t.ctx.DrawArrays(gfx.Triangles, 0, 3)
	t.ctx.BindVertexArray(gfx.NoVertexArray)
}

func (t *Triangle) Program() gfx.Program { return t.program }

func (t *Triangle) Close() {
	if t.vbo.Valid() {
		t.ctx.DeleteBuffer(t.vbo)
		t.vbo = gfx.NoBuffer
	}
	if t.vao.Valid() {
		t.ctx.DeleteVertexArray(t.vao)
		t.vao = gfx.NoVertexArray
	}
	if t.program.Valid() {
		t.ctx.DeleteProgram(t.program)
		t.program = gfx.NoProgram
	}
}

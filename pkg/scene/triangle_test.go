package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/gfx/gltest"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultSources(t *testing.T) {
	for _, header := range []string{gfx.GLSLCore, gfx.GLSLES} {
		src := DefaultSources(header)
		if !strings.HasPrefix(src.Vertex, header) || !strings.HasPrefix(src.Fragment, header) {
			t.Errorf("no %q header in %+v", header, src)
		}
		if !strings.Contains(src.Vertex, "gl_Position") {
			t.Errorf("unexpected vertex shader %q", src.Vertex)
		}
	}
}

func TestVertexBytes(t *testing.T) {
	b := vertexBytes()
	if len(b) != 3*stride {
		t.Fatalf("got %v bytes, want %v", len(b), 3*stride)
	}
	// -0.5f little-endian
	if !cmp.Equal(b[:4], []byte{0, 0, 0, 0xbf}) {
		t.Errorf("wrong first float % x", b[:4])
	}
}

func TestTriangle(t *testing.T) {
	r := gltest.New()
	tri, err := NewTriangle(r, logger.Nop(), DefaultSources(gfx.GLSLCore))
	if err != nil {
		t.Fatal(err)
	}
	if r.Count("VertexAttribPointerF32") != 2 || r.Count("EnableVertexAttribArray") != 2 {
		t.Errorf("attributes are not set up: %v", r.Ops())
	}

	r.Reset()
	tri.Draw(640, 480, [4]float32{0.1, 0.2, 0.3, 1})
	want := []string{"Viewport", "ClearColor", "Clear", "UseProgram", "BindVertexArray", "DrawArrays", "BindVertexArray"}
	if diff := cmp.Diff(want, r.Ops()); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
	if got := r.Calls[2].Args[0]; got != gfx.ClearColorBit|gfx.ClearDepthBit {
		t.Errorf("clear mask %v", got)
	}
	if got := r.Calls[5].Args; got[0] != gfx.Triangles || got[2] != int32(3) {
		t.Errorf("draw args %v", got)
	}

	tri.Close()
	for _, kind := range []string{"shader", "program", "buffer", "vertex array"} {
		if n := r.Live(kind); n != 0 {
			t.Errorf("%v %v objects left after close", n, kind)
		}
	}
}

func TestReload(t *testing.T) {
	r := gltest.New()
	tri, err := NewTriangle(r, logger.Nop(), DefaultSources(gfx.GLSLCore))
	if err != nil {
		t.Fatal(err)
	}
	defer tri.Close()
	old := tri.Program()

	r.CompileFails = map[gfx.ShaderType]bool{gfx.FragmentShader: true}
	err = tri.Reload(DefaultSources(gfx.GLSLCore))
	var ce *gfx.CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected compile error, got %v", err)
	}
	if tri.Program() != old {
		t.Errorf("program changed after a failed reload")
	}

	r.CompileFails = nil
	if err = tri.Reload(DefaultSources(gfx.GLSLCore)); err != nil {
		t.Fatal(err)
	}
	if tri.Program() == old || !tri.Program().Valid() {
		t.Errorf("program was not swapped: %v", tri.Program())
	}
	if n := r.Live("program"); n != 1 {
		t.Errorf("%v live programs, want 1", n)
	}
}

func TestNewTriangleFails(t *testing.T) {
	r := gltest.New()
	r.CreateFails = map[string]bool{"buffer": true}
	tri, err := NewTriangle(r, logger.Nop(), DefaultSources(gfx.GLSLCore))
	if tri != nil || !errors.Is(err, gfx.ErrCreateFailed) {
		t.Fatalf("got %v, %v", tri, err)
	}
	if r.Live("program")+r.Live("vertex array") != 0 {
		t.Errorf("objects leaked on failure")
	}
}

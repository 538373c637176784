package instrument

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/gfx/gltest"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestObjectsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := gltest.New()
	ctx := Wrap(r, WithRegisterer(reg))

	b1, _ := ctx.CreateBuffer()
	_, _ = ctx.CreateBuffer()
	ctx.DeleteBuffer(b1)
	ctx.DeleteBuffer(gfx.NoBuffer)

	if v := testutil.ToFloat64(ctx.m.objects.WithLabelValues(kindBuffer)); v != 1 {
		t.Errorf("live buffers = %v, want 1", v)
	}
	if v := testutil.ToFloat64(ctx.m.calls.WithLabelValues("DeleteBuffer")); v != 2 {
		t.Errorf("DeleteBuffer calls = %v, want 2", v)
	}
	if r.Count("DeleteBuffer") != 2 {
		t.Errorf("calls are not forwarded")
	}
}

func TestCreateErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := gltest.New()
	r.CreateFails = map[string]bool{"vertex array": true}
	ctx := Wrap(r, WithRegisterer(reg))

	if _, err := ctx.CreateVertexArray(); err == nil {
		t.Fatal("expected error")
	}
	if v := testutil.ToFloat64(ctx.m.createErrors.WithLabelValues(kindVertexArray)); v != 1 {
		t.Errorf("create errors = %v, want 1", v)
	}
	if v := testutil.ToFloat64(ctx.m.objects.WithLabelValues(kindVertexArray)); v != 0 {
		t.Errorf("live vertex arrays = %v, want 0", v)
	}
}

// traceLevel enables trace logs for the duration of a test.
func traceLevel(t *testing.T) {
	t.Helper()
	lvl := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(lvl) })
}

func TestErrorCheck(t *testing.T) {
	traceLevel(t)
	var buf bytes.Buffer
	reg := prometheus.NewRegistry()
	r := gltest.New()
	r.Errors = []gfx.ErrorCode{gfx.InvalidEnum}
	ctx := Wrap(r, WithRegisterer(reg), WithLogger(logger.NewWriter(&buf)), WithErrorCheck(true))

	ctx.Enable(gfx.Parameter(0x1234))
	ctx.Enable(gfx.DepthTest)

	if v := testutil.ToFloat64(ctx.m.driverErrors.WithLabelValues("Enable", "InvalidEnum")); v != 1 {
		t.Errorf("driver errors = %v, want 1", v)
	}
	out := buf.String()
	if strings.Count(out, `"message":"gl error"`) != 1 || !strings.Contains(out, `"code":"InvalidEnum"`) {
		t.Errorf("unexpected log:\n%s", out)
	}
	if strings.Count(out, `"op":"Enable"`) != 3 {
		t.Errorf("expected two traces and one warning:\n%s", out)
	}
	if n := r.Count("GetError"); n != 2 {
		t.Errorf("driver is checked %v times, want 2", n)
	}
}

func TestQueriesAreCounted(t *testing.T) {
	traceLevel(t)
	var buf bytes.Buffer
	r := gltest.New()
	r.Strings = map[gfx.StringParameter]string{gfx.Version: "4.1 test"}
	ctx := Wrap(r, WithRegisterer(prometheus.NewRegistry()), WithLogger(logger.NewWriter(&buf)))

	if v := ctx.GetParameterString(gfx.Version); v != "4.1 test" {
		t.Errorf("GetParameterString() = %q", v)
	}
	_ = ctx.SupportsF64Precision()
	_ = ctx.GetError()

	for _, op := range []string{"GetParameterString", "SupportsF64Precision", "GetError"} {
		if v := testutil.ToFloat64(ctx.m.calls.WithLabelValues(op)); v != 1 {
			t.Errorf("%v calls = %v, want 1", op, v)
		}
		if !strings.Contains(buf.String(), `"op":"`+op+`"`) {
			t.Errorf("%v is not traced", op)
		}
	}
}

func TestGetErrorAfterCheck(t *testing.T) {
	tests := []struct {
		name  string
		check bool
		ops   []string
	}{
		{name: "check", check: true, ops: []string{"Enable", "GetError", "GetError"}},
		{name: "no check", check: false, ops: []string{"Enable", "GetError", "GetError"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gltest.New()
			r.Errors = []gfx.ErrorCode{gfx.InvalidEnum}
			ctx := Wrap(r, WithRegisterer(prometheus.NewRegistry()), WithErrorCheck(tt.check))

			ctx.Enable(gfx.Parameter(0x1234))

			if e := ctx.GetError(); e != gfx.InvalidEnum {
				t.Errorf("GetError() = %v, want InvalidEnum", e)
			}
			if e := ctx.GetError(); e != gfx.NoError {
				t.Errorf("second GetError() = %v, want NoError", e)
			}
			if diff := cmp.Diff(tt.ops, r.Ops()); diff != "" {
				t.Errorf("driver calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrapTwiceSameRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := Wrap(gltest.New(), WithRegisterer(reg))
	b := Wrap(gltest.New(), WithRegisterer(reg))

	a.Clear(gfx.ClearColorBit)
	b.Clear(gfx.ClearColorBit)

	if v := testutil.ToFloat64(b.m.calls.WithLabelValues("Clear")); v != 2 {
		t.Errorf("collectors are not shared, Clear calls = %v", v)
	}
	if a.Unwrap() == b.Unwrap() {
		t.Errorf("contexts must stay separate")
	}
}

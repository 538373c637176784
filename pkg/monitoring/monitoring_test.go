package monitoring

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glstack/glstack/pkg/config"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_frames_total", Help: "frames"})
	reg.MustRegister(c)
	c.Add(3)

	m := New(config.Monitoring{MetricEnabled: true, URLPrefix: "/gl"}, reg, logger.Nop())
	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/gl/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "test_frames_total 3") {
		t.Errorf("metric is missing in:\n%s", body)
	}

	resp2, err := http.Get(srv.URL + "/gl/debug/pprof/")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("profiling must be disabled, got %v", resp2.StatusCode)
	}
}

package monitoring

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/glstack/glstack/pkg/config"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Monitoring struct {
	conf   config.Monitoring
	server *http.Server
	log    *logger.Logger
}

// New creates new monitoring service.
// Metrics are served from g, or the default prometheus registry if nil.
func New(conf config.Monitoring, g prometheus.Gatherer, log *logger.Logger) *Monitoring {
	m := &Monitoring{conf: conf, log: log.Module("monitoring")}
	m.server = &http.Server{Addr: fmt.Sprintf(":%d", conf.Port), ReadHeaderTimeout: 10 * time.Second}
	m.server.Handler = m.handler(g)
	return m
}

func (m *Monitoring) handler(g prometheus.Gatherer) http.Handler {
	h := http.NewServeMux()

	if m.conf.ProfilingEnabled {
		prefix := m.conf.URLPrefix + "/debug/pprof"
		m.log.Info().Msgf("Profiling is enabled at %v", m.server.Addr+prefix)
		h.HandleFunc(prefix+"/", pprof.Index)
		h.HandleFunc(prefix+"/cmdline", pprof.Cmdline)
		h.HandleFunc(prefix+"/profile", pprof.Profile)
		h.HandleFunc(prefix+"/symbol", pprof.Symbol)
		h.HandleFunc(prefix+"/trace", pprof.Trace)
		// named profiles are not routed by the index under a custom prefix
		for _, p := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
			h.Handle(prefix+"/"+p, pprof.Handler(p))
		}
	}

	if m.conf.MetricEnabled {
		path := m.conf.URLPrefix + "/metrics"
		m.log.Info().Msgf("Prometheus metrics are enabled at %v", path)
		if g == nil {
			h.Handle(path, promhttp.Handler())
		} else {
			h.Handle(path, promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
		}
	}
	return h
}

func (m *Monitoring) Handler() http.Handler { return m.server.Handler }

func (m *Monitoring) Run() {
	m.log.Info().Msgf("Starting monitoring server at %v", m.server.Addr)
	go func() {
		if err := m.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			m.log.Error().Err(err).Msg("monitoring server failed")
		}
	}()
}

func (m *Monitoring) Shutdown(ctx context.Context) error {
	m.log.Info().Msg("Shutting down monitoring server")
	return m.server.Shutdown(ctx)
}

func (m *Monitoring) String() string {
	return fmt.Sprintf("monitoring::%s:%d", m.conf.URLPrefix, m.conf.Port)
}

//go:build !js

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/glstack/glstack/pkg/capture"
	"github.com/glstack/glstack/pkg/config"
	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/gfx/native"
	"github.com/glstack/glstack/pkg/instrument"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/glstack/glstack/pkg/monitoring"
	xos "github.com/glstack/glstack/pkg/os"
	"github.com/glstack/glstack/pkg/scene"
	"github.com/glstack/glstack/pkg/service"
	"github.com/glstack/glstack/pkg/thread"
	"github.com/glstack/glstack/pkg/watcher"
	"github.com/gofrs/uuid"
)

var Version = "?"

func newLogger(conf config.Config) *logger.Logger {
	if conf.Log.Console {
		return logger.NewConsole(conf.Debug, "triangle", conf.Log.NoColor)
	}
	return logger.New(conf.Debug)
}

func windowConfig(conf config.Config) (native.WindowConfig, error) {
	profile, err := native.ParseProfile(conf.GL.Profile)
	if err != nil {
		return native.WindowConfig{}, err
	}
	major, minor, err := conf.GL.VersionNumbers()
	if err != nil {
		return native.WindowConfig{}, err
	}
	return native.WindowConfig{
		Backend:      conf.Window.Backend,
		Title:        conf.Window.Title,
		Width:        conf.Window.Width,
		Height:       conf.Window.Height,
		Profile:      profile,
		VersionMajor: major,
		VersionMinor: minor,
		VSync:        conf.Window.VSync,
		Hidden:       conf.Window.Hidden,
		Depth:        conf.GL.Depth,
		Stencil:      conf.GL.Stencil,
	}, nil
}

// glslHeader picks the shader dialect of a context profile.
func glslHeader(p native.Profile) string {
	if p == native.ProfileES {
		return gfx.GLSLES
	}
	return gfx.GLSLCore
}

func sources(conf config.Shaders, p native.Profile) (scene.Sources, error) {
	header := glslHeader(p)
	if !conf.FromFiles() {
		return scene.DefaultSources(header), nil
	}
	vert, err := os.ReadFile(conf.Vertex)
	if err != nil {
		return scene.Sources{}, err
	}
	frag, err := os.ReadFile(conf.Fragment)
	if err != nil {
		return scene.Sources{}, err
	}
	return scene.Sources{
		Vertex:   gfx.WithVersion(header, string(vert)),
		Fragment: gfx.WithVersion(header, string(frag)),
	}, nil
}

// render owns the window and must run on the main thread.
func render(conf config.Config, log *logger.Logger, done <-chan struct{}) error {
	wc, err := windowConfig(conf)
	if err != nil {
		return err
	}
	win, err := native.OpenWindow(wc)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			log.Error().Err(err).Msg("window close")
		}
	}()

	ctx := instrument.Wrap(win.GL(),
		instrument.WithLogger(log.Module("gl")),
		instrument.WithErrorCheck(conf.GL.CheckErrors),
	)
	info := native.Info(ctx)
	log.Info().
		Str("version", info.Version).
		Str("vendor", info.Vendor).
		Str("renderer", info.Renderer).
		Str("glsl", info.GLSL).
		Msg("gl context")

	if conf.GL.Depth {
		ctx.Enable(gfx.DepthTest)
		if ctx.SupportsF64Precision() {
			ctx.ClearDepthF64(1)
		} else {
			ctx.ClearDepthF32(1)
		}
	}

	src, err := sources(conf.Shaders, wc.Profile)
	if err != nil {
		return err
	}
	tri, err := scene.NewTriangle(ctx, log.Module("scene"), src)
	if err != nil {
		return err
	}
	defer tri.Close()

	var changes <-chan string
	if conf.Shaders.Watch && conf.Shaders.FromFiles() {
		w, err := watcher.New(log.Module("watch"), conf.Shaders.Vertex, conf.Shaders.Fragment)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		changes = w.Events()
	}

	c := conf.Render.ClearColor
	bg := [4]float32{c.R, c.G, c.B, c.A}
	frames := 0
	start := time.Now()

	err = win.Run(func(running *bool) {
		select {
		case <-done:
			*running = false
			return
		case file := <-changes:
			log.Info().Str("file", file).Msg("shader changed")
			if src, err := sources(conf.Shaders, wc.Profile); err == nil {
				_ = tri.Reload(src)
			} else {
				log.Warn().Err(err).Msg("shader read")
			}
		default:
		}

		w, h := win.Size()
		tri.Draw(w, h, bg)
		frames++

		if conf.Render.Frames > 0 && frames >= conf.Render.Frames {
			*running = false
			if conf.Render.Screenshot != "" {
				if err := capture.Save(conf.Render.Screenshot, capture.Frame(ctx, w, h)); err != nil {
					log.Error().Err(err).Msg("screenshot")
				} else {
					log.Info().Str("file", conf.Render.Screenshot).Msg("screenshot saved")
				}
			}
		}
	})
	log.Info().Int("frames", frames).Dur("elapsed", time.Since(start)).Msg("render loop has ended")
	return err
}

func run() int {
	conf, err := config.Load("triangle", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log := newLogger(conf)
	// tells apart the logs of parallel runs
	log = log.Extend(log.With().Str("run", uuid.Must(uuid.NewV4()).String()))
	log.Info().Msgf("version: %v", Version)
	log.Debug().Msgf("conf: %+v", conf)

	var services service.Group
	if conf.Monitoring.IsEnabled() {
		services.Add(monitoring.New(conf.Monitoring, nil, log))
	}
	services.Start()

	done := xos.ExpectTermination()
	code := 0
	if err = thread.CallErr(func() error { return render(conf, log, done) }); err != nil {
		log.Error().Err(err).Msg("render")
		code = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := services.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("service shutdown errors")
	}
	return code
}

func main() {
	code := 0
	thread.Main(func() { code = run() })
	os.Exit(code)
}

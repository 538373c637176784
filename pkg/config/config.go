package config

import (
	"fmt"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

type Config struct {
	Debug      bool
	Log        Log
	Window     Window
	GL         GL `fig:"gl"`
	Render     Render
	Shaders    Shaders
	Monitoring Monitoring
}

type Log struct {
	Console bool
	NoColor bool
}

type Window struct {
	// sdl or glfw
	Backend string `default:"sdl"`
	Title   string `default:"glstack"`
	Width   int    `default:"800"`
	Height  int    `default:"600"`
	VSync   bool
	Hidden  bool
}

type GL struct {
	// core, compat or es
	Profile string `default:"core"`
	// major.minor of the requested context,
	// 3.3 for desktop profiles and 3.0 for es when empty
	Version string
	Depth   bool
	Stencil bool
	// query glGetError after every call (slow)
	CheckErrors bool
}

// VersionNumbers splits Version into major and minor parts.
func (g GL) VersionNumbers() (major, minor int, err error) {
	if g.Version == "" {
		if strings.EqualFold(g.Profile, "es") {
			return 3, 0, nil
		}
		return 3, 3, nil
	}
	maj, min, ok := strings.Cut(g.Version, ".")
	if !ok {
		min = "0"
	}
	if major, err = strconv.Atoi(maj); err != nil {
		return 0, 0, fmt.Errorf("gl version %q: %w", g.Version, err)
	}
	if minor, err = strconv.Atoi(min); err != nil {
		return 0, 0, fmt.Errorf("gl version %q: %w", g.Version, err)
	}
	return
}

type Render struct {
	ClearColor Color
	// stop after this many frames, 0 runs until closed
	Frames int
	// save the last frame into this file (png, bmp, tiff)
	Screenshot string
}

type Color struct {
	R, G, B float32
	A       float32 `default:"1"`
}

type Shaders struct {
	// optional GLSL files replacing the built-in shaders
	Vertex   string
	Fragment string
	// reload shaders from files on change
	Watch bool
}

func (s Shaders) FromFiles() bool { return s.Vertex != "" && s.Fragment != "" }

type Monitoring struct {
	Port             int `default:"9090"`
	URLPrefix        string
	MetricEnabled    bool `fig:"metric_enabled"`
	ProfilingEnabled bool `fig:"profiling_enabled"`
}

func (c *Monitoring) IsEnabled() bool { return c.MetricEnabled || c.ProfilingEnabled }

// Load reads the config for a command line: --config picks the directory
// with config.yaml, the other flags override what was loaded.
func Load(name string, args []string) (conf Config, err error) {
	var path string
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.ParseErrorsWhitelist.UnknownFlags = true
	pre.Usage = func() {}
	pre.StringVarP(&path, "config", "c", "", "")
	_ = pre.Parse(args)

	if err = LoadConfig(&conf, path); err != nil {
		return conf, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVarP(&path, "config", "c", path, "directory with config.yaml")
	conf.WithFlags(fs)
	err = fs.Parse(args)
	return
}

func (c *Config) WithFlags(fs *flag.FlagSet) {
	fs.BoolVarP(&c.Debug, "debug", "d", c.Debug, "verbose logging")
	fs.StringVar(&c.Window.Backend, "backend", c.Window.Backend, "window backend (sdl, glfw)")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height")
	fs.BoolVar(&c.Window.Hidden, "hidden", c.Window.Hidden, "create a hidden window")
	fs.StringVar(&c.GL.Profile, "profile", c.GL.Profile, "gl context profile (core, compat, es)")
	fs.StringVar(&c.GL.Version, "gl", c.GL.Version, "gl context version")
	fs.BoolVar(&c.GL.CheckErrors, "check-errors", c.GL.CheckErrors, "check gl errors after every call")
	fs.IntVarP(&c.Render.Frames, "frames", "n", c.Render.Frames, "number of frames to render (0 = unlimited)")
	fs.StringVarP(&c.Render.Screenshot, "screenshot", "o", c.Render.Screenshot, "save the last frame to a file")
	fs.StringVar(&c.Shaders.Vertex, "vertex", c.Shaders.Vertex, "vertex shader file")
	fs.StringVar(&c.Shaders.Fragment, "fragment", c.Shaders.Fragment, "fragment shader file")
	fs.BoolVarP(&c.Shaders.Watch, "watch", "w", c.Shaders.Watch, "reload shader files on change")
}

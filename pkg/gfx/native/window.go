//go:build !js

package native

import (
	"fmt"
	"strings"

	"github.com/glstack/glstack/pkg/gfx"
)

// Profile is the kind of GL context requested from the windowing library.
type Profile int

const (
	ProfileCore Profile = iota
	ProfileCompat
	ProfileES
)

func (p Profile) String() string {
	switch p {
	case ProfileCore:
		return "core"
	case ProfileCompat:
		return "compat"
	case ProfileES:
		return "es"
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(s) {
	case "", "core":
		return ProfileCore, nil
	case "compat", "compatibility":
		return ProfileCompat, nil
	case "es", "gles":
		return ProfileES, nil
	}
	return 0, fmt.Errorf("unknown gl profile: %q", s)
}

type WindowConfig struct {
	// Backend is the windowing library: sdl (default) or glfw.
	Backend      string
	Title        string
	Width        int
	Height       int
	Profile      Profile
	VersionMajor int
	VersionMinor int
	VSync        bool
	Hidden       bool
	Depth        bool
	Stencil      bool
}

// Window is an on-screen surface with a current GL context.
type Window interface {
	gfx.RenderLoop
	GL() *Context
	// Size returns the drawable size in pixels.
	Size() (w, h int)
	Close() error
}

// OpenWindow creates a window with the configured backend and makes its
// context current on the calling thread.
func OpenWindow(cfg WindowConfig) (Window, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "sdl":
		return NewSDLWindow(cfg)
	case "glfw":
		return NewGLFWWindow(cfg)
	}
	return nil, fmt.Errorf("unknown window backend: %q", cfg.Backend)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

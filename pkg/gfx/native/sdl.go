//go:build !js

package native

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

type SDLWindow struct {
	w   *sdl.Window
	ctx sdl.GLContext
	gl  *Context
}

func NewSDLWindow(cfg WindowConfig) (*SDLWindow, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs, err := sdlAttrs(cfg)
	if err != nil {
		sdl.Quit()
		return nil, err
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(sdl.GLattr(a[0]), a[1]); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("gl attr %v: %w", a[0], err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Hidden {
		flags |= sdl.WINDOW_HIDDEN
	} else {
		flags |= sdl.WINDOW_SHOWN
	}
	w, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: %w", err)
	}

	ctx, err := w.GLCreateContext()
	if err != nil {
		err1 := w.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("gl context: %w, destroy err: %v", err, err1)
	}

	win := &SDLWindow{w: w, ctx: ctx}
	if err = w.GLMakeCurrent(ctx); err != nil {
		_ = win.Close()
		return nil, fmt.Errorf("gl bind: %w", err)
	}
	if err = sdl.GLSetSwapInterval(boolInt(cfg.VSync)); err != nil {
		_ = win.Close()
		return nil, fmt.Errorf("swap interval: %w", err)
	}
	if win.gl, err = NewContext(sdl.GLGetProcAddress); err != nil {
		_ = win.Close()
		return nil, err
	}
	return win, nil
}

// sdlAttrs lists the GL attributes for the requested context.
func sdlAttrs(cfg WindowConfig) ([][2]int, error) {
	attrs := [][2]int{{sdl.GL_DOUBLEBUFFER, 1}}
	switch cfg.Profile {
	case ProfileCore:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE})
	case ProfileCompat:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_COMPATIBILITY})
	case ProfileES:
		attrs = append(attrs, [2]int{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_ES})
	default:
		return nil, fmt.Errorf("unsupported gl context: %v", cfg.Profile)
	}
	if cfg.VersionMajor > 0 {
		attrs = append(attrs,
			[2]int{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.VersionMajor},
			[2]int{sdl.GL_CONTEXT_MINOR_VERSION, cfg.VersionMinor},
		)
	}
	if cfg.Depth {
		attrs = append(attrs, [2]int{sdl.GL_DEPTH_SIZE, 24})
	}
	if cfg.Stencil {
		attrs = append(attrs, [2]int{sdl.GL_STENCIL_SIZE, 8})
	}
	return attrs, nil
}

func (s *SDLWindow) GL() *Context { return s.gl }

func (s *SDLWindow) Size() (int, int) {
	w, h := s.w.GLGetDrawableSize()
	return int(w), int(h)
}

// Run pumps window events between frames and swaps after each one.
// A quit or window close event ends the loop.
func (s *SDLWindow) Run(frame func(running *bool)) error {
	running := true
	for running {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			switch e := ev.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_CLOSE {
					running = false
				}
			}
		}
		if !running {
			break
		}
		frame(&running)
		s.w.GLSwap()
	}
	return nil
}

func (s *SDLWindow) Close() error {
	sdl.GLDeleteContext(s.ctx)
	err := s.w.Destroy()
	sdl.Quit()
	return err
}

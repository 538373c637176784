//go:build !js

package native

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type GLFWWindow struct {
	w  *glfw.Window
	gl *Context
}

func NewGLFWWindow(cfg WindowConfig) (*GLFWWindow, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	hints, err := glfwHints(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	glfw.DefaultWindowHints()
	for _, h := range hints {
		glfw.WindowHint(h.hint, h.value)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(boolInt(cfg.VSync))

	win := &GLFWWindow{w: w}
	if win.gl, err = NewContext(glfw.GetProcAddress); err != nil {
		_ = win.Close()
		return nil, err
	}
	return win, nil
}

type glfwHint struct {
	hint  glfw.Hint
	value int
}

func glfwHints(cfg WindowConfig) ([]glfwHint, error) {
	hints := []glfwHint{
		{glfw.Resizable, glfw.True},
		{glfw.Visible, boolInt(!cfg.Hidden)},
	}
	switch cfg.Profile {
	case ProfileCore:
		hints = append(hints,
			glfwHint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile},
			glfwHint{glfw.OpenGLForwardCompatible, glfw.True},
		)
	case ProfileCompat:
		hints = append(hints, glfwHint{glfw.OpenGLProfile, glfw.OpenGLCompatProfile})
	case ProfileES:
		hints = append(hints, glfwHint{glfw.ClientAPI, glfw.OpenGLESAPI})
	default:
		return nil, fmt.Errorf("unsupported gl context: %v", cfg.Profile)
	}
	if cfg.VersionMajor > 0 {
		hints = append(hints,
			glfwHint{glfw.ContextVersionMajor, cfg.VersionMajor},
			glfwHint{glfw.ContextVersionMinor, cfg.VersionMinor},
		)
	}
	if cfg.Depth {
		hints = append(hints, glfwHint{glfw.DepthBits, 24})
	}
	if cfg.Stencil {
		hints = append(hints, glfwHint{glfw.StencilBits, 8})
	}
	return hints, nil
}

func (g *GLFWWindow) GL() *Context { return g.gl }

func (g *GLFWWindow) Size() (int, int) { return g.w.GetFramebufferSize() }

func (g *GLFWWindow) Run(frame func(running *bool)) error {
	running := true
	for running && !g.w.ShouldClose() {
		frame(&running)
		g.w.SwapBuffers()
		glfw.PollEvents()
	}
	return nil
}

func (g *GLFWWindow) Close() error {
	g.w.Destroy()
	glfw.Terminate()
	return nil
}

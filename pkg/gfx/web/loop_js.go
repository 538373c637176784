//go:build js && wasm

package web

import (
	"syscall/js"

	"github.com/glstack/glstack/pkg/gfx"
)

// Loop drives frames from the browser's requestAnimationFrame.
type Loop struct{}

// Run blocks until frame stops the loop.
func (Loop) Run(frame func(running *bool)) error {
	raf := js.Global().Get("requestAnimationFrame")
	done := make(chan struct{})

	var redraw js.Func
	redraw = js.FuncOf(func(this js.Value, args []js.Value) any {
		running := true
		frame(&running)
		if !running {
			close(done)
			return nil
		}
		raf.Invoke(redraw)
		return nil
	})
	defer redraw.Release()

	raf.Invoke(redraw)
	<-done
	return nil
}

var _ gfx.RenderLoop = Loop{}

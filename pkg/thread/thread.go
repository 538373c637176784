// Package thread runs functions on the main OS thread.
// Windowing libraries and GL contexts must be driven from the thread
// that created them, and some platforms require that to be the main one.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import "github.com/faiface/mainthread"

// Main runs the main thread loop and calls run in a separate goroutine.
// It returns when run returns. Must be called from the main goroutine.
func Main(run func()) { mainthread.Run(run) }

// Call queues f on the main thread and blocks until it finishes.
func Call(f func()) { mainthread.Call(f) }

// CallErr is Call for functions returning an error.
func CallErr(f func() error) error { return mainthread.CallErr(f) }

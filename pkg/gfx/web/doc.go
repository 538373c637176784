// Package web implements gfx.Context on top of WebGL2 for js/wasm builds.
//
// WebGL objects are JS values, which cannot be ordered or used as map keys,
// so the context hands out integer names from per-kind tables instead.
package web

//go:build !js

package native

import "github.com/glstack/glstack/pkg/gfx"

// DriverInfo describes the GL implementation behind a context.
type DriverInfo struct {
	Version  string
	Vendor   string
	Renderer string
	GLSL     string
}

func Info(ctx gfx.Context) DriverInfo {
	return DriverInfo{
		Version:  ctx.GetParameterString(gfx.Version),
		Vendor:   ctx.GetParameterString(gfx.Vendor),
		Renderer: ctx.GetParameterString(gfx.Renderer),
		GLSL:     ctx.GetParameterString(gfx.ShadingLanguageVersion),
	}
}

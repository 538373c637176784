//go:build js && wasm

package main

import (
	"os"

	"github.com/glstack/glstack/pkg/gfx"
	"github.com/glstack/glstack/pkg/gfx/web"
	"github.com/glstack/glstack/pkg/logger"
	"github.com/glstack/glstack/pkg/scene"
)

func main() {
	log := logger.NewWriter(os.Stdout)

	ctx, err := web.NewContextByID("canvas")
	if err != nil {
		log.Fatal().Err(err).Msg("webgl")
	}

	tri, err := scene.NewTriangle(ctx, log.Module("scene"), scene.DefaultSources(gfx.GLSLES))
	if err != nil {
		log.Fatal().Err(err).Msg("scene")
	}
	defer tri.Close()

	bg := [4]float32{0.1, 0.1, 0.1, 1}
	err = web.Loop{}.Run(func(running *bool) {
		w, h := ctx.DrawingBufferSize()
		tri.Draw(w, h, bg)
	})
	if err != nil {
		log.Error().Err(err).Msg("render loop")
	}
}

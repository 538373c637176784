// Package capture reads rendered frames back from a context and saves them.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/glstack/glstack/pkg/gfx"
	xos "github.com/glstack/glstack/pkg/os"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Frame reads a w×h RGBA block from the origin of the read framebuffer.
// Rows are flipped since GL stores the bottom row first.
func Frame(ctx gfx.Context, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return img
	}
	raw := make([]byte, w*h*4)
	ctx.PixelStoreI32(gfx.PackAlignment, 1)
	ctx.ReadPixels(0, 0, int32(w), int32(h), gfx.RGBA, gfx.UnsignedByte, raw)

	stride := w * 4
	for y := 0; y < h; y++ {
		src := raw[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img
}

type encoder func(io.Writer, image.Image) error

func encoderFor(path string) (encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unsupported image format: %q", filepath.Ext(path))
}

// Save writes img to path in the format given by the file extension:
// png, bmp or tiff. Saves from concurrent processes are serialized
// with a lock file in the temp dir.
func Save(path string, img image.Image) (err error) {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if err = xos.CheckCreateDir(path); err != nil {
		return err
	}
	lock, err := xos.NewFileLock("")
	if err != nil {
		return err
	}
	if err = lock.Lock(); err != nil {
		return fmt.Errorf("capture lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f, img)
}

// Package output quantizes the final floating-point frame to 8-bit RGBX
// and writes it to disk, retrying in a fallback format once if the
// primary write fails.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/stenberg/whittedrt/internal/frame"
)

// Quantize converts a finalized 3-plane (R, G, B) frame into an 8-bit
// RGBA image; each channel is clamp(round(255*v), 0, 255) and alpha is
// always opaque.
func Quantize(rf *frame.ReadFrame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rf.Width, rf.Height))
	for y := 0; y < rf.Height; y++ {
		for x := 0; x < rf.Width; x++ {
			r := quantizeChannel(rf.At(0, y, x))
			g := quantizeChannel(rf.At(1, y, x))
			b := quantizeChannel(rf.At(2, y, x))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

func quantizeChannel(v float64) uint8 {
	scaled := math.Round(255 * v)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return uint8(scaled)
}

// Write encodes img as PNG to path. If that fails, it retries once by
// writing a PPM (P6) image alongside the same path with its extension
// replaced, per the renderer's output-write-failure policy of retrying
// once in a secondary format before giving up.
func Write(img *image.RGBA, path string) error {
	pngErr := writePNG(img, path)
	if pngErr == nil {
		return nil
	}

	ppmPath := replaceExt(path, ".ppm")
	if ppmErr := writePPM(img, ppmPath); ppmErr != nil {
		return fmt.Errorf("output: png write failed (%v), ppm fallback also failed (%w)", pngErr, ppmErr)
	}
	return nil
}

func writePNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func writePPM(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bounds := img.Bounds()
	if _, err := fmt.Fprintf(f, "P6\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}
	buf := make([]byte, 0, bounds.Dx()*bounds.Dy()*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			buf = append(buf, c.R, c.G, c.B)
		}
	}
	_, err = f.Write(buf)
	return err
}

func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[:i] + ext
	}
	return path + ext
}

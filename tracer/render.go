package tracer

import (
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/stenberg/whittedrt/camera"
	"github.com/stenberg/whittedrt/internal/frame"
)

// RenderFrame traces one ray per pixel over a width x height canvas (the
// supersampled resolution, before any downsample passes) and writes the
// resulting RGB triples into a 3-plane frame. When parallel is false,
// pixels are traced in row-major order on the calling goroutine; when
// true, rows are farmed out to a worker pool sized to the host's CPU
// count.
func RenderFrame(scene *Scene, cam camera.Camera, width, height int, parallel bool) *frame.Frame {
	proj := camera.NewProjector(width, height, cam)
	out := frame.New(height, width, 3)

	renderRow := func(y int) {
		for x := 0; x < width; x++ {
			origin, dir := camera.Ray(cam, proj, width, height, x, y)
			color := Trace(origin, dir, 1, scene)
			out.Planes[0].Set(y, x, color.X)
			out.Planes[1].Set(y, x, color.Y)
			out.Planes[2].Set(y, x, color.Z)
		}
	}

	if !parallel {
		for y := 0; y < height; y++ {
			renderRow(y)
		}
		return out
	}

	pool := pond.NewPool(runtime.NumCPU())
	for y := 0; y < height; y++ {
		y := y
		pool.Submit(func() { renderRow(y) })
	}
	pool.StopAndWait()

	return out
}

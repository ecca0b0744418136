// Package camera implements the pixel-to-world-ray projector: given a
// camera pose and a canvas size, it maps a pixel coordinate to a world
// point on the view plane and from there to a primary ray.
package camera

import (
	"math"

	"github.com/stenberg/whittedrt/internal/prim"
)

// Camera holds the view parameters. Look and Up must be unit vectors and
// must not be parallel; a degenerate camera (up parallel to look) drives
// the basis construction to NaN rather than panicking, and propagates as
// NaN pixels rather than crashing the render.
type Camera struct {
	Position    prim.Vec3
	Look        prim.Vec3
	Up          prim.Vec3
	HeightAngle float64 // radians
	FocalLength float64
}

// Projector maps a pixel (x, y) to a world-space point on the view plane.
type Projector struct {
	toWorld prim.Mat4
	u, v    float64
}

// NewProjector precomputes the world-from-camera basis and view-plane
// extents for a width x height canvas.
func NewProjector(width, height int, c Camera) Projector {
	w := c.Look.Neg()
	upDotW := c.Up.Dot(w)
	v := (&prim.Vec3{X: c.Up.X - upDotW*w.X, Y: c.Up.Y - upDotW*w.Y, Z: c.Up.Z - upDotW*w.Z}).Normalize()
	u := v.Cross(w)

	basis := prim.FromColumns4(
		prim.Dir4(u),
		prim.Dir4(v),
		prim.Dir4(w),
		prim.Vec4{X: 0, Y: 0, Z: 0, W: 1},
	)
	translate := prim.Translate4(&c.Position)
	toWorld := translate.Mul(&basis)

	V := 2 * c.FocalLength * math.Tan(c.HeightAngle/2)
	U := V * float64(width) / float64(height)

	return Projector{toWorld: toWorld, u: U, v: V}
}

// point returns the world-space point on the view plane for pixel (x, y)
// within a width x height canvas, given this projector's precomputed
// basis and extents. focalLength must match the one passed to
// NewProjector (callers keep it alongside the projector).
func (p Projector) point(x, y, width, height int, focalLength float64) *prim.Vec3 {
	nx := (float64(x)+0.5)/float64(width) - 0.5
	ny := 0.5 - (float64(y)+0.5)/float64(height)
	local := prim.Vec4{X: p.u * nx, Y: p.v * ny, Z: -focalLength, W: 1}
	world := p.toWorld.MulVec4(&local)
	return world.Vec3()
}

// Ray returns the primary ray's origin (the camera position) and unit
// direction for pixel (x, y).
func Ray(c Camera, proj Projector, width, height, x, y int) (origin, dir *prim.Vec3) {
	worldPoint := proj.point(x, y, width, height, c.FocalLength)
	origin = &c.Position
	dir = worldPoint.Sub(&c.Position).Normalize()
	return
}

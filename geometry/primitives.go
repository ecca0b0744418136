package geometry

import "github.com/stenberg/whittedrt/internal/prim"

// The four standard primitives, in object space: unit-sized (radius or
// half-extent 0.5) and centered at the origin.

// Sphere has radius 0.5.
var Sphere Fn = SolveQuadratic(
	func(eye, dir *prim.Vec3) (a, b, c float64) {
		a = dir.Dot(dir)
		b = 2 * dir.Dot(eye)
		c = eye.Dot(eye) - 0.25
		return
	},
	func(p *prim.Vec3) *prim.Vec3 { return p.Normalize() },
	AlwaysTrue3,
)

var (
	xPos = &prim.Vec3{X: 1, Y: 0, Z: 0}
	xNeg = &prim.Vec3{X: -1, Y: 0, Z: 0}
	yPos = &prim.Vec3{X: 0, Y: 1, Z: 0}
	yNeg = &prim.Vec3{X: 0, Y: -1, Z: 0}
	zPos = &prim.Vec3{X: 0, Y: 0, Z: 1}
	zNeg = &prim.Vec3{X: 0, Y: 0, Z: -1}
)

// Cylinder has radius 0.5, height 1, axis-aligned along y.
var Cylinder Fn = Union(
	SolveQuadratic(
		func(eye, dir *prim.Vec3) (a, b, c float64) {
			a = dir.X*dir.X + dir.Z*dir.Z
			b = 2 * (dir.X*eye.X + dir.Z*eye.Z)
			c = eye.X*eye.X + eye.Z*eye.Z - 0.25
			return
		},
		func(p *prim.Vec3) *prim.Vec3 {
			return (&prim.Vec3{X: p.X, Y: 0, Z: p.Z}).Normalize()
		},
		BoundedHeight,
	),
	Union(
		SolvePlanar(axisY, [2]axis{axisX, axisZ}, 0.5, yPos, CircularPlane),
		SolvePlanar(axisY, [2]axis{axisX, axisZ}, -0.5, yNeg, CircularPlane),
	),
)

// Cone has its apex at y = +0.5 and base radius 0.5 at y = -0.5, axis
// aligned along y.
var Cone Fn = Union(
	SolveQuadratic(
		func(eye, dir *prim.Vec3) (a, b, c float64) {
			a = dir.X*dir.X + dir.Z*dir.Z - 0.25*dir.Y*dir.Y
			b = 2*(dir.X*eye.X+dir.Z*eye.Z) - 0.5*dir.Y*eye.Y + 0.25*dir.Y
			c = eye.X*eye.X + eye.Z*eye.Z - 0.25*eye.Y*eye.Y + 0.25*eye.Y - 0.0625
			return
		},
		func(p *prim.Vec3) *prim.Vec3 {
			return (&prim.Vec3{X: 2 * p.X, Y: 0.25 - 0.5*p.Y, Z: 2 * p.Z}).Normalize()
		},
		BoundedHeight,
	),
	SolvePlanar(axisY, [2]axis{axisX, axisZ}, -0.5, yNeg, CircularPlane),
)

// Cube is axis-aligned, [-0.5, 0.5]^3, built as a union of six bounded
// planar faces.
var Cube Fn = UnionAll(
	SolvePlanar(axisX, [2]axis{axisY, axisZ}, -0.5, xNeg, BoundedPlane),
	SolvePlanar(axisX, [2]axis{axisY, axisZ}, 0.5, xPos, BoundedPlane),
	SolvePlanar(axisZ, [2]axis{axisX, axisY}, 0.5, zPos, BoundedPlane),
	SolvePlanar(axisZ, [2]axis{axisX, axisY}, -0.5, zNeg, BoundedPlane),
	SolvePlanar(axisY, [2]axis{axisX, axisZ}, 0.5, yPos, BoundedPlane),
	SolvePlanar(axisY, [2]axis{axisX, axisZ}, -0.5, yNeg, BoundedPlane),
)

package geometry

import (
	"math"

	"github.com/stenberg/whittedrt/internal/prim"
)

// Constraint3 tests whether a 3D intersection point is admissible (used
// by the quadratic solver, e.g. to bound a cylinder's side surface by
// height).
type Constraint3 func(x, y, z float64) bool

// AlwaysTrue3 admits every point (the sphere has no extra constraint).
func AlwaysTrue3(x, y, z float64) bool { return true }

// BoundedHeight admits points with -0.5 <= y <= 0.5 (cylinder/cone side
// surfaces).
func BoundedHeight(_, y, _ float64) bool {
	return y >= -0.5 && y <= 0.5
}

// Constraint2 tests whether an in-plane (u, v) point is admissible.
type Constraint2 func(u, v float64) bool

// BoundedPlane admits the unit square, for cube faces.
func BoundedPlane(u, v float64) bool {
	return u >= -0.5 && u <= 0.5 && v >= -0.5 && v <= 0.5
}

// CircularPlane admits the unit disk, for cylinder/cone caps.
func CircularPlane(u, v float64) bool {
	return u*u+v*v <= 0.25
}

// QuadraticCoefficients computes (a, b, c) for eye + t*dir substituted
// into a quadric.
type QuadraticCoefficients func(eye, dir *prim.Vec3) (a, b, c float64)

// NormalAt computes the surface normal at a (object-space) intersection
// point.
type NormalAt func(p *prim.Vec3) *prim.Vec3

// SolveQuadratic tries the smaller non-negative root first; if it exists
// but its intersection point fails the constraint, it returns no
// intersection WITHOUT falling through to the larger root. Only if the
// smaller root is negative does it try the larger root. A ray that enters
// a quadric surface below a height-bounded cap and exits above it (or
// vice versa) can therefore miss a valid far hit; that behavior is kept
// intentionally rather than "fixed".
func SolveQuadratic(coeffs QuadraticCoefficients, normalAt NormalAt, constraint Constraint3) Fn {
	return func(eye, dir *prim.Vec3) (float64, *prim.Vec3) {
		a, b, c := coeffs(eye, dir)
		discriminant := b*b - 4*a*c
		if math.Abs(a) <= epsilon || discriminant < 0 {
			return NoHit, nil
		}
		sqrtDisc := math.Sqrt(discriminant)
		check := func(root float64) (float64, *prim.Vec3, bool) {
			p := eye.Add(dir.Scale(root))
			if !constraint(p.X, p.Y, p.Z) {
				return NoHit, nil, false
			}
			return root, normalAt(p), true
		}
		smaller := (-b - sqrtDisc) / (2 * a)
		if smaller >= 0 {
			if t, n, ok := check(smaller); ok {
				return t, n
			}
			return NoHit, nil
		}
		larger := (-b + sqrtDisc) / (2 * a)
		if larger >= 0 {
			if t, n, ok := check(larger); ok {
				return t, n
			}
		}
		return NoHit, nil
	}
}

// axis identifies a component of a Vec3.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

func component(v *prim.Vec3, a axis) float64 {
	switch a {
	case axisX:
		return v.X
	case axisY:
		return v.Y
	default:
		return v.Z
	}
}

// SolvePlanar intersects a ray with the plane mainAxis = planeCoordinate,
// applying the 2D constraint to the two support axes (in order).
func SolvePlanar(mainAxis axis, supportAxes [2]axis, planeCoordinate float64, normal *prim.Vec3, constraint Constraint2) Fn {
	return func(eye, dir *prim.Vec3) (float64, *prim.Vec3) {
		dMain := component(dir, mainAxis)
		if math.Abs(dMain) <= epsilon {
			return NoHit, nil
		}
		t := (planeCoordinate - component(eye, mainAxis)) / dMain
		if t < 0 {
			return NoHit, nil
		}
		u := component(eye, supportAxes[0]) + t*component(dir, supportAxes[0])
		v := component(eye, supportAxes[1]) + t*component(dir, supportAxes[1])
		if !constraint(u, v) {
			return NoHit, nil
		}
		return t, normal
	}
}

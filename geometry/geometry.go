// Package geometry implements the composable implicit-function algebra:
// object-space primitives, the affine object transform, and the union
// operator, all closed over the same (eye, dir) -> (t, normal) shape.
package geometry

import (
	"math"

	"github.com/stenberg/whittedrt/internal/prim"
)

// NoHit is the sentinel "no intersection" distance.
var NoHit = math.Inf(1)

// epsilon is the smallest positive *normal* float64, matching the source's
// std::numeric_limits<double>::min() (not the smallest subnormal).
const epsilon = 2.2250738585072014e-308

// Fn denotes an implicit surface: given an eye point and a ray direction,
// it returns the nearest intersection distance (NoHit if none) and the
// unit outward surface normal at that point.
type Fn func(eye, dir *prim.Vec3) (t float64, normal *prim.Vec3)

// Union returns the implicit function whose intersection is whichever of
// f or g has the smaller t.
func Union(f, g Fn) Fn {
	return func(eye, dir *prim.Vec3) (float64, *prim.Vec3) {
		t1, n1 := f(eye, dir)
		t2, n2 := g(eye, dir)
		if t1 <= t2 {
			return t1, n1
		}
		return t2, n2
	}
}

// UnionAll unions a non-empty slice of implicit functions left to right.
func UnionAll(fns ...Fn) Fn {
	result := fns[0]
	for _, f := range fns[1:] {
		result = Union(result, f)
	}
	return result
}

// Transform wraps f in an object-space transform: incoming rays are
// mapped into object space by m's inverse before calling f, and the
// returned normal is mapped back to world space by the inverse-transpose
// of m's upper 3x3, then renormalized.
func Transform(m *prim.Mat4, f Fn) Fn {
	inv := m.Inverse()
	normalMat := inv.Transpose()
	return func(eye, dir *prim.Vec3) (float64, *prim.Vec3) {
		objEye := inv.MulPoint3(eye)
		objDir := inv.MulDir3(dir)
		t, n := f(objEye, objDir)
		if t == NoHit {
			return NoHit, nil
		}
		worldNormal := normalMat.MulDir3(n).Normalize()
		return t, worldNormal
	}
}

// Package lighting implements the point/directional/spot light models and
// the Whitted illumination accumulator that combines them with shadow
// queries against the scene's obstruction list.
package lighting

import (
	"math"

	"github.com/stenberg/whittedrt/internal/prim"
)

// Light evaluates at a surface position, returning the distance to the
// light (+Inf for directional), the unit direction from the light toward
// the surface, and the light's effective color at that distance.
type Light func(surfacePos *prim.Vec3) (distance float64, dirFromLight *prim.Vec3, color *prim.Vec3)

// AttenuationCoeffs are the constant/linear/quadratic falloff terms used
// by Point and Spot lights.
type AttenuationCoeffs [3]float64

func attenuate(d float64, c AttenuationCoeffs) float64 {
	denom := c[0] + c[1]*d + c[2]*d*d
	return math.Min(1, 1/denom)
}

// Point returns a point light at pos.
func Point(pos, color *prim.Vec3, coeffs AttenuationCoeffs) Light {
	return func(surfacePos *prim.Vec3) (float64, *prim.Vec3, *prim.Vec3) {
		toSurface := surfacePos.Sub(pos)
		d := toSurface.Length()
		dir := toSurface.Normalize()
		a := attenuate(d, coeffs)
		return d, dir, color.Scale(a)
	}
}

// Directional returns a directional light shining along dir (unit,
// pointing from the light toward whatever it illuminates).
func Directional(dir, color *prim.Vec3) Light {
	unit := dir.Normalize()
	return func(surfacePos *prim.Vec3) (float64, *prim.Vec3, *prim.Vec3) {
		return math.Inf(1), unit, color
	}
}

// Spot returns a spot light at pos aimed along axis (unit), with angular
// falloff between (outerAngle - penumbra) and outerAngle (radians).
func Spot(pos, axis, color *prim.Vec3, outerAngle, penumbra float64, coeffs AttenuationCoeffs) Light {
	umbra := outerAngle - penumbra
	return func(surfacePos *prim.Vec3) (float64, *prim.Vec3, *prim.Vec3) {
		toSurface := surfacePos.Sub(pos)
		d := toSurface.Length()
		dir := toSurface.Normalize()
		phi := math.Acos(clampUnit(dir.Dot(axis)))

		base := attenuate(d, coeffs)
		switch {
		case phi > outerAngle:
			return d, dir, &prim.Vec3{}
		case phi <= umbra:
			return d, dir, color.Scale(base)
		default:
			alpha := (phi - umbra) / penumbra
			factor := 1 - (-2*alpha*alpha*alpha + 3*alpha*alpha)
			return d, dir, color.Scale(base * factor)
		}
	}
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

package lighting

import (
	"math"

	"github.com/stenberg/whittedrt/geometry"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/material"
)

// SelfIntersectEps displaces shadow-ray (and secondary-ray) origins along
// their direction to avoid spurious self-hits against the surface they
// originate from.
const SelfIntersectEps = 1e-3

// Accumulate evaluates the Whitted local-illumination term at a hit
// point: ambient, plus per-light diffuse/specular contributions gated by
// a shadow query against obstructions, plus the weighted
// reflected/refracted contribution already computed by the caller.
func Accumulate(
	mat material.Material,
	coeffs material.Coefficients,
	surfacePos, normal, eyePos *prim.Vec3,
	lights []Light,
	obstructions []geometry.Fn,
	reflectedColor, refractedColor *prim.Vec3,
) *prim.Vec3 {
	color := mat.Ambient.Scale(coeffs.Ka)

	eyeDir := eyePos.Sub(surfacePos).Normalize()
	for _, light := range lights {
		dLight, dirFromLight, lightColor := light(surfacePos)
		negL := dirFromLight.Neg()

		shadowOrigin := surfacePos.Add(negL.Scale(SelfIntersectEps))
		if occluded(shadowOrigin, negL, dLight, obstructions) {
			continue
		}

		nDotNegL := math.Max(0, normal.Dot(negL))
		diffuse := mat.Diffuse.Scale(coeffs.Kd * nDotNegL)
		color = color.Add(diffuse.Mul(lightColor))

		reflected := reflect(dirFromLight, normal)
		specCos := math.Max(0, reflected.Dot(eyeDir))
		specFactor := math.Pow(specCos, mat.Shininess)
		specular := mat.Specular.Scale(coeffs.Ks * specFactor)
		color = color.Add(specular.Mul(lightColor))
	}

	color = color.Add(mat.Reflective.Scale(coeffs.Ks).Mul(reflectedColor))
	color = color.Add(mat.Transparent.Scale(coeffs.Kt).Mul(refractedColor))
	return color
}

func occluded(origin, dir *prim.Vec3, dLight float64, obstructions []geometry.Fn) bool {
	for _, f := range obstructions {
		if t, _ := f(origin, dir); t < dLight {
			return true
		}
	}
	return false
}

// reflect mirrors L about N: normalize(L + 2*(N . -L)*N).
func reflect(l, n *prim.Vec3) *prim.Vec3 {
	negL := l.Neg()
	c := n.Dot(negL)
	return l.Add(n.Scale(2 * c)).Normalize()
}


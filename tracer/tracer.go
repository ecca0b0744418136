// Package tracer implements the recursive Whitted ray-scene traversal:
// nearest-intersection search, reflection/refraction branching with a
// recursion depth cap, full-formula Fresnel weighting, and the parallel
// per-pixel render loop.
package tracer

import (
	"math"

	"github.com/stenberg/whittedrt/geometry"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/lighting"
	"github.com/stenberg/whittedrt/material"
)

// Object pairs an implicit surface with the material it's shaded with.
type Object struct {
	Fn  geometry.Fn
	Mat material.Material
}

// Scene is the complete read-only input to a render: objects, a separate
// obstruction list used only for shadow queries, the light list, and the
// global shading coefficients.
type Scene struct {
	Objects      []Object
	Obstructions []geometry.Fn
	Lights       []lighting.Light
	Coeffs       material.Coefficients
	MaxDepth     int
}

var black = &prim.Vec3{}

// Trace evaluates the color seen along a ray, recursing into reflection
// and refraction branches up to scene.MaxDepth. depth starts at 1 for
// primary rays.
func Trace(eye, dir *prim.Vec3, depth int, scene *Scene) *prim.Vec3 {
	if depth >= scene.MaxDepth {
		return black
	}

	bestT := geometry.NoHit
	var bestN *prim.Vec3
	var bestMat material.Material
	hit := false
	for _, obj := range scene.Objects {
		t, n := obj.Fn(eye, dir)
		if t < bestT {
			bestT, bestN, bestMat = t, n, obj.Mat
			hit = true
		}
	}
	if !hit || math.IsInf(bestT, 1) {
		return black
	}

	p := eye.Add(dir.Scale(bestT))
	n := bestN

	var reflectance float64
	reflected, refracted := black, black

	switch {
	case !bestMat.IsReflective && !bestMat.IsTransparent:
		reflectance = 0
	case bestMat.IsReflective && !bestMat.IsTransparent:
		reflectance = 1
		reflected = traceReflection(dir, n, p, depth, scene)
	case !bestMat.IsReflective && bestMat.IsTransparent:
		reflectance = 0
		refracted = traceRefraction(dir, n, p, bestMat.IOR, depth, scene)
	default:
		reflectance = fresnel(dir, n, bestMat.IOR)
		reflected = traceReflection(dir, n, p, depth, scene)
		refracted = traceRefraction(dir, n, p, bestMat.IOR, depth, scene)
	}

	return lighting.Accumulate(
		bestMat, scene.Coeffs, p, n, eye, scene.Lights, scene.Obstructions,
		reflected.Scale(reflectance), refracted.Scale(1-reflectance),
	)
}

func traceReflection(dir, n, p *prim.Vec3, depth int, scene *Scene) *prim.Vec3 {
	r := reflectRay(dir, n)
	origin := p.Add(r.Scale(lighting.SelfIntersectEps))
	return Trace(origin, r, depth+1, scene)
}

// reflectRay mirrors an incoming ray direction about the surface normal:
// dir - 2*(dir.N)*N.
func reflectRay(dir, n *prim.Vec3) *prim.Vec3 {
	return dir.Sub(n.Scale(2 * dir.Dot(n)))
}

func traceRefraction(dir, n, p *prim.Vec3, ior float64, depth int, scene *Scene) *prim.Vec3 {
	leaving := dir.Dot(n) > 0
	refractionNormal := n
	eta := 1 / ior
	if leaving {
		refractionNormal = n.Neg()
		eta = ior
	}

	cosTheta1 := -refractionNormal.Dot(dir)
	d := 1 - eta*eta*(1-cosTheta1*cosTheta1)
	if d < 0 {
		return black
	}

	t := dir.Scale(eta).Add(refractionNormal.Scale(eta*cosTheta1 - math.Sqrt(d))).Normalize()
	origin := p.Add(t.Scale(lighting.SelfIntersectEps))
	return Trace(origin, t, depth+1, scene)
}

// fresnel computes the full (non-Schlick) dielectric reflectance for an
// incident direction dir against normal n with the surface's index of
// refraction ior.
func fresnel(dir, n *prim.Vec3, ior float64) float64 {
	cosThetaI := dir.Dot(n)
	eta1, eta2 := ior, 1.0
	if cosThetaI > 0 {
		eta1, eta2 = 1.0, ior
	}

	sinThetaT := (eta2 / eta1) * math.Sqrt(math.Max(0, 1-cosThetaI*cosThetaI))
	if sinThetaT >= 1 {
		return 1
	}
	cosThetaT := math.Sqrt(math.Max(0, 1-sinThetaT*sinThetaT))
	absCosThetaI := math.Abs(cosThetaI)

	rs := (eta1*absCosThetaI - eta2*cosThetaT) / (eta1*absCosThetaI + eta2*cosThetaT)
	rp := (eta2*absCosThetaI - eta1*cosThetaT) / (eta2*absCosThetaI + eta1*cosThetaT)
	return (rs*rs + rp*rp) / 2
}

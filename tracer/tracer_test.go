package tracer

import (
	"math"
	"testing"

	"github.com/stenberg/whittedrt/geometry"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/material"
)

func TestTraceEmptySceneReturnsBlack(t *testing.T) {
	scene := &Scene{MaxDepth: 5}
	got := Trace(&prim.Vec3{X: 0, Y: 0, Z: 0}, &prim.Vec3{X: 0, Y: 0, Z: -1}, 1, scene)
	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("color = %v, want black", got)
	}
}

func TestTraceDepthCapReturnsBlack(t *testing.T) {
	mat := material.New(prim.Vec3{X: 1}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, 0, 1, false, false)
	scene := &Scene{
		Objects:  []Object{{Fn: geometry.Sphere, Mat: mat}},
		MaxDepth: 1,
	}
	got := Trace(&prim.Vec3{X: 0, Y: 0, Z: -2}, &prim.Vec3{X: 0, Y: 0, Z: 1}, 1, scene)
	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("color = %v, want black at depth cap", got)
	}
}

func TestTraceHitsSphereAndReturnsAmbientColor(t *testing.T) {
	mat := material.New(prim.Vec3{X: 0.3, Y: 0.4, Z: 0.5}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, 0, 1, false, false)
	scene := &Scene{
		Objects:  []Object{{Fn: geometry.Sphere, Mat: mat}},
		Coeffs:   material.Coefficients{Ka: 1},
		MaxDepth: 4,
	}
	got := Trace(&prim.Vec3{X: 0, Y: 0, Z: -2}, &prim.Vec3{X: 0, Y: 0, Z: 1}, 1, scene)
	if got.X != 0.3 || got.Y != 0.4 || got.Z != 0.5 {
		t.Errorf("color = %v, want (0.3, 0.4, 0.5)", got)
	}
}

func TestFresnelComplementsToOne(t *testing.T) {
	dir := (&prim.Vec3{X: 0.3, Y: -0.4, Z: 1}).Normalize()
	n := &prim.Vec3{X: 0, Y: 0, Z: -1}
	r := fresnel(dir, n, 1.5)
	if r < 0 || r > 1 {
		t.Errorf("fresnel = %v, want value in [0, 1]", r)
	}
	// Complementary by construction: reflectance + transmittance == 1.
	if math.Abs((r + (1 - r)) - 1) > 1e-12 {
		t.Errorf("fresnel complement mismatch")
	}
}

func TestFresnelTotalInternalReflectionAtGrazingExit(t *testing.T) {
	// A ray exiting a dense medium at a shallow angle to the surface
	// (grazing incidence) must reach total internal reflection.
	dir := (&prim.Vec3{X: 1, Y: 0, Z: 0.001}).Normalize()
	n := &prim.Vec3{X: 0, Y: 0, Z: 1}
	r := fresnel(dir, n, 1.5)
	if r != 1 {
		t.Errorf("fresnel = %v, want 1 (TIR)", r)
	}
}

func TestReflectRayAngleOfIncidenceEqualsAngleOfReflection(t *testing.T) {
	n := (&prim.Vec3{X: 0, Y: 1, Z: 0}).Normalize()
	dir := (&prim.Vec3{X: 1, Y: -1, Z: 0}).Normalize()
	r := reflectRay(dir, n)

	if math.Abs(r.Length()-1) > 1e-9 {
		t.Errorf("reflected ray not unit length: %v", r.Length())
	}
	incidentAngle := math.Acos(dir.Neg().Dot(n))
	reflectedAngle := math.Acos(r.Dot(n))
	if math.Abs(incidentAngle-reflectedAngle) > 1e-9 {
		t.Errorf("angle mismatch: incident=%v reflected=%v", incidentAngle, reflectedAngle)
	}
}

func TestTraceMirrorReflectsRedSphere(t *testing.T) {
	mirror := material.New(prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{X: 1, Y: 1, Z: 1}, prim.Vec3{}, 0, 1, true, false)
	red := material.New(prim.Vec3{X: 1}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, prim.Vec3{}, 0, 1, false, false)

	offset := prim.Translate4(&prim.Vec3{X: -5, Y: 0, Z: 0})
	redSphere := geometry.Transform(&offset, geometry.Sphere)

	scene := &Scene{
		Objects: []Object{
			{Fn: geometry.Sphere, Mat: mirror},
			{Fn: redSphere, Mat: red},
		},
		Coeffs:   material.Coefficients{Ka: 1, Ks: 1},
		MaxDepth: 4,
	}

	// A ray shot head-on through the mirror sphere's center reflects
	// straight back the way it came, onto the red sphere placed further
	// along the same axis.
	got := Trace(&prim.Vec3{X: -3, Y: 0, Z: 0}, &prim.Vec3{X: 1, Y: 0, Z: 0}, 1, scene)
	if !(got.X > got.Y && got.X > got.Z) {
		t.Errorf("color = %v, want a red-dominant reflection", got)
	}
}

package scene

import (
	"github.com/stenberg/whittedrt/camera"
	"github.com/stenberg/whittedrt/geometry"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/lighting"
	"github.com/stenberg/whittedrt/material"
	"github.com/stenberg/whittedrt/tracer"
)

// CannedTestScene builds a small fixed scene directly from geometry and
// lighting values, without going through sceneio/XML: a red diffuse
// sphere, a dim reflective sphere behind it, and a single point light,
// viewed head-on down -Z.
func CannedTestScene() (*tracer.Scene, camera.Camera) {
	redTranslate := prim.Translate4(&prim.Vec3{X: 0, Y: 0, Z: -5})
	red := geometry.Transform(&redTranslate, geometry.Sphere)
	redMat := material.New(
		prim.Vec3{X: 0.1, Y: 0.02, Z: 0.02},
		prim.Vec3{X: 0.8, Y: 0.2, Z: 0.2},
		prim.Vec3{X: 1, Y: 1, Z: 1},
		prim.Vec3{}, prim.Vec3{},
		64, 1, true, true,
	)

	mirrorTranslate := prim.Translate4(&prim.Vec3{X: 1.5, Y: 0, Z: -7})
	mirror := geometry.Transform(&mirrorTranslate, geometry.Sphere)
	mirrorMat := material.New(
		prim.Vec3{X: 0.02, Y: 0.02, Z: 0.02},
		prim.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
		prim.Vec3{X: 1, Y: 1, Z: 1},
		prim.Vec3{X: 0.7, Y: 0.7, Z: 0.7}, prim.Vec3{},
		128, 1, true, true,
	)

	light := lighting.Point(
		&prim.Vec3{X: 5, Y: 5, Z: 0},
		&prim.Vec3{X: 1, Y: 1, Z: 1},
		lighting.AttenuationCoeffs{1, 0, 0},
	)

	s := &tracer.Scene{
		Objects:      []tracer.Object{{Fn: red, Mat: redMat}, {Fn: mirror, Mat: mirrorMat}},
		Obstructions: []geometry.Fn{red, mirror},
		Lights:       []lighting.Light{light},
		Coeffs:       material.Coefficients{Ka: 1, Kd: 1, Ks: 1, Kt: 1},
		MaxDepth:     defaultMaxDepth,
	}

	cam := camera.Camera{
		Position:    prim.Vec3{X: 0, Y: 0, Z: 0},
		Look:        prim.Vec3{X: 0, Y: 0, Z: -1},
		Up:          prim.Vec3{X: 0, Y: 1, Z: 0},
		HeightAngle: 0.7,
		FocalLength: 1,
	}
	return s, cam
}

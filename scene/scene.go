// Package scene flattens a parsed scene tree into the flat object,
// obstruction, and light lists the tracer engine consumes, accumulating
// each node's cumulative transformation matrix via a depth-first walk.
package scene

import (
	"fmt"

	"github.com/stenberg/whittedrt/camera"
	"github.com/stenberg/whittedrt/geometry"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/lighting"
	"github.com/stenberg/whittedrt/material"
	"github.com/stenberg/whittedrt/sceneio"
	"github.com/stenberg/whittedrt/tracer"
)

// Features mirrors the Feature/* config toggles. Texture, Acceleration,
// and DepthOfField are accepted but have no effect on the render;
// Parallel only changes how tracer.RenderFrame schedules pixel work.
type Features struct {
	Shadows      bool
	Reflect      bool
	Refract      bool
	Texture      bool
	Parallel     bool
	SuperSample  bool
	Acceleration bool
	DepthOfField bool
}

// standardPrimitive maps a sceneio.PrimitiveKind to its object-space
// implicit function.
func standardPrimitive(kind sceneio.PrimitiveKind) (geometry.Fn, error) {
	switch kind {
	case sceneio.PrimitiveSphere:
		return geometry.Sphere, nil
	case sceneio.PrimitiveCube:
		return geometry.Cube, nil
	case sceneio.PrimitiveCylinder:
		return geometry.Cylinder, nil
	case sceneio.PrimitiveCone:
		return geometry.Cone, nil
	default:
		return nil, fmt.Errorf("scene: unknown primitive kind %v", kind)
	}
}

func localMatrix(t sceneio.Transform) (prim.Mat4, error) {
	switch t.Kind {
	case sceneio.TransformTranslate:
		return prim.Translate4(&t.Translate), nil
	case sceneio.TransformScale:
		return prim.Scale4(&t.Scale), nil
	case sceneio.TransformRotate:
		return prim.Rotate4(&t.RotateAxis, t.RotateAngle), nil
	case sceneio.TransformMatrix:
		return t.Matrix, nil
	default:
		return prim.Mat4{}, fmt.Errorf("scene: unknown transform kind %v", t.Kind)
	}
}

// Build flattens a parsed scene file into a tracer.Scene and its camera,
// applying ctm = parentCTM * local transforms in source order at every
// node and materializing each leaf primitive as transform(ctm, standard).
func Build(sf *sceneio.Scenefile, features Features) (*tracer.Scene, camera.Camera, error) {
	s := &tracer.Scene{
		Coeffs: material.Coefficients{
			Ka: sf.Global.Ka, Kd: sf.Global.Kd, Ks: sf.Global.Ks, Kt: sf.Global.Kt,
		},
		MaxDepth: defaultMaxDepth,
	}

	identity := prim.Identity4()
	if err := flatten(sf.Root, &identity, features, s); err != nil {
		return nil, camera.Camera{}, err
	}

	if !features.Shadows {
		s.Obstructions = nil
	}

	for _, l := range sf.Lights {
		light, err := buildLight(l)
		if err != nil {
			return nil, camera.Camera{}, err
		}
		s.Lights = append(s.Lights, light)
	}

	cam := camera.Camera{
		Position:    sf.Camera.Pos,
		Look:        *sf.Camera.Look.Normalize(),
		Up:          *sf.Camera.Up.Normalize(),
		HeightAngle: sf.Camera.HeightAngle,
		FocalLength: focalLengthOrDefault(sf.Camera.FocalLength),
	}

	return s, cam, nil
}

const defaultMaxDepth = 5

func focalLengthOrDefault(f float64) float64 {
	if f == 0 {
		return 1
	}
	return f
}

func flatten(n sceneio.Node, parentCTM *prim.Mat4, features Features, s *tracer.Scene) error {
	ctm := *parentCTM
	for _, t := range n.Transforms {
		m, err := localMatrix(t)
		if err != nil {
			return err
		}
		ctm = ctm.Mul(&m)
	}

	if n.IsPrimitive {
		standard, err := standardPrimitive(n.Primitive)
		if err != nil {
			return err
		}
		fn := geometry.Transform(&ctm, standard)
		mat := material.New(
			n.Material.Ambient, n.Material.Diffuse, n.Material.Specular,
			n.Material.Reflective, n.Material.Transparent,
			n.Material.Shininess, n.Material.IOR,
			features.Reflect, features.Refract,
		)
		s.Objects = append(s.Objects, tracer.Object{Fn: fn, Mat: mat})
		s.Obstructions = append(s.Obstructions, fn)
		return nil
	}

	for _, child := range n.Children {
		if err := flatten(child, &ctm, features, s); err != nil {
			return err
		}
	}
	return nil
}

func buildLight(l sceneio.LightData) (lighting.Light, error) {
	switch l.Kind {
	case sceneio.LightPoint:
		return lighting.Point(&l.Position, &l.Color, lighting.AttenuationCoeffs(l.Attenuation)), nil
	case sceneio.LightDirectional:
		return lighting.Directional(&l.Direction, &l.Color), nil
	case sceneio.LightSpot:
		return lighting.Spot(&l.Position, &l.Direction, &l.Color, l.OuterAngle, l.Penumbra, lighting.AttenuationCoeffs(l.Attenuation)), nil
	default:
		return nil, fmt.Errorf("scene: unknown light kind %v", l.Kind)
	}
}

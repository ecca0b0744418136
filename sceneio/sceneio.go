// Package sceneio parses the XML scene-file format into a tree the
// scene package can flatten: globaldata, cameradata, lightdata and a
// recursive object tree whose nodes carry transforms and primitives. It performs no
// CTM accumulation and is deliberately thin; the interesting traversal
// logic lives in package scene.
package sceneio

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/stenberg/whittedrt/internal/prim"
)

// LightKind identifies which of the three supported light variants a
// LightData record describes.
type LightKind int

const (
	LightPoint LightKind = iota
	LightDirectional
	LightSpot
)

// PrimitiveKind identifies which of the four supported analytic
// primitives a leaf Node describes.
type PrimitiveKind int

const (
	PrimitiveSphere PrimitiveKind = iota
	PrimitiveCube
	PrimitiveCylinder
	PrimitiveCone
)

// TransformKind identifies which field of a Transform is populated.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformScale
	TransformRotate
	TransformMatrix
)

// GlobalData holds the process-wide shading coefficients.
type GlobalData struct {
	Ka, Kd, Ks, Kt float64
}

// CameraData holds the parsed camera pose, with heightAngle already
// converted from degrees to radians.
type CameraData struct {
	Pos, Look, Up prim.Vec3
	HeightAngle   float64
	FocalLength   float64
}

// LightData holds one <lightdata> record, with spot angles already
// converted from degrees to radians.
type LightData struct {
	Kind        LightKind
	Color       prim.Vec3
	Position    prim.Vec3
	Direction   prim.Vec3
	Attenuation [3]float64
	OuterAngle  float64
	Penumbra    float64
}

// Transform is one local affine transform in source order. RotateAngle
// is in radians.
type Transform struct {
	Kind        TransformKind
	Translate   prim.Vec3
	Scale       prim.Vec3
	RotateAxis  prim.Vec3
	RotateAngle float64
	Matrix      prim.Mat4
}

// MaterialData holds one primitive's unprocessed shading parameters, as
// read from the scene file.
type MaterialData struct {
	Ambient, Diffuse, Specular prim.Vec3
	Reflective, Transparent    prim.Vec3
	Shininess, IOR             float64
}

// Node is one element of the scene tree: either an internal node that
// only contributes transforms, or a leaf that also names a primitive and
// its material. Transforms apply left-to-right before any children (or
// the node's own primitive) are visited.
type Node struct {
	IsPrimitive bool
	Primitive   PrimitiveKind
	Material    MaterialData
	Transforms  []Transform
	Children    []Node
}

// Scenefile is the fully parsed, un-flattened scene description.
type Scenefile struct {
	Global GlobalData
	Camera CameraData
	Lights []LightData
	Root   Node
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

type xmlVec3Attr struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
}

func (v xmlVec3Attr) vec3() prim.Vec3 { return prim.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

type xmlColorAttr struct {
	R float64 `xml:"r,attr"`
	G float64 `xml:"g,attr"`
	B float64 `xml:"b,attr"`
}

func (c xmlColorAttr) vec3() prim.Vec3 { return prim.Vec3{X: c.R, Y: c.G, Z: c.B} }

type xmlScalarAttr struct {
	V float64 `xml:"v,attr"`
}

type xmlRotateAttr struct {
	X     float64 `xml:"x,attr"`
	Y     float64 `xml:"y,attr"`
	Z     float64 `xml:"z,attr"`
	Angle float64 `xml:"angle,attr"`
}

type xmlGlobalData struct {
	Ka float64 `xml:"ka,attr"`
	Kd float64 `xml:"kd,attr"`
	Ks float64 `xml:"ks,attr"`
	Kt float64 `xml:"kt,attr"`
}

type xmlCameraData struct {
	Pos         xmlVec3Attr   `xml:"pos"`
	Look        xmlVec3Attr   `xml:"look"`
	Up          xmlVec3Attr   `xml:"up"`
	HeightAngle xmlScalarAttr `xml:"heightangle"`
	FocalLength xmlScalarAttr `xml:"focallength"`
}

type xmlLightData struct {
	Type        string       `xml:"type,attr"`
	Color       xmlColorAttr `xml:"color"`
	Position    xmlVec3Attr  `xml:"position"`
	Direction   xmlVec3Attr  `xml:"direction"`
	Attenuation struct {
		V1 float64 `xml:"v1,attr"`
		V2 float64 `xml:"v2,attr"`
		V3 float64 `xml:"v3,attr"`
	} `xml:"attenuationcoeff"`
	Angle    xmlScalarAttr `xml:"angle"`
	Penumbra xmlScalarAttr `xml:"penumbra"`
}

type xmlNode struct {
	Type        string          `xml:"type,attr"`
	PrimType    string          `xml:"primtype,attr"`
	Translate   []xmlVec3Attr   `xml:"translate"`
	Scale       []xmlVec3Attr   `xml:"scale"`
	Rotate      []xmlRotateAttr `xml:"rotate"`
	Matrix      []string        `xml:"matrix"`
	Ambient     *xmlColorAttr   `xml:"ambient"`
	Diffuse     *xmlColorAttr   `xml:"diffuse"`
	Specular    *xmlColorAttr   `xml:"specular"`
	Reflective  *xmlColorAttr   `xml:"reflective"`
	Transparent *xmlColorAttr   `xml:"transparent"`
	Shininess   *xmlScalarAttr  `xml:"shininess"`
	IOR         *xmlScalarAttr  `xml:"ior"`
	Children    []xmlNode       `xml:"object"`
}

type xmlDocument struct {
	XMLName xml.Name       `xml:"scenefile"`
	Global  xmlGlobalData  `xml:"globaldata"`
	Camera  xmlCameraData  `xml:"cameradata"`
	Lights  []xmlLightData `xml:"lightdata"`
	Root    xmlNode        `xml:"object"`
}

// Parse decodes a scene file from r. Unknown primitive, light, or
// object type attributes are reported as errors: the caller should
// treat this as fatal and not attempt a render. Unrecognised child
// elements of an object (including any transform element other than
// translate, rotate, scale and matrix) are ignored, not reported.
func Parse(r io.Reader) (*Scenefile, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sceneio: malformed scene file: %w", err)
	}

	lights := make([]LightData, 0, len(doc.Lights))
	for i, l := range doc.Lights {
		ld, err := convertLight(l)
		if err != nil {
			return nil, fmt.Errorf("sceneio: lightdata[%d]: %w", i, err)
		}
		lights = append(lights, ld)
	}

	root, err := convertNode(doc.Root)
	if err != nil {
		return nil, fmt.Errorf("sceneio: %w", err)
	}

	return &Scenefile{
		Global: GlobalData{Ka: doc.Global.Ka, Kd: doc.Global.Kd, Ks: doc.Global.Ks, Kt: doc.Global.Kt},
		Camera: CameraData{
			Pos:         doc.Camera.Pos.vec3(),
			Look:        doc.Camera.Look.vec3(),
			Up:          doc.Camera.Up.vec3(),
			HeightAngle: degToRad(doc.Camera.HeightAngle.V),
			FocalLength: doc.Camera.FocalLength.V,
		},
		Lights: lights,
		Root:   *root,
	}, nil
}

func convertLight(l xmlLightData) (LightData, error) {
	var kind LightKind
	switch l.Type {
	case "point":
		kind = LightPoint
	case "directional":
		kind = LightDirectional
	case "spot":
		kind = LightSpot
	default:
		return LightData{}, fmt.Errorf("unknown light type %q", l.Type)
	}
	return LightData{
		Kind:        kind,
		Color:       l.Color.vec3(),
		Position:    l.Position.vec3(),
		Direction:   l.Direction.vec3(),
		Attenuation: [3]float64{l.Attenuation.V1, l.Attenuation.V2, l.Attenuation.V3},
		OuterAngle:  degToRad(l.Angle.V),
		Penumbra:    degToRad(l.Penumbra.V),
	}, nil
}

func convertNode(n xmlNode) (*Node, error) {
	out := &Node{}

	for _, t := range n.Translate {
		out.Transforms = append(out.Transforms, Transform{Kind: TransformTranslate, Translate: t.vec3()})
	}
	for _, r := range n.Rotate {
		out.Transforms = append(out.Transforms, Transform{
			Kind:        TransformRotate,
			RotateAxis:  prim.Vec3{X: r.X, Y: r.Y, Z: r.Z},
			RotateAngle: degToRad(r.Angle),
		})
	}
	for _, s := range n.Scale {
		out.Transforms = append(out.Transforms, Transform{Kind: TransformScale, Scale: s.vec3()})
	}
	for _, m := range n.Matrix {
		mat, err := parseMatrix(m)
		if err != nil {
			return nil, err
		}
		out.Transforms = append(out.Transforms, Transform{Kind: TransformMatrix, Matrix: mat})
	}

	switch n.Type {
	case "primitive":
		out.IsPrimitive = true
		kind, err := parsePrimitiveType(n.PrimType)
		if err != nil {
			return nil, err
		}
		out.Primitive = kind
		out.Material = MaterialData{
			Ambient:     colorOrZero(n.Ambient),
			Diffuse:     colorOrZero(n.Diffuse),
			Specular:    colorOrZero(n.Specular),
			Reflective:  colorOrZero(n.Reflective),
			Transparent: colorOrZero(n.Transparent),
			Shininess:   scalarOrZero(n.Shininess),
			IOR:         scalarOrOne(n.IOR),
		}
	case "tree", "master", "":
		for _, c := range n.Children {
			child, err := convertNode(c)
			if err != nil {
				return nil, err
			}
			out.Children = append(out.Children, *child)
		}
	default:
		return nil, fmt.Errorf("unknown object type %q", n.Type)
	}

	return out, nil
}

func parsePrimitiveType(s string) (PrimitiveKind, error) {
	switch s {
	case "sphere":
		return PrimitiveSphere, nil
	case "cube":
		return PrimitiveCube, nil
	case "cylinder":
		return PrimitiveCylinder, nil
	case "cone":
		return PrimitiveCone, nil
	default:
		return 0, fmt.Errorf("unknown primitive type %q", s)
	}
}

func colorOrZero(c *xmlColorAttr) prim.Vec3 {
	if c == nil {
		return prim.Vec3{}
	}
	return c.vec3()
}

func scalarOrZero(s *xmlScalarAttr) float64 {
	if s == nil {
		return 0
	}
	return s.V
}

func scalarOrOne(s *xmlScalarAttr) float64 {
	if s == nil {
		return 1
	}
	return s.V
}

// parseMatrix parses a whitespace-separated, row-major 4x4 matrix.
func parseMatrix(s string) (prim.Mat4, error) {
	fields := strings.Fields(s)
	if len(fields) != 16 {
		return prim.Mat4{}, fmt.Errorf("matrix must have 16 values, got %d", len(fields))
	}
	var values [16]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return prim.Mat4{}, fmt.Errorf("matrix value %q: %w", f, err)
		}
		values[i] = v
	}
	return prim.FromRowMajor16(values), nil
}

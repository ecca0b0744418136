package sceneio

import (
	"math"
	"strings"
	"testing"
)

const sampleScene = `
<scenefile>
  <globaldata ka="1" kd="1" ks="1" kt="1"/>
  <cameradata>
    <pos x="0" y="0" z="5"/>
    <look x="0" y="0" z="-1"/>
    <up x="0" y="1" z="0"/>
    <heightangle v="90"/>
  </cameradata>
  <lightdata type="directional">
    <color r="1" g="1" b="1"/>
    <direction x="0" y="-1" z="0"/>
  </lightdata>
  <object type="tree" name="root">
    <translate x="1" y="0" z="0"/>
    <object type="primitive" primtype="sphere">
      <diffuse r="1" g="0" b="0"/>
      <ior v="1.5"/>
    </object>
  </object>
</scenefile>
`

func TestParseBasicScene(t *testing.T) {
	sf, err := Parse(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sf.Global.Ka != 1 || sf.Global.Kd != 1 {
		t.Errorf("global data mismatch: %+v", sf.Global)
	}
	wantHeightAngle := math.Pi / 2
	if math.Abs(sf.Camera.HeightAngle-wantHeightAngle) > 1e-9 {
		t.Errorf("heightAngle = %v, want %v radians", sf.Camera.HeightAngle, wantHeightAngle)
	}
	if len(sf.Lights) != 1 || sf.Lights[0].Kind != LightDirectional {
		t.Fatalf("lights = %+v, want one directional light", sf.Lights)
	}
	if len(sf.Root.Transforms) != 1 || sf.Root.Transforms[0].Kind != TransformTranslate {
		t.Fatalf("root transforms = %+v", sf.Root.Transforms)
	}
	if len(sf.Root.Children) != 1 || !sf.Root.Children[0].IsPrimitive {
		t.Fatalf("root children = %+v", sf.Root.Children)
	}
	sphere := sf.Root.Children[0]
	if sphere.Primitive != PrimitiveSphere {
		t.Errorf("primitive = %v, want PrimitiveSphere", sphere.Primitive)
	}
	if sphere.Material.IOR != 1.5 {
		t.Errorf("ior = %v, want 1.5", sphere.Material.IOR)
	}
}

func TestParseUnknownPrimitiveTypeIsAnError(t *testing.T) {
	const bad = `
<scenefile>
  <globaldata ka="1" kd="1" ks="1" kt="1"/>
  <cameradata><pos x="0" y="0" z="0"/><look x="0" y="0" z="-1"/><up x="0" y="1" z="0"/><heightangle v="45"/></cameradata>
  <object type="tree">
    <object type="primitive" primtype="torus"/>
  </object>
</scenefile>
`
	_, err := Parse(strings.NewReader(bad))
	if err == nil {
		t.Fatal("Parse: expected an error for an unknown primitive type")
	}
}

func TestParseMissingMaterialFieldsUseDefaults(t *testing.T) {
	const minimal = `
<scenefile>
  <globaldata ka="1" kd="1" ks="1" kt="1"/>
  <cameradata><pos x="0" y="0" z="0"/><look x="0" y="0" z="-1"/><up x="0" y="1" z="0"/><heightangle v="45"/></cameradata>
  <object type="tree">
    <object type="primitive" primtype="cube"/>
  </object>
</scenefile>
`
	sf, err := Parse(strings.NewReader(minimal))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	mat := sf.Root.Children[0].Material
	if mat.Ambient.X != 0 || mat.IOR != 1 {
		t.Errorf("defaults = %+v, want zero ambient and ior=1", mat)
	}
}

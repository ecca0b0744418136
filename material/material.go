// Package material defines the surface shading parameters shared by the
// illumination model and the recursive tracer.
package material

import "github.com/stenberg/whittedrt/internal/prim"

// Coefficients are the process-wide ambient/diffuse/specular/transmission
// scalars applied uniformly across every material in a render. They are
// set once before rendering and read-only for its duration.
type Coefficients struct {
	Ka, Kd, Ks, Kt float64
}

// Material describes one surface's shading response. IsReflective and
// IsTransparent are derived at construction time from the global toggles
// and the L1 norm of Reflective/Transparent, not recomputed per hit.
type Material struct {
	Ambient, Diffuse, Specular prim.Vec3
	Reflective, Transparent    prim.Vec3
	Shininess                  float64
	IOR                        float64
	IsReflective               bool
	IsTransparent              bool
}

// New derives IsReflective/IsTransparent from the global reflect/refract
// toggles and the magnitude of the corresponding coefficient vectors.
func New(ambient, diffuse, specular, reflective, transparent prim.Vec3, shininess, ior float64, reflectEnabled, refractEnabled bool) Material {
	return Material{
		Ambient:       ambient,
		Diffuse:       diffuse,
		Specular:      specular,
		Reflective:    reflective,
		Transparent:   transparent,
		Shininess:     shininess,
		IOR:           ior,
		IsReflective:  reflectEnabled && l1(reflective) > 1e-16,
		IsTransparent: refractEnabled && l1(transparent) > 1e-16,
	}
}

func l1(v prim.Vec3) float64 {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

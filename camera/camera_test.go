package camera

import (
	"math"
	"testing"

	"github.com/stenberg/whittedrt/internal/prim"
)

func TestCenterPixelRayMatchesLookDirection(t *testing.T) {
	cam := Camera{
		Position:    prim.Vec3{X: 0, Y: 0, Z: 0},
		Look:        prim.Vec3{X: 0, Y: 0, Z: -1},
		Up:          prim.Vec3{X: 0, Y: 1, Z: 0},
		HeightAngle: math.Pi / 2,
		FocalLength: 1,
	}
	width, height := 101, 101
	proj := NewProjector(width, height, cam)

	_, dir := Ray(cam, proj, width, height, width/2, height/2)
	want := &prim.Vec3{X: 0, Y: 0, Z: -1}
	const tol = 1e-2
	if math.Abs(dir.X-want.X) > tol || math.Abs(dir.Y-want.Y) > tol || math.Abs(dir.Z-want.Z) > tol {
		t.Errorf("center ray direction = %v, want approximately %v", dir, want)
	}
}

func TestRayDirectionIsUnitLength(t *testing.T) {
	cam := Camera{
		Position:    prim.Vec3{X: 1, Y: 2, Z: 3},
		Look:        *(&prim.Vec3{X: 0.2, Y: -0.5, Z: -1}).Normalize(),
		Up:          prim.Vec3{X: 0, Y: 1, Z: 0},
		HeightAngle: math.Pi / 3,
		FocalLength: 1,
	}
	width, height := 64, 48
	proj := NewProjector(width, height, cam)

	_, dir := Ray(cam, proj, width, height, 5, 10)
	if math.Abs(dir.Length()-1) > 1e-9 {
		t.Errorf("ray direction length = %v, want 1", dir.Length())
	}
}

func TestWidePixelsSpanMoreHorizontalAngleThanTall(t *testing.T) {
	cam := Camera{
		Position:    prim.Vec3{X: 0, Y: 0, Z: 0},
		Look:        prim.Vec3{X: 0, Y: 0, Z: -1},
		Up:          prim.Vec3{X: 0, Y: 1, Z: 0},
		HeightAngle: math.Pi / 2,
		FocalLength: 1,
	}
	wide := NewProjector(200, 100, cam)
	_, dirLeft := Ray(cam, wide, 200, 100, 0, 50)
	_, dirRight := Ray(cam, wide, 200, 100, 199, 50)
	horizontalSpan := math.Acos(dirLeft.Dot(dirRight))

	square := NewProjector(100, 100, cam)
	_, dirTop := Ray(cam, square, 100, 100, 50, 0)
	_, dirBottom := Ray(cam, square, 100, 100, 50, 99)
	verticalSpanSquare := math.Acos(dirTop.Dot(dirBottom))

	if horizontalSpan <= verticalSpanSquare {
		t.Errorf("wide-canvas horizontal span %v should exceed square-canvas vertical span %v", horizontalSpan, verticalSpanSquare)
	}
}

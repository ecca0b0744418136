package frame

import "testing"

func TestReflectRemapStaysInBounds(t *testing.T) {
	const bound = 5
	for k := -20; k <= 20; k++ {
		got := ReflectRemap(k, bound)
		if got < 0 || got >= bound {
			t.Errorf("ReflectRemap(%d, %d) = %d, want value in [0, %d)", k, bound, got, bound)
		}
	}
}

func TestReflectRemapIdentityInBounds(t *testing.T) {
	const bound = 8
	for k := 0; k < bound; k++ {
		if got := ReflectRemap(k, bound); got != k {
			t.Errorf("ReflectRemap(%d, %d) = %d, want %d", k, bound, got, k)
		}
	}
}

func TestPlaneViewBorderedAccess(t *testing.T) {
	p := newPlane(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			p.Set(y, x, float64(y*3+x))
		}
	}
	p.Remap = ReflectRemap

	v := p.View(1, 1)
	if got, want := v.At(0, 0), p.At(1, 1); got != want {
		t.Errorf("center view mismatch: got %v, want %v", got, want)
	}
	// Off the top-left corner: must not panic, and must resolve to an
	// in-bounds pixel via the remap.
	corner := p.View(0, 0)
	_ = corner.At(-1, -1)
}

func TestDownsampleConstantImageStaysConstant(t *testing.T) {
	const c = 0.42
	src := New(8, 8, 3)
	for ch := 0; ch < 3; ch++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				src.Planes[ch].Set(y, x, c)
			}
		}
	}
	out := Downsample(src.Finalize())
	if out.Height != 4 || out.Width != 4 {
		t.Fatalf("Downsample size = %dx%d, want 4x4", out.Height, out.Width)
	}
	for ch := 0; ch < 3; ch++ {
		for y := 0; y < out.Height; y++ {
			for x := 0; x < out.Width; x++ {
				if got := out.At(ch, y, x); abs64(got-c) > 1e-12 {
					t.Errorf("out[%d][%d][%d] = %v, want %v", ch, y, x, got, c)
				}
			}
		}
	}
}

func TestDownsampleNHalvesDimensionsEachPass(t *testing.T) {
	src := New(16, 32, 1)
	out := DownsampleN(src.Finalize(), 2)
	if out.Height != 4 || out.Width != 8 {
		t.Fatalf("DownsampleN(2) size = %dx%d, want 4x8", out.Height, out.Width)
	}
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

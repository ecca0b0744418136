package frame

// horizontalBlur applies the separable [1, 2, 1] / 4 kernel along x.
func horizontalBlur(v View) float64 {
	return 0.25*v.At(0, -1) + 0.5*v.At(0, 0) + 0.25*v.At(0, 1)
}

// verticalBlur applies the separable [1, 2, 1] / 4 kernel along y.
func verticalBlur(v View) float64 {
	return 0.25*v.At(-1, 0) + 0.5*v.At(0, 0) + 0.25*v.At(1, 0)
}

// blur runs the horizontal pass then the vertical pass over src, each
// reading through src's reflect-at-border views, producing a same-size
// finalized frame.
func blur(src *ReadFrame) *ReadFrame {
	horizontal := New(src.Height, src.Width, src.PlaneCount)
	for c := 0; c < src.PlaneCount; c++ {
		for y := 0; y < src.Height; y++ {
			for x := 0; x < src.Width; x++ {
				horizontal.Planes[c].Set(y, x, horizontalBlur(src.View(c, y, x)))
			}
		}
	}
	horizontalRead := horizontal.Finalize()

	vertical := New(src.Height, src.Width, src.PlaneCount)
	for c := 0; c < src.PlaneCount; c++ {
		for y := 0; y < src.Height; y++ {
			for x := 0; x < src.Width; x++ {
				vertical.Planes[c].Set(y, x, verticalBlur(horizontalRead.View(c, y, x)))
			}
		}
	}
	return vertical.Finalize()
}

// Downsample halves both dimensions of src (integer division) via a
// separable [1,2,1]/4 blur followed by 2x2 box averaging.
func Downsample(src *ReadFrame) *ReadFrame {
	blurred := blur(src)
	outHeight, outWidth := src.Height/2, src.Width/2
	out := New(outHeight, outWidth, src.PlaneCount)
	for c := 0; c < src.PlaneCount; c++ {
		for y := 0; y < outHeight; y++ {
			for x := 0; x < outWidth; x++ {
				sum := blurred.At(c, 2*y, 2*x) + blurred.At(c, 2*y+1, 2*x) +
					blurred.At(c, 2*y, 2*x+1) + blurred.At(c, 2*y+1, 2*x+1)
				out.Planes[c].Set(y, x, sum/4)
			}
		}
	}
	return out.Finalize()
}

// DownsampleN applies Downsample n times, replacing the frame with the
// smaller result at each pass.
func DownsampleN(src *ReadFrame, n int) *ReadFrame {
	for range n {
		src = Downsample(src)
	}
	return src
}

// Package frame implements a planar floating-point image buffer with
// bordered read-views, used as the tracer's intermediate (possibly
// supersampled) render target.
package frame

// RemapFunc maps an out-of-bounds coordinate k (k < 0 or k >= bound) back
// into [0, bound).
type RemapFunc func(k, bound int) int

// ReflectRemap reflects an out-of-bounds coordinate at the border. This is
// the convention used throughout the frame/downsample pipeline so that
// convolution never special-cases image edges.
func ReflectRemap(k, bound int) int {
	if bound <= 1 {
		return 0
	}
	for k < 0 || k >= bound {
		k = abs(k)
		k -= bound - 1
		k = -abs(k)
		k += bound - 1
	}
	return k
}

// ReplicateRemap clamps an out-of-bounds coordinate to the nearest edge.
func ReplicateRemap(k, bound int) int {
	if k < 0 {
		return 0
	}
	if k >= bound {
		return bound - 1
	}
	return k
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Plane is a single-channel row-major pixel buffer.
type Plane struct {
	Height, Width int
	Data          []float64
	// Remap resolves out-of-bounds (y, x) accesses. Only consulted by At;
	// Set always requires an in-bounds index.
	Remap RemapFunc
}

func newPlane(height, width int) *Plane {
	return &Plane{
		Height: height,
		Width:  width,
		Data:   make([]float64, height*width),
	}
}

// At returns the pixel at (y, x), applying Remap if it falls outside the
// plane and Remap is set; otherwise out-of-bounds access panics.
func (p *Plane) At(y, x int) float64 {
	if y < 0 || y >= p.Height || x < 0 || x >= p.Width {
		if p.Remap == nil {
			panic("frame: out-of-bounds access on a plane with no remapping function")
		}
		y = p.Remap(y, p.Height)
		x = p.Remap(x, p.Width)
	}
	return p.Data[y*p.Width+x]
}

// Set writes the pixel at (y, x). The index must be in bounds.
func (p *Plane) Set(y, x int, v float64) {
	p.Data[y*p.Width+x] = v
}

// View returns a bordered read-view centered at (y, x).
func (p *Plane) View(y, x int) View {
	return View{plane: p, yOffset: y, xOffset: x}
}

// View is an offset read-only window onto a Plane: View.At(dy, dx) reads
// relative to the view's origin, remapping at the plane's border. It
// stands in for the indexing-operator-overload convenience a border-aware
// accessor would use in a language with operator overloading.
type View struct {
	plane            *Plane
	yOffset, xOffset int
}

// At reads the pixel at (dy, dx) relative to the view's origin.
func (v View) At(dy, dx int) float64 {
	return v.plane.At(v.yOffset+dy, v.xOffset+dx)
}

// Shift returns a new view whose origin is offset by (dy, dx) from this
// one, so a kernel can address a neighborhood around a re-offset center
// (e.g. the vertical pass of a separable blur re-centering on the
// horizontal pass's output).
func (v View) Shift(dy, dx int) View {
	return View{plane: v.plane, yOffset: v.yOffset + dy, xOffset: v.xOffset + dx}
}

// Frame is a multi-plane floating-point image, written directly during
// rendering; pixel writes are always in range, so no border remapping
// applies.
type Frame struct {
	PlaneCount    int
	Height, Width int
	Planes        []*Plane
}

// New allocates a zeroed Frame with the given geometry.
func New(height, width, planeCount int) *Frame {
	f := &Frame{PlaneCount: planeCount, Height: height, Width: width}
	f.Planes = make([]*Plane, planeCount)
	for i := range f.Planes {
		f.Planes[i] = newPlane(height, width)
	}
	return f
}

// Finalize transfers this frame's storage into a read-only ReadFrame with
// reflect-at-border views, and empties the source frame's planes. This
// models the original engine's single ownership-transferring conversion
// from a writable canvas to a bordered read source for the next filter
// pass (original_source/Frame.hxx's Frame::Finalize).
func (f *Frame) Finalize() *ReadFrame {
	rf := &ReadFrame{PlaneCount: f.PlaneCount, Height: f.Height, Width: f.Width, Planes: f.Planes}
	for _, p := range rf.Planes {
		p.Remap = ReflectRemap
	}
	f.Planes = nil
	return rf
}

// ReadFrame is a finalized, bordered-read-view frame. It is the input to
// the downsample filter and the source read by the output quantizer.
type ReadFrame struct {
	PlaneCount    int
	Height, Width int
	Planes        []*Plane
}

// At reads plane c at (y, x), remapping at the border.
func (f *ReadFrame) At(c, y, x int) float64 {
	return f.Planes[c].At(y, x)
}

// View returns a bordered read-view of plane c centered at (y, x).
func (f *ReadFrame) View(c, y, x int) View {
	return f.Planes[c].View(y, x)
}

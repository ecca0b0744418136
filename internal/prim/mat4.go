package prim

import "math"

// Mat4 is a row-major 4x4 matrix: M[row][col]. Affine transforms keep
// row 3 equal to [0, 0, 0, 1].
type Mat4 struct {
	M [4][4]float64
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	var m Mat4
	for i := range 4 {
		m.M[i][i] = 1
	}
	return m
}

// Translate4 builds a translation matrix.
func Translate4(v *Vec3) Mat4 {
	m := Identity4()
	m.M[0][3] = v.X
	m.M[1][3] = v.Y
	m.M[2][3] = v.Z
	return m
}

// Scale4 builds a non-uniform scale matrix.
func Scale4(v *Vec3) Mat4 {
	m := Identity4()
	m.M[0][0] = v.X
	m.M[1][1] = v.Y
	m.M[2][2] = v.Z
	return m
}

// Rotate4 builds a rotation matrix around a (not necessarily unit) axis
// by angle radians, via Rodrigues' formula.
func Rotate4(axis *Vec3, angle float64) Mat4 {
	a := axis.Normalize()
	s, c := math.Sin(angle), math.Cos(angle)
	t := 1 - c
	m := Identity4()
	m.M[0][0] = t*a.X*a.X + c
	m.M[0][1] = t*a.X*a.Y - s*a.Z
	m.M[0][2] = t*a.X*a.Z + s*a.Y
	m.M[1][0] = t*a.X*a.Y + s*a.Z
	m.M[1][1] = t*a.Y*a.Y + c
	m.M[1][2] = t*a.Y*a.Z - s*a.X
	m.M[2][0] = t*a.X*a.Z - s*a.Y
	m.M[2][1] = t*a.Y*a.Z + s*a.X
	m.M[2][2] = t*a.Z*a.Z + c
	return m
}

// FromColumns4 builds a matrix from four homogeneous column vectors, the
// way the camera basis (u|v|w|0) is assembled.
func FromColumns4(c0, c1, c2, c3 Vec4) Mat4 {
	var m Mat4
	cols := [4]Vec4{c0, c1, c2, c3}
	for c, col := range cols {
		m.M[0][c] = col.X
		m.M[1][c] = col.Y
		m.M[2][c] = col.Z
		m.M[3][c] = col.W
	}
	return m
}

// FromRowMajor16 builds a matrix from 16 values in row-major order, as
// found in a scene file's raw <matrix> element.
func FromRowMajor16(v [16]float64) Mat4 {
	var m Mat4
	for r := range 4 {
		for c := range 4 {
			m.M[r][c] = v[r*4+c]
		}
	}
	return m
}

// Mul returns m * other.
func (m *Mat4) Mul(other *Mat4) Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			sum := 0.0
			for k := range 4 {
				sum += m.M[r][k] * other.M[k][c]
			}
			out.M[r][c] = sum
		}
	}
	return out
}

// MulVec4 applies m to a homogeneous vector.
func (m *Mat4) MulVec4(v *Vec4) Vec4 {
	in := [4]float64{v.X, v.Y, v.Z, v.W}
	var out [4]float64
	for r := range 4 {
		sum := 0.0
		for c := range 4 {
			sum += m.M[r][c] * in[c]
		}
		out[r] = sum
	}
	return Vec4{X: out[0], Y: out[1], Z: out[2], W: out[3]}
}

// MulPoint3 applies m to a point (W = 1), returning the 3D part.
func (m *Mat4) MulPoint3(v *Vec3) *Vec3 {
	h := Point4(v)
	out := m.MulVec4(&h)
	return out.Vec3()
}

// MulDir3 applies m to a direction (W = 0), returning the 3D part. Used
// both to transform ray directions and, composed with Inverse+Transpose,
// to transform surface normals.
func (m *Mat4) MulDir3(v *Vec3) *Vec3 {
	h := Dir4(v)
	out := m.MulVec4(&h)
	return out.Vec3()
}

// Transpose returns the transpose of m.
func (m *Mat4) Transpose() Mat4 {
	var out Mat4
	for r := range 4 {
		for c := range 4 {
			out.M[r][c] = m.M[c][r]
		}
	}
	return out
}

// Inverse returns the inverse of m via cofactor expansion. Panic-free: a
// singular matrix yields a zero matrix, which propagates as NaN/Inf
// through downstream math rather than crashing the render.
func (m *Mat4) Inverse() Mat4 {
	a := &m.M
	cofactor := func(r0, r1, r2, c0, c1, c2 int) float64 {
		return a[r0][c0]*(a[r1][c1]*a[r2][c2]-a[r1][c2]*a[r2][c1]) -
			a[r0][c1]*(a[r1][c0]*a[r2][c2]-a[r1][c2]*a[r2][c0]) +
			a[r0][c2]*(a[r1][c0]*a[r2][c1]-a[r1][c1]*a[r2][c0])
	}
	// Cofactor matrix for the 4x4 case, built via 3x3 minors.
	var cof [4][4]float64
	rows := [4][3]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}}
	cols := rows
	for i := range 4 {
		for j := range 4 {
			r := rows[i]
			c := cols[j]
			sign := 1.0
			if (i+j)%2 != 0 {
				sign = -1.0
			}
			cof[i][j] = sign * cofactor(r[0], r[1], r[2], c[0], c[1], c[2])
		}
	}
	det := a[0][0]*cof[0][0] + a[0][1]*cof[0][1] + a[0][2]*cof[0][2] + a[0][3]*cof[0][3]
	if math.Abs(det) <= math.SmallestNonzeroFloat64 {
		return Mat4{}
	}
	var out Mat4
	for i := range 4 {
		for j := range 4 {
			// Inverse = adjugate / det; adjugate is the transpose of the
			// cofactor matrix.
			out.M[i][j] = cof[j][i] / det
		}
	}
	return out
}

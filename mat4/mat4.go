// Package mat4 provides the 4x4 homogeneous transforms used by the viewer.
//
// Matrices are stored row-major and act on column vectors (v' = M * v).
// Products and inverses are delegated to gonum.
package mat4

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Vec4 is a homogeneous (x, y, z, w) vector.
type Vec4 [4]float64

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

// Neg negates the x, y and z components and keeps w.
func (v Vec4) Neg() Vec4 {
	return Vec4{-v[0], -v[1], -v[2], v[3]}
}

// Mat4 is a row-major 4x4 matrix.
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

// Translation returns a translation by the xyz part of v.
func Translation(v Vec4) Mat4 {
	return Translate(v[0], v[1], v[2])
}

// Scale returns an axis-aligned scale.
func Scale(sx, sy, sz float64) Mat4 {
	return Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, sz, 0,
		0, 0, 0, 1,
	}
}

// Ortho returns a symmetric orthographic projection mapping
// [-halfW, halfW] x [-halfH, halfH] x [near, far] onto the NDC cube.
// A zero half extent or near == far yields a singular matrix.
func Ortho(halfW, halfH, near, far float64) Mat4 {
	return Mat4{
		1 / halfW, 0, 0, 0,
		0, 1 / halfH, 0, 0,
		0, 0, -2 / (far - near), -(far + near) / (far - near),
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float64 {
	return m[r*4+c]
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	dst := mat.NewDense(4, 4, out[:])
	dst.Mul(m.dense(), o.dense())
	return out
}

// MulVec returns m * v.
func (m Mat4) MulVec(v Vec4) Vec4 {
	var out Vec4
	dst := mat.NewVecDense(4, out[:])
	dst.MulVec(m.dense(), mat.NewVecDense(4, v[:]))
	return out
}

// Inverse returns the inverse of m. Ill-conditioned matrices still yield
// gonum's best estimate; an exactly singular matrix yields all NaN.
func (m Mat4) Inverse() Mat4 {
	var out Mat4
	dst := mat.NewDense(4, 4, out[:])
	if err := dst.Inverse(m.dense()); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nanMat()
		}
	}
	return out
}

// ScaleXY returns the x and y diagonal terms.
func (m Mat4) ScaleXY() (float64, float64) {
	return m[0], m[5]
}

// TranslationXY returns the x and y translation terms.
func (m Mat4) TranslationXY() (float64, float64) {
	return m[3], m[7]
}

// EqualApprox reports whether every element of m and o differs by at most tol.
func (m Mat4) EqualApprox(o Mat4, tol float64) bool {
	for i := range m {
		if !scalar.EqualWithinAbs(m[i], o[i], tol) {
			return false
		}
	}
	return true
}

// dense wraps a copy of m; gonum keeps the backing slice.
func (m Mat4) dense() *mat.Dense {
	data := m
	return mat.NewDense(4, 4, data[:])
}

func nanMat() Mat4 {
	var m Mat4
	for i := range m {
		m[i] = math.NaN()
	}
	return m
}

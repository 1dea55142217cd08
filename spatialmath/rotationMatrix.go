package spatialmath

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/structmol/quatsym/utils"
)

// How far the columns of candidate matrix data may stray from unit length,
// pairwise orthogonality, and determinant +1 before construction is refused.
const orthonormalTol = 1e-8

// RotationMatrix is a 3x3 proper rotation matrix in row major order, where
// mat[3*r + c] is the element in the r'th row and c'th column.
type RotationMatrix struct {
	mat [9]float64
}

// NewRotationMatrix creates a RotationMatrix from nine row major values.
// Anything other than an orthonormal matrix with determinant +1 is refused
// with an error.
func NewRotationMatrix(m []float64) (*RotationMatrix, error) {
	if len(m) != 9 {
		return nil, newRotationMatrixInputError(m)
	}
	mat := [9]float64{m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8]}
	rm := &RotationMatrix{mat}

	cols := [3]r3.Vector{rm.Col(0), rm.Col(1), rm.Col(2)}
	for i := 0; i < 3; i++ {
		if !utils.Float64AlmostEqual(cols[i].Norm(), 1, orthonormalTol) {
			return nil, newRotationMatrixNotOrthonormalError()
		}
		if !utils.Float64AlmostEqual(cols[i].Dot(cols[(i+1)%3]), 0, orthonormalTol) {
			return nil, newRotationMatrixNotOrthonormalError()
		}
	}
	if det := cols[0].Cross(cols[1]).Dot(cols[2]); !utils.Float64AlmostEqual(det, 1, orthonormalTol) {
		return nil, newRotationMatrixImproperError(det)
	}
	return rm, nil
}

// QuatToRotationMatrix converts a quaternion to a rotation matrix. The input
// is normalized first, so near-unit quaternions convert without drift.
func QuatToRotationMatrix(q quat.Number) *RotationMatrix {
	q = Normalize(q)
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag
	mat := [9]float64{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*z*w, 2*x*z + 2*y*w,
		2*x*y + 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z - 2*x*w,
		2*x*z - 2*y*w, 2*y*z + 2*x*w, 1 - 2*x*x - 2*y*y,
	}
	return &RotationMatrix{mat}
}

// Quaternion returns the unit quaternion of the rotation matrix. The
// conversion branches on the largest of the trace and the diagonal terms so
// that no divisor can vanish; the result is renormalized to absorb rounding.
func (rm *RotationMatrix) Quaternion() quat.Number {
	m := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, c, rm.mat[3*r+c])
		}
	}
	qRot := mgl64.Mat4ToQuat(m)
	return Normalize(quat.Number{Real: qRot.W, Imag: qRot.X(), Jmag: qRot.Y(), Kmag: qRot.Z()})
}

// At returns the float corresponding to the element at the specified location.
func (rm *RotationMatrix) At(row, col int) float64 {
	return rm.mat[3*row+col]
}

// Row returns the a 3 element vector corresponding to the specified row.
func (rm *RotationMatrix) Row(row int) r3.Vector {
	return r3.Vector{X: rm.mat[3*row], Y: rm.mat[3*row+1], Z: rm.mat[3*row+2]}
}

// Col returns the a 3 element vector corresponding to the specified column.
func (rm *RotationMatrix) Col(col int) r3.Vector {
	return r3.Vector{X: rm.mat[col], Y: rm.mat[3+col], Z: rm.mat[6+col]}
}

// String returns the rows of the matrix separated by pipes.
func (rm *RotationMatrix) String() string {
	m := rm.mat
	return fmt.Sprintf("%.4f %.4f %.4f | %.4f %.4f %.4f | %.4f %.4f %.4f",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

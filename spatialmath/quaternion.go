// Package spatialmath defines the spatial mathematical operations used to
// extract and compare the orientations of point sets in 3D space.
package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/num/quat"
)

// Dot returns the four component dot product of two quaternions.
func Dot(q1, q2 quat.Number) float64 {
	return q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
}

// LengthSquared returns the squared length of a quaternion.
func LengthSquared(q quat.Number) float64 {
	return Dot(q, q)
}

// Length returns the length of a quaternion. A quaternion representing an
// orientation has length 1.
func Length(q quat.Number) float64 {
	return math.Sqrt(LengthSquared(q))
}

// Normalize scales a quaternion to unit length, returning its versor. The
// zero quaternion has no direction to preserve and normalizes to the
// identity orientation.
func Normalize(q quat.Number) quat.Number {
	length := Length(q)
	if length == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/length, q)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing
// the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuaternionAlmostEqual checks whether two quaternions describe approximately
// the same orientation. A quaternion and its flip rotate identically, so both
// representatives are checked.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quatComponentsAlmostEqual(a, b, tol) || quatComponentsAlmostEqual(a, Flip(b), tol)
}

func quatComponentsAlmostEqual(a, b quat.Number, tol float64) bool {
	return scalar.EqualWithinAbs(a.Real, b.Real, tol) &&
		scalar.EqualWithinAbs(a.Imag, b.Imag, tol) &&
		scalar.EqualWithinAbs(a.Jmag, b.Jmag, tol) &&
		scalar.EqualWithinAbs(a.Kmag, b.Kmag, tol)
}

// QuatFromAxisAngle returns the unit quaternion for a rotation of theta
// radians about the given axis. The axis is scaled onto the unit sphere
// first; there is no rotation about a zero axis, so a zero axis panics.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func QuatFromAxisAngle(axis r3.Vector, theta float64) quat.Number {
	norm := axis.Norm()
	if norm == 0 {
		panic("cannot rotate about a zero axis, divide by zero")
	}
	axis = axis.Mul(1 / norm)
	sinA := math.Sin(theta / 2)
	return quat.Number{
		Real: math.Cos(theta / 2),
		Imag: axis.X * sinA,
		Jmag: axis.Y * sinA,
		Kmag: axis.Z * sinA,
	}
}

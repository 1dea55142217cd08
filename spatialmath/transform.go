package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Transform is a rigid motion in 3D space, a rotation about the origin
// followed by a translation, held as a unit dual quaternion.
type Transform struct {
	Quat dualquat.Number
}

// NewTransform returns a pointer to a new Transform object whose quaternion
// is an identity quaternion. Since the real part of a unit dual quaternion
// should be a unit quaternion, not all zeroes, this should be used instead
// of &Transform{}.
func NewTransform() *Transform {
	return &Transform{dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{},
	}}
}

// NewTransformFromRotation returns a pointer to a new Transform object whose
// rotation quaternion is set from the provided quaternion, normalized.
func NewTransformFromRotation(q quat.Number) *Transform {
	return &Transform{dualquat.Number{
		Real: Normalize(q),
		Dual: quat.Number{},
	}}
}

// Clone returns a Transform object identical to this one.
func (tf *Transform) Clone() *Transform {
	t := &Transform{}
	// No need for deep copies here, dualquats are primitives all the way down
	t.Quat = tf.Quat
	return t
}

// Rotation returns the rotation quaternion.
func (tf *Transform) Rotation() quat.Number {
	return tf.Quat.Real
}

// Translation multiplies the dual quaternion by its own conjugate, leaving
// the translation vector in the dual imaginary components.
func (tf *Transform) Translation() r3.Vector {
	cart := dualquat.Mul(tf.Quat, dualquat.Conj(tf.Quat))
	return r3.Vector{X: cart.Dual.Imag, Y: cart.Dual.Jmag, Z: cart.Dual.Kmag}
}

// SetTranslation correctly sets the translation quaternion against the
// rotation.
func (tf *Transform) SetTranslation(x, y, z float64) {
	tf.Quat.Dual = quat.Mul(quat.Number{Imag: x / 2, Jmag: y / 2, Kmag: z / 2}, tf.Quat.Real)
}

// TransformPoint applies the rigid motion to a point, rotating it about the
// origin and then translating. The point rides in the dual imaginary vector.
func (tf *Transform) TransformPoint(p r3.Vector) r3.Vector {
	pq := dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z},
	}
	moved := dualquat.Mul(dualquat.Mul(tf.Quat, pq), dualquat.Conj(tf.Quat))
	return r3.Vector{X: moved.Dual.Imag, Y: moved.Dual.Jmag, Z: moved.Dual.Kmag}
}

// TransformPoints applies the rigid motion to every point, returning a fresh
// slice.
func (tf *Transform) TransformPoints(pts []r3.Vector) []r3.Vector {
	moved := make([]r3.Vector, 0, len(pts))
	for _, p := range pts {
		moved = append(moved, tf.TransformPoint(p))
	}
	return moved
}

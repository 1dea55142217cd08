package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestNewTransform(t *testing.T) {
	tf := NewTransform()
	test.That(t, tf.Rotation(), test.ShouldResemble, quat.Number{Real: 1})
	test.That(t, tf.Translation(), test.ShouldResemble, r3.Vector{})

	p := r3.Vector{X: 1, Y: 2, Z: 3}
	moved := tf.TransformPoint(p)
	test.That(t, moved.X, test.ShouldAlmostEqual, p.X)
	test.That(t, moved.Y, test.ShouldAlmostEqual, p.Y)
	test.That(t, moved.Z, test.ShouldAlmostEqual, p.Z)
}

func TestTransformTranslation(t *testing.T) {
	tf := NewTransform()
	tf.SetTranslation(4, 2, 6)
	trans := tf.Translation()
	test.That(t, trans.X, test.ShouldAlmostEqual, 4)
	test.That(t, trans.Y, test.ShouldAlmostEqual, 2)
	test.That(t, trans.Z, test.ShouldAlmostEqual, 6)

	moved := tf.TransformPoint(r3.Vector{X: 3, Y: 4, Z: 5})
	test.That(t, moved.X, test.ShouldAlmostEqual, 7)
	test.That(t, moved.Y, test.ShouldAlmostEqual, 6)
	test.That(t, moved.Z, test.ShouldAlmostEqual, 11)
}

func TestTransformRotationThenTranslation(t *testing.T) {
	q90z := QuatFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	tf := NewTransformFromRotation(q90z)
	tf.SetTranslation(10, 0, 0)

	// the rotation is applied before the translation
	p := r3.Vector{X: 1}
	moved := tf.TransformPoint(p)
	test.That(t, moved.X, test.ShouldAlmostEqual, 10)
	test.That(t, moved.Y, test.ShouldAlmostEqual, 1)
	test.That(t, moved.Z, test.ShouldAlmostEqual, 0)

	// agrees with rotating and offsetting by hand
	byHand := RotatePoint(q90z, p).Add(r3.Vector{X: 10})
	test.That(t, moved.X, test.ShouldAlmostEqual, byHand.X)
	test.That(t, moved.Y, test.ShouldAlmostEqual, byHand.Y)
	test.That(t, moved.Z, test.ShouldAlmostEqual, byHand.Z)

	trans := tf.Translation()
	test.That(t, trans.X, test.ShouldAlmostEqual, 10)
	test.That(t, trans.Y, test.ShouldAlmostEqual, 0)
	test.That(t, trans.Z, test.ShouldAlmostEqual, 0)
	test.That(t, QuaternionAlmostEqual(tf.Rotation(), q90z, 1e-12), test.ShouldBeTrue)
}

func TestTransformPoints(t *testing.T) {
	tf := NewTransformFromRotation(QuatFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2))
	tf.SetTranslation(1, 1, 1)

	pts := []r3.Vector{{X: 1}, {Y: 1}}
	moved := tf.TransformPoints(pts)
	test.That(t, len(moved), test.ShouldEqual, 2)
	test.That(t, moved[0].X, test.ShouldAlmostEqual, 1)
	test.That(t, moved[0].Y, test.ShouldAlmostEqual, 2)
	test.That(t, moved[1].X, test.ShouldAlmostEqual, 0)
	test.That(t, moved[1].Y, test.ShouldAlmostEqual, 1)
	test.That(t, pts[0], test.ShouldResemble, r3.Vector{X: 1})
}

func TestTransformClone(t *testing.T) {
	tf := NewTransformFromRotation(QuatFromAxisAngle(r3.Vector{X: 1}, 1))
	tf.SetTranslation(1, 2, 3)

	clone := tf.Clone()
	test.That(t, clone.Quat, test.ShouldResemble, tf.Quat)

	clone.SetTranslation(9, 9, 9)
	trans := tf.Translation()
	test.That(t, trans.X, test.ShouldAlmostEqual, 1)
	test.That(t, trans.Y, test.ShouldAlmostEqual, 2)
	test.That(t, trans.Z, test.ShouldAlmostEqual, 3)
}

func TestNewTransformFromRotationNormalizes(t *testing.T) {
	q := QuatFromAxisAngle(r3.Vector{Y: 1}, 0.7)
	tf := NewTransformFromRotation(quat.Scale(5, q))
	test.That(t, QuaternionAlmostEqual(tf.Rotation(), q, 1e-12), test.ShouldBeTrue)
	test.That(t, Length(tf.Rotation()), test.ShouldAlmostEqual, 1, 1e-12)
}

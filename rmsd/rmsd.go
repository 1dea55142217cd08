// Package rmsd implements rigid superposition of paired point sets and the
// root-mean-square deviation between them, using the Kabsch algorithm.
//
// A brief, high-level overview: center both sets on their centroids, build
// the 3x3 covariance matrix between the centered sets, take its singular
// value decomposition, and compose the optimal rotation from the singular
// vectors. When the raw product of singular vectors has determinant -1 it
// describes a reflection, so the axis of least variance is flipped to keep
// the result a proper rotation.
package rmsd

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/structmol/quatsym/spatialmath"
)

// RMSD returns the root-mean-square deviation between paired points in their
// current coordinates. The sets must pair up index by index and be non-empty.
func RMSD(a, b []r3.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.Errorf("point sets must pair up, got %d and %d points", len(a), len(b))
	}
	if len(a) == 0 {
		return 0, errors.New("no points to compare")
	}
	var sum float64
	for i := range a {
		d := a[i].Sub(b[i])
		sum += d.Dot(d)
	}
	return math.Sqrt(sum / float64(len(a))), nil
}

// Superpose computes the rigid motion that best maps the moving set onto the
// fixed set in the least-squares sense. The result is always a proper
// rotation followed by a translation, never a reflection.
func Superpose(moving, fixed []r3.Vector) (*spatialmath.Transform, error) {
	if len(moving) != len(fixed) {
		return nil, errors.Errorf("point sets must pair up, got %d and %d points", len(moving), len(fixed))
	}
	if len(moving) == 0 {
		return nil, errors.New("no points to superpose")
	}

	cm := spatialmath.Centroid(moving)
	cf := spatialmath.Centroid(fixed)

	var c [9]float64
	for i := range moving {
		p := moving[i].Sub(cm)
		q := fixed[i].Sub(cf)
		c[0] += p.X * q.X
		c[1] += p.X * q.Y
		c[2] += p.X * q.Z
		c[3] += p.Y * q.X
		c[4] += p.Y * q.Y
		c[5] += p.Y * q.Z
		c[6] += p.Z * q.X
		c[7] += p.Z * q.Y
		c[8] += p.Z * q.Z
	}
	cov := mat.NewDense(3, 3, c[:])

	var svd mat.SVD
	ok := svd.Factorize(cov, mat.SVDFull)
	if !ok {
		return nil, errors.New("failed to factorize covariance matrix")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var rot mat.Dense
	rot.Mul(&v, u.T())
	if mat.Det(&rot) < 0 {
		// flip the axis of least variance so the motion rotates rather
		// than reflects
		var vFlipped mat.Dense
		vFlipped.Mul(&v, mat.NewDiagDense(3, []float64{1, 1, -1}))
		rot.Mul(&vFlipped, u.T())
	}

	rm, err := spatialmath.NewRotationMatrix(rot.RawMatrix().Data)
	if err != nil {
		return nil, errors.Wrap(err, "superposition produced an invalid rotation")
	}
	q := rm.Quaternion()

	// moving points are rotated about the origin, so the translation must
	// carry the rotated moving centroid onto the fixed one
	t := cf.Sub(spatialmath.RotatePoint(q, cm))
	tf := spatialmath.NewTransformFromRotation(q)
	tf.SetTranslation(t.X, t.Y, t.Z)
	return tf, nil
}

// SuperposedRMSD superposes the moving set onto the fixed set and returns
// the deviation that remains.
func SuperposedRMSD(moving, fixed []r3.Vector) (float64, error) {
	tf, err := Superpose(moving, fixed)
	if err != nil {
		return 0, err
	}
	return RMSD(tf.TransformPoints(moving), fixed)
}

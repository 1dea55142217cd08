package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/structmol/quatsym/inertia"
)

// OrientationMetric returns the angular distance between two orientations
// given as unit quaternions, in radians in [0, pi/2]. A quaternion and its
// flip describe the same orientation, so the dot product is folded by
// absolute value before the arccosine. Inputs must already be unit length;
// they are not normalized here.
func OrientationMetric(q1, q2 quat.Number) float64 {
	cosTheta := math.Abs(Dot(q1, q2))
	// Account for floating point error
	if cosTheta > 1 {
		cosTheta = 1
	}
	return math.Acos(cosTheta)
}

// Orientation computes the orientation of a point set as a unit quaternion,
// each point contributing unit mass. The quaternion rotates the reference
// frame onto the set's principal axes, so rotating the set rotates the
// result with it. Sets whose principal axes are undefined, an empty set or
// one with all points coincident, return an error.
func Orientation(points []r3.Vector) (quat.Number, error) {
	m := inertia.New()
	for _, p := range points {
		m.AddPoint(p, 1)
	}
	return orientationFromMoments(m)
}

// OrientationWeighted computes the orientation of a point set with one mass
// per point. The weights must pair up with the points and sum to a positive
// total.
func OrientationWeighted(points []r3.Vector, weights []float64) (quat.Number, error) {
	if len(points) != len(weights) {
		return quat.Number{}, newPairedLengthsError(len(points), len(weights))
	}
	m := inertia.New()
	for i, p := range points {
		m.AddPoint(p, weights[i])
	}
	return orientationFromMoments(m)
}

// OrientationMetricPoints returns the orientation metric between the
// orientations of two point sets.
func OrientationMetricPoints(a, b []r3.Vector) (float64, error) {
	qa, err := Orientation(a)
	if err != nil {
		return 0, err
	}
	qb, err := Orientation(b)
	if err != nil {
		return 0, err
	}
	return OrientationMetric(qa, qb), nil
}

func orientationFromMoments(m *inertia.Moments) (quat.Number, error) {
	om, err := m.OrientationMatrix()
	if err != nil {
		return quat.Number{}, err
	}
	rm, err := NewRotationMatrix(om.RawMatrix().Data)
	if err != nil {
		return quat.Number{}, err
	}
	return Normalize(rm.Quaternion()), nil
}

package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// Centroid returns the arithmetic mean of the points. The centroid of no
// points is the zero vector.
func Centroid(pts []r3.Vector) r3.Vector {
	if len(pts) == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(pts)))
}

// RotatePoint rotates a point about the origin by a unit quaternion, raising
// the point to a pure quaternion and conjugating.
func RotatePoint(q quat.Number, p r3.Vector) r3.Vector {
	pq := quat.Number{Imag: p.X, Jmag: p.Y, Kmag: p.Z}
	rotated := quat.Mul(quat.Mul(q, pq), quat.Conj(q))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}
}

// RotatePoints rotates every point about the origin by a unit quaternion,
// returning a fresh slice.
func RotatePoints(q quat.Number, pts []r3.Vector) []r3.Vector {
	rotated := make([]r3.Vector, 0, len(pts))
	for _, p := range pts {
		rotated = append(rotated, RotatePoint(q, p))
	}
	return rotated
}

// TranslatePoints offsets every point by the given vector, returning a fresh
// slice.
func TranslatePoints(pts []r3.Vector, offset r3.Vector) []r3.Vector {
	translated := make([]r3.Vector, 0, len(pts))
	for _, p := range pts {
		translated = append(translated, p.Add(offset))
	}
	return translated
}

// Package inertia accumulates weighted point masses and derives the
// moments-of-inertia description of the distribution: center of mass,
// inertia tensor, principal moments and axes, and the principal-axis
// orientation matrix consumed by orientation extraction.
package inertia

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

const (
	// A distribution is reported degenerate when its root-mean-square spread
	// about the center of mass falls below this fraction of its coordinate
	// scale. Principal axes extracted from such a tensor would be rounding
	// noise.
	degenerateRel = 1e-9

	// Axis signs are decided by the third central moment along the axis,
	// unless its magnitude falls below this fraction of the absolute third
	// moment, in which case the distribution is symmetric along that axis
	// and the component tie-break applies.
	skewRel = 1e-9
)

// Class labels the shape of a mass distribution by the spread of its
// principal moments.
type Class int

// The recognized shape classes, from least to most degenerate moments.
const (
	Asymmetric Class = iota
	Prolate
	Oblate
	Spherical
)

// String returns a human readable name for the shape class.
func (c Class) String() string {
	switch c {
	case Asymmetric:
		return "asymmetric"
	case Prolate:
		return "prolate"
	case Oblate:
		return "oblate"
	case Spherical:
		return "spherical"
	default:
		return "unknown"
	}
}

// Moments accumulates weighted points and answers questions about the
// second-moment structure of the resulting mass distribution. The zero value
// is not usable; construct with New. AddPoint copies point values, so the
// accumulator never retains caller storage. A Moments is not safe for
// concurrent mutation; distinct instances are independent.
type Moments struct {
	points []r3.Vector
	masses []float64
	total  float64
}

// New returns an empty accumulator.
func New() *Moments {
	return &Moments{}
}

// AddPoint adds a point contribution with the given mass.
func (m *Moments) AddPoint(p r3.Vector, mass float64) {
	m.points = append(m.points, p)
	m.masses = append(m.masses, mass)
	m.total += mass
}

// Size returns the number of accumulated points.
func (m *Moments) Size() int {
	return len(m.points)
}

// TotalMass returns the sum of all accumulated masses.
func (m *Moments) TotalMass() float64 {
	return m.total
}

// CenterOfMass returns the mass-weighted centroid of the accumulated points.
func (m *Moments) CenterOfMass() (r3.Vector, error) {
	if len(m.points) == 0 {
		return r3.Vector{}, errors.New("no points accumulated")
	}
	if m.total <= 0 {
		return r3.Vector{}, errors.Errorf("total mass must be positive, got %v", m.total)
	}
	var c r3.Vector
	for i, p := range m.points {
		c = c.Add(p.Mul(m.masses[i]))
	}
	return c.Mul(1 / m.total), nil
}

// Tensor returns the inertia tensor of the distribution about its center of
// mass, accumulated with the standard second-moment formula.
func (m *Moments) Tensor() (*mat.SymDense, error) {
	c, err := m.CenterOfMass()
	if err != nil {
		return nil, err
	}
	return m.tensorAbout(c), nil
}

func (m *Moments) tensorAbout(center r3.Vector) *mat.SymDense {
	var xx, yy, zz, xy, xz, yz float64
	for i, p := range m.points {
		d := p.Sub(center)
		w := m.masses[i]
		xx += w * (d.Y*d.Y + d.Z*d.Z)
		yy += w * (d.X*d.X + d.Z*d.Z)
		zz += w * (d.X*d.X + d.Y*d.Y)
		xy -= w * d.X * d.Y
		xz -= w * d.X * d.Z
		yz -= w * d.Y * d.Z
	}
	return mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})
}

// RadiusOfGyration returns the mass-weighted root-mean-square distance of
// the points from their center of mass.
func (m *Moments) RadiusOfGyration() (float64, error) {
	c, err := m.CenterOfMass()
	if err != nil {
		return 0, err
	}
	t := m.tensorAbout(c)
	return math.Sqrt((t.At(0, 0) + t.At(1, 1) + t.At(2, 2)) / (2 * m.total)), nil
}

// PrincipalMoments returns the eigenvalues of the inertia tensor in
// ascending order.
func (m *Moments) PrincipalMoments() ([3]float64, error) {
	_, moments, err := m.decompose()
	return moments, err
}

// PrincipalAxes returns the unit principal axes of the distribution, ordered
// to match PrincipalMoments.
//
// Axis signs follow a deterministic convention: the first two axes are
// oriented so the third central moment of the distribution along each is
// positive, which makes extraction rotation-equivariant for skewed clouds.
// When a distribution is symmetric along an axis the sign is underdetermined
// and the axis is instead oriented so its largest-magnitude component is
// positive. The third axis is the cross product of the first two, so the
// frame is always right handed.
func (m *Moments) PrincipalAxes() ([3]r3.Vector, error) {
	axes, _, err := m.decompose()
	return axes, err
}

// OrientationMatrix returns the principal-axis frame as a proper rotation
// matrix, columns holding the principal axes in ascending-moment order. The
// result is orthonormal with determinant +1 by construction.
func (m *Moments) OrientationMatrix() (*mat.Dense, error) {
	axes, _, err := m.decompose()
	if err != nil {
		return nil, err
	}
	return mat.NewDense(3, 3, []float64{
		axes[0].X, axes[1].X, axes[2].X,
		axes[0].Y, axes[1].Y, axes[2].Y,
		axes[0].Z, axes[1].Z, axes[2].Z,
	}), nil
}

// SymmetryClass classifies the shape of the distribution from the relative
// gaps between its principal moments. Two moments are considered equal when
// their gap is at most threshold times the largest moment.
func (m *Moments) SymmetryClass(threshold float64) (Class, error) {
	_, mo, err := m.decompose()
	if err != nil {
		return Asymmetric, err
	}
	lowGap := (mo[1] - mo[0]) / mo[2]
	highGap := (mo[2] - mo[1]) / mo[2]
	switch {
	case lowGap <= threshold && highGap <= threshold:
		return Spherical, nil
	case lowGap <= threshold:
		return Oblate, nil
	case highGap <= threshold:
		return Prolate, nil
	default:
		return Asymmetric, nil
	}
}

func (m *Moments) decompose() ([3]r3.Vector, [3]float64, error) {
	var axes [3]r3.Vector
	var moments [3]float64

	c, err := m.CenterOfMass()
	if err != nil {
		return axes, moments, err
	}
	t := m.tensorAbout(c)

	scale := 1.0
	for _, p := range m.points {
		if n := p.Norm(); n > scale {
			scale = n
		}
	}
	spread2 := (t.At(0, 0) + t.At(1, 1) + t.At(2, 2)) / (2 * m.total)
	if spread2 <= degenerateRel*degenerateRel*scale*scale {
		return axes, moments, errors.New("degenerate point distribution, principal axes are undefined")
	}

	var eig mat.EigenSym
	if !eig.Factorize(t, true) {
		return axes, moments, errors.New("failed to factorize inertia tensor")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	for i := 0; i < 2; i++ {
		axis := r3.Vector{X: vecs.At(0, i), Y: vecs.At(1, i), Z: vecs.At(2, i)}
		axes[i] = m.orientAxis(axis, c)
		moments[i] = vals[i]
	}
	axes[2] = axes[0].Cross(axes[1])
	moments[2] = vals[2]
	return axes, moments, nil
}

// orientAxis fixes the sign of a principal axis using the skewness of the
// mass distribution along it.
func (m *Moments) orientAxis(axis, center r3.Vector) r3.Vector {
	var skew, norm float64
	for i, p := range m.points {
		d := p.Sub(center).Dot(axis)
		cube := m.masses[i] * d * d * d
		skew += cube
		norm += math.Abs(cube)
	}
	if norm > 0 && math.Abs(skew) > skewRel*norm {
		if skew < 0 {
			return axis.Mul(-1)
		}
		return axis
	}

	// Symmetric along this axis. Orient the largest-magnitude component
	// positive so repeated extraction from the same input is stable.
	comps := [3]float64{axis.X, axis.Y, axis.Z}
	largest := 0
	for i := 1; i < 3; i++ {
		if math.Abs(comps[i]) > math.Abs(comps[largest]) {
			largest = i
		}
	}
	if comps[largest] < 0 {
		return axis.Mul(-1)
	}
	return axis
}

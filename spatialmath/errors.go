package spatialmath

import "github.com/pkg/errors"

// newRotationMatrixInputError returns an error stating the need for 9 matrix
// elements.
func newRotationMatrixInputError(matrix []float64) error {
	return errors.Errorf("input slice has %d elements, need exactly 9", len(matrix))
}

// newRotationMatrixNotOrthonormalError returns an error for matrix data whose
// rows and columns do not form an orthonormal basis.
func newRotationMatrixNotOrthonormalError() error {
	return errors.New("matrix is not orthonormal within tolerance")
}

// newRotationMatrixImproperError returns an error for orthonormal matrix data
// that reflects rather than rotates.
func newRotationMatrixImproperError(det float64) error {
	return errors.Errorf("matrix determinant must be +1, got %v", det)
}

// newPairedLengthsError returns an error for point and weight slices that do
// not pair up.
func newPairedLengthsError(points, weights int) error {
	return errors.Errorf("points and weights must pair up, got %d points and %d weights", points, weights)
}

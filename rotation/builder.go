// =======================
// rotation/builder.go
// =======================

package rotation

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidAxis  = errors.New("invalid rotation axis")
	ErrInvalidAngle = errors.New("invalid rotation angle")
)

// BuildRotationMatrix returns the matrix rotating by theta radians about
// axis, using the Euler-Rodrigues parametrization. The axis is normalized
// on the fly and is not validated: a zero axis yields NaN entries.
//
// The quaternion vector part carries a negated sign, so for axis (1,0,0)
// and theta = π/2 the result maps (0,1,0) to (0,0,-1).
func BuildRotationMatrix(axis Vector3, theta float64) Matrix {
	norm := math.Sqrt(axis.X*axis.X + axis.Y*axis.Y + axis.Z*axis.Z)
	half := math.Sin(theta / 2)

	a := math.Cos(theta / 2)
	b := -(axis.X / norm) * half
	c := -(axis.Y / norm) * half
	d := -(axis.Z / norm) * half

	aa, bb, cc, dd := a*a, b*b, c*c, d*d

	return Matrix{
		aa + bb - cc - dd, 2 * (b*c - a*d), 2 * (b*d + a*c),
		2 * (b*c + a*d), aa + cc - bb - dd, 2 * (c*d - a*b),
		2 * (b*d - a*c), 2 * (c*d + a*b), aa + dd - bb - cc,
	}
}

// BuildRotationMatrixChecked is BuildRotationMatrix with input validation.
// Errors wrap ErrInvalidAxis or ErrInvalidAngle.
func BuildRotationMatrixChecked(axis Vector3, theta float64) (Matrix, error) {
	norm := axis.Norm()
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return Matrix{}, fmt.Errorf("%w: %v has norm %g", ErrInvalidAxis, axis, norm)
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return Matrix{}, fmt.Errorf("%w: %g", ErrInvalidAngle, theta)
	}
	return BuildRotationMatrix(axis, theta), nil
}

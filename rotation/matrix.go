// =======================
// rotation/matrix.go
// =======================

package rotation

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a 3x3 matrix stored row-major: element (row, col) lives at
// index row*3+col.
type Matrix [9]float64

func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (m Matrix) At(row, col int) float64 {
	return m[row*3+col]
}

// Mul returns m·o, i.e. o is applied first.
func (m Matrix) Mul(o Matrix) Matrix {
	var out Matrix
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m[r*3]*o[c] + m[r*3+1]*o[3+c] + m[r*3+2]*o[6+c]
		}
	}
	return out
}

func (m Matrix) Transpose() Matrix {
	return Matrix{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant by cofactor expansion along the first row.
func (m Matrix) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// Apply returns m·v.
func (m Matrix) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// IsFinite reports whether no entry is NaN or infinite.
func (m Matrix) IsFinite() bool {
	for _, e := range m {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return false
		}
	}
	return true
}

// ApproxEqual compares entry by entry. NaN never compares equal.
func (m Matrix) ApproxEqual(o Matrix, tol float64) bool {
	for i := range m {
		if !(math.Abs(m[i]-o[i]) <= tol) {
			return false
		}
	}
	return true
}

// OrthogonalityError returns the largest absolute deviation of m·mᵗ from
// the identity.
func (m Matrix) OrthogonalityError() float64 {
	p := m.Mul(m.Transpose())
	id := Identity()
	worst := 0.0
	for i := range p {
		d := math.Abs(p[i] - id[i])
		if math.IsNaN(d) {
			return math.NaN()
		}
		if d > worst {
			worst = d
		}
	}
	return worst
}

func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		fmt.Fprintf(&sb, "[% .9f % .9f % .9f]", m[r*3], m[r*3+1], m[r*3+2])
		if r < 2 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// =======================
// rotation/vector.go
// =======================

package rotation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector3 holds a 3D coordinate. It is used both as a rotation axis and as
// the vector being rotated.
type Vector3 struct{ X, Y, Z float64 }

var (
	UnitX = Vector3{1, 0, 0}
	UnitY = Vector3{0, 1, 0}
	UnitZ = Vector3{0, 0, 1}
)

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector3) Scale(k float64) Vector3 {
	return Vector3{v.X * k, v.Y * k, v.Z * k}
}

// Rotate returns m applied to v.
func (v Vector3) Rotate(m Matrix) Vector3 {
	return m.Apply(v)
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// ParseVector3 parses "x,y,z". Whitespace around components is ignored.
func ParseVector3(s string) (Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Vector3{}, fmt.Errorf("vector %q: want 3 comma-separated components, got %d", s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vector3{}, fmt.Errorf("vector %q component %d: %w", s, i, err)
		}
		c[i] = f
	}
	return Vector3{c[0], c[1], c[2]}, nil
}

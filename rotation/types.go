// =======================
// rotation/types.go
// =======================

package rotation

import "time"

const (
	DefaultTolerance = 1e-9
	MaxIterations    = 10_000_000 // Keep -bench runs bounded
)

// BenchmarkInfo holds timing and accuracy figures for one axis.
type BenchmarkInfo struct {
	Axis         Vector3
	Iterations   int
	BuildTime    time.Duration // per matrix
	BuildsPerSec float64
	MaxOrthoErr  float64 // worst max|M·Mᵗ - I|
	MaxDetErr    float64 // worst |det M - 1|
}

// BenchmarkAxes is the axis set the CLI benchmarks against.
var BenchmarkAxes = []Vector3{
	UnitX,
	UnitY,
	UnitZ,
	{1, 1, 1},
	{-3, 0.5, 2},
	{1e-6, 2e-6, -1e-6},
	{1e6, -4e5, 7e5},
}

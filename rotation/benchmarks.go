// =======================
// rotation/benchmarks.go
// =======================

package rotation

import (
	"fmt"
	"io"
	"math"
	"time"
)

// BenchmarkBuilder builds iterations matrices per axis, sweeping theta over
// one full turn in each direction, and records speed and worst-case error.
func BenchmarkBuilder(axes []Vector3, iterations int) ([]BenchmarkInfo, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("no axes to benchmark")
	}
	if iterations <= 0 || iterations > MaxIterations {
		return nil, fmt.Errorf("iterations %d out of range [1, %d]", iterations, MaxIterations)
	}

	results := make([]BenchmarkInfo, 0, len(axes))
	step := 4 * math.Pi / float64(iterations)

	for _, axis := range axes {
		// Validate once up front so the timed loop uses the unchecked path.
		if _, err := BuildRotationMatrixChecked(axis, 0); err != nil {
			return nil, fmt.Errorf("benchmark axis %v: %w", axis, err)
		}

		var worstOrtho, worstDet float64
		var sink Matrix

		start := time.Now()
		for i := 0; i < iterations; i++ {
			theta := -2*math.Pi + float64(i)*step
			sink = BuildRotationMatrix(axis, theta)

			// Sample accuracy on a subset so timing stays dominated by the build.
			if i%64 == 0 {
				worstOrtho = math.Max(worstOrtho, sink.OrthogonalityError())
				worstDet = math.Max(worstDet, math.Abs(sink.Det()-1))
			}
		}
		duration := time.Since(start)
		if duration <= 0 {
			duration = time.Nanosecond
		}

		results = append(results, BenchmarkInfo{
			Axis:         axis,
			Iterations:   iterations,
			BuildTime:    duration / time.Duration(iterations),
			BuildsPerSec: float64(iterations) / duration.Seconds(),
			MaxOrthoErr:  worstOrtho,
			MaxDetErr:    worstDet,
		})
	}

	return results, nil
}

// PrintBenchmarkResults writes results as a formatted table.
func PrintBenchmarkResults(w io.Writer, results []BenchmarkInfo) {
	fmt.Fprintln(w, "Rotation Matrix Builder Self-Check")
	fmt.Fprintln(w, "==================================")
	fmt.Fprintf(w, "%-28s | %-10s | %-12s | %-12s | %-12s\n",
		"Axis", "Time/Build", "Builds/s", "Ortho Err", "Det Err")
	fmt.Fprintln(w, "-----------------------------|------------|--------------|--------------|-------------")

	for _, r := range results {
		fmt.Fprintf(w, "%-28s | %-10s | %-12.0f | %-12.3g | %-12.3g\n",
			r.Axis.String(),
			r.BuildTime.String(),
			r.BuildsPerSec,
			r.MaxOrthoErr,
			r.MaxDetErr)
	}
}

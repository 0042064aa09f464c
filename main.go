// main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"rodrigues/config"
	"rodrigues/rotation"

	"github.com/sirupsen/logrus"
)

func main() {
	axisFlag := flag.String("axis", "1,0,0", "Rotation axis as x,y,z")
	theta := flag.Float64("theta", 0, "Rotation angle (radians unless -degrees)")
	degrees := flag.Bool("degrees", false, "Interpret -theta in degrees")
	checked := flag.Bool("checked", false, "Reject zero or non-finite axes and angles")
	apply := flag.String("apply", "", "Vector x,y,z to rotate with the matrix")
	bench := flag.Int("bench", 0, "Run the builder self-check with N matrices per axis")
	graphics := flag.Bool("graphics", false, "Open the terminal viewer")
	cfgPath := flag.String("config", "", "Viewer YAML config")
	logLevel := flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := newLogger(*logLevel)

	axis, err := rotation.ParseVector3(*axisFlag)
	if err != nil {
		log.WithError(err).Fatal("Invalid -axis")
	}

	if *bench > 0 {
		log.WithField("iterations", *bench).Debug("Running builder self-check")
		results, err := rotation.BenchmarkBuilder(rotation.BenchmarkAxes, *bench)
		if err != nil {
			log.WithError(err).Fatal("Self-check failed")
		}
		rotation.PrintBenchmarkResults(os.Stdout, results)
		return
	}

	if *graphics {
		cfg, err := loadViewerConfig(*cfgPath, axis, flagPassed("axis"))
		if err != nil {
			log.WithError(err).Fatal("Failed to load viewer config")
		}
		log.WithFields(logrus.Fields{
			"axis":    cfg.AxisVector(),
			"palette": cfg.Palette,
			"speed":   cfg.Speed,
		}).Debug("Starting viewer")
		if err := runGraphics(cfg); err != nil {
			log.WithError(err).Fatal("Graphics error")
		}
		return
	}

	angle := *theta
	if *degrees {
		angle = angle * math.Pi / 180
	}

	var m rotation.Matrix
	if *checked {
		m, err = rotation.BuildRotationMatrixChecked(axis, angle)
		if err != nil {
			log.WithError(err).Fatal("Cannot build rotation matrix")
		}
	} else {
		if axis.Norm() == 0 {
			log.WithField("axis", axis).Warn("Zero-length axis; matrix entries will be NaN")
		}
		m = rotation.BuildRotationMatrix(axis, angle)
	}

	var v *rotation.Vector3
	if *apply != "" {
		parsed, err := rotation.ParseVector3(*apply)
		if err != nil {
			log.WithError(err).Fatal("Invalid -apply")
		}
		v = &parsed
	}

	printMatrix(os.Stdout, axis, angle, m, v)
}

func newLogger(level string) *logrus.Logger {
	l := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000000",
	})
	return l
}

func flagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// loadViewerConfig reads path (or the defaults when empty). An explicit
// -axis wins over the file.
func loadViewerConfig(path string, axis rotation.Vector3, axisSet bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if axisSet {
		cfg.Axis = []float64{axis.X, axis.Y, axis.Z}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func printMatrix(w io.Writer, axis rotation.Vector3, theta float64, m rotation.Matrix, v *rotation.Vector3) {
	fmt.Fprintf(w, "AXIS:  %v\n", axis)
	fmt.Fprintf(w, "THETA: %g rad (%g°)\n", theta, theta*180/math.Pi)
	fmt.Fprintf(w, "MATRIX:\n%v\n", m)
	fmt.Fprintf(w, "DET:   %.12f\n", m.Det())
	if !m.IsFinite() {
		fmt.Fprintln(w, "WARNING: matrix has non-finite entries")
	}
	if v != nil {
		fmt.Fprintf(w, "APPLY: %v -> %v\n", *v, m.Apply(*v))
	}
}

package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodrigues/config"
	"rodrigues/rotation"
)

func TestPrintMatrix(t *testing.T) {
	m := rotation.BuildRotationMatrix(rotation.UnitX, math.Pi/2)
	v := rotation.UnitY

	var buf bytes.Buffer
	printMatrix(&buf, rotation.UnitX, math.Pi/2, m, &v)

	out := buf.String()
	assert.Contains(t, out, "AXIS:  (1, 0, 0)")
	assert.Contains(t, out, "THETA: 1.5707963267948966 rad")
	assert.Contains(t, out, "DET:   1.000000000000")
	assert.Contains(t, out, "APPLY: (0, 1, 0) -> ")
	assert.NotContains(t, out, "WARNING")
}

func TestPrintMatrix_ZeroAxis(t *testing.T) {
	var buf bytes.Buffer
	printMatrix(&buf, rotation.Vector3{}, 1, rotation.BuildRotationMatrix(rotation.Vector3{}, 1), nil)

	out := buf.String()
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "WARNING: matrix has non-finite entries")
	assert.NotContains(t, out, "APPLY")
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, newLogger("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, newLogger("bogus").GetLevel())
}

func TestLoadViewerConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadViewerConfig("", rotation.UnitX, false)
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("explicit axis wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "viewer.yaml")
		require.NoError(t, os.WriteFile(path, []byte("axis: [0, 1, 0]\npalette: ocean\n"), 0644))

		cfg, err := loadViewerConfig(path, rotation.UnitZ, true)
		require.NoError(t, err)
		assert.Equal(t, rotation.UnitZ, cfg.AxisVector())
		assert.Equal(t, "ocean", cfg.Palette)
	})

	t.Run("explicit zero axis rejected", func(t *testing.T) {
		_, err := loadViewerConfig("", rotation.Vector3{}, true)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

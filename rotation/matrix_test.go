package rotation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sample = Matrix{
	2, -1, 0,
	4, 3, 5,
	-2, 1, 7,
}

func TestMatrix_At(t *testing.T) {
	assert.Equal(t, -1.0, sample.At(0, 1))
	assert.Equal(t, 5.0, sample.At(1, 2))
	assert.Equal(t, -2.0, sample.At(2, 0))
}

func TestMatrix_MulIdentity(t *testing.T) {
	assert.Equal(t, sample, sample.Mul(Identity()))
	assert.Equal(t, sample, Identity().Mul(sample))
}

func TestMatrix_MulOrder(t *testing.T) {
	// Rotate about z first, then x.
	rz := BuildRotationMatrix(UnitZ, math.Pi/2)
	rx := BuildRotationMatrix(UnitX, math.Pi/2)

	v := rx.Mul(rz).Apply(UnitX)
	step := rx.Apply(rz.Apply(UnitX))
	assertVectorInDelta(t, step, v, 1e-12)
	assertVectorInDelta(t, Vector3{0, 0, 1}, v, 1e-12)
}

func TestMatrix_Transpose(t *testing.T) {
	tr := sample.Transpose()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, sample.At(r, c), tr.At(c, r))
		}
	}
	assert.Equal(t, sample, tr.Transpose())
}

func TestMatrix_Det(t *testing.T) {
	// 2(21-5) + 1(28+10) + 0 = 70
	assert.Equal(t, 70.0, sample.Det())
	assert.Equal(t, 1.0, Identity().Det())
	assert.Equal(t, 70.0, sample.Transpose().Det())
}

func TestMatrix_Apply(t *testing.T) {
	got := sample.Apply(Vector3{1, 2, 3})
	assert.Equal(t, Vector3{0, 25, 21}, got)
	assert.Equal(t, got, Vector3{1, 2, 3}.Rotate(sample))
}

func TestMatrix_IsFinite(t *testing.T) {
	assert.True(t, sample.IsFinite())

	m := Identity()
	m[4] = math.Inf(1)
	assert.False(t, m.IsFinite())

	m = Identity()
	m[8] = math.NaN()
	assert.False(t, m.IsFinite())
}

func TestMatrix_ApproxEqual(t *testing.T) {
	m := Identity()
	m[2] = 1e-10
	assert.True(t, m.ApproxEqual(Identity(), 1e-9))
	assert.False(t, m.ApproxEqual(Identity(), 1e-11))

	m[2] = math.NaN()
	assert.False(t, m.ApproxEqual(m, 1))
}

func TestMatrix_OrthogonalityError(t *testing.T) {
	assert.Equal(t, 0.0, Identity().OrthogonalityError())

	scaled := Identity()
	scaled[0] = 2
	assert.Equal(t, 3.0, scaled.OrthogonalityError())

	var nan Matrix
	nan[0] = math.NaN()
	assert.True(t, math.IsNaN(nan.OrthogonalityError()))
}

func TestMatrix_String(t *testing.T) {
	s := Identity().String()
	lines := strings.Split(s, "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "[ 1.000000000  0.000000000  0.000000000]", lines[0])
}

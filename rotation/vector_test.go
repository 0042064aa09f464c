package rotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3_Norm(t *testing.T) {
	assert.Equal(t, 5.0, Vector3{3, 4, 0}.Norm())
	assert.Equal(t, 0.0, Vector3{}.Norm())
	assert.Equal(t, 1.0, UnitZ.Norm())
}

func TestVector3_Scale(t *testing.T) {
	assert.Equal(t, Vector3{2, -4, 1}, Vector3{1, -2, 0.5}.Scale(2))
}

func TestParseVector3(t *testing.T) {
	tests := []struct {
		in      string
		want    Vector3
		wantErr bool
	}{
		{in: "1,0,0", want: UnitX},
		{in: " 1.5 , -2,3e2 ", want: Vector3{1.5, -2, 300}},
		{in: "0,0,0", want: Vector3{}},
		{in: "1,2", wantErr: true},
		{in: "1,2,3,4", wantErr: true},
		{in: "1,x,3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVector3(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

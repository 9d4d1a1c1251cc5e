package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCopiesInput(t *testing.T) {
	values := []float32{1, 2, 3}
	v := New(values...)
	values[0] = 99

	assert.Equal(t, float32(1), v.At(0))
	assert.Equal(t, 3, v.Dimension())

	out := v.Values()
	out[1] = 42
	assert.Equal(t, float32(2), v.At(1), "Values must not alias internal storage")
}

func TestDimensionMismatch(t *testing.T) {
	a := New(1, 2)
	b := New(1, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = a.Subtract(b)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = a.Dot(b)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "2 and 3")
}

func TestAlgebraLaws(t *testing.T) {
	tests := []struct {
		name string
		v, w Vector
	}{
		{"2d", New(3, -4), New(0.5, 12)},
		{"3d", New(1.25, 2, -7), New(-3, 8, 0.1)},
		{"large offsets", New(99123, -45012), New(-100000, 100000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := tt.v.Add(tt.w)
			require.NoError(t, err)
			back, err := sum.Subtract(tt.w)
			require.NoError(t, err)
			for i := 0; i < tt.v.Dimension(); i++ {
				assert.InDelta(t, tt.v.At(i), back.At(i), 0.02)
			}

			vw, err := tt.v.Dot(tt.w)
			require.NoError(t, err)
			wv, err := tt.w.Dot(tt.v)
			require.NoError(t, err)
			assert.Equal(t, vw, wv)

			assert.InDelta(t, 1.0, tt.v.Unit().Magnitude(), 1e-5)
		})
	}
}

func TestElementWise(t *testing.T) {
	v := New(-1.5, 2, 3)

	assert.Equal(t, []float32{-3, 4, 6}, v.Scale(2).Values())
	assert.Equal(t, []float32{-0.5, 3, 4}, v.AddScalar(1).Values())
	assert.Equal(t, []float32{1.5, 2, 3}, v.Abs().Values())
	assert.Equal(t, []float32{-2, 2, 3}, v.Floor().Values())
	assert.InDeltaSlice(t, []float32{2.25, 4, 9}, v.Pow(2).Values(), 1e-5)
	assert.Equal(t, float32(-9), v.Prod())
	assert.Equal(t, float32(5), New(3, 4).Magnitude())
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	v := New(1, 2)
	_ = v.Scale(10)
	_, _ = v.Add(New(5, 5))
	_ = v.Floor()

	assert.Equal(t, []float32{1, 2}, v.Values())
}

func TestUnitOfZeroVector(t *testing.T) {
	u := New(0, 0).Unit()
	assert.Equal(t, []float32{0, 0}, u.Values())
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 -2.5]", New(1, -2.5).String())
	assert.Equal(t, "[]", New().String())
}

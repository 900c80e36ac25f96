package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/linalg"
)

func TestDense_SetAt(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(5, 5)
	assert.ErrorIs(t, err, linalg.ErrOutOfRange)
}

func TestDense_InvalidDimensions(t *testing.T) {
	_, err := linalg.NewDense(0, 3)
	assert.ErrorIs(t, err, linalg.ErrInvalidDimensions)

	_, err = linalg.NewDense(3, -1)
	assert.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}

func TestDense_Induced(t *testing.T) {
	m, err := linalg.NewDense(3, 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, m.Set(r, c, float64(r*3+c)))
		}
	}

	sub, err := m.Induced([]int{2, 0}, []int{1})
	require.NoError(t, err)
	v, err := sub.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v) // row 2, col 1

	v, err = sub.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v) // row 0, col 1
}

func TestDense_MulVec(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(1, 0, 3))
	require.NoError(t, m.Set(1, 1, 4))

	out, err := m.MulVec([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, out)

	_, err = m.MulVec([]float64{1})
	assert.ErrorIs(t, err, linalg.ErrInvalidDimensions)
}

func TestIdentity(t *testing.T) {
	id, err := linalg.Identity(3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v, err := id.At(r, c)
			require.NoError(t, err)
			if r == c {
				assert.Equal(t, 1.0, v)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

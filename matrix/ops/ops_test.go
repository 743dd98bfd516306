package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liozou/crystalnets-core/matrix"
	"github.com/Liozou/crystalnets-core/matrix/ops"
)

func square(vals [][]float64) *matrix.Dense {
	n := len(vals)
	m, _ := matrix.NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, vals[i][j])
		}
	}
	return m
}

func TestLURejectsNonSquare(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = ops.LU(m)
	assert.ErrorIs(t, err, matrix.ErrMatrixDimensionMismatch)
}

func TestInverseOfIdentityIsIdentity(t *testing.T) {
	m := square([][]float64{{1, 0}, {0, 1}})
	inv, err := ops.Inverse(m)
	require.NoError(t, err)
	v00, _ := inv.At(0, 0)
	v01, _ := inv.At(0, 1)
	v11, _ := inv.At(1, 1)
	assert.Equal(t, 1.0, v00)
	assert.Equal(t, 0.0, v01)
	assert.Equal(t, 1.0, v11)
}

func TestInverseRejectsSingular(t *testing.T) {
	m := square([][]float64{{1, 2}, {2, 4}})
	_, err := ops.Inverse(m)
	assert.ErrorIs(t, err, ops.ErrSingular)
}

func TestInverseMatchesKnownExample(t *testing.T) {
	m := square([][]float64{{4, 7}, {2, 6}})
	inv, err := ops.Inverse(m)
	require.NoError(t, err)
	v00, _ := inv.At(0, 0)
	v01, _ := inv.At(0, 1)
	v10, _ := inv.At(1, 0)
	v11, _ := inv.At(1, 1)
	assert.InDelta(t, 0.6, v00, 1e-9)
	assert.InDelta(t, -0.7, v01, 1e-9)
	assert.InDelta(t, -0.2, v10, 1e-9)
	assert.InDelta(t, 0.4, v11, 1e-9)
}

package cell_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liozou/crystalnets-core/cell"
)

func TestNewCellCubic(t *testing.T) {
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)

	fb := c.Float64Basis()
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			want := 0.0
			if r == col {
				want = 10.0
			}
			assert.InDelta(t, want, fb.At(r, col), 1e-9)
		}
	}
}

func TestCellParametersRoundTrip(t *testing.T) {
	c, err := cell.NewCell(5.4, 6.1, 7.3, 80, 95, 110)
	require.NoError(t, err)

	a, b, cc, alpha, beta, gamma := c.CellParameters()
	af, _ := a.Float64()
	bf, _ := b.Float64()
	ccf, _ := cc.Float64()
	alphaf, _ := alpha.Float64()
	betaf, _ := beta.Float64()
	gammaf, _ := gamma.Float64()

	assert.InDelta(t, 5.4, af, 1e-6)
	assert.InDelta(t, 6.1, bf, 1e-6)
	assert.InDelta(t, 7.3, ccf, 1e-6)
	assert.InDelta(t, 80.0, alphaf, 1e-6)
	assert.InDelta(t, 95.0, betaf, 1e-6)
	assert.InDelta(t, 110.0, gammaf, 1e-6)
}

func TestNewCellDegenerate(t *testing.T) {
	_, err := cell.NewCell(0, 1, 1, 90, 90, 90)
	assert.ErrorIs(t, err, cell.ErrDegenerateCell)

	_, err = cell.NewCell(1, 1, 1, 0, 90, 90)
	assert.ErrorIs(t, err, cell.ErrDegenerateCell)
}

func TestCopyWithBasisAndEquivalents(t *testing.T) {
	c, err := cell.NewCell(1, 1, 1, 90, 90, 90)
	require.NoError(t, err)

	c2 := c.CopyWithEquivalents(nil)
	assert.NotSame(t, c, c2)
	assert.Empty(t, c2.Equivalents)

	c3 := c.CopyWithBasis(c.Basis)
	assert.NotSame(t, c, c3)
}

func TestPeriodicDistance(t *testing.T) {
	c, err := cell.NewCell(10, 10, 10, 90, 90, 90)
	require.NoError(t, err)

	d := c.PeriodicDistance([3]float64{0, 0, 0}, [3]float64{0.9, 0, 0})
	assert.InDelta(t, 1.0, d, 1e-9)

	d = c.PeriodicDistance([3]float64{0, 0, 0}, [3]float64{0.5, 0.5, 0.5})
	assert.InDelta(t, math.Sqrt(3)*5, d, 1e-9)
}

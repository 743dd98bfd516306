package rational_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Liozou/crystalnets-core/rational"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestBackToUnit(t *testing.T) {
	cases := []struct {
		in, want *big.Rat
	}{
		{rat(3, 2), rat(1, 2)},
		{rat(-1, 2), rat(1, 2)},
		{rat(0, 1), rat(0, 1)},
		{rat(7, 3), rat(1, 3)},
	}
	for _, c := range cases {
		got := rational.BackToUnit(c.in)
		assert.Equal(t, 0, got.Cmp(c.want), "BackToUnit(%v) = %v, want %v", c.in, got, c.want)
		assert.True(t, got.Sign() >= 0 && got.Cmp(rat(1, 1)) < 0)

		diff := new(big.Rat).Sub(c.in, got)
		assert.True(t, diff.IsInt(), "r - back_to_unit(r) must be an integer")
	}
}

func TestIsSingular(t *testing.T) {
	id := rational.Identity3()
	singular, err := rational.IsSingular(id)
	assert.NoError(t, err)
	assert.False(t, singular)

	degenerate := rational.Mat3{
		{rat(1, 1), rat(2, 1), rat(3, 1)},
		{rat(2, 1), rat(4, 1), rat(6, 1)},
		{rat(0, 1), rat(1, 1), rat(0, 1)},
	}
	singular, err = rational.IsSingular(degenerate)
	assert.NoError(t, err)
	assert.True(t, singular)
}

func TestIsRank3(t *testing.T) {
	e1 := rational.Vec3{rat(1, 1), rat(0, 1), rat(0, 1)}
	e2 := rational.Vec3{rat(0, 1), rat(1, 1), rat(0, 1)}
	e3 := rational.Vec3{rat(0, 1), rat(0, 1), rat(1, 1)}
	ok, err := rational.IsRank3([]rational.Vec3{e1, e2, e3})
	assert.NoError(t, err)
	assert.True(t, ok)

	coplanar := rational.Vec3{rat(1, 1), rat(1, 1), rat(0, 1)}
	ok, err = rational.IsRank3([]rational.Vec3{e1, e2, coplanar})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestWidenToFit(t *testing.T) {
	small := []*big.Rat{rat(1, 2), rat(-3, 4)}
	w, err := rational.WidenToFit(small)
	assert.NoError(t, err)
	assert.Equal(t, rational.Width8, w)

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	large := []*big.Rat{new(big.Rat).SetInt(huge)}
	w, err = rational.WidenToFit(large)
	assert.NoError(t, err)
	assert.Equal(t, rational.WidthBig, w)
}

package symmetry_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Liozou/crystalnets-core/rational"
	"github.com/Liozou/crystalnets-core/report"
	"github.com/Liozou/crystalnets-core/symmetry"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func TestParseOperatorIdentity(t *testing.T) {
	op, err := symmetry.ParseOperator("x,y,z", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)
	assert.Equal(t, 0, op.M[0][0].Cmp(rat(1, 1)))
	assert.Equal(t, 0, op.M[1][1].Cmp(rat(1, 1)))
	assert.Equal(t, 0, op.M[2][2].Cmp(rat(1, 1)))
	assert.Equal(t, 0, op.T[0].Cmp(rat(0, 1)))
}

func TestParseOperatorOffsets(t *testing.T) {
	op, err := symmetry.ParseOperator("-x+1/2, y, z+1/4", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)
	assert.Equal(t, 0, op.M[0][0].Cmp(rat(-1, 1)))
	assert.Equal(t, 0, op.T[0].Cmp(rat(1, 2)))
	assert.Equal(t, 0, op.M[1][1].Cmp(rat(1, 1)))
	assert.Equal(t, 0, op.T[1].Cmp(rat(0, 1)))
	assert.Equal(t, 0, op.M[2][2].Cmp(rat(1, 1)))
	assert.Equal(t, 0, op.T[2].Cmp(rat(1, 4)))
}

func TestParseOperatorCoefficients(t *testing.T) {
	op, err := symmetry.ParseOperator("2x+1/3y, -y, z", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)
	assert.Equal(t, 0, op.M[0][0].Cmp(rat(2, 1)))
	assert.Equal(t, 0, op.M[0][1].Cmp(rat(1, 3)))
	assert.Equal(t, 0, op.M[1][1].Cmp(rat(-1, 1)))
}

func TestParseOperatorErrors(t *testing.T) {
	_, err := symmetry.ParseOperator("x,y", symmetry.DefaultIdentifiers, report.Default)
	assert.ErrorIs(t, err, symmetry.ErrParse)

	_, err = symmetry.ParseOperator("1/2,y,z", symmetry.DefaultIdentifiers, report.Default)
	assert.ErrorIs(t, err, symmetry.ErrParse)

	_, err = symmetry.ParseOperator("x,y,z,x", symmetry.DefaultIdentifiers, report.Default)
	assert.ErrorIs(t, err, symmetry.ErrParse)
}

func TestParseOperatorWarnsOnDoubleOffset(t *testing.T) {
	rep := &report.Recording{}
	_, err := symmetry.ParseOperator("x+1/2+1/4,y,z", symmetry.DefaultIdentifiers, rep)
	require.NoError(t, err)
	assert.NotEmpty(t, rep.Messages)
}

func TestRenderRoundTrip(t *testing.T) {
	cases := []string{"x,y,z", "-x+1/2,y,z+1/4", "2x+1/3y,-y,z"}
	for _, s := range cases {
		op, err := symmetry.ParseOperator(s, symmetry.DefaultIdentifiers, report.Default)
		require.NoError(t, err)
		rendered := symmetry.Render(op, symmetry.DefaultIdentifiers)
		op2, err := symmetry.ParseOperator(rendered, symmetry.DefaultIdentifiers, report.Default)
		require.NoError(t, err)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				assert.Equal(t, 0, op.M[r][c].Cmp(op2.M[r][c]), "row %d col %d of %q", r, c, s)
			}
			assert.Equal(t, 0, op.T[r].Cmp(op2.T[r]), "offset %d of %q", r, s)
		}
	}
}

func TestDiscoverReferenceIdentifiers(t *testing.T) {
	ids := symmetry.DiscoverReferenceIdentifiers([]string{"-x+1/2,y,z", "a,b,c"})
	assert.Equal(t, [3]string{"a", "b", "c"}, ids)

	ids = symmetry.DiscoverReferenceIdentifiers([]string{"-x+1/2,y,z"})
	assert.Equal(t, symmetry.DefaultIdentifiers, ids)
}

func TestCompose(t *testing.T) {
	e, err := symmetry.ParseOperator("-x,-y,z", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)
	id := symmetry.Identity()
	comp := symmetry.Compose(id, e)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, 0, comp.M[r][c].Cmp(e.M[r][c]))
		}
	}

	x := rational.Vec3{rat(1, 3), rat(1, 4), rat(1, 5)}
	got := comp.Apply(x)
	want := e.Apply(x)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, got[i].Cmp(want[i]))
	}
}

func TestInverse(t *testing.T) {
	op, err := symmetry.ParseOperator("-x+1/2, y, z+1/4", symmetry.DefaultIdentifiers, report.Default)
	require.NoError(t, err)

	inv, err := op.Inverse()
	require.NoError(t, err)

	x := rational.Vec3{rat(1, 3), rat(1, 4), rat(1, 5)}
	roundTrip := inv.Apply(op.Apply(x))
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0, roundTrip[i].Cmp(x[i]), "axis %d", i)
	}

	comp := symmetry.Compose(op, inv)
	id := symmetry.Identity()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, 0, comp.M[r][c].Cmp(id.M[r][c]))
		}
		assert.Equal(t, 0, comp.T[r].Cmp(id.T[r]))
	}
}

func TestInverseSingularOperator(t *testing.T) {
	zero := rational.Mat3{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			zero[r][c] = rat(0, 1)
		}
	}
	degenerate := symmetry.EquivalentPosition{M: zero, T: rational.ZeroVec3()}
	_, err := degenerate.Inverse()
	assert.ErrorIs(t, err, symmetry.ErrNotInvertible)
}

package symmetry

import (
	"math/big"

	"github.com/Liozou/crystalnets-core/rational"
)

// EquivalentPosition is a crystallographic symmetry operator: the
// affine map x ↦ M·x + T over ℚ³ (spec §4.2).
type EquivalentPosition struct {
	M rational.Mat3
	T rational.Vec3
}

// Apply evaluates the operator at x.
func (e EquivalentPosition) Apply(x rational.Vec3) rational.Vec3 {
	return e.M.Apply(x, e.T)
}

// Compose returns the operator equivalent to applying e first, then f:
// f∘e, i.e. x ↦ f.M·(e.M·x+e.T) + f.T.
func Compose(e, f EquivalentPosition) EquivalentPosition {
	var m rational.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sum := new(big.Rat)
			for k := 0; k < 3; k++ {
				sum.Add(sum, new(big.Rat).Mul(f.M[r][k], e.M[k][c]))
			}
			m[r][c] = sum
		}
	}
	t := f.Apply(e.T)
	return EquivalentPosition{M: m, T: t}
}

// Identity returns the identity operator x ↦ x.
func Identity() EquivalentPosition {
	return EquivalentPosition{M: rational.Identity3(), T: rational.ZeroVec3()}
}

// Inverse returns the operator g such that Compose(e, g) and
// Compose(g, e) are both Identity: x ↦ M⁻¹·(x−T). Every operator parsed
// from a well-formed symmetry string has det(M) = ±1 (it is the linear
// part of a crystallographic point-group element), so the only failure
// mode is a caller-constructed EquivalentPosition with a singular M.
func (e EquivalentPosition) Inverse() (EquivalentPosition, error) {
	det := det3(e.M)
	if det.Sign() == 0 {
		return EquivalentPosition{}, ErrNotInvertible
	}

	var adj rational.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			// adj[c][r] is the (r,c) cofactor, transposed for the adjugate.
			adj[c][r] = cofactor3(e.M, r, c)
		}
	}
	var inv rational.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			inv[r][c] = new(big.Rat).Quo(adj[r][c], det)
		}
	}

	negT := rational.Vec3{
		new(big.Rat).Neg(e.T[0]),
		new(big.Rat).Neg(e.T[1]),
		new(big.Rat).Neg(e.T[2]),
	}
	return EquivalentPosition{M: inv, T: inv.Apply(negT, rational.ZeroVec3())}, nil
}

func det3(m rational.Mat3) *big.Rat {
	return new(big.Rat).Add(
		new(big.Rat).Sub(
			new(big.Rat).Mul(m[0][0], sub2(m[1][1], m[1][2], m[2][1], m[2][2])),
			new(big.Rat).Mul(m[0][1], sub2(m[1][0], m[1][2], m[2][0], m[2][2])),
		),
		new(big.Rat).Mul(m[0][2], sub2(m[1][0], m[1][1], m[2][0], m[2][1])),
	)
}

// sub2 returns a*d - b*c, the 2×2 determinant [[a,b],[c,d]].
func sub2(a, b, c, d *big.Rat) *big.Rat {
	return new(big.Rat).Sub(new(big.Rat).Mul(a, d), new(big.Rat).Mul(b, c))
}

// cofactor3 returns the (r,c) cofactor of m: the signed determinant of
// the 2×2 minor obtained by deleting row r and column c.
func cofactor3(m rational.Mat3, r, c int) *big.Rat {
	rows := make([]int, 0, 2)
	for i := 0; i < 3; i++ {
		if i != r {
			rows = append(rows, i)
		}
	}
	cols := make([]int, 0, 2)
	for j := 0; j < 3; j++ {
		if j != c {
			cols = append(cols, j)
		}
	}
	minor := sub2(m[rows[0]][cols[0]], m[rows[0]][cols[1]], m[rows[1]][cols[0]], m[rows[1]][cols[1]])
	if (r+c)%2 != 0 {
		minor.Neg(minor)
	}
	return minor
}

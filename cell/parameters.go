package cell

import (
	"math"
	"math/big"
)

// CellParameters inverts basis construction: it returns the column
// norms (a, b, c) and pairwise angles (alpha, beta, gamma, in degrees)
// of c's basis matrix, via column norms and acos of normalized dot
// products (spec §4.3: "returns norms of columns and pairwise angles
// via acos").
func (c *Cell) CellParameters() (a, b, cc, alpha, beta, gamma *big.Float) {
	prec := c.precision
	if prec == 0 {
		prec = DefaultPrecision
	}

	col := func(j int) [3]*big.Float {
		return [3]*big.Float{c.Basis[0][j], c.Basis[1][j], c.Basis[2][j]}
	}
	dot := func(u, v [3]*big.Float) *big.Float {
		s := newFloat(prec)
		for i := 0; i < 3; i++ {
			s.Add(s, mulBig(u[i], v[i], prec))
		}
		return s
	}
	norm := func(u [3]*big.Float) *big.Float {
		return newFloat(prec).Sqrt(dot(u, u))
	}

	c0, c1, c2 := col(0), col(1), col(2)
	a = norm(c0)
	b = norm(c1)
	cc = norm(c2)

	angle := func(u, v [3]*big.Float, nu, nv *big.Float) *big.Float {
		cosT := divBig(dot(u, v), mulBig(nu, nv, prec), prec)
		f, _ := cosT.Float64()
		if f > 1 {
			f = 1
		} else if f < -1 {
			f = -1
		}
		deg := math.Acos(f) * 180 / math.Pi
		return newFloat(prec).SetFloat64(deg)
	}

	alpha = angle(c1, c2, b, cc) // angle between b and c
	beta = angle(c0, c2, a, cc)  // angle between a and c
	gamma = angle(c0, c1, a, b)  // angle between a and b

	return a, b, cc, alpha, beta, gamma
}

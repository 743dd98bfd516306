package rational

import "math/big"

// Vec3 is a vector in ℚ³, stored as three exact rationals.
type Vec3 [3]*big.Rat

// Mat3 is a 3×3 matrix in ℚ³ˣ³, stored row-major.
type Mat3 [3][3]*big.Rat

// ZeroVec3 returns the zero vector.
func ZeroVec3() Vec3 {
	return Vec3{big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1)}
}

// IsZero reports whether every component of v is exactly zero.
func (v Vec3) IsZero() bool {
	return v[0].Sign() == 0 && v[1].Sign() == 0 && v[2].Sign() == 0
}

// Clone returns a deep copy of v.
func (v Vec3) Clone() Vec3 {
	return Vec3{
		new(big.Rat).Set(v[0]),
		new(big.Rat).Set(v[1]),
		new(big.Rat).Set(v[2]),
	}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i == j {
				m[i][j] = big.NewRat(1, 1)
			} else {
				m[i][j] = big.NewRat(0, 1)
			}
		}
	}
	return m
}

// Col returns column j of m as a Vec3.
func (m Mat3) Col(j int) Vec3 {
	return Vec3{m[0][j], m[1][j], m[2][j]}
}

// Apply computes m·v + t, the affine image of v under (m, t).
func (m Mat3) Apply(v, t Vec3) Vec3 {
	var out Vec3
	for i := 0; i < 3; i++ {
		acc := new(big.Rat).SetInt64(0)
		for j := 0; j < 3; j++ {
			acc.Add(acc, new(big.Rat).Mul(m[i][j], v[j]))
		}
		acc.Add(acc, t[i])
		out[i] = acc
	}
	return out
}

package solver

import "math/big"

// candidatePrimes are tried in order until one leaves A non-singular
// mod p. Three large, well-known primes are more than enough for any
// Laplacian-like system this module ever assembles.
var candidatePrimes = []int64{2147483647, 1000000007, 998244353}

func mod(x, p int64) int64 {
	x %= p
	if x < 0 {
		x += p
	}
	return x
}

// matInverseMod computes A⁻¹ mod p via Gauss-Jordan elimination with the
// identity matrix as the augmented right-hand side. ok is false if A has
// no inverse mod p (some pivot column is entirely zero at elimination
// time), in which case the caller should retry with the next prime.
func matInverseMod(a [][]int64, p int64) (inv [][]int64, ok bool) {
	n := len(a)
	m := make([][]int64, n)
	r := make([][]int64, n)
	for i := 0; i < n; i++ {
		m[i] = make([]int64, n)
		r[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			m[i][j] = mod(a[i][j], p)
		}
		r[i][i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if m[row][col] != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		r[col], r[pivot] = r[pivot], r[col]

		invPivot := modInverse(m[col][col], p)
		for j := 0; j < n; j++ {
			m[col][j] = mod(m[col][j]*invPivot, p)
			r[col][j] = mod(r[col][j]*invPivot, p)
		}

		for row := 0; row < n; row++ {
			if row == col || m[row][col] == 0 {
				continue
			}
			factor := m[row][col]
			for j := 0; j < n; j++ {
				m[row][j] = mod(m[row][j]-factor*m[col][j], p)
				r[row][j] = mod(r[row][j]-factor*r[col][j], p)
			}
		}
	}

	return r, true
}

// modInverse returns a⁻¹ mod p for prime p, computed with
// big.Int.ModInverse and returned as an int64 (candidate moduli are
// below 2³¹, so the result fits).
func modInverse(a, p int64) int64 {
	inv := new(big.Int).ModInverse(big.NewInt(mod(a, p)), big.NewInt(p))
	return inv.Int64()
}

// matVecMulMod returns (A·v) mod p for an n×n matrix A and length-n
// vector v, both reduced mod p on input.
func matVecMulMod(a [][]int64, v []int64, p int64) []int64 {
	n := len(a)
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var s int64
		for j := 0; j < n; j++ {
			s = mod(s+mod(a[i][j], p)*mod(v[j], p), p)
		}
		out[i] = s
	}
	return out
}

package rational

import "math/big"

// IsSingular tests whether the 3×3 rational matrix M is singular.
//
// Algorithm (spec C1): pick the first column index i with a non-zero
// entry in the first row (deterministic tie-break: prefer i=0, then 1,
// then 2); eliminate the first row from the other two columns by
// rational subtraction; return whether the resulting 2×2 block has zero
// determinant. If the first row is entirely zero, M is singular by
// construction (no pivot exists) and elimination is skipped.
//
// The arithmetic itself is done in math/big, which never silently
// overflows; at each tier the elimination factors, the 2×2 block entries
// and the determinant are checked against that tier's bound, and a value
// outside it retries the test at the next wider tier. ErrOverflow is
// returned only when the arbitrary-precision tier's resource cap
// (maxBigBits) is exceeded too.
func IsSingular(m Mat3) (bool, error) {
	return retryWidening(Width8, func(w Width) (bool, bool) {
		return isSingularAt(m, w)
	})
}

func isSingularAt(m Mat3, w Width) (result bool, ok bool) {
	pivot := -1
	for i := 0; i < 3; i++ {
		if m[0][i].Sign() != 0 {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		// first row is entirely zero: no pivot, matrix is singular.
		return true, true
	}

	others := make([]int, 0, 2)
	for j := 0; j < 3; j++ {
		if j != pivot {
			others = append(others, j)
		}
	}

	// block[r][k] = M[r+1][others[k]] - factor_k * M[r+1][pivot], r in {0,1}
	var block [2][2]*big.Rat
	for k, j := range others {
		factor := new(big.Rat).Quo(m[0][j], m[0][pivot])
		if !w.fits(factor.Num()) || !w.fits(factor.Denom()) {
			return false, false
		}
		for r := 0; r < 2; r++ {
			term := new(big.Rat).Mul(factor, m[r+1][pivot])
			v := new(big.Rat).Sub(m[r+1][j], term)
			if !w.fits(v.Num()) || !w.fits(v.Denom()) {
				return false, false
			}
			block[r][k] = v
		}
	}

	det := new(big.Rat).Sub(
		new(big.Rat).Mul(block[0][0], block[1][1]),
		new(big.Rat).Mul(block[0][1], block[1][0]),
	)
	if !w.fits(det.Num()) || !w.fits(det.Denom()) {
		return false, false
	}

	return det.Sign() == 0, true
}

package rational

import "math/big"

// BackToUnit returns r - ⌊r⌋ ∈ [0,1), using Euclidean integer division
// on the numerator/denominator so the result is exact and always
// non-negative regardless of r's sign.
func BackToUnit(r *big.Rat) *big.Rat {
	num := r.Num()
	den := r.Denom() // big.Rat always normalizes Denom() > 0

	floor := new(big.Int)
	rem := new(big.Int)
	floor.DivMod(num, den, rem) // Euclidean: 0 <= rem < den, num = den*floor + rem

	return new(big.Rat).Sub(r, new(big.Rat).SetInt(floor))
}

// FloorVec3 splits v into an integer offset (componentwise floor) and a
// fractional remainder in [0,1)³, as used by net canonicalization (C8).
func FloorVec3(v Vec3) (offset [3]*big.Int, frac Vec3) {
	for i := 0; i < 3; i++ {
		num := v[i].Num()
		den := v[i].Denom()
		f := new(big.Int)
		rem := new(big.Int)
		f.DivMod(num, den, rem)
		offset[i] = f
		frac[i] = new(big.Rat).Sub(v[i], new(big.Rat).SetInt(f))
	}
	return offset, frac
}

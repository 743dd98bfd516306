package solver

import "math/big"

// DixonSolve solves A·X = Y exactly over ℚ via Dixon's p-adic lifting
// (spec §4.7: "Solve over ℤ using Dixon's p-adic lifting ... divide by
// the common denominator to produce ℚ"). A is n×n, Y has n rows of
// 3 entries each; X is returned in the same n×3 shape.
//
// Algorithm: pick a prime p not dividing det(A); compute B = A⁻¹ mod p
// once. For each column of Y independently, lift the solution's p-adic
// digits one at a time (digit_i = B·((Y_col - A·N_i)/p^i) mod p, N_{i+1}
// = N_i + p^i·digit_i) until the accumulated integer N, reduced mod
// p^(i+1), rational-reconstructs at the Wang bound √(p^(i+1)/2) to
// fractions that solve the column exactly. The digit count starts at
// opts' liftStartRounds and doubles whenever reconstruction fails or its
// result does not satisfy A·x = y exactly, capped at liftMaxRounds.
func DixonSolve(a [][]int64, y [][3]int64, opts ...Option) ([][3]*big.Rat, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	n := len(a)
	var inv [][]int64
	var p int64
	found := false
	for _, candidate := range candidatePrimes {
		if m, ok := matInverseMod(a, candidate); ok {
			inv, p, found = m, candidate, true
			break
		}
	}
	if !found {
		return nil, ErrSingularModulus
	}

	x := make([][3]*big.Rat, n)
	for i := range x {
		x[i] = [3]*big.Rat{}
	}

	for col := 0; col < 3; col++ {
		b := make([]int64, n)
		for i := 0; i < n; i++ {
			b[i] = y[i][col]
		}

		rounds := cfg.liftStartRounds
		for {
			result, err := liftColumn(a, b, inv, p, rounds)
			if err == nil {
				for i := 0; i < n; i++ {
					x[i][col] = result[i]
				}
				break
			}
			rounds *= 2
			if rounds > cfg.liftMaxRounds {
				return nil, ErrOverflow
			}
		}
	}

	if cfg.crossCheck {
		if err := CrossCheck(a, y, x); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// liftColumn runs `rounds` p-adic lifting steps for a single right-hand
// side column and attempts rational reconstruction on the result. It
// returns an error if any component fails to reconstruct within the
// Wang bound at this many rounds, or if the reconstructed vector does
// not satisfy A·x = b exactly; the caller retries with more rounds.
func liftColumn(a [][]int64, b []int64, inv [][]int64, p int64, rounds int) ([]*big.Rat, error) {
	n := len(a)
	bigB := make([]*big.Int, n)
	for i, v := range b {
		bigB[i] = big.NewInt(v)
	}

	acc := make([]*big.Int, n)
	for i := range acc {
		acc[i] = big.NewInt(0)
	}

	pk := big.NewInt(1)
	bigP := big.NewInt(p)
	for step := 0; step < rounds; step++ {
		resid := matVecMulBig(a, acc)
		for i := 0; i < n; i++ {
			resid[i] = new(big.Int).Sub(bigB[i], resid[i])
		}
		digitIn := make([]int64, n)
		for i := 0; i < n; i++ {
			q, r := new(big.Int).QuoRem(resid[i], pk, new(big.Int))
			if r.Sign() != 0 {
				return nil, ErrOverflow // should not happen; residual must be divisible by pk
			}
			digitIn[i] = new(big.Int).Mod(q, bigP).Int64()
		}
		digit := matVecMulMod(inv, digitIn, p)
		for i := 0; i < n; i++ {
			acc[i] = new(big.Int).Add(acc[i], new(big.Int).Mul(pk, big.NewInt(digit[i])))
		}
		pk = new(big.Int).Mul(pk, bigP)
	}

	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		r, ok := rationalReconstruct(acc[i], pk)
		if !ok {
			return nil, ErrOverflow
		}
		out[i] = r
	}

	for i := 0; i < n; i++ {
		s := new(big.Rat)
		for j := 0; j < n; j++ {
			if a[i][j] != 0 {
				s.Add(s, new(big.Rat).Mul(new(big.Rat).SetInt64(a[i][j]), out[j]))
			}
		}
		if s.Cmp(new(big.Rat).SetInt64(b[i])) != 0 {
			return nil, ErrOverflow
		}
	}

	return out, nil
}

func matVecMulBig(a [][]int64, v []*big.Int) []*big.Int {
	n := len(a)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		s := big.NewInt(0)
		for j := 0; j < n; j++ {
			if a[i][j] == 0 || v[j].Sign() == 0 {
				continue
			}
			s.Add(s, new(big.Int).Mul(big.NewInt(a[i][j]), v[j]))
		}
		out[i] = s
	}
	return out
}

// rationalReconstruct recovers the unique rational num/den with
// |num|,|den| <= sqrt(modulus/2) such that num ≡ a·den (mod modulus), via
// the truncated extended Euclidean algorithm on (modulus, a mod modulus).
func rationalReconstruct(a, modulus *big.Int) (*big.Rat, bool) {
	if modulus.Sign() <= 0 {
		return nil, false
	}
	bound := new(big.Int).Sqrt(new(big.Int).Rsh(modulus, 1))

	r0 := new(big.Int).Set(modulus)
	r1 := new(big.Int).Mod(a, modulus)
	t0 := big.NewInt(0)
	t1 := big.NewInt(1)

	for r1.CmpAbs(bound) > 0 {
		if r1.Sign() == 0 {
			return nil, false
		}
		q := new(big.Int).Div(r0, r1)
		r0, r1 = r1, new(big.Int).Sub(r0, new(big.Int).Mul(q, r1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	if t1.Sign() == 0 || t1.CmpAbs(bound) > 0 {
		return nil, false
	}

	num := r1
	den := t1
	if den.Sign() < 0 {
		den.Neg(den)
		num.Neg(num)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 && g.Cmp(big.NewInt(1)) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}

	return new(big.Rat).SetFrac(num, den), true
}

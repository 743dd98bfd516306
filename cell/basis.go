package cell

import (
	"math"
	"math/big"
)

// NewCell builds a Cell from the six real cell parameters: lengths a,
// b, c (angstrom) and angles alpha, beta, gamma (degrees), per spec
// §4.3:
//
//	[ a   b·cosγ   c·cosβ
//	  0   b·sinγ   c·(cosα − cosβ·cosγ)/sinγ
//	  0   0        c·ω/sinγ ]
//
// with ω = √(1 − cos²α − cos²β − cos²γ + 2·cosα·cosβ·cosγ).
func NewCell(a, b, c, alpha, beta, gamma float64, opts ...Option) (*Cell, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, ErrDegenerateCell
	}
	for _, ang := range [3]float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, ErrDegenerateCell
		}
	}

	prec := cfg.precision
	rad := math.Pi / 180

	cosA, cosB, cosG := math.Cos(alpha*rad), math.Cos(beta*rad), math.Cos(gamma*rad)
	sinG := math.Sin(gamma * rad)
	if sinG == 0 {
		return nil, ErrDegenerateCell
	}

	bigA := big.NewFloat(a).SetPrec(prec)
	bigB := big.NewFloat(b).SetPrec(prec)
	bigC := big.NewFloat(c).SetPrec(prec)
	bigCosA := big.NewFloat(cosA).SetPrec(prec)
	bigCosB := big.NewFloat(cosB).SetPrec(prec)
	bigCosG := big.NewFloat(cosG).SetPrec(prec)
	bigSinG := big.NewFloat(sinG).SetPrec(prec)

	omegaSq := newFloat(prec).SetInt64(1)
	omegaSq.Sub(omegaSq, mulBig(bigCosA, bigCosA, prec))
	omegaSq.Sub(omegaSq, mulBig(bigCosB, bigCosB, prec))
	omegaSq.Sub(omegaSq, mulBig(bigCosG, bigCosG, prec))
	two := newFloat(prec).SetInt64(2)
	term := mulBig(two, mulBig(bigCosA, mulBig(bigCosB, bigCosG, prec), prec), prec)
	omegaSq.Add(omegaSq, term)
	if omegaSq.Sign() <= 0 {
		return nil, ErrDegenerateCell
	}
	omega := newFloat(prec).Sqrt(omegaSq)

	m := Basis{}
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			m[r][col] = newFloat(prec)
		}
	}

	m[0][0].Set(bigA)
	m[0][1] = mulBig(bigB, bigCosG, prec)
	m[0][2] = mulBig(bigC, bigCosB, prec)

	m[1][1] = mulBig(bigB, bigSinG, prec)
	num := newFloat(prec).Sub(bigCosA, mulBig(bigCosB, bigCosG, prec))
	m[1][2] = divBig(mulBig(bigC, num, prec), bigSinG, prec)

	m[2][2] = divBig(mulBig(bigC, omega, prec), bigSinG, prec)

	return &Cell{
		LatticeSystem:    cfg.latticeSystem,
		SpaceGroupSymbol: cfg.spaceGroupSymbol,
		SpaceGroupNumber: cfg.spaceGroupNumber,
		Basis:            m,
		precision:        prec,
	}, nil
}

func mulBig(x, y *big.Float, prec uint) *big.Float {
	return newFloat(prec).Mul(x, y)
}

func divBig(x, y *big.Float, prec uint) *big.Float {
	return newFloat(prec).Quo(x, y)
}

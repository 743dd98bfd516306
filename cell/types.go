package cell

import (
	"math/big"

	"github.com/Liozou/crystalnets-core/symmetry"
)

// Basis is a 3×3 arbitrary-precision real matrix whose columns are the
// Cartesian coordinates of the a, b, c lattice vectors.
type Basis [3][3]*big.Float

// Cell is a crystallographic unit cell (spec §3 Cell).
type Cell struct {
	LatticeSystem    string
	SpaceGroupSymbol string
	SpaceGroupNumber int
	Basis            Basis
	Equivalents      []symmetry.EquivalentPosition
	precision        uint
}

// Option configures Cell construction.
type Option func(*config)

type config struct {
	precision        uint
	latticeSystem    string
	spaceGroupSymbol string
	spaceGroupNumber int
}

func defaultConfig() config {
	return config{precision: DefaultPrecision}
}

// WithPrecision sets the big.Float mantissa precision, in bits, used
// for every arithmetic step of basis construction.
func WithPrecision(bits uint) Option {
	return func(c *config) { c.precision = bits }
}

// WithLatticeSystem sets the symbolic lattice system tag.
func WithLatticeSystem(s string) Option {
	return func(c *config) { c.latticeSystem = s }
}

// WithSpaceGroup sets the Hermann-Mauguin symbol and tabulated number.
func WithSpaceGroup(symbol string, number int) Option {
	return func(c *config) {
		c.spaceGroupSymbol = symbol
		c.spaceGroupNumber = number
	}
}

// CopyWithEquivalents returns a shallow copy of c with its equivalents
// replaced (spec §3: "mutated only by copy-with-replacement").
func (c *Cell) CopyWithEquivalents(eqs []symmetry.EquivalentPosition) *Cell {
	out := *c
	out.Equivalents = eqs

	return &out
}

// CopyWithBasis returns a shallow copy of c with its basis matrix
// replaced.
func (c *Cell) CopyWithBasis(b Basis) *Cell {
	out := *c
	out.Basis = b

	return &out
}

func newFloat(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

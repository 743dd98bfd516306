package solver

import (
	"math/big"

	"github.com/Liozou/crystalnets-core/rational"
)

// SelectWidth implements spec §4.7's width selection: the narrowest
// integer width in rational.Ladder whose range contains every numerator
// and denominator of x, falling back to arbitrary precision. It is a
// thin domain-specific entry point over rational.WidenToFit, named for
// the C7 step that consumes it.
func SelectWidth(x [][3]*big.Rat) (rational.Width, error) {
	var vals []*big.Rat
	for _, row := range x {
		vals = append(vals, row[0], row[1], row[2])
	}
	return rational.WidenToFit(vals)
}

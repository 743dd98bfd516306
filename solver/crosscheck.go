package solver

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Liozou/crystalnets-core/matrix"
	"github.com/Liozou/crystalnets-core/matrix/ops"
)

// crossCheckTolerance bounds the disagreement allowed between the exact
// Dixon result and an independent float64 LU solve before CrossCheck
// reports a mismatch.
const crossCheckTolerance = 1e-6

// CrossCheck solves the reduced system independently at float64
// precision (via matrix.Dense and matrix/ops' LU-based Inverse) and
// compares it against the exact rational result x, returning an error
// describing the first component whose disagreement exceeds
// crossCheckTolerance. It exists to give the adapted float64 verification
// path (carried over from the teacher's LU/Inverse machinery) a consumer
// in this domain, independent of the exact Dixon lift's own code path.
func CrossCheck(a [][]int64, y [][3]int64, x [][3]*big.Rat) error {
	n := len(a)
	if n == 0 {
		return nil
	}

	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return fmt.Errorf("solver: CrossCheck: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := dense.Set(i, j, float64(a[i][j])); err != nil {
				return fmt.Errorf("solver: CrossCheck: %w", err)
			}
		}
	}

	inv, err := ops.Inverse(dense)
	if err != nil {
		return fmt.Errorf("solver: CrossCheck: %w", err)
	}

	for col := 0; col < 3; col++ {
		for i := 0; i < n; i++ {
			var approx float64
			for j := 0; j < n; j++ {
				invIJ, _ := inv.At(i, j)
				approx += invIJ * float64(y[j][col])
			}
			exact, _ := new(big.Float).SetRat(x[i][col]).Float64()
			if math.Abs(approx-exact) > crossCheckTolerance {
				return fmt.Errorf("solver: CrossCheck: vertex %d axis %d: float64=%g exact=%g disagree", i, col, approx, exact)
			}
		}
	}

	return nil
}

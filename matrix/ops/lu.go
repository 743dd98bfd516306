// Package ops implements the Doolittle LU decomposition and LU-based
// inverse that back solver.CrossCheck's independent float64 re-solve.
package ops

import (
	"fmt"

	"github.com/Liozou/crystalnets-core/matrix"
)

// LU returns the Doolittle decomposition A = L·U of the square matrix
// m: L unit lower triangular, U upper triangular.
func LU(m *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, nil, fmt.Errorf("ops: LU: non-square matrix %dx%d: %w", rows, cols, matrix.ErrMatrixDimensionMismatch)
	}
	n := rows

	l, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("ops: LU: %w", err)
	}
	u, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("ops: LU: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = l.Set(i, i, 1)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				lik, _ := l.At(i, k)
				ukj, _ := u.At(k, j)
				sum += lik * ukj
			}
			aij, _ := m.At(i, j)
			_ = u.Set(i, j, aij-sum)
		}
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				ljk, _ := l.At(j, k)
				uki, _ := u.At(k, i)
				sum += ljk * uki
			}
			aji, _ := m.At(j, i)
			uii, _ := u.At(i, i)
			_ = l.Set(j, i, (aji-sum)/uii)
		}
	}

	return l, u, nil
}

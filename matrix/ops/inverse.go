package ops

import (
	"errors"
	"fmt"

	"github.com/Liozou/crystalnets-core/matrix"
)

// ErrSingular indicates a zero pivot was encountered while inverting,
// i.e. the matrix is singular.
var ErrSingular = errors.New("ops: matrix is singular")

// Inverse returns m⁻¹ via Doolittle LU decomposition followed by
// forward/backward substitution against each standard basis vector.
func Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	if rows != cols {
		return nil, fmt.Errorf("ops: Inverse: non-square %dx%d: %w", rows, cols, matrix.ErrMatrixDimensionMismatch)
	}

	l, u, err := LU(m)
	if err != nil {
		return nil, fmt.Errorf("ops: Inverse: %w", err)
	}

	inv, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ops: Inverse: %w", err)
	}
	y := make([]float64, rows)
	x := make([]float64, rows)

	for col := 0; col < cols; col++ {
		// L·y = e_col
		for i := 0; i < rows; i++ {
			var sum float64
			for k := 0; k < i; k++ {
				lik, _ := l.At(i, k)
				sum += lik * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}

		// U·x = y
		for i := rows - 1; i >= 0; i-- {
			var sum float64
			for k := i + 1; k < cols; k++ {
				uik, _ := u.At(i, k)
				sum += uik * x[k]
			}
			pivot, _ := u.At(i, i)
			if pivot == 0 {
				return nil, fmt.Errorf("ops: Inverse: zero pivot at %d: %w", i, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}

		for i := 0; i < rows; i++ {
			_ = inv.Set(i, col, x[i])
		}
	}

	return inv, nil
}

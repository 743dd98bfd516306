package cell

import "gonum.org/v1/gonum/mat"

// Float64Basis returns a derived, explicitly-lossy float64 view of c's
// basis matrix, for the parts of the pipeline defined in terms of
// continuous distance thresholds (the periodic edge builder and the
// CIF cleanup transforms). It is never fed back into the authoritative
// big.Float or big.Rat paths.
func (c *Cell) Float64Basis() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			f, _ := c.Basis[r][col].Float64()
			d.Set(r, col, f)
		}
	}

	return d
}

// Package solver implements the equilibrium solver (spec C7): assembly
// of the Laplacian-like balance system from a periodic graph, an exact
// integer linear solve via Dixon's p-adic lifting, and selection of the
// narrowest integer width that represents the resulting rationals.
package solver

import (
	"errors"

	"github.com/Liozou/crystalnets-core/rational"
)

// ErrOverflow indicates the exact solve exceeded the arbitrary-precision
// resources available to both the Dixon lift (too many p-adic digits
// needed for rational reconstruction to converge) and the width ladder
// (spec §7's SolverOverflow). It is the same condition rational.ErrOverflow
// names, so the two are aliased rather than given independent identities.
var ErrOverflow = rational.ErrOverflow

// ErrSingularModulus indicates every candidate prime in the Dixon lift
// divides det(A) of the reduced system left after anchoring one vertex.
// For a connected graph that reduced system is non-singular over ℚ, so
// this takes a determinant divisible by all three candidate primes.
var ErrSingularModulus = errors.New("solver: every candidate modulus is singular")

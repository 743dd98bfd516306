// Package cell implements triclinic unit-cell geometry (spec C3): the
// conversion between six real cell parameters (a, b, c, α, β, γ) and the
// upper-triangular Cartesian basis matrix those parameters generate, and
// back.
//
// The authoritative basis matrix is stored as arbitrary-precision
// binary floating point (*big.Float), per the requirement that its
// rounding stay orthogonal to the exact-rational side of the pipeline
// (the symmetry, solver and net packages, whose results are *big.Rat;
// only solver's optional float64 cross-check converts through a
// *big.Float). There is no arbitrary-precision trigonometric function
// in math/big or anywhere in the retrieved pack, so cos/sin/acos are
// evaluated at float64 precision and lifted into big.Float; the
// additions, products and square root that combine them into the basis
// matrix are then carried out at the configured arbitrary precision, so
// at least the compounding of those later steps does not add further
// rounding on top of a float64 result.
package cell

import "errors"

// ErrDegenerateCell indicates cell parameters that do not describe a
// valid lattice (a non-positive length, an angle outside (0°, 180°), or
// ω² ≤ 0).
var ErrDegenerateCell = errors.New("cell: degenerate cell parameters")

// DefaultPrecision is the big.Float mantissa precision, in bits, used
// when no WithPrecision option is given.
const DefaultPrecision = 200

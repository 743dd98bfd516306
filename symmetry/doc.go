// Package symmetry parses and renders crystallographic symmetry
// operators ("equivalent positions") of the form "-x+1/2, y, z+1/4": an
// affine map of ℚ³ given by a 3×3 rational matrix M and a translation
// t, read against three reference identifiers (default "x","y","z").
//
// The parser is a single-pass state machine over a token stream, per
// the design note that such streams "do not require generator/
// coroutine primitives" — it is inlined as a plain loop, not built atop
// a lazy iterator abstraction.
package symmetry

import "errors"

// ErrParse indicates an ill-formed symmetry operator string (spec:
// SymmetryParseError).
var ErrParse = errors.New("symmetry: ill-formed operator string")

// DefaultIdentifiers is used whenever reference-identifier discovery
// fails to find a usable operator-free entry.
var DefaultIdentifiers = [3]string{"x", "y", "z"}

// ErrNotInvertible indicates EquivalentPosition.Inverse was called on an
// operator whose linear part has zero determinant. A correctly parsed
// crystallographic operator never triggers this; it guards against a
// caller-constructed EquivalentPosition instead.
var ErrNotInvertible = errors.New("symmetry: operator is not invertible")

// Package rational provides exact ℚ arithmetic for the crystal-net core,
// together with the "soft widen" integer ladder that lets callers work
// with the narrowest integer width that does not overflow.
//
// Go has no native 128-bit integer, so the ladder is realized over
// *big.Int/*big.Rat at every tier: each tier carries a bound, and an
// operation that produces a numerator or denominator outside the current
// tier's bound is treated as an overflow and retried at the next tier.
// The arithmetic itself never traps; Overflow is a detected condition,
// not a hardware exception, which is the faithful Go translation of "a
// fixed-width multiplication overflowed."
//
// Width 0 (WidthBig) is unbounded arbitrary precision and never
// overflows by construction; ErrOverflow at that tier signals that the
// bit length of some value exceeded maxBigBits, a generous resource cap
// used only to keep pathological inputs from spinning forever.
package rational

import "errors"

// ErrOverflow indicates that exact arithmetic exceeded even the
// arbitrary-precision tier's resource cap (spec: SolverOverflow).
var ErrOverflow = errors.New("rational: overflow exceeded arbitrary-precision resources")

// ErrEmptyMatrix indicates an operation was asked to reason about a
// matrix with zero columns.
var ErrEmptyMatrix = errors.New("rational: matrix has no columns")

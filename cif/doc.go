// Package cif implements the CIF record type and its four pure
// cleanup transforms (spec C4): remove_partial_occupancy,
// prune_collisions, expand_symmetry and keep_atoms. Every transform
// returns a new Record rather than mutating its input, per spec §5
// ("transformations in C4/C6/C8 all produce new records rather than
// mutating inputs").
package cif

import "errors"

// ErrEmptyRecord indicates a record with no atoms where at least one
// is required.
var ErrEmptyRecord = errors.New("cif: record has no atoms")

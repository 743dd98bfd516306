// Package clustering implements C9, the clustering selector: it
// chooses which grouping of atoms becomes the vertex set of the final
// net (individual atoms, caller-supplied residues, or SBUs guessed by
// a metal/non-metal connectivity heuristic) and drives the reduction,
// placement, and canonicalization stages over whichever grouping wins.
package clustering

import "errors"

// ErrMissingAtomInformation indicates a clustering mode could not
// proceed with the element/connectivity information available (spec:
// MissingAtomInformation).
var ErrMissingAtomInformation = errors.New("clustering: missing atom information for requested mode")

// ErrMissingClusters indicates InputClustering was requested but the
// supplied crystal carries no clusters (spec: MissingClusters).
var ErrMissingClusters = errors.New("clustering: input clustering requested but no clusters present")

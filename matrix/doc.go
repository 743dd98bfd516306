// Package matrix provides a dense float64 matrix type used as the
// solver package's optional, independent floating-point verification
// path: when solver.WithCrossCheck is enabled (it is off by default), an
// exact rational linear solve is cross-checked by running the same
// system through LU decomposition in float64 and comparing within
// tolerance, so a bug in the exact path and a bug in this path would
// have to agree to go unnoticed.
//
// Dense is the only concrete matrix type in this module; the teacher's
// Matrix interface abstraction (meant to support adjacency/incidence
// views of a graph) has no use here and was dropped.
package matrix

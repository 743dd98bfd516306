// Package crystalnets is the root of the crystalnets-core module: the
// exact-arithmetic core of a crystallographic topology pipeline.
//
// It turns a parsed crystal description — cell geometry, symmetry
// operators, atom positions, and bonds — into an abstract periodic net
// whose vertices sit at an exact rational barycentric equilibrium.
//
// Subpackages, in dependency order:
//
//	rational/      — exact ℚ arithmetic, singularity/rank tests, integer width ladder
//	symmetry/      — "x,y,z"-style affine symmetry operator parsing and rendering
//	cell/          — triclinic cell geometry (arbitrary-precision Cartesian basis)
//	cif/           — CIF record transforms: dedup, collision pruning, symmetry expansion
//	periodicgraph/ — periodic edge construction, topological reduction, dimensionality
//	solver/        — equilibrium placement via Dixon's p-adic lifting over ℚ
//	net/           — canonicalization into the final CrystalNet form
//	clustering/    — SBU clustering mode selection and the Crystal[T] union type
//	cifio/         — collaborator interfaces (tokenizer, SBU finder, linear solver, ...)
//	graphutil/     — minimal undirected multigraph + connected components + union-find
//	pipeline/      — end-to-end orchestration wiring the above into one call
//
// None of this package's types require thread-safety: every transform
// returns a new, immutable record rather than mutating its input, and a
// single pipeline run executes to completion before the next begins.
package crystalnets

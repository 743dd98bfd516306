// Package cifio defines the collaborator interfaces the core pipeline
// invokes but does not itself implement (spec §6): a generic text
// tokenizer, SBU discovery and coalescing, dimensionality analysis,
// vertex removal and offset shifting on a periodic graph, and an exact
// integer linear solver. It also wires together the default
// implementations that already exist elsewhere in this module
// (periodicgraph, solver, clustering) so the pipeline is runnable
// out of the box without a caller supplying its own collaborators.
package cifio

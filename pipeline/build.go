package pipeline

import (
	"fmt"

	"github.com/Liozou/crystalnets-core/cif"
	"github.com/Liozou/crystalnets-core/clustering"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/report"
)

// errEmptyBonds reports whether the bonds matrix of a non-empty atom
// set is entirely zero: spec §7's EmptyGraph condition, which must be
// raised before BuildEdges ever runs rather than discovered downstream
// as a misreported NonCrystallineInput once every vertex has already
// been stripped for lacking periodicity.
func errEmptyBonds(cleaned *cif.Record) bool {
	return cleaned.NumAtoms() > 0 && len(cleaned.Bonds.Pairs()) == 0
}

// Build runs the CIF record transforms of C4 (partial-occupancy dedup,
// collision pruning, symmetry expansion) in the order spec §4.4 fixes,
// then builds the periodic graph of C5 from the cleaned record's bond
// matrix and fractional positions. The result carries no clusters: a
// raw CIF record never does, InputClustering is the caller's to supply
// separately via a Crystal[Present] built around this Graph/Pos/Elements.
func Build(record *cif.Record, rep report.Reporter) (clustering.Crystal[clustering.None], error) {
	if record.Cell == nil {
		return clustering.Crystal[clustering.None]{}, fmt.Errorf("pipeline: record has no cell")
	}

	cleaned := cif.RemovePartialOccupancy(record, rep)
	cleaned = cif.PruneCollisions(cleaned, rep)
	cleaned = cif.ExpandSymmetry(cleaned, rep)

	if errEmptyBonds(cleaned) {
		return clustering.Crystal[clustering.None]{}, periodicgraph.ErrEmptyGraph
	}

	n := cleaned.NumAtoms()
	elements := make([]string, n)
	for i := 0; i < n; i++ {
		id := cleaned.Ids[i]
		if id < 0 || id >= len(cleaned.Types) {
			return clustering.Crystal[clustering.None]{}, fmt.Errorf("pipeline: atom %d has out-of-range type id %d", i, id)
		}
		elements[i] = cleaned.Types[id]
	}

	basis := cleaned.Cell.Float64Basis()
	edges := periodicgraph.BuildEdges(cleaned.Bonds, basis, cleaned.Pos)
	graph := periodicgraph.New(n, edges)

	return clustering.Crystal[clustering.None]{
		Cell:     cleaned.Cell,
		Elements: elements,
		Pos:      cleaned.Pos,
		Graph:    graph,
	}, nil
}

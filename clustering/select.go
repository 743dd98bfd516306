package clustering

import (
	"fmt"

	"github.com/Liozou/crystalnets-core/net"
	"github.com/Liozou/crystalnets-core/periodicgraph"
	"github.com/Liozou/crystalnets-core/report"
	"github.com/Liozou/crystalnets-core/solver"
)

// Mode selects how C9 groups atoms into the net's vertex set (spec §4.9).
type Mode int

const (
	InputClustering Mode = iota
	EachVertexClustering
	MOFClustering
	GuessClustering
	AutomaticClustering
)

// Select drives C6 (reduction + dimensionality filtering), C7
// (equilibrium placement), and C8 (canonicalization) over whichever
// vertex grouping mode picks, per spec §4.9's table. crystal must be
// either a Crystal[Present] or a Crystal[None]; finder is consulted
// only by MOFClustering/GuessClustering/AutomaticClustering. rep
// receives every warning C6's dimensionality filtering emits.
func Select(mode Mode, crystal AnyCrystal, finder SBUFinder, rep report.Reporter, opts ...solver.Option) (*net.CrystalNet, error) {
	switch mode {
	case InputClustering:
		present, ok := crystal.(Crystal[Present])
		if !ok {
			return nil, ErrMissingClusters
		}
		coalesced, err := Coalesce(present)
		if err != nil {
			return nil, err
		}
		return buildNet(coalesced, rep, opts...)

	case EachVertexClustering:
		flattened, err := eachVertex(crystal)
		if err != nil {
			return nil, err
		}
		return buildNet(flattened, rep, opts...)

	case MOFClustering:
		flattened, err := eachVertex(crystal)
		if err != nil {
			return nil, err
		}
		coalesced, err := runSBUs(flattened, finder)
		if err != nil {
			return nil, err
		}
		return buildNet(coalesced, rep, opts...)

	case GuessClustering:
		flattened, err := eachVertex(crystal)
		if err != nil {
			return nil, err
		}
		coalesced, err := runSBUs(flattened, finder)
		switch {
		case err == nil:
			result, buildErr := buildNet(coalesced, rep, opts...)
			if buildErr != nil {
				return nil, buildErr
			}
			if result.NumVertices() > 1 {
				return result, nil
			}
		case err != ErrMissingAtomInformation:
			return nil, err
		}
		return buildNet(flattened, rep, opts...)

	case AutomaticClustering:
		if present, ok := crystal.(Crystal[Present]); ok {
			coalesced, err := Coalesce(present)
			if err != nil {
				return nil, err
			}
			return buildNet(coalesced, rep, opts...)
		}
		return Select(GuessClustering, crystal, finder, rep, opts...)

	default:
		return nil, fmt.Errorf("clustering: unknown mode %d", mode)
	}
}

// eachVertex returns crystal as a Crystal[None], discarding any
// clusters it carried (spec §4.9 EachVertexClustering).
func eachVertex(crystal AnyCrystal) (Crystal[None], error) {
	switch c := crystal.(type) {
	case Crystal[None]:
		return c, nil
	case Crystal[Present]:
		return Crystal[None]{Cell: c.Cell, Elements: c.Elements, State: None{}, Pos: c.Pos, Graph: c.Graph}, nil
	default:
		return Crystal[None]{}, fmt.Errorf("clustering: unsupported crystal type %T", crystal)
	}
}

// runSBUs runs finder over crystal and coalesces the result, failing
// with ErrMissingAtomInformation if it collapses to at most one
// cluster (spec §4.9 MOFClustering).
func runSBUs(crystal Crystal[None], finder SBUFinder) (Crystal[None], error) {
	clusters, err := finder.FindSBUs(crystal)
	if err != nil {
		return Crystal[None]{}, err
	}
	if len(clusters.Members) <= 1 {
		return Crystal[None]{}, ErrMissingAtomInformation
	}
	return Coalesce(Crystal[Present]{Cell: crystal.Cell, Elements: crystal.Elements, State: Present{Clusters: clusters}, Pos: crystal.Pos, Graph: crystal.Graph})
}

// buildNet runs C6-C8 over crystal's graph and placement, producing
// the final net.
func buildNet(crystal Crystal[None], rep report.Reporter, opts ...solver.Option) (*net.CrystalNet, error) {
	trimmed, vmap1 := periodicgraph.TrimTopology(crystal.Graph)
	crystalline, vmap2, err := periodicgraph.SelectCrystallineComponent(trimmed, rep)
	if err != nil {
		return nil, err
	}

	elements := make([]string, len(vmap2))
	for i, j := range vmap2 {
		elements[i] = crystal.Elements[vmap1[j]]
	}

	x, err := solver.Solve(crystalline, opts...)
	if err != nil {
		return nil, err
	}
	width, err := solver.SelectWidth(x)
	if err != nil {
		return nil, err
	}

	return net.Canonicalize(crystal.Cell, elements, crystalline, x, width)
}

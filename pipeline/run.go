package pipeline

import (
	"github.com/Liozou/crystalnets-core/cif"
	"github.com/Liozou/crystalnets-core/clustering"
	"github.com/Liozou/crystalnets-core/net"
	"github.com/Liozou/crystalnets-core/report"
	"github.com/Liozou/crystalnets-core/solver"
)

// Run is the end-to-end entry point: it builds an unclustered crystal
// from record via Build, then drives C6-C9 via clustering.Select under
// the given mode, producing a canonicalized CrystalNet.
func Run(record *cif.Record, mode clustering.Mode, finder clustering.SBUFinder, rep report.Reporter, opts ...solver.Option) (*net.CrystalNet, error) {
	crystal, err := Build(record, rep)
	if err != nil {
		return nil, err
	}
	return clustering.Select(mode, crystal, finder, rep, opts...)
}

package periodicgraph

// ShiftRepresentatives returns a graph isomorphic to g in which vertex
// v's canonical image has been translated by shifts[v]: every edge's
// offset is adjusted by shifts[v] - shifts[u] so the underlying
// periodic structure is unchanged, only which image of each vertex is
// treated as the reference one (spec §6 collaborator
// offset_representatives!). Vertex labels are untouched; this is the
// pure offset-only half of the relabel-and-reoffset step net.Canonicalize
// performs together with a vertex permutation.
func ShiftRepresentatives(g *PeriodicGraph3D, shifts []Offset) *PeriodicGraph3D {
	edges := make([]PeriodicEdge3D, len(g.Edges()))
	for i, e := range g.Edges() {
		edges[i] = PeriodicEdge3D{
			U: e.U,
			V: e.V,
			O: e.O.Add(shifts[e.V]).Sub(shifts[e.U]),
		}
	}
	return New(g.NumVertices(), edges)
}

package graphutil

// DSU is a disjoint-set (union-find) structure over integer elements
// [0, n), with path compression and union by rank. Grounded on the
// inline union-find built by the teacher's prim_kruskal.Kruskal, lifted
// out into its own reusable type. No other package of this module uses
// it at present; clustering's connectivity goes through
// ConnectedComponents.
type DSU struct {
	parent []int
	rank   []int
}

// NewDSU returns a DSU over n singleton sets.
func NewDSU(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of the set containing u, compressing
// the path from u to the root.
func (d *DSU) Find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// Union merges the sets containing u and v, returning true if they
// were previously distinct.
func (d *DSU) Union(u, v int) bool {
	ru, rv := d.Find(u), d.Find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}

// Connected reports whether u and v are in the same set.
func (d *DSU) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Sets returns the current partition as groups of elements, ordered by
// each group's smallest element.
func (d *DSU) Sets() [][]int {
	byRoot := make(map[int][]int)
	for i := range d.parent {
		r := d.Find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	out := make([][]int, 0, len(byRoot))
	for _, g := range byRoot {
		out = append(out, g)
	}
	// stable, deterministic ordering by first element, since map
	// iteration order is not.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j][0] < out[j-1][0]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

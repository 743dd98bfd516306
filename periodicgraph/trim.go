package periodicgraph

import "sort"

type liveEdge struct {
	u, v    int
	o       Offset
	removed bool
}

type incidence struct {
	edge  *liveEdge
	other int
	o     Offset // offset from this vertex to other's image
}

type trimmer struct {
	alive []bool
	adj   map[int][]*incidence
}

func newTrimmer(g *PeriodicGraph3D) *trimmer {
	t := &trimmer{alive: make([]bool, g.NumVertices()), adj: make(map[int][]*incidence)}
	for i := range t.alive {
		t.alive[i] = true
	}
	for _, e := range g.Edges() {
		le := &liveEdge{u: e.U, v: e.V, o: e.O}
		if e.U == e.V {
			t.adj[e.U] = append(t.adj[e.U], &incidence{edge: le, other: e.V, o: e.O})
			t.adj[e.U] = append(t.adj[e.U], &incidence{edge: le, other: e.V, o: e.O.Neg()})
			continue
		}
		t.adj[e.U] = append(t.adj[e.U], &incidence{edge: le, other: e.V, o: e.O})
		t.adj[e.V] = append(t.adj[e.V], &incidence{edge: le, other: e.U, o: e.O.Neg()})
	}

	return t
}

func (t *trimmer) degree(v int) int {
	d := 0
	for _, inc := range t.adj[v] {
		if !inc.edge.removed {
			d++
		}
	}

	return d
}

func (t *trimmer) liveIncidences(v int) []*incidence {
	var out []*incidence
	for _, inc := range t.adj[v] {
		if !inc.edge.removed {
			out = append(out, inc)
		}
	}

	return out
}

func (t *trimmer) addEdge(u, v int, o Offset) {
	if u == v && o.IsZero() {
		// the two replaced edges cancelled out exactly; no
		// connection survives the splice.
		return
	}
	le := &liveEdge{u: u, v: v, o: o}
	if u == v {
		t.adj[u] = append(t.adj[u], &incidence{edge: le, other: v, o: o})
		t.adj[u] = append(t.adj[u], &incidence{edge: le, other: v, o: o.Neg()})
		return
	}
	t.adj[u] = append(t.adj[u], &incidence{edge: le, other: v, o: o})
	t.adj[v] = append(t.adj[v], &incidence{edge: le, other: u, o: o.Neg()})
}

// removeDegreeAtMostOne removes every reachable vertex of degree <= 1,
// cascading through neighbors it disconnects.
func (t *trimmer) removeDegreeAtMostOne() bool {
	changed := false
	queue := make([]int, 0)
	for v := range t.alive {
		if t.alive[v] && t.degree(v) <= 1 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if !t.alive[v] || t.degree(v) > 1 {
			continue
		}
		changed = true
		for _, inc := range t.liveIncidences(v) {
			inc.edge.removed = true
			if inc.other != v && t.alive[inc.other] && t.degree(inc.other) <= 1 {
				queue = append(queue, inc.other)
			}
		}
		t.alive[v] = false
	}

	return changed
}

// spliceDegreeTwo replaces every degree-exactly-2 vertex by a direct
// edge between its two neighbors (spec §4.6 step 2).
func (t *trimmer) spliceDegreeTwo() bool {
	changed := false
	candidates := make([]int, 0)
	for v := range t.alive {
		if t.alive[v] && t.degree(v) == 2 {
			candidates = append(candidates, v)
		}
	}
	for _, v := range candidates {
		if !t.alive[v] || t.degree(v) != 2 {
			continue
		}
		incs := t.liveIncidences(v)
		inc1, inc2 := incs[0], incs[1]

		if inc1.edge == inc2.edge {
			// v's only connection is a single self-loop: it has no
			// other endpoint to reconnect, so it is irreducible.
			continue
		}

		inc1.edge.removed = true
		inc2.edge.removed = true
		t.alive[v] = false
		changed = true
		t.addEdge(inc1.other, inc2.other, inc2.o.Sub(inc1.o))
	}

	return changed
}

// Sub returns the componentwise difference o - p.
func (o Offset) Sub(p Offset) Offset {
	return Offset{o[0] - p[0], o[1] - p[1], o[2] - p[2]}
}

// TrimTopology alternates degree-<=1 pruning and degree-2 splicing
// until neither applies (spec §4.6), returning the reduced graph and a
// vmap from reduced vertex index to original vertex index.
func TrimTopology(g *PeriodicGraph3D) (*PeriodicGraph3D, []int) {
	t := newTrimmer(g)
	for {
		c1 := t.removeDegreeAtMostOne()
		c2 := t.spliceDegreeTwo()
		if !c1 && !c2 {
			break
		}
	}

	var vmap []int
	oldToNew := make(map[int]int)
	for v := 0; v < g.NumVertices(); v++ {
		if t.alive[v] {
			oldToNew[v] = len(vmap)
			vmap = append(vmap, v)
		}
	}

	seen := make(map[*liveEdge]bool)
	var edges []PeriodicEdge3D
	for v := range t.adj {
		if !t.alive[v] {
			continue
		}
		for _, inc := range t.liveIncidences(v) {
			if seen[inc.edge] {
				continue
			}
			seen[inc.edge] = true
			edges = append(edges, PeriodicEdge3D{U: oldToNew[inc.edge.u], V: oldToNew[inc.edge.v], O: inc.edge.o})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})

	return New(len(vmap), edges), vmap
}

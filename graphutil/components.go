package graphutil

// ConnectedComponents partitions g's vertices into connected
// components via depth-first search, returning each component as the
// sorted-by-discovery-order list of its vertex indices. Grounded on the
// teacher's dfs.DFS full-traversal forest mode, trimmed to the single
// goroutine, unweighted, undirected case this module needs.
func ConnectedComponents(g *Graph) [][]int {
	visited := make([]bool, g.NumVertices())
	var comps [][]int

	for v := 0; v < g.NumVertices(); v++ {
		if visited[v] {
			continue
		}
		var comp []int
		stack := []int{v}
		visited[v] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, w := range g.Neighbors(u) {
				if !visited[w] {
					visited[w] = true
					stack = append(stack, w)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns, for each vertex, the index into the result of
// ConnectedComponents(g) that it belongs to.
func ComponentOf(g *Graph, comps [][]int) []int {
	label := make([]int, g.NumVertices())
	for i, comp := range comps {
		for _, v := range comp {
			label[v] = i
		}
	}

	return label
}

// File: derived.go
// Role: lazily-computed, cache-invalidated quantities derived from adjacency:
// composite adjacency, symmetrised composite adjacency, neighbour lists,
// and per-channel degree/self-loop vectors.
package graph

import "sort"

// CompositeAdj returns Σ_c A_c, computed once and cached until the next
// mutation.
func (g *Graph) CompositeAdj() ChannelMatrix {
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if g.compositeValid {
		return g.compositeAdj
	}
	n := g.NumNodes()
	_ = n
	out := make(ChannelMatrix)
	g.muAdj.RLock()
	for _, m := range g.adj {
		for i, row := range m {
			for j, c := range row {
				out.Add(i, j, c)
			}
		}
	}
	g.muAdj.RUnlock()
	g.compositeAdj = out
	g.compositeValid = true
	return out
}

// SymCompositeAdj returns composite_adj + composite_adjᵀ, cached.
func (g *Graph) SymCompositeAdj() ChannelMatrix {
	comp := g.CompositeAdj()
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if g.symValid {
		return g.symAdj
	}
	out := make(ChannelMatrix, len(comp))
	for i, row := range comp {
		for j, c := range row {
			out.Add(i, j, c)
			out.Add(j, i, c)
		}
	}
	g.symAdj = out
	g.symValid = true
	return out
}

// IsNeighbor reports whether sym_composite_adj[i][j] > 0.
func (g *Graph) IsNeighbor(i, j int) bool {
	return g.SymCompositeAdj().At(i, j) > 0
}

// Neighbors returns the sorted list of nodes j with IsNeighbor(i, j), cached
// per-graph until the next mutation.
func (g *Graph) Neighbors(i int) []int {
	g.muCache.Lock()
	if g.neighborsValid && i < len(g.neighbors) {
		out := g.neighbors[i]
		g.muCache.Unlock()
		return out
	}
	g.muCache.Unlock()

	sym := g.SymCompositeAdj()
	n := g.NumNodes()

	g.muCache.Lock()
	defer g.muCache.Unlock()
	if !g.neighborsValid {
		g.neighbors = make([][]int, n)
		for v := 0; v < n; v++ {
			row := sym[v]
			nbrs := make([]int, 0, len(row))
			for j := range row {
				nbrs = append(nbrs, j)
			}
			sort.Ints(nbrs)
			g.neighbors[v] = nbrs
		}
		g.neighborsValid = true
	}
	if i < 0 || i >= len(g.neighbors) {
		return nil
	}
	return g.neighbors[i]
}

// ensureDegrees computes per-channel in/out-degree and self-loop vectors.
func (g *Graph) ensureDegrees() {
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if g.degValid {
		return
	}
	nc := g.NumChannels()
	n := g.NumNodes()
	g.inDeg = make([][]int, nc)
	g.outDeg = make([][]int, nc)
	g.selfLoop = make([][]int, nc)
	g.muAdj.RLock()
	for c := 0; c < nc; c++ {
		g.inDeg[c] = make([]int, n)
		g.outDeg[c] = make([]int, n)
		g.selfLoop[c] = make([]int, n)
		for i, row := range g.adj[c] {
			for j, cnt := range row {
				g.outDeg[c][i] += cnt
				g.inDeg[c][j] += cnt
				if i == j {
					g.selfLoop[c][i] += cnt
				}
			}
		}
	}
	g.muAdj.RUnlock()
	g.degValid = true
}

// InDegree returns the channel-c in-degree of node i (sum of incoming
// multiplicities, self-loops included once as part of both directions).
func (g *Graph) InDegree(c, i int) int {
	g.ensureDegrees()
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if c < 0 || c >= len(g.inDeg) {
		return 0
	}
	return g.inDeg[c][i]
}

// OutDegree returns the channel-c out-degree of node i.
func (g *Graph) OutDegree(c, i int) int {
	g.ensureDegrees()
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if c < 0 || c >= len(g.outDeg) {
		return 0
	}
	return g.outDeg[c][i]
}

// SelfLoopCount returns the channel-c self-loop multiplicity of node i.
func (g *Graph) SelfLoopCount(c, i int) int {
	g.ensureDegrees()
	g.muCache.Lock()
	defer g.muCache.Unlock()
	if c < 0 || c >= len(g.selfLoop) {
		return 0
	}
	return g.selfLoop[c][i]
}

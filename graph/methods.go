// File: methods.go
// Role: cloning and cross-channel helper queries used by the candidate
// structure and filter pipeline.
package graph

// Clone returns a deep copy of the Graph: nodes, channels, and all
// per-channel adjacency. The clone starts unfrozen even if the receiver was
// frozen, since CandidateStructure.Copy() produces branch-local working
// copies that the matcher mutates (shrinking candidates, never the graph
// itself, but Clone is generic and used by callers that do mutate).
func (g *Graph) Clone() *Graph {
	g.muNodes.RLock()
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()
	defer g.muNodes.RUnlock()

	out := NewGraph(g.name)
	out.nodes = append([]string(nil), g.nodes...)
	out.index = make(map[string]int, len(g.index))
	for k, v := range g.index {
		out.index[k] = v
	}
	out.channels = append([]string(nil), g.channels...)
	out.chanIndex = make(map[string]int, len(g.chanIndex))
	for k, v := range g.chanIndex {
		out.chanIndex[k] = v
	}
	out.adj = make([]ChannelMatrix, len(g.adj))
	for c, m := range g.adj {
		out.adj[c] = m.Clone()
	}
	return out
}

// DominatesAt reports whether, for channel c, this graph's multiplicity at
// (i,j) is >= the multiplicity of other at (oi,oj). Used by the clique
// condition and the candidate-edge check: a template edge is satisfied by a
// world edge when the world side dominates the template side entry-wise.
func (g *Graph) DominatesAt(c, i, j int, tmpl *Graph, ti, tj int) bool {
	return g.Count(c, i, j) >= tmpl.Count(c, ti, tj)
}

// InducedDominates reports whether, for every channel c with clique[c] > 0,
// the induced submatrix of g on worldVerts dominates (entry-wise) the
// induced submatrix of tmpl on tmplVerts, where clique[c] is the template's
// per-channel clique multiplicity (identical for every ordered pair of
// distinct members of a structurally-equivalent supernode). len(worldVerts)
// must equal len(tmplVerts).
func (g *Graph) InducedDominates(tmpl *Graph, tmplVerts, worldVerts []int, clique []int) bool {
	k := len(tmplVerts)
	for c, cliqueCount := range clique {
		if cliqueCount <= 0 {
			continue
		}
		for a := 0; a < k; a++ {
			for b := 0; b < k; b++ {
				if a == b {
					continue
				}
				if g.Count(c, worldVerts[a], worldVerts[b]) < cliqueCount {
					return false
				}
			}
		}
	}
	return true
}

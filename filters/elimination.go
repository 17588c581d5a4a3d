// File: elimination.go
// Role: global all-different propagation (Régin / van Hoeve) over the
// bipartite candidate graph (T, W, edges = M).
package filters

import (
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/internal/graphalgo"
)

// Elimination clears any (t,w) edge that belongs to no maximum matching of
// the bipartite candidate graph. This is the classic AllDifferent filtering
// algorithm: build a maximum matching with Hopcroft-Karp, orient every
// candidate edge t->w except matched edges which are reversed to w->t, then
// an edge survives iff it is itself matched, its endpoints share an SCC of
// that digraph, or w can reach an unmatched world vertex in it (the edge
// lies on an even alternating path ending at a free vertex).
type Elimination struct{}

// Name identifies this filter for logging.
func (Elimination) Name() string { return "elimination" }

// Apply implements Filter.
func (Elimination) Apply(template, world *graph.Graph, m *candidate.Matrix) bool {
	nt := template.NumNodes()
	nw := world.NumNodes()
	if nt == 0 || nw == 0 {
		return false
	}

	adj := func(t int) []int { return m.CandidatesOf(t) }
	matchLeft, matchRight := graphalgo.HopcroftKarp(nt, nw, adj)

	// Vertex v in the combined digraph: 0..nt-1 are template nodes,
	// nt..nt+nw-1 are world nodes.
	n := nt + nw
	sccAdj := func(v int) []int {
		if v < nt {
			t := v
			if r := matchLeft[t]; r != -1 {
				// Matched edge is oriented w->t only; it contributes no
				// forward t->w edge to the residual digraph.
				var out []int
				for _, w := range adj(t) {
					if w != r {
						out = append(out, nt+w)
					}
				}
				return out
			}
			out := make([]int, 0, len(adj(t)))
			for _, w := range adj(t) {
				out = append(out, nt+w)
			}
			return out
		}
		w := v - nt
		if l := matchRight[w]; l != -1 {
			return []int{l}
		}
		return nil
	}
	comp := graphalgo.StronglyConnectedComponents(n, sccAdj)

	// reachFree[w]: world vertex w is free, or reaches a free world vertex
	// through its matched template node and that node's unmatched edges.
	reachFree := make([]bool, nw)
	for w := 0; w < nw; w++ {
		reachFree[w] = matchRight[w] == -1
	}
	for grew := true; grew; {
		grew = false
		for w := 0; w < nw; w++ {
			if reachFree[w] {
				continue
			}
			for _, v := range sccAdj(matchRight[w]) {
				if reachFree[v-nt] {
					reachFree[w], grew = true, true
					break
				}
			}
		}
	}

	changed := false
	for t := 0; t < nt; t++ {
		matchedW := matchLeft[t]
		for _, w := range m.CandidatesOf(t) {
			if w == matchedW {
				continue
			}
			if comp[t] == comp[nt+w] || reachFree[w] {
				continue
			}
			m.Clear(t, w)
			changed = true
		}
	}
	return changed
}

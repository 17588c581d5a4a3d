// File: neighborhood.go
// Role: per-pair Hall-condition (LAD-style) filter.
package filters

import (
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/internal/graphalgo"
)

// Neighborhood removes (t,w) when the bipartite graph "neighbours of t
// versus candidate-neighbours of w" admits no matching saturating N(t),
// i.e. Hall's condition fails within the allowed noise budget. NoiseBudget
// is the maximum Hall deficiency tolerated before a candidate is removed
// (0 = exact LAD filtering, the default via Neighborhood{}).
type Neighborhood struct {
	NoiseBudget int
}

// Name identifies this filter for logging.
func (Neighborhood) Name() string { return "neighborhood" }

// Apply implements Filter. The pipeline's outer fixpoint loop (Run) plays
// the role of the original's "re-enqueue a node's neighbours on row
// change" queue: every pass re-examines every candidate pair.
func (n Neighborhood) Apply(template, world *graph.Graph, m *candidate.Matrix) bool {
	changed := false
	for t := 0; t < template.NumNodes(); t++ {
		tNbrs := template.Neighbors(t)
		if len(tNbrs) == 0 {
			continue
		}
		for _, w := range m.CandidatesOf(t) {
			wNbrs := world.Neighbors(w)
			wSet := make(map[int]struct{}, len(wNbrs))
			for _, wp := range wNbrs {
				wSet[wp] = struct{}{}
			}
			adj := func(l int) []int {
				u := tNbrs[l]
				var out []int
				for idx, wp := range wNbrs {
					if _, ok := wSet[wp]; ok && m.Get(u, wp) {
						out = append(out, idx)
					}
				}
				return out
			}
			matchLeft, _ := graphalgo.HopcroftKarp(len(tNbrs), len(wNbrs), adj)
			matched := 0
			for _, r := range matchLeft {
				if r != -1 {
					matched++
				}
			}
			deficiency := len(tNbrs) - matched
			if deficiency > n.NoiseBudget {
				m.Clear(t, w)
				changed = true
			}
		}
	}
	return changed
}

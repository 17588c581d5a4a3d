// File: ordering.go
// Role: Ordering — static initial ordering plus adaptive next_supernode
// selection, spec.md §4.4.
package match

import (
	"sort"

	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/internal/graphalgo"
	"github.com/tnguyen-labs/submatch/supernode"
)

// Ordering precomputes template-side quantities (degree, supernode
// adjacency) that do not depend on the current candidate matrix, and
// exposes both a static initial order and an adaptive next_supernode.
type Ordering struct {
	template   *graph.Graph
	supernodes []supernode.TemplateNode
	rootToIdx  map[int]int
	neighbors  map[int][]int // supernode root -> adjacent supernode roots (deduped, excl. self)
}

// New builds an Ordering over template's structural supernodes.
func New(template *graph.Graph, supernodes []supernode.TemplateNode) *Ordering {
	o := &Ordering{
		template:   template,
		supernodes: supernodes,
		rootToIdx:  make(map[int]int, len(supernodes)),
		neighbors:  make(map[int][]int, len(supernodes)),
	}
	rootOf := make(map[int]int, template.NumNodes())
	for i, st := range supernodes {
		o.rootToIdx[st.Root()] = i
		for _, v := range st.Vertices() {
			rootOf[v] = st.Root()
		}
	}
	for _, st := range supernodes {
		seen := make(map[int]bool)
		for _, v := range st.Vertices() {
			for _, nbr := range template.Neighbors(v) {
				r := rootOf[nbr]
				if r != st.Root() && !seen[r] {
					seen[r] = true
					o.neighbors[st.Root()] = append(o.neighbors[st.Root()], r)
				}
			}
		}
		sort.Ints(o.neighbors[st.Root()])
	}
	return o
}

// degree returns the sum, over all channels, of in+out degree of st's root.
func (o *Ordering) degree(st supernode.TemplateNode) int {
	nc := o.template.NumChannels()
	d := 0
	for c := 0; c < nc; c++ {
		d += o.template.InDegree(c, st.Root()) + o.template.OutDegree(c, st.Root())
	}
	return d
}

// neighborCount returns the number of distinct adjacent supernodes.
func (o *Ordering) neighborCount(st supernode.TemplateNode) int {
	return len(o.neighbors[st.Root()])
}

// StaticOrder sorts supernodes ascending by candidate_count, then
// descending by degree, then descending by neighbor_count.
func (o *Ordering) StaticOrder(c *cs.CandidateStructure) []supernode.TemplateNode {
	out := make([]supernode.TemplateNode, len(o.supernodes))
	copy(out, o.supernodes)
	sort.Slice(out, func(i, j int) bool {
		ci, cj := c.M.RowPopcount(out[i].Root()), c.M.RowPopcount(out[j].Root())
		if ci != cj {
			return ci < cj
		}
		di, dj := o.degree(out[i]), o.degree(out[j])
		if di != dj {
			return di > dj
		}
		return o.neighborCount(out[i]) > o.neighborCount(out[j])
	})
	return out
}

// DistanceOrder picks the supernode minimising candidate_count/neighbor_count
// as a BFS root (ties broken by root index), runs BFS over supernode-level
// adjacency, and orders primarily by ascending BFS distance, then by
// ascending candidate score.
func (o *Ordering) DistanceOrder(c *cs.CandidateStructure) []supernode.TemplateNode {
	best := -1
	bestScore := 0.0
	for _, st := range o.supernodes {
		nc := o.neighborCount(st)
		if nc == 0 {
			continue
		}
		score := float64(c.M.RowPopcount(st.Root())) / float64(nc)
		if best == -1 || score < bestScore {
			best = st.Root()
			bestScore = score
		}
	}
	if best == -1 {
		return o.StaticOrder(c)
	}

	idxOfRoot := make(map[int]int, len(o.supernodes))
	for i, st := range o.supernodes {
		idxOfRoot[st.Root()] = i
	}
	// BFSDistances is indexed over 0..n-1 by position, not root value, so we
	// operate over the supernode index space directly.
	n := len(o.supernodes)
	adjByIdx := func(i int) []int {
		var out []int
		for _, r := range o.neighbors[o.supernodes[i].Root()] {
			out = append(out, idxOfRoot[r])
		}
		return out
	}
	dist := graphalgo.BFSDistances(n, idxOfRoot[best], adjByIdx)

	out := make([]supernode.TemplateNode, len(o.supernodes))
	copy(out, o.supernodes)
	sort.Slice(out, func(i, j int) bool {
		di, dj := dist[idxOfRoot[out[i].Root()]], dist[idxOfRoot[out[j].Root()]]
		if di != dj {
			return di < dj
		}
		return c.M.RowPopcount(out[i].Root()) < c.M.RowPopcount(out[j].Root())
	})
	return out
}

// NextSupernode returns the unmatched supernode with the smallest current
// candidate count, tie-broken by largest |S_T| then highest degree.
func (o *Ordering) NextSupernode(c *cs.CandidateStructure, pm *PartialMatch) (supernode.TemplateNode, bool) {
	best := -1
	for i, st := range o.supernodes {
		if pm.IsMatched(st.Root()) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		cur, bst := o.supernodes[i], o.supernodes[best]
		cc, bc := c.M.RowPopcount(cur.Root()), c.M.RowPopcount(bst.Root())
		switch {
		case cc != bc:
			if cc < bc {
				best = i
			}
		case cur.Len() != bst.Len():
			if cur.Len() > bst.Len() {
				best = i
			}
		case o.degree(cur) > o.degree(bst):
			best = i
		}
	}
	if best == -1 {
		return supernode.TemplateNode{}, false
	}
	return o.supernodes[best], true
}

// File: candidate_structure.go
// Role: CandidateStructure (CS) — see package doc.
package cs

import (
	"sort"

	"github.com/tnguyen-labs/submatch/bitops"
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/equivalence"
	"github.com/tnguyen-labs/submatch/filters"
	"github.com/tnguyen-labs/submatch/graph"
	"github.com/tnguyen-labs/submatch/supernode"
)

// CandidateStructure bundles the template T (shared, immutable), a
// branch-local working copy of the world graph, the candidate matrix M,
// and the template's structural-equivalence partition.
type CandidateStructure struct {
	Template  *graph.Graph
	World     *graph.Graph
	M         *candidate.Matrix
	Partition *equivalence.Partition

	supernodes []supernode.TemplateNode // one per class, cached at New
}

// New seeds a CandidateStructure: M starts full (every world node a
// candidate of every template node) and is not yet filtered; callers run
// filters.Run or RunCheapFilters before matching.
func New(template, world *graph.Graph, part *equivalence.Partition) *CandidateStructure {
	m := candidate.NewFull(template.NumNodes(), world.NumNodes())
	cs := &CandidateStructure{Template: template, World: world, M: m, Partition: part}
	cs.buildSupernodes()
	return cs
}

func (cs *CandidateStructure) buildSupernodes() {
	classes := cs.Partition.Classes()
	cs.supernodes = make([]supernode.TemplateNode, 0, len(classes))
	for _, class := range classes {
		cs.supernodes = append(cs.supernodes, supernode.NewTemplateNode(class, cs.Template))
	}
}

// Supernodes returns the template SuperTemplateNodes, one per structural
// class, ordered by ascending root.
func (cs *CandidateStructure) Supernodes() []supernode.TemplateNode { return cs.supernodes }

// SuperedgeMultiplicity returns A_c[root(a), root(b)] in channel c, the
// multiplicity every member-pair of a x b must be dominated by.
func (cs *CandidateStructure) SuperedgeMultiplicity(a, b supernode.TemplateNode, c int) int {
	return cs.Template.Count(c, a.Root(), b.Root())
}

// GetCandidates returns an iterator over world Supernodes of size
// st.Len(): singleton candidates for trivial supernodes, or every
// st.Len()-subset of the candidate row for non-trivial ones.
func (cs *CandidateStructure) GetCandidates(st supernode.TemplateNode) *CandidateIter {
	cands := cs.M.CandidatesOf(st.Root())
	return newCandidateIter(cands, st.Len())
}

// HasCandEdge reports whether, for every (u,v) in sw1 x sw2 (ordered),
// World.Count(c,u,v) >= SuperedgeMultiplicity(st1,st2,c), and sw1, sw2 are
// disjoint.
func (cs *CandidateStructure) HasCandEdge(st1 supernode.TemplateNode, sw1 supernode.Supernode, st2 supernode.TemplateNode, sw2 supernode.Supernode, c int) bool {
	if !sw1.Disjoint(sw2) {
		return false
	}
	need := cs.SuperedgeMultiplicity(st1, st2, c)
	if need == 0 {
		return true
	}
	for _, u := range sw1.Vertices() {
		for _, v := range sw2.Vertices() {
			if cs.World.Count(c, u, v) < need {
				return false
			}
		}
	}
	return true
}

// SupernodeCliqueAndCandNodeClique reports whether, for every channel with
// clique_c(st) > 0, the induced submatrix of World on sw dominates the
// induced submatrix of Template on st entry-wise.
func (cs *CandidateStructure) SupernodeCliqueAndCandNodeClique(st supernode.TemplateNode, sw supernode.Supernode) bool {
	return cs.World.InducedDominates(cs.Template, st.Vertices(), sw.Vertices(), st.Clique)
}

// RunCheapFilters invokes the cheap filter subset (statistics, topology) to
// a local fixpoint, mutating M; no filter modifies World. Returns whether the instance is unsatisfiable (some row emptied).
func (cs *CandidateStructure) RunCheapFilters() bool {
	return filters.Run(cs.Template, cs.World, cs.M, filters.Cheap())
}

// RunAllFilters invokes the complete filter pipeline (statistics, topology,
// elimination, neighbourhood) to a joint fixpoint.
func (cs *CandidateStructure) RunAllFilters() bool {
	return filters.Run(cs.Template, cs.World, cs.M, filters.All())
}

// UpdateCandidates commits a (S_T, S_W) binding by narrowing each member of
// S_T's row to the single corresponding member of S_W (matched positionally
// by sorted order), returning whether any row actually changed.
func (cs *CandidateStructure) UpdateCandidates(st supernode.TemplateNode, sw supernode.Supernode) bool {
	changed := false
	tv := st.Vertices()
	wv := sw.Vertices()
	for i, t := range tv {
		old := cs.M.CandidatesOf(t)
		singleton := []int{wv[i]}
		if !intSliceEqual(old, singleton) {
			changed = true
		}
		bs := bitops.Singleton(uint(cs.M.NumWorld()), uint(wv[i]))
		cs.M.SetRow(t, bs)
	}
	return changed
}

// CheckSatisfiability reports whether every structural class still has at
// least as many candidates as its size (M2, the Hall prerequisite).
func (cs *CandidateStructure) CheckSatisfiability() bool {
	return cs.M.CheckHallPrerequisite(cs.Partition)
}

// Copy deep-copies M and the working World; Template and Partition are
// shared by reference since they never mutate during a search.
func (cs *CandidateStructure) Copy() *CandidateStructure {
	return &CandidateStructure{
		Template:   cs.Template,
		World:      cs.World.Clone(),
		M:          cs.M.Clone(),
		Partition:  cs.Partition,
		supernodes: cs.supernodes,
	}
}

// WorldCandidateEquivalenceClasses partitions the candidates of st into
// world-side candidate-equivalence classes given the already-matched
// supernode pairs in pm: two world nodes are equivalent under st if they
// have identical candidate-neighbour profiles (per channel, in/out
// multiplicity) against every world vertex bound in matched. Classes
// are returned sorted ascending by their smallest member, each itself
// sorted ascending, so the result is deterministic.
func (cs *CandidateStructure) WorldCandidateEquivalenceClasses(st supernode.TemplateNode, matched []MatchedPair) [][]int {
	cands := cs.M.CandidatesOf(st.Root())
	nc := cs.Template.NumChannels()

	key := func(w int) string {
		var b []byte
		for _, mp := range matched {
			for _, mw := range mp.World.Vertices() {
				for c := 0; c < nc; c++ {
					b = appendInt(b, cs.World.Count(c, w, mw))
					b = appendInt(b, cs.World.Count(c, mw, w))
				}
			}
		}
		return string(b)
	}

	groups := make(map[string][]int)
	for _, w := range cands {
		k := key(w)
		groups[k] = append(groups[k], w)
	}
	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		sort.Ints(g)
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// MatchedPair is the minimal view of a PartialMatch entry that world
// candidate-equivalence computation needs, duplicated here (rather than
// importing package match) to keep cs free of a dependency cycle; package
// match constructs these from its own PartialMatch stack.
type MatchedPair struct {
	Template supernode.TemplateNode
	World    supernode.Supernode
}

func appendInt(b []byte, v int) []byte {
	// Simple, deterministic, collision-free-enough encoding for grouping
	// keys: a fixed separator plus decimal digits.
	b = append(b, '|')
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	if v == 0 {
		return append(b, '0')
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

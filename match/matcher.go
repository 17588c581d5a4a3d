// File: matcher.go
// Role: Matcher — the recursive DFS driving filtering, ordering,
// joinability, and branching, spec.md §4.5.
package match

import (
	"context"
	"log"
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tnguyen-labs/submatch/cs"
	"github.com/tnguyen-labs/submatch/supernode"
)

// Caps bounds a search: MaxIsomorphisms halts once the accumulated count
// strictly exceeds it (nil = unbounded), MaxMatches halts after that many
// distinct full-match events are recorded (0 = unbounded), MaxWorkers turns
// on the errgroup-based per-branch fan-out once > 1. Logger, if non-nil,
// receives a per-level search-frontier trace as the DFS binds and backtracks
// supernodes, gated by the CLI's --verbose/--debug flags; nil disables
// tracing entirely. log.Logger is safe for concurrent use, so the same
// Logger may be shared across matchParallel's fanned-out branches.
type Caps struct {
	MaxIsomorphisms *big.Int
	MaxMatches      int64
	MaxWorkers      int
	Logger          *log.Logger
}

// trace emits a leveled search-frontier message when caps.Logger is set.
// depth is the number of supernodes already bound (pm.Len()) at the point of
// the call, mirroring the original implementation's per-level trace.
func (mr *Matcher) trace(depth int, format string, args ...interface{}) {
	if mr.caps.Logger == nil {
		return
	}
	mr.caps.Logger.Printf("level %d: "+format, append([]interface{}{depth}, args...)...)
}

// Matcher drives the recursive search described in spec.md §4.5 over a
// seeded, filtered CandidateStructure.
type Matcher struct {
	ordering *Ordering
	caps     Caps
	stop     atomic.Bool
}

// NewMatcher returns a Matcher bound to ordering and caps.
func NewMatcher(ordering *Ordering, caps Caps) *Matcher {
	return &Matcher{ordering: ordering, caps: caps}
}

// Stop requests cooperative cancellation; polled at every recursion frame.
func (mr *Matcher) Stop() { mr.stop.Store(true) }

// Stopped reports whether cancellation has been requested, either
// externally via Stop or internally because a cap was exceeded.
func (mr *Matcher) Stopped() bool { return mr.stop.Load() }

// Run seeds an empty PartialMatch and searches c to completion (or until a
// cap/cancellation fires), returning the resulting SolutionTree. Callers
// should have already run c.RunAllFilters() (or at least RunCheapFilters)
// and checked c.CheckSatisfiability() before calling Run.
func (mr *Matcher) Run(ctx context.Context, c *cs.CandidateStructure) *SolutionTree {
	tree := NewSolutionTree(mr.ordering.StaticOrder(c))
	if !c.CheckSatisfiability() {
		return tree
	}
	pm := NewPartialMatch()
	total := len(mr.ordering.supernodes)
	mr.match(ctx, c, pm, tree, total, big.NewInt(1))
	if mr.Stopped() {
		tree.MarkPartial()
	}
	return tree
}

// match is the recursive core. multiplier is the product of intra-class
// k! and world-candidate-equivalence-class-size factors accumulated along
// the current DFS path.
func (mr *Matcher) match(ctx context.Context, c *cs.CandidateStructure, pm *PartialMatch, tree *SolutionTree, total int, multiplier *big.Int) {
	if mr.Stopped() {
		return
	}
	if pm.Len() == total {
		tree.RecordSolution(pm, multiplier)
		mr.trace(pm.Len(), "full match recorded, multiplier=%s running count=%s", multiplier.String(), tree.Count().String())
		if mr.capExceeded(tree) {
			mr.Stop()
		}
		return
	}

	if last, ok := pm.LastMatch(); ok {
		if c.UpdateCandidates(last.Template, last.World) {
			c.RunCheapFilters()
		}
	}
	if !unmatchedSatisfiable(c, pm) {
		mr.trace(pm.Len(), "Hall prerequisite violated over unmatched classes, backtracking")
		return
	}

	st, ok := mr.ordering.NextSupernode(c, pm)
	if !ok {
		mr.trace(pm.Len(), "no next supernode available, backtracking")
		return
	}

	classes := mr.classifyCandidates(c, st, pm)
	sortClassesBySize(classes)
	mr.trace(pm.Len(), "binding %s: %d candidate classes", st.Key(), len(classes))

	if mr.caps.MaxWorkers > 1 && len(classes) > 1 {
		mr.matchParallel(ctx, c, pm, tree, total, multiplier, st, classes)
		return
	}

	for _, class := range classes {
		if mr.Stopped() {
			return
		}
		sw := class[0]
		if !mr.isJoinable(c, pm, st, sw) {
			mr.trace(pm.Len(), "%s: class %s (size %d) not joinable, skipping", st.Key(), sw.Key(), len(class))
			continue
		}
		branch := c.Copy()
		pm.Push(st, sw, class...)
		next := new(big.Int).Mul(multiplier, factorial(st.Len()))
		next.Mul(next, big.NewInt(int64(len(class))))
		mr.match(ctx, branch, pm, tree, total, next)
		pm.Pop()
	}
}

// matchParallel fans the branches of classes out across an errgroup bounded
// by mr.caps.MaxWorkers, each branch owning its own CandidateStructure copy
// and PartialMatch clone (spec.md §4.5 concurrency hook, §5).
func (mr *Matcher) matchParallel(ctx context.Context, c *cs.CandidateStructure, pm *PartialMatch, tree *SolutionTree, total int, multiplier *big.Int, st supernode.TemplateNode, classes [][]supernode.Supernode) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(mr.caps.MaxWorkers)
	for _, class := range classes {
		class := class
		g.Go(func() error {
			if mr.Stopped() {
				return nil
			}
			sw := class[0]
			if !mr.isJoinable(c, pm, st, sw) {
				mr.trace(pm.Len(), "%s: parallel class %s (size %d) not joinable, skipping", st.Key(), sw.Key(), len(class))
				return nil
			}
			branch := c.Copy()
			branchPM := pm.Clone()
			branchPM.Push(st, sw, class...)
			next := new(big.Int).Mul(multiplier, factorial(st.Len()))
			next.Mul(next, big.NewInt(int64(len(class))))
			mr.match(gctx, branch, branchPM, tree, total, next)
			return nil
		})
	}
	_ = g.Wait()
}

// unmatchedSatisfiable checks the Hall prerequisite (M2) over every
// structural class not yet bound in pm. Already-matched classes are
// expected to sit below their class size (each member narrowed to a
// singleton by UpdateCandidates), so checking them would reject every
// completed binding; CandidateStructure.CheckSatisfiability has no notion
// of "already matched", so the matcher applies the exclusion itself.
func unmatchedSatisfiable(c *cs.CandidateStructure, pm *PartialMatch) bool {
	for _, st := range c.Supernodes() {
		if pm.IsMatched(st.Root()) {
			continue
		}
		if c.M.RowPopcount(st.Root()) < st.Len() {
			return false
		}
	}
	return true
}

func (mr *Matcher) capExceeded(tree *SolutionTree) bool {
	if mr.caps.MaxMatches > 0 && tree.Events() >= mr.caps.MaxMatches {
		return true
	}
	if mr.caps.MaxIsomorphisms != nil && tree.Count().Cmp(mr.caps.MaxIsomorphisms) > 0 {
		return true
	}
	return false
}

// isJoinable implements spec.md §4.5's is_joinable: alldiff, the clique
// condition, and candidate-edge consistency with every already-matched
// supernode, in both directions, across every channel.
func (mr *Matcher) isJoinable(c *cs.CandidateStructure, pm *PartialMatch, st supernode.TemplateNode, sw supernode.Supernode) bool {
	if !pm.Disjoint(sw) {
		return false
	}
	if !c.SupernodeCliqueAndCandNodeClique(st, sw) {
		return false
	}
	nc := c.Template.NumChannels()
	for _, b := range pm.Entries() {
		for ch := 0; ch < nc; ch++ {
			if !c.HasCandEdge(b.Template, b.World, st, sw, ch) {
				return false
			}
			if !c.HasCandEdge(st, sw, b.Template, b.World, ch) {
				return false
			}
		}
	}
	return true
}

// classifyCandidates partitions st's current size-|st| candidates into
// world-candidate-equivalence classes, grouping subsets whose members share
// the same per-vertex candidate-equivalence class under the already-matched
// context (cs.WorldCandidateEquivalenceClasses operates on individual world
// vertices; a multi-member supernode's candidate subsets are grouped by the
// sorted tuple of their members' per-vertex class ids, since any two
// subsets built from equivalent vertices are themselves interchangeable).
func (mr *Matcher) classifyCandidates(c *cs.CandidateStructure, st supernode.TemplateNode, pm *PartialMatch) [][]supernode.Supernode {
	matched := make([]cs.MatchedPair, 0, pm.Len())
	for _, b := range pm.Entries() {
		matched = append(matched, cs.MatchedPair{Template: b.Template, World: b.World})
	}
	vertexClasses := c.WorldCandidateEquivalenceClasses(st, matched)
	classOf := make(map[int]int, len(vertexClasses)*2)
	for ci, class := range vertexClasses {
		for _, v := range class {
			classOf[v] = ci
		}
	}

	all := c.GetCandidates(st).All()
	groups := make(map[string][]supernode.Supernode)
	var order []string
	for _, sw := range all {
		if !pm.Disjoint(sw) {
			// Excluded up front rather than left for is_joinable: a
			// candidate already bound elsewhere in pm can never be
			// joinable, and leaving it in would let an unlucky
			// representative pick sink an otherwise-valid class.
			continue
		}
		key := classKey(sw, classOf)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], sw)
	}
	out := make([][]supernode.Supernode, 0, len(order))
	for _, k := range order {
		out = append(out, groups[k])
	}
	return out
}

func classKey(sw supernode.Supernode, classOf map[int]int) string {
	ids := make([]int, len(sw.Vertices()))
	for i, v := range sw.Vertices() {
		ids[i] = classOf[v]
	}
	// sw.Vertices() is sorted, but a class id follows its class's smallest
	// member, so ids need not come out ascending; sort them.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	b := make([]byte, 0, len(ids)*4)
	for _, id := range ids {
		b = appendIntLocal(b, id)
	}
	return string(b)
}

func appendIntLocal(b []byte, v int) []byte {
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
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func sortClassesBySize(classes [][]supernode.Supernode) {
	for i := 1; i < len(classes); i++ {
		for j := i; j > 0 && len(classes[j-1]) > len(classes[j]); j-- {
			classes[j-1], classes[j] = classes[j], classes[j-1]
		}
	}
}

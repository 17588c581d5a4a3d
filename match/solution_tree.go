// File: solution_tree.go
// Role: SolutionTree — isomorphism-count accumulation and per-supernode
// world-image bookkeeping, spec.md §4.6.
package match

import (
	"math/big"
	"sync"

	"github.com/RoaringBitmap/roaring"

	"github.com/tnguyen-labs/submatch/supernode"
)

// SolutionTree accumulates the isomorphism count across a full search,
// guarded by a single mutex since it is the only object ever shared across
// parallel matcher branches (spec.md §5).
type SolutionTree struct {
	mu      sync.Mutex
	order   []supernode.TemplateNode
	images  map[int]*roaring.Bitmap // template root -> union of world vertices ever bound there
	count   *big.Int
	events  int64 // number of distinct full matches recorded (pre-multiplier)
	partial bool
}

// NewSolutionTree seeds an empty tree over the fixed reporting order.
func NewSolutionTree(order []supernode.TemplateNode) *SolutionTree {
	t := &SolutionTree{
		order:  order,
		images: make(map[int]*roaring.Bitmap, len(order)),
		count:  big.NewInt(0),
	}
	for _, st := range order {
		t.images[st.Root()] = roaring.New()
	}
	return t
}

// RecordSolution registers one full match found along pm, weighted by
// multiplier (the product of intra-class k! and world-equivalence-class
// size factors accumulated along the DFS path, see Matcher).
func (t *SolutionTree) RecordSolution(pm *PartialMatch, multiplier *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count.Add(t.count, multiplier)
	t.events++
	for _, b := range pm.Entries() {
		img, ok := t.images[b.Template.Root()]
		if !ok {
			img = roaring.New()
			t.images[b.Template.Root()] = img
		}
		members := b.Class
		if len(members) == 0 {
			members = []supernode.Supernode{b.World}
		}
		for _, sw := range members {
			for _, v := range sw.Vertices() {
				img.Add(uint32(v))
			}
		}
	}
}

// MarkPartial records that the search was halted before full enumeration
// (cancellation, cap_iso, or cap_matches). The count accumulated so far
// remains final per spec.md §5.
func (t *SolutionTree) MarkPartial() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.partial = true
}

// Count returns the accumulated isomorphism count.
func (t *SolutionTree) Count() *big.Int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return new(big.Int).Set(t.count)
}

// Events returns the number of distinct full-match events recorded
// (before equivalence-class multiplication), bounded by max_match_events.
func (t *SolutionTree) Events() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.events
}

// Partial reports whether the search was halted early.
func (t *SolutionTree) Partial() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.partial
}

// ImageOf returns the set of world vertex indices ever bound to the
// template supernode rooted at root, across every recorded solution.
func (t *SolutionTree) ImageOf(root int) *roaring.Bitmap {
	t.mu.Lock()
	defer t.mu.Unlock()
	if img, ok := t.images[root]; ok {
		return img.Clone()
	}
	return roaring.New()
}

// SignalNodes returns the union of every world vertex ever bound to any
// template supernode, across every recorded solution (spec.md §4.6).
func (t *SolutionTree) SignalNodes() *roaring.Bitmap {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := roaring.New()
	for _, img := range t.images {
		out.Or(img)
	}
	return out
}

// factorial returns k! as a big.Int.
func factorial(k int) *big.Int {
	out := big.NewInt(1)
	for i := int64(2); i <= int64(k); i++ {
		out.Mul(out, big.NewInt(i))
	}
	return out
}

// File: partial_match.go
// Role: PartialMatch (PM) — see spec.md §3, the DFS stack of
// (SuperTemplateNode, Supernode) bindings.
package match

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/tnguyen-labs/submatch/supernode"
)

// Binding is one entry of a PartialMatch: a template supernode bound to a
// world supernode of the same size. Class holds every world supernode the
// matcher found interchangeable with World at the time of the binding (the
// world-candidate-equivalence class World was chosen to represent); it always
// contains World itself. A nil or single-element Class means no collapsing
// happened at this binding.
type Binding struct {
	Template supernode.TemplateNode
	World    supernode.Supernode
	Class    []supernode.Supernode
}

// PartialMatch is an append-only stack of Bindings with O(1) last-match and
// pop, plus an "alldiff" membership index (matchedWorld) for fast
// disjointness checks during is_joinable.
type PartialMatch struct {
	stack        []Binding
	matchedWorld *roaring.Bitmap
	boundRoots   map[int]int // template root -> stack index, for neighbour lookups
}

// NewPartialMatch returns an empty PartialMatch.
func NewPartialMatch() *PartialMatch {
	return &PartialMatch{
		matchedWorld: roaring.New(),
		boundRoots:   make(map[int]int),
	}
}

// Len returns the number of supernodes matched so far.
func (pm *PartialMatch) Len() int { return len(pm.stack) }

// Push records a new binding. st must not already appear in pm, and sw must
// be disjoint from every previously pushed world supernode — callers verify
// this via is_joinable before calling Push. class, if given, is the full
// world-candidate-equivalence class sw was drawn from (see Binding.Class);
// omitted entirely, the binding carries no class and is treated as if sw were
// its own singleton class.
func (pm *PartialMatch) Push(st supernode.TemplateNode, sw supernode.Supernode, class ...supernode.Supernode) {
	pm.boundRoots[st.Root()] = len(pm.stack)
	pm.stack = append(pm.stack, Binding{Template: st, World: sw, Class: class})
	for _, v := range sw.Vertices() {
		pm.matchedWorld.Add(uint32(v))
	}
}

// Pop removes the most recently pushed binding.
func (pm *PartialMatch) Pop() {
	if len(pm.stack) == 0 {
		return
	}
	last := pm.stack[len(pm.stack)-1]
	for _, v := range last.World.Vertices() {
		pm.matchedWorld.Remove(uint32(v))
	}
	delete(pm.boundRoots, last.Template.Root())
	pm.stack = pm.stack[:len(pm.stack)-1]
}

// LastMatch returns the most recently pushed binding and true, or a zero
// value and false if pm is empty.
func (pm *PartialMatch) LastMatch() (Binding, bool) {
	if len(pm.stack) == 0 {
		return Binding{}, false
	}
	return pm.stack[len(pm.stack)-1], true
}

// Entries returns the full binding stack in push order. Callers must not
// mutate the returned slice.
func (pm *PartialMatch) Entries() []Binding { return pm.stack }

// IsMatched reports whether the template supernode rooted at root already
// has a binding in pm.
func (pm *PartialMatch) IsMatched(root int) bool {
	_, ok := pm.boundRoots[root]
	return ok
}

// WorldOf returns the world Supernode bound to the template supernode
// rooted at root, and true, or a zero value and false if unmatched.
func (pm *PartialMatch) WorldOf(root int) (supernode.Supernode, bool) {
	idx, ok := pm.boundRoots[root]
	if !ok {
		return supernode.Supernode{}, false
	}
	return pm.stack[idx].World, true
}

// Disjoint reports whether sw shares no vertex with any world supernode
// already bound in pm — the "alldiff" half of is_joinable.
func (pm *PartialMatch) Disjoint(sw supernode.Supernode) bool {
	for _, v := range sw.Vertices() {
		if pm.matchedWorld.Contains(uint32(v)) {
			return false
		}
	}
	return true
}

// Clone deep-copies pm for branch-local mutation (each recursive frame, or
// each parallel branch, owns its own PartialMatch; see spec.md §5).
func (pm *PartialMatch) Clone() *PartialMatch {
	out := &PartialMatch{
		stack:        make([]Binding, len(pm.stack)),
		matchedWorld: pm.matchedWorld.Clone(),
		boundRoots:   make(map[int]int, len(pm.boundRoots)),
	}
	copy(out.stack, pm.stack)
	for k, v := range pm.boundRoots {
		out.boundRoots[k] = v
	}
	return out
}

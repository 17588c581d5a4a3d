// File: partition.go
// Role: union-find partition with deterministic root selection.
// Determinism:
//   - RootOf always returns the smallest index ever unioned into a class.
//   - Classes() iterates class roots in ascending order, and each class's
//     members in ascending order.
package equivalence

import "sort"

// Partition is a union-find partition of {0..n-1}. The zero value is not
// usable; construct with New.
type Partition struct {
	parent []int
	rank   []int
	size   int
}

// New returns a Partition of {0..n-1} where every index starts in its own
// singleton class.
func New(n int) *Partition {
	p := &Partition{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   n,
	}
	for i := range p.parent {
		p.parent[i] = i
	}
	return p
}

// Len returns n, the size of the underlying index set.
func (p *Partition) Len() int { return p.size }

// find returns the internal union-find representative of i, applying path
// compression.
func (p *Partition) find(i int) int {
	for p.parent[i] != i {
		p.parent[i] = p.parent[p.parent[i]]
		i = p.parent[i]
	}
	return i
}

// Union merges the classes containing i and j. After Union, RootOf(i) ==
// RootOf(j) == min(old roots).
func (p *Partition) Union(i, j int) {
	ri, rj := p.find(i), p.find(j)
	if ri == rj {
		return
	}
	// Union by rank, but keep the canonical root deterministic (smallest
	// index) by always re-deriving RootOf from class membership rather than
	// from which tree absorbed which at union time.
	if p.rank[ri] < p.rank[rj] {
		ri, rj = rj, ri
	}
	p.parent[rj] = ri
	if p.rank[ri] == p.rank[rj] {
		p.rank[ri]++
	}
}

// ClassOf returns a representative index for i's class. Two indices are in
// the same class iff ClassOf returns the same value for both. ClassOf is
// not guaranteed to equal RootOf; use RootOf when the canonical smallest
// member is required.
func (p *Partition) ClassOf(i int) int { return p.find(i) }

// InSameClass reports whether i and j are in the same class.
func (p *Partition) InSameClass(i, j int) bool { return p.find(i) == p.find(j) }

// RootOf returns the smallest index in i's class.
func (p *Partition) RootOf(i int) int {
	r := p.find(i)
	root := r
	for k := 0; k < p.size; k++ {
		if p.find(k) == r && k < root {
			root = k
		}
	}
	return root
}

// Classes returns the partition's classes as sorted []int slices, ordered
// ascending by each class's root.
func (p *Partition) Classes() [][]int {
	byRoot := make(map[int][]int)
	for i := 0; i < p.size; i++ {
		r := p.find(i)
		byRoot[r] = append(byRoot[r], i)
	}
	roots := make([]int, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	out := make([][]int, 0, len(roots))
	for _, r := range roots {
		members := byRoot[r]
		sort.Ints(members)
		out = append(out, members)
	}
	// Re-key classes by their true (smallest-member) root: union-by-rank may
	// have picked a find()-representative that is not the smallest member.
	canon := make([][]int, len(out))
	copy(canon, out)
	sort.Slice(canon, func(a, b int) bool { return canon[a][0] < canon[b][0] })
	return canon
}

// PartitionBy refines the current partition: within each existing class,
// indices are re-split by the value of key(i), so that two indices end up
// in the same resulting class only if they were in the same class before
// and key(i) == key(j). Returns a fresh Partition (the receiver is not
// mutated).
func (p *Partition) PartitionBy(key func(i int) interface{}) *Partition {
	out := New(p.size)
	// Group existing members by (oldClass, key) pair, then union within
	// each group to build the refined partition.
	type groupKey struct {
		class int
		key   interface{}
	}
	groups := make(map[groupKey][]int)
	for i := 0; i < p.size; i++ {
		gk := groupKey{class: p.find(i), key: key(i)}
		groups[gk] = append(groups[gk], i)
	}
	for _, members := range groups {
		for k := 1; k < len(members); k++ {
			out.Union(members[0], members[k])
		}
	}
	return out
}

// IsTrivial reports whether every class is a singleton.
func (p *Partition) IsTrivial() bool {
	for _, class := range p.Classes() {
		if len(class) > 1 {
			return false
		}
	}
	return true
}

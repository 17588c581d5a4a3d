// File: candidate_iter.go
// Role: lazy, allocation-minimal k-subset iterator over a candidate row —
// the hottest inner loop for non-trivial supernodes (spec.md §9).
package cs

import "github.com/tnguyen-labs/submatch/supernode"

// CandidateIter yields world Supernodes of a fixed size k drawn from a
// sorted candidate slice, in lexicographic combination order, without
// materialising the full combination list up front.
type CandidateIter struct {
	cands []int
	k     int
	idx   []int
	done  bool
	first bool
}

func newCandidateIter(cands []int, k int) *CandidateIter {
	if k <= 0 || k > len(cands) {
		return &CandidateIter{done: true}
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return &CandidateIter{cands: cands, k: k, idx: idx, first: true}
}

// Next returns the next world Supernode and true, or a zero value and
// false once exhausted.
func (it *CandidateIter) Next() (supernode.Supernode, bool) {
	if it.done {
		return supernode.Supernode{}, false
	}
	if it.first {
		it.first = false
	} else if !it.advance() {
		it.done = true
		return supernode.Supernode{}, false
	}

	verts := make([]int, it.k)
	for i, ix := range it.idx {
		verts[i] = it.cands[ix]
	}
	return supernode.New(verts...), true
}

// advance moves idx to the next combination in lexicographic order,
// returning false once the last combination has been produced.
func (it *CandidateIter) advance() bool {
	n := len(it.cands)
	i := it.k - 1
	for i >= 0 && it.idx[i] == i+n-it.k {
		i--
	}
	if i < 0 {
		return false
	}
	it.idx[i]++
	for j := i + 1; j < it.k; j++ {
		it.idx[j] = it.idx[j-1] + 1
	}
	return true
}

// All drains the iterator into a slice. Convenience for call sites that
// need every candidate up front (the matcher instead partitions candidates
// into world-equivalence classes before drawing representatives, so it
// rarely calls All directly).
func (it *CandidateIter) All() []supernode.Supernode {
	var out []supernode.Supernode
	for {
		sn, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, sn)
	}
	return out
}

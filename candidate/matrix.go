// File: matrix.go
// Role: bitset-backed boolean candidate matrix M.
package candidate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/tnguyen-labs/submatch/equivalence"
)

// Matrix is the boolean |V(T)|x|V(W)| candidate matrix.
type Matrix struct {
	rows     []*bitset.BitSet
	numWorld uint
}

// NewFull returns a Matrix with every M[t,w] set true, the seed state
// before any filter has run.
func NewFull(numTemplate, numWorld int) *Matrix {
	m := &Matrix{
		rows:     make([]*bitset.BitSet, numTemplate),
		numWorld: uint(numWorld),
	}
	for t := range m.rows {
		bs := bitset.New(uint(numWorld))
		bs.FlipRange(0, uint(numWorld))
		m.rows[t] = bs
	}
	return m
}

// NumTemplate returns |V(T)|.
func (m *Matrix) NumTemplate() int { return len(m.rows) }

// NumWorld returns |V(W)|.
func (m *Matrix) NumWorld() int { return int(m.numWorld) }

// Get reports whether M[t,w] is set.
func (m *Matrix) Get(t, w int) bool { return m.rows[t].Test(uint(w)) }

// Clear unsets M[t,w]. Filters may only ever clear bits, never set them,
// to preserve filter monotonicity (P3).
func (m *Matrix) Clear(t, w int) { m.rows[t].Clear(uint(w)) }

// ClearAll unsets every bit in row t.
func (m *Matrix) ClearAll(t int) { m.rows[t].ClearAll() }

// Row returns the raw bitset backing row t. Callers outside this package
// should treat it as read-only; use Clear/SetRow to mutate.
func (m *Matrix) Row(t int) *bitset.BitSet { return m.rows[t] }

// SetRow replaces row t wholesale (used to seed a row from a Supernode's
// member set, e.g. CandidateStructure.UpdateCandidates). This is the one
// place a row may gain bits relative to its prior value, since it reflects
// a deliberate narrowing decision made by the matcher (binding a specific
// world supernode), not a monotone filter pass.
func (m *Matrix) SetRow(t int, bs *bitset.BitSet) { m.rows[t] = bs }

// RowPopcount returns the number of set bits in row t, i.e. the candidate
// count for template node t.
func (m *Matrix) RowPopcount(t int) int { return int(m.rows[t].Count()) }

// RowEmpty reports whether row t has no candidates at all — the filter
// pipeline's unsatisfiability signal (spec.md §4.2).
func (m *Matrix) RowEmpty(t int) bool { return m.rows[t].None() }

// RowsEqual reports whether rows t1 and t2 are bit-for-bit identical, used
// to check invariant M1.
func (m *Matrix) RowsEqual(t1, t2 int) bool { return m.rows[t1].Equal(m.rows[t2]) }

// SyncClassRows copies each class's root row onto every other member of the
// class, re-establishing M1 after any operation that might otherwise have
// let class members drift apart.
func (m *Matrix) SyncClassRows(p *equivalence.Partition) {
	for _, class := range p.Classes() {
		if len(class) < 2 {
			continue
		}
		root := class[0]
		rootRow := m.rows[root]
		for _, member := range class[1:] {
			m.rows[member] = rootRow.Clone()
		}
	}
}

// CheckRowClassConsistency verifies M1 across every class of p. Intended
// for tests and debug assertions, not the hot path.
func (m *Matrix) CheckRowClassConsistency(p *equivalence.Partition) bool {
	for _, class := range p.Classes() {
		if len(class) < 2 {
			continue
		}
		root := class[0]
		for _, member := range class[1:] {
			if !m.RowsEqual(root, member) {
				return false
			}
		}
	}
	return true
}

// CheckHallPrerequisite verifies M2 across every class of p: a class of
// size k must retain at least k candidates in its root row.
func (m *Matrix) CheckHallPrerequisite(p *equivalence.Partition) bool {
	for _, class := range p.Classes() {
		if m.RowPopcount(class[0]) < len(class) {
			return false
		}
	}
	return true
}

// Clone deep-copies the matrix, the cheap copy-on-branch isolation the
// matcher relies on when recursing (CS.Copy, spec.md §4.3).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows:     make([]*bitset.BitSet, len(m.rows)),
		numWorld: m.numWorld,
	}
	for t, row := range m.rows {
		out.rows[t] = row.Clone()
	}
	return out
}

// AndInto intersects row t's bits with mask in place (used by filters that
// narrow a row to those world indices also surviving an independent test).
func (m *Matrix) AndInto(t int, mask *bitset.BitSet) {
	m.rows[t].InPlaceIntersection(mask)
}

// CandidatesOf returns the sorted list of world indices w with M[t,w] set.
func (m *Matrix) CandidatesOf(t int) []int {
	row := m.rows[t]
	out := make([]int, 0, row.Count())
	for i, e := row.NextSet(0); e; i, e = row.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Package candidate implements Matrix, the boolean |V(T)|x|V(W)| candidate
// matrix M where M[t,w] means "w is still a viable image of template node
// t". Each row is a *bitset.BitSet over world-vertex indices, making the
// hottest inner loop in this module — testing, clearing, and popcounting a
// row during filtering — a small number of word-sized operations instead of
// a Go-level loop over bool slices.
//
// Matrix enforces two invariants documented in spec: M1 (row-class
// consistency: every template node in the same structural-equivalence
// class has an identical candidate row) and M2 (Hall prerequisite: a
// template class of size k must retain at least k candidates, or the
// instance is unsatisfiable). Filters (package filters) may only clear
// bits; Matrix.Clone provides the cheap copy-on-branch isolation the
// matcher relies on.
package candidate

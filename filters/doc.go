// Package filters implements the monotone constraint-propagation pipeline
// that shrinks a candidate.Matrix: statistics (degree & self-loop
// dominance), topology (neighbour-count dominance), elimination (global
// all-different propagation via bipartite matching and SCC analysis), and
// neighbourhood/LAD (per-pair Hall-condition check via bipartite matching).
//
// Every Filter may only clear bits (monotonicity, P3); Run iterates the
// configured filters to a joint fixpoint. A row left empty by any filter
// signals the instance is unsatisfiable (spec.md §4.2); this is reported
// through the return value, never as a Go error.
package filters

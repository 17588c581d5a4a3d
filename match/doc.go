// Package match implements the recursive backtracking search over a
// CandidateStructure: PartialMatch (the DFS stack of supernode bindings),
// Ordering (static and adaptive next_supernode selection), Matcher (the
// recursive driver, optionally fanning branches out across an
// errgroup.Group), and SolutionTree (isomorphism-count accumulation with
// per-supernode world-image bookkeeping).
package match

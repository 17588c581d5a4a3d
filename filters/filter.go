// File: filter.go
// Role: Filter interface and fixpoint runner.
package filters

import (
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
)

// Filter is a monotone propagator over the candidate matrix: it may only
// clear bits of M, never set them.
type Filter interface {
	// Name identifies the filter for logging/tracing.
	Name() string
	// Apply runs one pass over (template, world, m), clearing bits that
	// violate the filter's constraint. It reports whether any bit changed.
	Apply(template, world *graph.Graph, m *candidate.Matrix) bool
}

// Cheap returns the inexpensive filter subset: statistics and topology.
// CandidateStructure.RunCheapFilters (package cs) uses
// this set on each matcher frame whose latest binding narrowed M; the full
// Run below additionally runs
// elimination and neighbourhood when the caller asks for "all" filters.
func Cheap() []Filter {
	return []Filter{Statistics{}, Topology{}}
}

// All returns the full filter set in the documented fixpoint order:
// statistics, topology, elimination, neighbourhood.
func All() []Filter {
	return []Filter{Statistics{}, Topology{}, Elimination{}, Neighborhood{}}
}

// Run iterates fs over (template, world, m) to a joint fixpoint: repeat the
// whole sequence while any filter in the pass clears a bit. Termination is
// guaranteed by monotonicity (each pass either clears at least one bit or
// the loop ends). Returns whether any row ended up empty (unsatisfiable).
func Run(template, world *graph.Graph, m *candidate.Matrix, fs []Filter) (unsat bool) {
	for {
		changed := false
		for _, f := range fs {
			if f.Apply(template, world, m) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return AnyRowEmpty(template, m)
}

// AnyRowEmpty reports whether any template row of m has no candidates.
func AnyRowEmpty(template *graph.Graph, m *candidate.Matrix) bool {
	for t := 0; t < template.NumNodes(); t++ {
		if m.RowEmpty(t) {
			return true
		}
	}
	return false
}

// File: statistics.go
// Role: degree & self-loop dominance filter.
package filters

import (
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
)

// Statistics clears (t,w) whenever w cannot dominate t on any channel's
// in-degree, out-degree, or self-loop count (P1).
type Statistics struct{}

// Name identifies this filter for logging.
func (Statistics) Name() string { return "statistics" }

// Apply implements Filter.
func (Statistics) Apply(template, world *graph.Graph, m *candidate.Matrix) bool {
	changed := false
	nc := template.NumChannels()
	for t := 0; t < template.NumNodes(); t++ {
		for _, w := range m.CandidatesOf(t) {
			ok := true
			for c := 0; c < nc; c++ {
				if world.InDegree(c, w) < template.InDegree(c, t) ||
					world.OutDegree(c, w) < template.OutDegree(c, t) ||
					world.SelfLoopCount(c, w) < template.SelfLoopCount(c, t) {
					ok = false
					break
				}
			}
			if !ok {
				m.Clear(t, w)
				changed = true
			}
		}
	}
	return changed
}

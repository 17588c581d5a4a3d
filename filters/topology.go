// File: topology.go
// Role: neighbour-count dominance filter.
package filters

import (
	"github.com/tnguyen-labs/submatch/candidate"
	"github.com/tnguyen-labs/submatch/graph"
)

// Topology clears (t,w) when w cannot supply, for some channel c and some
// direction, an already-candidate world neighbour for each of t's
// channel-c neighbours: every distinct channel-c out-neighbour u of t must
// have some channel-c out-neighbour w' of w that is still a candidate of u
// (and symmetrically for in-neighbours). Multiplicities are not compared
// here, and two template neighbours may be covered by the same world
// neighbour. This is the node-local form of the
// spec'd "M . A_c_W >= A_c_T . 1" sparse dominance check.
type Topology struct{}

// Name identifies this filter for logging.
func (Topology) Name() string { return "topology" }

// Apply implements Filter.
func (Topology) Apply(template, world *graph.Graph, m *candidate.Matrix) bool {
	changed := false
	nc := template.NumChannels()
	for t := 0; t < template.NumNodes(); t++ {
		tOut := channelOutNeighbors(template, t, nc)
		tIn := channelInNeighbors(template, t, nc)
		for _, w := range m.CandidatesOf(t) {
			if !satisfiesDirection(world, w, tOut, m, true) || !satisfiesDirection(world, w, tIn, m, false) {
				m.Clear(t, w)
				changed = true
			}
		}
	}
	return changed
}

// channelOutNeighbors returns, per channel, the distinct template
// out-neighbours of t.
func channelOutNeighbors(g *graph.Graph, t, nc int) [][]int {
	out := make([][]int, nc)
	for c := 0; c < nc; c++ {
		row := g.Channel(c).Row(t)
		for u := range row {
			out[c] = append(out[c], u)
		}
	}
	return out
}

// channelInNeighbors returns, per channel, the distinct template
// in-neighbours of t.
func channelInNeighbors(g *graph.Graph, t, nc int) [][]int {
	in := make([][]int, nc)
	for c := 0; c < nc; c++ {
		for src, row := range g.Channel(c) {
			if row[t] > 0 {
				in[c] = append(in[c], src)
			}
		}
	}
	return in
}

// satisfiesDirection checks, for every channel c, that every template
// neighbour u in tNbrs[c] has at least one world neighbour of w (same
// direction when out=true) that is still a candidate of u.
func satisfiesDirection(world *graph.Graph, w int, tNbrs [][]int, m *candidate.Matrix, out bool) bool {
	for c, us := range tNbrs {
		for _, u := range us {
			if !hasCandidateWorldNeighbor(world, c, w, u, m, out) {
				return false
			}
		}
	}
	return true
}

// hasCandidateWorldNeighbor reports whether w has a channel-c neighbour
// (out-neighbour if out, else in-neighbour) that is still a candidate of u.
func hasCandidateWorldNeighbor(world *graph.Graph, c, w, u int, m *candidate.Matrix, out bool) bool {
	if out {
		for wp := range world.Channel(c).Row(w) {
			if m.Get(u, wp) {
				return true
			}
		}
		return false
	}
	for src, row := range world.Channel(c) {
		if row[w] > 0 && m.Get(u, src) {
			return true
		}
	}
	return false
}

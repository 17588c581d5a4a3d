// File: partition.go
// Role: structural-equivalence computation over a template graph.
package partition

import (
	"github.com/tnguyen-labs/submatch/equivalence"
	"github.com/tnguyen-labs/submatch/graph"
)

// Structural returns an equivalence.Partition over V(template) whose classes
// are exactly the structural-equivalence classes defined in the package doc.
// Complexity: O(|C| * n^3).
func Structural(template *graph.Graph) *equivalence.Partition {
	n := template.NumNodes()
	p := equivalence.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p.InSameClass(i, j) {
				continue
			}
			if equivalentPair(template, i, j) {
				p.Union(i, j)
			}
		}
	}
	return p
}

// equivalentPair tests the structural-equivalence condition for the single
// pair (i,j), independent of any partition already built.
func equivalentPair(t *graph.Graph, i, j int) bool {
	nc := t.NumChannels()
	n := t.NumNodes()

	for c := 0; c < nc; c++ {
		if t.Count(c, i, i) != t.Count(c, j, j) {
			return false
		}
		if t.Count(c, i, j) != t.Count(c, j, i) {
			return false
		}
	}

	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		for c := 0; c < nc; c++ {
			if t.Count(c, i, k) != t.Count(c, j, k) {
				return false
			}
			if t.Count(c, k, i) != t.Count(c, k, j) {
				return false
			}
		}
	}
	return true
}

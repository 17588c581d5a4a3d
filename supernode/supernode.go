// File: supernode.go
// Role: Supernode value type and its TemplateNode specialisation.
package supernode

import (
	"sort"
	"strconv"
	"strings"

	"github.com/tnguyen-labs/submatch/graph"
)

// Supernode is an ordered tuple of vertex indices, canonically sorted
// ascending, compared and hashed by that sorted tuple. Constructing a
// Supernode from a single index produces a length-1 tuple.
type Supernode struct {
	verts []int
	key   string
}

// New builds a Supernode from verts, sorting a defensive copy ascending.
// Duplicate indices are not expected (callers draw from disjoint candidate
// sets) and are preserved as given rather than silently deduplicated.
func New(verts ...int) Supernode {
	v := append([]int(nil), verts...)
	sort.Ints(v)
	return Supernode{verts: v, key: encodeKey(v)}
}

func encodeKey(v []int) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(x))
	}
	return b.String()
}

// Vertices returns the sorted member indices. Callers must not mutate the
// returned slice.
func (s Supernode) Vertices() []int { return s.verts }

// Len returns the number of members, |S|.
func (s Supernode) Len() int { return len(s.verts) }

// Root returns the smallest member index, the canonical root used
// throughout the matcher and solution tree.
func (s Supernode) Root() int {
	if len(s.verts) == 0 {
		return -1
	}
	return s.verts[0]
}

// Key returns a canonical, hashable string key for use as a map key (the
// sorted tuple equality and hash requirement from the data model).
func (s Supernode) Key() string { return s.key }

// Equal reports whether two Supernodes have the same sorted member tuple.
func (s Supernode) Equal(o Supernode) bool { return s.key == o.key }

// Disjoint reports whether s and o share no members.
func (s Supernode) Disjoint(o Supernode) bool {
	seen := make(map[int]struct{}, len(s.verts))
	for _, v := range s.verts {
		seen[v] = struct{}{}
	}
	for _, v := range o.verts {
		if _, ok := seen[v]; ok {
			return false
		}
	}
	return true
}

// TemplateNode is a Supernode over template vertices, the unit the matcher
// binds one world Supernode to at a time. Clique[c] is the multiplicity of
// A_c[i,j] for any two distinct members i,j (well-defined by structural
// equivalence); it is 0 for singleton supernodes, where no such pair
// exists, and the clique condition is then vacuously satisfied.
type TemplateNode struct {
	Supernode
	Clique []int  // per-channel clique multiplicity
	Name   string // human-readable label, e.g. "T1,4"
}

// NewTemplateNode builds a TemplateNode from a structural-equivalence
// class's member indices, computing Clique from the template graph.
func NewTemplateNode(verts []int, template *graph.Graph) TemplateNode {
	sn := New(verts...)
	nc := template.NumChannels()
	clique := make([]int, nc)
	if sn.Len() >= 2 {
		a, b := sn.verts[0], sn.verts[1]
		for c := 0; c < nc; c++ {
			clique[c] = template.Count(c, a, b)
		}
	}
	return TemplateNode{
		Supernode: sn,
		Clique:    clique,
		Name:      "T" + sn.Key(),
	}
}

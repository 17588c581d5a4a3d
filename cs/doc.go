// Package cs implements CandidateStructure (CS), the bundle of a shared
// immutable template graph, a branch-local working copy of the world
// graph, the candidate matrix M, and the template's structural-equivalence
// partition. CS exposes candidate queries per supernode, superedge
// multiplicity and candidate-edge checks, world-side candidate
// equivalence, satisfiability, and a cheap Copy() for branch isolation —
// the surface the matcher (package match) drives the search over.
package cs

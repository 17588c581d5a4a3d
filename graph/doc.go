// Package graph defines Graph, the immutable-after-build representation of
// a multi-channel directed multigraph with integer edge multiplicities.
//
// A Graph is an ordered set of nodes N, an ordered set of channel names C,
// and one nonnegative-integer sparse adjacency matrix A_c per channel, where
// A_c[i][j] counts the parallel edges of channel c from node i to node j.
// Degree vectors, the composite adjacency Σ_c A_c, its symmetrisation, and
// neighbour lists are derived, cached, and invalidated on mutation, mirroring
// the lazy-property-as-explicit-accessor idiom used throughout this module's
// lineage.
//
// Graph is safe for concurrent readers and guards mutation with a pair of
// RWMutex locks, one for the node catalog and one for adjacency, following
// the split used across this codebase's other mutable catalogs.
package graph

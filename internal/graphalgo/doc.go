// Package graphalgo is a small, dedicated home for the handful of classic
// graph algorithms the matching engine needs as building blocks —
// Hopcroft-Karp bipartite maximum matching, Tarjan strongly-connected
// components, and plain BFS distances — rather than pulling in a
// general-purpose graph library for just these three routines
// (spec.md §9).
package graphalgo

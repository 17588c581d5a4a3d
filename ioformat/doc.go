// Package ioformat reads and writes the on-disk graph representations of
// spec.md §6: the portable simple text format, the "solnon" per-channel
// adjacency-list format, the "gfd" labelled-vertex format, and a
// delimiter-configurable edgelist reader built on the standard library's
// encoding/csv (no pack example wires a third-party CSV/record library
// into its own code, so this one reader is stdlib by documented
// necessity — see DESIGN.md).
package ioformat

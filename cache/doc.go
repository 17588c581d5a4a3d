// Package cache manages the on-disk per-dataset cache layout, spec.md §6 /
// SPEC_FULL.md §7: one directory per dataset, named by a
// github.com/google/uuid identifier or a caller-supplied slug, holding
// nodes.txt, channels.txt, one sparse matrix file per channel, and the
// boolean candidate matrix M produced by the filter pipeline. The cache is
// read-mostly. Touch records the source files' modification times in a
// manifest and Fresh reports whether they still match; the decision to
// rebuild is left to the caller, mirroring the teacher's
// lazy-recompute-on-invalidation idiom used for graph.Graph's own derived
// caches (muCache/compositeValid in graph/types.go).
package cache

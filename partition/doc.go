// Package partition computes the coarsest partition of a template graph's
// vertices into structural-equivalence classes: two template nodes i, j are
// interchangeable under every channel's adjacency iff, for every channel c
// and every k not in {i,j}, A_c[i,k] = A_c[j,k], A_c[k,i] = A_c[k,j], the
// pairwise multiplicities A_c[i,j] = A_c[j,i] agree, and the self-loop
// counts A_c[i,i] = A_c[j,j] agree.
//
// Template graphs are small, so the direct pairwise test below is used: each
// pair is compared against every vertex on every channel, O(|C|*n^3) in all,
// without the added bookkeeping of representative projection.
package partition

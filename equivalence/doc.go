// Package equivalence implements Partition, a union-find-backed partition
// of a finite index set {0..n-1} into equivalence classes, with canonical
// "root" selection (the smallest index in each class) and fast membership
// queries. It backs both the template structural partitioner (package
// partition) and the world-side candidate-equivalence computation used by
// the matcher (package match).
package equivalence

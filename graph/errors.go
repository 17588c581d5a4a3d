// File: errors.go
// Role: sentinel error set for the graph package.
package graph

import "errors"

var (
	// ErrEmptyNodeID indicates a node was registered with an empty identifier.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNodeID indicates the same node identifier was added twice.
	ErrDuplicateNodeID = errors.New("graph: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrUnknownChannel indicates an operation referenced a channel name that
	// was not registered on this Graph.
	ErrUnknownChannel = errors.New("graph: unknown channel")

	// ErrNegativeMultiplicity indicates an edge count below zero was supplied.
	ErrNegativeMultiplicity = errors.New("graph: negative multiplicity")

	// ErrFrozen indicates a mutation was attempted on a Graph after Freeze.
	ErrFrozen = errors.New("graph: graph is frozen")
)

// Package errs defines the sentinel error kinds shared across submatch's
// packages: graph, partition, candidate, filters, match, ioformat and
// cache.
//
// Error kinds follow a fixed propagation policy:
//   - InputFormat and DimensionMismatch are fatal and surfaced to callers
//     (and ultimately to the CLI) as ordinary Go errors.
//   - Unsatisfiable is never returned as an error: satisfiability is a bool
//     from CandidateStructure.CheckSatisfiability, and a search that proves
//     unsatisfiability simply reports a zero count.
//   - Cancelled is not returned as an error: a search halted by the stop
//     flag or a cap returns its partial, still-consistent SolutionTree with
//     Partial() set. ErrCancelled is defined but no package returns it.
//   - InvariantViolation indicates a bug, not bad input: it panics in debug
//     builds and is returned as a wrapped error in release builds.
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap with %w at call boundaries; match with errors.Is.
var (
	// ErrInputFormat marks malformed edgelist or on-disk graph input.
	ErrInputFormat = errors.New("submatch: malformed input format")

	// ErrDimensionMismatch marks template/world disagreement on channels
	// that reconciliation could not resolve.
	ErrDimensionMismatch = errors.New("submatch: dimension mismatch between template and world")

	// ErrCancelled marks a search halted by the stop flag or a cap.
	ErrCancelled = errors.New("submatch: search cancelled")

	// ErrInvariantViolation marks an internal consistency failure.
	ErrInvariantViolation = errors.New("submatch: invariant violation")
)

// Debug gates whether InvariantViolation panics (true, debug builds) or
// returns a wrapped error (false, release builds). Set by cmd/submatch
// from the --debug flag; defaults to false.
var Debug = false

// InvariantViolation reports an internal invariant failure at ctx. In debug
// mode it panics immediately so the failure surfaces at its origin; in
// release mode it returns a wrapped ErrInvariantViolation for the caller to
// log and propagate.
func InvariantViolation(ctx string) error {
	err := fmt.Errorf("%s: %w", ctx, ErrInvariantViolation)
	if Debug {
		panic(err)
	}
	return err
}

// InputFormatf wraps ErrInputFormat with a formatted message.
func InputFormatf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInputFormat)...)
}

// DimensionMismatchf wraps ErrDimensionMismatch with a formatted message.
func DimensionMismatchf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrDimensionMismatch)...)
}

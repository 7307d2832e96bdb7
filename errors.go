// Package delegen defines the shared error taxonomy for the delegen
// generator.
//
// delegen augments an externally generated relational data-access client
// with access-control artifacts and single-table polymorphic inheritance.
// The moving parts live in the pkg tree:
//
//   - pkg/schema: resolved schema graph and delegate hierarchy resolution
//   - pkg/decl: declaration tree document model and rendering
//   - pkg/project: delegate hierarchy projection over declaration trees
//   - pkg/generator: generation run orchestration
//
// This root package holds only the sentinel errors those packages share, so
// callers can classify failures without importing the package that produced
// them.
package delegen

import "errors"

// Sentinel errors for the failure modes of a generation run.
//
// Schema-level problems (ErrInvalidGraph, ErrMalformedDelegate) are
// recoverable: they degrade the affected hierarchy or rewrite and are
// surfaced as warnings. Process-level problems (ErrGenerationFailed,
// ErrNoDeclarations) abort the run; no partial output is persisted.
//
// Use the Is*Err helpers to check for specific errors across wrapping.
var (
	// ErrInvalidGraph is returned when the resolved schema graph document
	// cannot be parsed. The graph is emitted by the schema toolchain; check
	// that the toolchain and delegen versions agree on the document format.
	ErrInvalidGraph = errors.New("delegen: invalid schema graph")

	// ErrMalformedDelegate is returned when a delegate marker's argument
	// does not resolve to a field on the marked entity. Only the affected
	// hierarchy's rewrites degrade; unrelated hierarchies are unaffected.
	ErrMalformedDelegate = errors.New("delegen: malformed delegate attribute")

	// ErrGenerationFailed is returned when the external client generator
	// process fails twice (the first failure is retried once with verbose
	// diagnostics). The wrapped message names the invoked command and the
	// schema path.
	ErrGenerationFailed = errors.New("delegen: external client generator failed")

	// ErrNoDeclarations is returned when the external generator reported
	// success but its declaration document is missing or unreadable.
	ErrNoDeclarations = errors.New("delegen: declaration tree not found")
)

// IsInvalidGraphErr returns true if err is or wraps ErrInvalidGraph.
func IsInvalidGraphErr(err error) bool {
	return errors.Is(err, ErrInvalidGraph)
}

// IsMalformedDelegateErr returns true if err is or wraps ErrMalformedDelegate.
func IsMalformedDelegateErr(err error) bool {
	return errors.Is(err, ErrMalformedDelegate)
}

// IsGenerationFailedErr returns true if err is or wraps ErrGenerationFailed.
func IsGenerationFailedErr(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}

// IsNoDeclarationsErr returns true if err is or wraps ErrNoDeclarations.
func IsNoDeclarationsErr(err error) bool {
	return errors.Is(err, ErrNoDeclarations)
}

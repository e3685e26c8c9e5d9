// Package errors provides structured error types for the binding planner.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the element path, the offending type and content type,
// and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBoundary, errors.KindUnsupportedEncoding).
//		Path("kv_read", "output").
//		Type("array<boolean>").
//		ContentType("application/x-binary").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedType(errors.PhaseSize, "tuple")
//	err := errors.CyclicReference(errors.PhaseOrder, []string{"A", "B"})
//
// Every planning error is fatal to the run. The sentinels ErrUnsupportedType,
// ErrUnsupportedEncoding and ErrCyclicReference match on Kind in any phase:
//
//	if errors.Is(err, errors.ErrUnsupportedEncoding) { ... }
package errors

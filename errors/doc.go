// Package errors provides structured error types for typedump.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the path of member names leading to the offending
// node, the native type name involved and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindFormat).
//		Path("Point", "coords").
//		TypeName("coords").
//		Value(2).
//		Detail("array must have exactly one element type, got %d children", 2).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseLoad, "file", path)
//	err := errors.Resolution("A", []string{"B", "A", "B"})
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

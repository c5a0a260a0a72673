// Package errors provides structured error types for the stagedef decoder.
//
// Errors are categorized by Phase (where in the decode the error occurred)
// and Kind (error category). The Error type includes rich context: field
// path, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseObject, errors.KindInvalidEnum).
//		Path("goals", "2").
//		Value(0x7).
//		Detail("goal type byte out of range").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseSchema, "SMB1 header format")
//	err := errors.OutOfBounds(errors.PhaseSection, path, 0x2000, 0x1000)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors

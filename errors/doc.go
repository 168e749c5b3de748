// Package errors provides structured error types for the bitpeek codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the layout name, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindLengthExceeded).
//		Layout("Int8").
//		Value(12).
//		Detail("bit string has 12 digits, maximum is 8").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange("Int8", 300, -128, 127)
//	err := errors.InvalidHex('g', 3)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when their Phase and Kind agree.
package errors

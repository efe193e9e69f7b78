// Package errors provides structured error types for the rmenu-ng library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the section header, the offending key and
// raw value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidValue).
//		Section("Desktop Entry").
//		Key("Terminal").
//		Value("yes").
//		Detail("not a boolean").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingField("Desktop Entry", "Name")
//	err := errors.InvalidValue("Desktop Entry", "Hidden", "maybe")
//
// All errors implement the standard error interface and support errors.Is/As;
// Is matches on Phase and Kind so callers can test categories with sentinels.
package errors

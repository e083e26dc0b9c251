// Package errs defines the validation and lookup error types shared by the
// domain model, the use cases and the adapters.
//
// Every error type follows the same shape: a sentinel variable such as
// ErrValueIsRequired, a struct carrying the offending parameter and an
// optional cause, constructors with and without a cause, and Error and
// Unwrap methods so errors.Is and errors.As work against both the sentinel
// and the struct.
//
// The HTTP layer leans on this: ObjectNotFoundError maps to 404,
// VersionIsInvalidError to 409 and the remaining validation errors to 400,
// so producing the right errs type in the domain is what picks the status
// code at the edge.
package errs

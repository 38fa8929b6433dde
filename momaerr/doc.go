// Package momaerr defines a four-class error taxonomy: INVALID_CONFIG,
// INVALID_INPUT, NUMERICAL_WARNING and UNSUPPORTED.
//
// Every other package in this module returns its own sentinel errors
// (see penalty/errors.go, fusedgroups/errors.go, etc.) and wraps them in
// one of the four Class values here at the point construction or solve
// validation fails, so callers can branch on class with errors.As while
// still pinpointing the exact cause with errors.Is against the
// originating sentinel.
package momaerr

package momaerr

import (
	"errors"
	"fmt"
)

// Class identifies which of the four error categories a failure belongs
// to.
type Class int

const (
	// InvalidConfig marks a penalty parameter out of range or dimensions
	// inconsistent; raised at config/prox construction.
	InvalidConfig Class = iota
	// InvalidInput marks non-finite X or a dimension mismatch against
	// Omega/group/weight; raised at solve entry.
	InvalidInput
	// NumericalWarning marks an iteration cap hit (outer, inner, ADMM,
	// AMA); logged, and the solve still returns its best-effort iterate.
	NumericalWarning
	// Unsupported marks a combination the core intentionally rejects,
	// such as a non-negative fusion request.
	Unsupported
)

// String renders the class as an upper-snake-case tag, for use in log
// lines and error messages.
func (c Class) String() string {
	switch c {
	case InvalidConfig:
		return "INVALID_CONFIG"
	case InvalidInput:
		return "INVALID_INPUT"
	case NumericalWarning:
		return "NUMERICAL_WARNING"
	case Unsupported:
		return "UNSUPPORTED"
	default:
		return "UNKNOWN"
	}
}

// Error wraps an underlying sentinel with the class it belongs to.
type Error struct {
	Class Class
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Class, e.Err)
}

// Unwrap exposes the underlying sentinel so errors.Is/errors.As keep
// working against the package that raised it.
func (e *Error) Unwrap() error { return e.Err }

// Wrap tags err with class c. Wrap(c, nil) returns nil.
func Wrap(c Class, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Class: c, Err: err}
}

// Is reports whether err was classified as c.
func Is(err error, c Class) bool {
	var me *Error
	if !errors.As(err, &me) {
		return false
	}
	return me.Class == c
}

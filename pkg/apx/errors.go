package apx

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrTypeExists          = errors.New("data type already exists")
	ErrTypeNotFound        = errors.New("data type not found")
	ErrInvalidReference    = errors.New("invalid type reference")
	ErrUnresolvedReference = errors.New("unresolved type reference")
	ErrUnsupportedType     = errors.New("unsupported data type")
	ErrUnsupportedConstant = errors.New("unsupported constant value")
	ErrUnsupportedPort     = errors.New("unsupported port interface")
	ErrInvalidLine         = errors.New("invalid APX line")
)

// Error provides structured error information for node operations.
type Error struct {
	Op     string // Operation that failed (e.g., "AppendType", "Resolve")
	Entity string // Entity kind (e.g., "type", "port", "line")
	Name   string // Entity name (if applicable)
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.Name, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func typeError(op, name string, cause error) error {
	return &Error{Op: op, Entity: "type", Name: name, Cause: cause}
}

func portError(op, name string, cause error) error {
	return &Error{Op: op, Entity: "port", Name: name, Cause: cause}
}

func lineError(op string, cause error) error {
	return &Error{Op: op, Entity: "line", Cause: cause}
}

// IsUnsupported returns true if the error reports a foreign shape the
// codec does not model.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupportedType) ||
		errors.Is(err, ErrUnsupportedConstant) ||
		errors.Is(err, ErrUnsupportedPort)
}

// IsIntegrity returns true if the error reports a broken reference or
// duplicate identity inside a node.
func IsIntegrity(err error) bool {
	return errors.Is(err, ErrTypeExists) ||
		errors.Is(err, ErrTypeNotFound) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrUnresolvedReference)
}

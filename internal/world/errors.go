package world

import (
	"errors"
	"fmt"
)

var (
	ErrRefInUse  = errors.New("ref already in use")
	ErrBadRef    = errors.New("ref must be positive")
	ErrFieldText = errors.New("field contains record delimiter")
)

// ValidationError rejects entity creation with missing or contradictory
// fields. The operation is rejected and no partial entity is registered.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FormatError reports a malformed serialized record: wrong field count or
// an unparseable numeric field. The store is left unchanged.
type FormatError struct {
	Kind   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("bad %s record: %s", e.Kind, e.Reason)
}

// DanglingRefError reports a location or destination that resolves to no
// existing entity. It is detected lazily at traversal time and surfaced to
// the traverser, never substituted with a default.
type DanglingRefError struct {
	Ref Ref
}

func (e *DanglingRefError) Error() string {
	return fmt.Sprintf("dangling reference #%d", e.Ref)
}

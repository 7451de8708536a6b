package valuepath

import (
	"errors"
	"fmt"
	"reflect"
)

// Core error definitions. Every resolution failure wraps one of these
// sentinels so callers can classify errors with errors.Is.
var (
	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidIndex   = errors.New("invalid index")
	ErrTypeMismatch   = errors.New("type mismatch")
	ErrInvalidPath    = errors.New("invalid path operation")
)

// PathError represents a resolution or coercion failure with essential context.
// Path always carries the full original path expression, never just the
// unresolved remainder.
type PathError struct {
	Op      string // Operation that failed
	Path    string // Full original path expression
	Message string // Human-readable error message
	Err     error  // Underlying sentinel error
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("valuepath %s failed at path '%s': %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("valuepath %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *PathError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *PathError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*PathError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// newMemberNotFoundError reports a missing property, field or key.
func newMemberNotFoundError(path, member string, on any) error {
	return &PathError{
		Op:      "resolve",
		Path:    path,
		Message: fmt.Sprintf("property or field '%s' not found on value of type %T", member, on),
		Err:     ErrMemberNotFound,
	}
}

// newIndexError reports a segment that cannot serve as a sequence index:
// non-numeric, negative, or out of bounds.
func newIndexError(path, segment string, length int) error {
	return &PathError{
		Op:      "resolve",
		Path:    path,
		Message: fmt.Sprintf("segment '%s' is not a valid index for a sequence of length %d", segment, length),
		Err:     ErrInvalidIndex,
	}
}

// newScalarDescentError reports an attempt to navigate into a value that has
// no members, keys or elements.
func newScalarDescentError(path, segment string, on any) error {
	return &PathError{
		Op:      "resolve",
		Path:    path,
		Message: fmt.Sprintf("cannot descend into scalar value of type %T with segment '%s'", on, segment),
		Err:     ErrInvalidPath,
	}
}

// newCoercionError reports a failed conversion of a resolved value to the
// caller-requested type.
func newCoercionError(path string, value any, target reflect.Type, cause error) error {
	msg := fmt.Sprintf("cannot convert value of type %T to %s", value, target)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &PathError{
		Op:      "coerce",
		Path:    path,
		Message: msg,
		Err:     ErrTypeMismatch,
	}
}

package reconcile

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input. It is returned before any
// computation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ResolutionKind tells which identity could not be resolved.
type ResolutionKind string

const (
	KindBranch    ResolutionKind = "branch"
	KindAttendant ResolutionKind = "attendant"
	KindShift     ResolutionKind = "shift"
)

// ResolutionError reports a branch, attendant or shift token that does not
// map to a known entity.
type ResolutionError struct {
	Kind  ResolutionKind
	Token string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Token)
}

// AggregationError wraps a read failure while building an aggregate. No
// partial aggregate is ever returned alongside it.
type AggregationError struct {
	Op  string
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation %s failed: %v", e.Op, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

// ErrInvalidTransition is returned for any expense status change other than
// PENDING to APPROVED or REJECTED.
var ErrInvalidTransition = errors.New("invalid expense status transition")

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsResolution reports whether err is (or wraps) a ResolutionError.
func IsResolution(err error) bool {
	var re *ResolutionError
	return errors.As(err, &re)
}

package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationFailedError carries every failing field and the group of the first one.
type ValidationFailedError struct {
	Result ValidationResult
}

func (e *ValidationFailedError) Error() string {
	parts := make([]string, 0, len(e.Result.Fields))
	for _, f := range e.Result.Fields {
		parts = append(parts, f+": "+e.Result.Errors[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidTransitionError is returned for an action with no row in the transition table.
type InvalidTransitionError struct {
	From   Status
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a booking in status %q", e.Action, e.From)
}

// InvalidStateError is returned for an edit attempted on a closed booking.
type InvalidStateError struct {
	Status Status
	Action Action
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("booking in status %q can no longer be changed (%s)", e.Status, e.Action)
}

// DuplicateSendError is returned when a shipping request was already sent.
type DuplicateSendError struct {
	SRNo string
}

func (e *DuplicateSendError) Error() string {
	return fmt.Sprintf("shipping request already sent as %s", e.SRNo)
}

func AsValidationFailed(err error) (*ValidationFailedError, bool) {
	var e *ValidationFailedError
	ok := errors.As(err, &e)
	return e, ok
}

func AsInvalidTransition(err error) (*InvalidTransitionError, bool) {
	var e *InvalidTransitionError
	ok := errors.As(err, &e)
	return e, ok
}

func AsInvalidState(err error) (*InvalidStateError, bool) {
	var e *InvalidStateError
	ok := errors.As(err, &e)
	return e, ok
}

func AsDuplicateSend(err error) (*DuplicateSendError, bool) {
	var e *DuplicateSendError
	ok := errors.As(err, &e)
	return e, ok
}

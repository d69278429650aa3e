package booking

import (
	"fms-app/fms/cargo"
)

type Action string

const (
	ActionSubmit  Action = "submit"
	ActionConfirm Action = "confirm"
	ActionReject  Action = "reject"
	ActionCancel  Action = "cancel"
	ActionSendSR  Action = "send_sr"
	ActionEdit    Action = "edit"
)

// TransitionContext carries what an action needs from the caller. Document
// numbers and dates are recorded as given.
type TransitionContext struct {
	// submit
	RequestedDate string
	// confirm
	BCNo   string
	BCDate string
	// send_sr
	SRNo            string
	SRDate          string
	ShippingRequest ShippingRequest
	// edit
	Changes *Booking

	Calculator cargo.Calculator
}

type transitionKey struct {
	from   Status
	action Action
}

var transitions = map[transitionKey]Status{
	{StatusDraft, ActionSubmit}:      StatusRequested,
	{StatusRequested, ActionConfirm}: StatusConfirmed,
	{StatusRequested, ActionReject}:  StatusRejected,
	{StatusDraft, ActionCancel}:      StatusCancelled,
	{StatusRequested, ActionCancel}:  StatusCancelled,
	{StatusConfirmed, ActionSendSR}:  StatusConfirmed,
	{StatusDraft, ActionEdit}:        StatusDraft,
	{StatusRequested, ActionEdit}:    StatusRequested,
}

// Allowed reports whether action has a row for from in the transition table.
func Allowed(from Status, action Action) bool {
	_, ok := transitions[transitionKey{from, action}]
	return ok
}

// AllowedActions lists the actions legal from s in a fixed order.
func AllowedActions(s Status) []Action {
	out := []Action{}
	for _, a := range []Action{ActionEdit, ActionSubmit, ActionConfirm, ActionReject, ActionCancel, ActionSendSR} {
		if Allowed(s, a) {
			out = append(out, a)
		}
	}
	return out
}

// Transition applies action to b and returns the resulting booking. On error
// the returned booking is b unchanged.
func Transition(b Booking, action Action, tc TransitionContext) (Booking, error) {
	to, ok := transitions[transitionKey{b.Status, action}]
	if !ok {
		if action == ActionEdit && b.Status.Valid() {
			return b, &InvalidStateError{Status: b.Status, Action: action}
		}
		return b, &InvalidTransitionError{From: b.Status, Action: action}
	}

	next := b.Clone()
	switch action {
	case ActionSubmit:
		if res := ValidateBooking(b); !res.Valid() {
			return b, &ValidationFailedError{Result: res}
		}
		next.RequestedDate = tc.RequestedDate

	case ActionConfirm:
		next.BCNo = tc.BCNo
		next.BCDate = tc.BCDate

	case ActionSendSR:
		if b.SRNo != "" {
			return b, &DuplicateSendError{SRNo: b.SRNo}
		}
		sr := tc.ShippingRequest
		if res := ValidateShippingRequest(sr); !res.Valid() {
			return b, &ValidationFailedError{Result: res}
		}
		next.SRNo = tc.SRNo
		next.SRDate = tc.SRDate
		next.ShippingRequest = &sr

	case ActionEdit:
		if tc.Changes != nil {
			next = applyChanges(next, tc.Changes.Clone())
		}
		next = Recompute(next, tc.Calculator)
		if next.Status != StatusDraft {
			if res := ValidateBooking(next); !res.Valid() {
				return b, &ValidationFailedError{Result: res}
			}
		}
	}

	next.Status = to
	return next, nil
}

// Recompute rewrites every cargo line and the totals. When lines are present
// the summary weight and measurement follow the totals.
func Recompute(b Booking, calc cargo.Calculator) Booking {
	b.Lines = calc.RecomputeAll(b.Lines, b.Mode)
	b.Totals = cargo.Aggregate(b.Lines)
	if len(b.Lines) == 0 {
		return b
	}
	b.GrossWeight = b.Totals.GrossWeight
	if b.Totals.Volume > 0 {
		b.Measurement = b.Totals.Volume
	} else if b.Totals.Measurement > 0 {
		b.Measurement = b.Totals.Measurement
	}
	return b
}

// applyChanges copies the editable fields of c onto b. Identity, status,
// linked documents and audit fields stay with b.
func applyChanges(b Booking, c Booking) Booking {
	out := c
	out.ID = b.ID
	out.BookingNo = b.BookingNo
	out.Mode = b.Mode
	out.Status = b.Status
	out.RequestedDate = b.RequestedDate
	out.SRNo = b.SRNo
	out.SRDate = b.SRDate
	out.ShippingRequest = b.ShippingRequest
	out.BCNo = b.BCNo
	out.BCDate = b.BCDate
	out.Version = b.Version
	out.CreatedAt = b.CreatedAt
	out.UpdatedAt = b.UpdatedAt
	return out
}

package booking

import "fms-app/fms/cargo"

// Controller owns one booking's state. It does not arbitrate concurrent writers;
// callers serialize access per booking.
type Controller struct {
	booking Booking
	calc    cargo.Calculator
}

func NewController(b Booking, calc cargo.Calculator) *Controller {
	return &Controller{booking: b.Clone(), calc: calc}
}

func (c *Controller) Booking() Booking {
	return c.booking.Clone()
}

func (c *Controller) Status() Status {
	return c.booking.Status
}

// Apply runs action and keeps the result only when it succeeds.
func (c *Controller) Apply(action Action, tc TransitionContext) error {
	if tc.Calculator.Factors == nil {
		tc.Calculator = c.calc
	}
	next, err := Transition(c.booking, action, tc)
	if err != nil {
		return err
	}
	c.booking = next
	return nil
}

func (c *Controller) Submit(requestedDate string) error {
	return c.Apply(ActionSubmit, TransitionContext{RequestedDate: requestedDate})
}

func (c *Controller) Confirm(bcNo, bcDate string) error {
	return c.Apply(ActionConfirm, TransitionContext{BCNo: bcNo, BCDate: bcDate})
}

func (c *Controller) Reject() error {
	return c.Apply(ActionReject, TransitionContext{})
}

func (c *Controller) Cancel() error {
	return c.Apply(ActionCancel, TransitionContext{})
}

func (c *Controller) SendShippingRequest(sr ShippingRequest, srNo, srDate string) error {
	return c.Apply(ActionSendSR, TransitionContext{ShippingRequest: sr, SRNo: srNo, SRDate: srDate})
}

func (c *Controller) Edit(changes Booking) error {
	return c.Apply(ActionEdit, TransitionContext{Changes: &changes})
}

// SetLines replaces the cargo lines and recomputes every derived value.
func (c *Controller) SetLines(lines []cargo.Line) error {
	changes := c.booking.Clone()
	changes.Lines = lines
	return c.Edit(changes)
}

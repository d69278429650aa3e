package booking

import (
	"testing"

	"fms-app/fms/cargo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeBooking() Booking {
	return Booking{
		ID:            1001,
		BookingNo:     "SB-2024-0001",
		Mode:          cargo.ModeSea,
		Status:        StatusDraft,
		BookingDate:   "2024-05-02",
		Shipper:       Party{Name: "Hanil Trading"},
		Consignee:     Party{Name: "Pacific Imports"},
		POL:           "KRPUS",
		POD:           "USLAX",
		ETD:           "2024-05-20",
		Commodity:     "Auto parts",
		GrossWeight:   12000,
		ContainerType: "40HC",
		ContainerQty:  2,
	}
}

func validSR() ShippingRequest {
	return ShippingRequest{
		ShippingDate: "2024-05-20",
		CYLocation:   "Busan New Port CY",
		CutOffDate:   "2024-05-18",
		CutOffTime:   "17:00",
	}
}

func TestValidateBookingMissingPol(t *testing.T) {
	b := completeBooking()
	b.POL = ""

	res := ValidateBooking(b)

	require.False(t, res.Valid())
	assert.Contains(t, res.Errors, "pol")
	assert.Len(t, res.Errors, 1)
	assert.Equal(t, GroupRequired, res.FirstInvalidGroup)

	b.POL = "KRPUS"
	b.POD = "USLAX"
	assert.True(t, ValidateBooking(b).Valid())

	next, err := Transition(b, ActionSubmit, TransitionContext{RequestedDate: "2024-05-03"})
	require.NoError(t, err)
	assert.Equal(t, StatusRequested, next.Status)
	assert.Equal(t, "2024-05-03", next.RequestedDate)
}

func TestValidateBookingZeroAndBlankValues(t *testing.T) {
	b := completeBooking()
	b.Shipper.Name = "   "
	b.GrossWeight = 0
	b.ContainerQty = 0

	res := ValidateBooking(b)

	assert.Equal(t, []string{"shipper", "gross_weight", "container_qty"}, res.Fields)
	assert.Equal(t, res, ValidateBooking(b))
}

func TestValidateFirstInvalidGroupFollowsDeclaredOrder(t *testing.T) {
	rs := RuleSet[ShippingRequest]{Rules: []Rule[ShippingRequest]{
		{Field: "contact_email", Group: "contact", Tag: "omitempty,email", Message: "bad email",
			Value: func(sr ShippingRequest) any { return sr.ContactEmail }},
		{Field: "cy_location", Group: GroupRequired, Tag: "required", Message: "required",
			Value: func(sr ShippingRequest) any { return sr.CYLocation }},
	}}

	res := Validate(ShippingRequest{ContactEmail: "nope"}, rs)

	assert.Equal(t, "contact", res.FirstInvalidGroup)
	assert.Equal(t, []string{"contact_email", "cy_location"}, res.Fields)
}

func TestSubmitRejectedWhenRequiredMissing(t *testing.T) {
	b := completeBooking()
	b.Commodity = ""

	next, err := Transition(b, ActionSubmit, TransitionContext{})

	vf, ok := AsValidationFailed(err)
	require.True(t, ok)
	assert.Contains(t, vf.Result.Errors, "commodity")
	assert.Equal(t, b, next)
	assert.Equal(t, StatusDraft, b.Status)
}

func TestTransitionTable(t *testing.T) {
	actions := []Action{ActionSubmit, ActionConfirm, ActionReject, ActionCancel, ActionSendSR, ActionEdit}
	want := map[Status]map[Action]Status{
		StatusDraft:     {ActionSubmit: StatusRequested, ActionCancel: StatusCancelled, ActionEdit: StatusDraft},
		StatusRequested: {ActionConfirm: StatusConfirmed, ActionReject: StatusRejected, ActionCancel: StatusCancelled, ActionEdit: StatusRequested},
		StatusConfirmed: {ActionSendSR: StatusConfirmed},
		StatusRejected:  {},
		StatusCancelled: {},
	}

	for _, from := range Statuses {
		for _, action := range actions {
			b := completeBooking()
			b.Status = from
			tc := TransitionContext{BCNo: "BC-2024-0001", SRNo: "SR-2024-0001", ShippingRequest: validSR()}

			next, err := Transition(b, action, tc)

			to, legal := want[from][action]
			if legal {
				require.NoError(t, err, "%s/%s", from, action)
				assert.Equal(t, to, next.Status, "%s/%s", from, action)
				continue
			}
			require.Error(t, err, "%s/%s", from, action)
			assert.Equal(t, b, next, "%s/%s must leave booking unchanged", from, action)
			if action == ActionEdit {
				se, ok := AsInvalidState(err)
				require.True(t, ok, "%s/%s", from, action)
				assert.Equal(t, from, se.Status)
				continue
			}
			te, ok := AsInvalidTransition(err)
			require.True(t, ok, "%s/%s", from, action)
			assert.Equal(t, from, te.From)
			assert.Equal(t, action, te.Action)
		}
	}
}

func TestUnknownStatusIsInvalidTransition(t *testing.T) {
	b := completeBooking()
	b.Status = "shipped"

	_, err := Transition(b, ActionEdit, TransitionContext{})

	_, ok := AsInvalidTransition(err)
	assert.True(t, ok)
}

func TestConfirmRecordsBookingConfirmation(t *testing.T) {
	b := completeBooking()
	b.Status = StatusRequested

	next, err := Transition(b, ActionConfirm, TransitionContext{BCNo: "BC-2024-0007", BCDate: "2024-05-04"})

	require.NoError(t, err)
	assert.Equal(t, "BC-2024-0007", next.BCNo)
	assert.Equal(t, "2024-05-04", next.BCDate)
	assert.Empty(t, b.BCNo)
}

func TestSendShippingRequestScenario(t *testing.T) {
	b := completeBooking()
	b.Status = StatusConfirmed

	sr := validSR()
	sr.CYLocation = ""
	_, err := Transition(b, ActionSendSR, TransitionContext{ShippingRequest: sr, SRNo: "SR-2024-0001", SRDate: "2024-05-10"})
	vf, ok := AsValidationFailed(err)
	require.True(t, ok)
	assert.Contains(t, vf.Result.Errors, "cy_location")
	assert.Equal(t, GroupRequired, vf.Result.FirstInvalidGroup)

	sent, err := Transition(b, ActionSendSR, TransitionContext{ShippingRequest: validSR(), SRNo: "SR-2024-0001", SRDate: "2024-05-10"})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, sent.Status)
	assert.Equal(t, "SR-2024-0001", sent.SRNo)
	assert.Equal(t, "2024-05-10", sent.SRDate)
	require.NotNil(t, sent.ShippingRequest)
	assert.Equal(t, "Busan New Port CY", sent.ShippingRequest.CYLocation)

	again, err := Transition(sent, ActionSendSR, TransitionContext{ShippingRequest: validSR(), SRNo: "SR-2024-0002", SRDate: "2024-05-11"})
	de, ok := AsDuplicateSend(err)
	require.True(t, ok)
	assert.Equal(t, "SR-2024-0001", de.SRNo)
	assert.Equal(t, sent, again)
}

func TestSendShippingRequestValidatesFormAsGiven(t *testing.T) {
	b := completeBooking()
	b.Status = StatusConfirmed

	_, err := Transition(b, ActionSendSR, TransitionContext{
		ShippingRequest: ShippingRequest{CYLocation: "PNC", CutOffDate: "2024-05-18"},
		SRNo:            "SR-2024-0003",
	})

	vf, ok := AsValidationFailed(err)
	require.True(t, ok)
	assert.Equal(t, []string{"shipping_date", "cut_off_time"}, vf.Result.Fields)
}

func TestShippingRequestDefaultsFromBooking(t *testing.T) {
	b := completeBooking()

	sr := ShippingRequest{CYLocation: "PNC", CutOffTime: "15:30"}.WithDefaults(b)

	assert.Equal(t, "2024-05-20", sr.ShippingDate)
	assert.Equal(t, "15:30", sr.CutOffTime)
	assert.Equal(t, "12:00", sr.DocCutOffTime)
}

func TestEditRecomputesLinesAndKeepsIdentity(t *testing.T) {
	b := completeBooking()
	b.Mode = cargo.ModeAir

	changes := b
	changes.BookingNo = "HIJACK"
	changes.SRNo = "SR-X"
	changes.Remarks = "fragile"
	changes.Lines = []cargo.Line{
		{Pieces: 1, Length: 100, Width: 50, Height: 40, GrossWeight: 80},
		{Pieces: 2, Length: 100, Width: 100, Height: 100, GrossWeight: 50},
	}

	next, err := Transition(b, ActionEdit, TransitionContext{Changes: &changes})

	require.NoError(t, err)
	assert.Equal(t, "SB-2024-0001", next.BookingNo)
	assert.Empty(t, next.SRNo)
	assert.Equal(t, "fragile", next.Remarks)
	require.Len(t, next.Lines, 2)
	assert.Equal(t, 80.0, next.Lines[0].ChargeableWeight)
	assert.Equal(t, 167.0, next.Lines[1].ChargeableWeight)
	assert.Equal(t, 247.0, next.Totals.ChargeableWeight)
	assert.Equal(t, 1.2, next.Totals.Volume)
	assert.Equal(t, 130.0, next.GrossWeight)
	assert.Equal(t, 1.2, next.Measurement)
	assert.Zero(t, changes.Lines[0].Volume)
}

func TestEditRequestedKeepsRequiredSet(t *testing.T) {
	b := completeBooking()
	b.Status = StatusRequested

	changes := b
	changes.POD = ""
	next, err := Transition(b, ActionEdit, TransitionContext{Changes: &changes})

	_, ok := AsValidationFailed(err)
	require.True(t, ok)
	assert.Equal(t, "USLAX", next.POD)
}

func TestEditDraftAllowsIncompleteData(t *testing.T) {
	b := completeBooking()

	changes := b
	changes.POL = ""
	next, err := Transition(b, ActionEdit, TransitionContext{Changes: &changes})

	require.NoError(t, err)
	assert.Empty(t, next.POL)
}

func TestControllerKeepsStateOnFailure(t *testing.T) {
	c := NewController(completeBooking(), cargo.DefaultCalculator)

	require.Error(t, c.Confirm("BC-1", "2024-05-04"))
	assert.Equal(t, StatusDraft, c.Status())

	require.NoError(t, c.Submit("2024-05-03"))
	require.NoError(t, c.Confirm("BC-2024-0001", "2024-05-04"))
	require.NoError(t, c.SendShippingRequest(validSR(), "SR-2024-0001", "2024-05-05"))

	_, dup := AsDuplicateSend(c.SendShippingRequest(validSR(), "SR-2024-0002", "2024-05-06"))
	assert.True(t, dup)
	_, closed := AsInvalidState(c.Edit(c.Booking()))
	assert.True(t, closed)
	assert.Equal(t, "SR-2024-0001", c.Booking().SRNo)
}

func TestControllerSetLines(t *testing.T) {
	b := completeBooking()
	b.Mode = cargo.ModeAir
	c := NewController(b, cargo.NewCalculator(200, 0))

	require.NoError(t, c.SetLines([]cargo.Line{{Pieces: 1, Length: 100, Width: 100, Height: 100, GrossWeight: 50}}))

	assert.Equal(t, 200.0, c.Booking().Totals.ChargeableWeight)
}

func TestAllowedActions(t *testing.T) {
	assert.Equal(t, []Action{ActionEdit, ActionSubmit, ActionCancel}, AllowedActions(StatusDraft))
	assert.Equal(t, []Action{ActionSendSR}, AllowedActions(StatusConfirmed))
	assert.Empty(t, AllowedActions(StatusCancelled))
}

func TestBatchRowRules(t *testing.T) {
	sea := Validate(cargo.Line{ShipperName: "A", ConsigneeName: "B"}, BatchRowRules(cargo.ModeSea))
	air := Validate(cargo.Line{ShipperName: "A", ConsigneeName: "B", Pieces: 3}, BatchRowRules(cargo.ModeAir))

	assert.Equal(t, []string{"container_qty"}, sea.Fields)
	assert.True(t, air.Valid())
	assert.Equal(t, cargo.Line{ShipperName: "A", ConsigneeName: "B", Mode: cargo.ModeAir, Pieces: 3}.IsValid(), air.Valid())
}

func TestTimeline(t *testing.T) {
	b := completeBooking()
	b.Status = StatusConfirmed
	b.RequestedDate = "2024-05-03"
	b.BCNo = "BC-2024-0001"
	b.BCDate = "2024-05-04"

	tl := Timeline(b)

	require.Len(t, tl, 4)
	assert.True(t, tl[0].Completed)
	assert.Equal(t, "2024-05-02", tl[0].Date)
	assert.True(t, tl[1].Completed)
	assert.True(t, tl[2].Completed)
	assert.False(t, tl[3].Completed)
}

func TestStatusMeta(t *testing.T) {
	assert.Equal(t, "B/C 완료", Meta(StatusConfirmed).Label)
	assert.Equal(t, "미정", Meta("unknown").Label)
	assert.Len(t, AllMeta(), len(Statuses))
}

package booking

import "fms-app/fms/cargo"

var BookingRules = RuleSet[Booking]{
	Name: "booking",
	Rules: []Rule[Booking]{
		{Field: "booking_date", Group: GroupRequired, Tag: "required", Message: "Booking date is required",
			Value: func(b Booking) any { return b.BookingDate }},
		{Field: "shipper", Group: GroupRequired, Tag: "required", Message: "Shipper is required",
			Value: func(b Booking) any { return b.Shipper.Name }},
		{Field: "pol", Group: GroupRequired, Tag: "required", Message: "Port of loading is required",
			Value: func(b Booking) any { return b.POL }},
		{Field: "pod", Group: GroupRequired, Tag: "required", Message: "Port of discharge is required",
			Value: func(b Booking) any { return b.POD }},
		{Field: "commodity", Group: GroupRequired, Tag: "required", Message: "Commodity is required",
			Value: func(b Booking) any { return b.Commodity }},
		{Field: "gross_weight", Group: GroupRequired, Tag: "gt=0", Message: "Gross weight must be greater than 0",
			Value: func(b Booking) any { return b.GrossWeight }},
		{Field: "container_type", Group: GroupRequired, Tag: "required", Message: "Container type is required",
			Value: func(b Booking) any { return b.ContainerType }},
		{Field: "container_qty", Group: GroupRequired, Tag: "min=1", Message: "Container quantity must be at least 1",
			Value: func(b Booking) any { return b.ContainerQty }},
	},
}

var ShippingRequestRules = RuleSet[ShippingRequest]{
	Name: "shipping_request",
	Rules: []Rule[ShippingRequest]{
		{Field: "shipping_date", Group: GroupRequired, Tag: "required", Message: "Shipping date is required",
			Value: func(sr ShippingRequest) any { return sr.ShippingDate }},
		{Field: "cy_location", Group: GroupRequired, Tag: "required", Message: "CY location is required",
			Value: func(sr ShippingRequest) any { return sr.CYLocation }},
		{Field: "cut_off_date", Group: GroupRequired, Tag: "required", Message: "Cut-off date is required",
			Value: func(sr ShippingRequest) any { return sr.CutOffDate }},
		{Field: "cut_off_time", Group: GroupRequired, Tag: "required", Message: "Cut-off time is required",
			Value: func(sr ShippingRequest) any { return sr.CutOffTime }},
		{Field: "contact_email", Group: GroupOptional, Tag: "omitempty,email", Message: "Contact email is not a valid address",
			Value: func(sr ShippingRequest) any { return sr.ContactEmail }},
	},
}

// BatchRowRules is the reduced set each batch row is checked against.
func BatchRowRules(mode cargo.Mode) RuleSet[cargo.Line] {
	qty := Rule[cargo.Line]{Field: "container_qty", Group: GroupRequired, Tag: "min=1",
		Message: "Container quantity must be at least 1",
		Value:   func(l cargo.Line) any { return l.ContainerQty }}
	if mode == cargo.ModeAir {
		qty = Rule[cargo.Line]{Field: "pieces", Group: GroupRequired, Tag: "min=1",
			Message: "Pieces must be at least 1",
			Value:   func(l cargo.Line) any { return l.Pieces }}
	}
	return RuleSet[cargo.Line]{
		Name: "batch_row",
		Rules: []Rule[cargo.Line]{
			{Field: "shipper_name", Group: GroupRequired, Tag: "required", Message: "Shipper is required",
				Value: func(l cargo.Line) any { return l.ShipperName }},
			{Field: "consignee_name", Group: GroupRequired, Tag: "required", Message: "Consignee is required",
				Value: func(l cargo.Line) any { return l.ConsigneeName }},
			qty,
		},
	}
}

// Schedule is shared by every row of a batch registration.
type Schedule struct {
	Carrier      string `json:"carrier"`
	Vessel       string `json:"vessel"`
	Voyage       string `json:"voyage"`
	POL          string `json:"pol"`
	POD          string `json:"pod"`
	FinalDest    string `json:"final_dest"`
	ETD          string `json:"etd"`
	ETA          string `json:"eta"`
	ClosingDate  string `json:"closing_date"`
	FreightTerms string `json:"freight_terms"`
	PaymentTerms string `json:"payment_terms"`
}

var ScheduleRules = RuleSet[Schedule]{
	Name: "schedule",
	Rules: []Rule[Schedule]{
		{Field: "carrier", Group: GroupRequired, Tag: "required", Message: "Carrier is required",
			Value: func(s Schedule) any { return s.Carrier }},
		{Field: "vessel", Group: GroupRequired, Tag: "required", Message: "Vessel is required",
			Value: func(s Schedule) any { return s.Vessel }},
	},
}

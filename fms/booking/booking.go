package booking

import (
	"strings"
	"time"

	"fms-app/fms/cargo"
	"fms-app/types"
)

type Party struct {
	Name    string `json:"name"`
	Code    string `json:"code,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// ShippingRequest holds the cut-off data sent to the carrier with the S/R.
type ShippingRequest struct {
	ShippingDate       string `json:"shipping_date"`
	CutOffDate         string `json:"cut_off_date"`
	CutOffTime         string `json:"cut_off_time"`
	DocCutOffDate      string `json:"doc_cut_off_date,omitempty"`
	DocCutOffTime      string `json:"doc_cut_off_time,omitempty"`
	CYLocation         string `json:"cy_location"`
	SpecialInstruction string `json:"special_instruction,omitempty"`
	ContactPerson      string `json:"contact_person,omitempty"`
	ContactPhone       string `json:"contact_phone,omitempty"`
	ContactEmail       string `json:"contact_email,omitempty"`
}

// WithDefaults fills the S/R form defaults: shipping date from the booking ETD and
// the usual cut-off times. Sending validates the submitted form as is.
func (sr ShippingRequest) WithDefaults(b Booking) ShippingRequest {
	if strings.TrimSpace(sr.ShippingDate) == "" {
		sr.ShippingDate = b.ETD
	}
	if strings.TrimSpace(sr.CutOffTime) == "" {
		sr.CutOffTime = "17:00"
	}
	if strings.TrimSpace(sr.DocCutOffTime) == "" {
		sr.DocCutOffTime = "12:00"
	}
	return sr
}

type Booking struct {
	ID        types.SnowflakeID `json:"id"`
	BookingNo string            `json:"booking_no"`
	Mode      cargo.Mode        `json:"mode"`
	Status    Status            `json:"status"`

	BookingDate   string `json:"booking_date"`
	RequestedDate string `json:"requested_date,omitempty"`
	BookingType   string `json:"booking_type"`
	ServiceType   string `json:"service_type"`
	Incoterms     string `json:"incoterms"`

	Shipper     Party `json:"shipper"`
	Consignee   Party `json:"consignee"`
	NotifyParty Party `json:"notify_party"`

	Carrier          string `json:"carrier"`
	CarrierBookingNo string `json:"carrier_booking_no"`
	Vessel           string `json:"vessel"`
	Voyage           string `json:"voyage"`
	POL              string `json:"pol"`
	POD              string `json:"pod"`
	FinalDest        string `json:"final_dest"`
	ETD              string `json:"etd"`
	ETA              string `json:"eta"`
	ClosingDate      string `json:"closing_date,omitempty"`

	Commodity       string  `json:"commodity"`
	GrossWeight     float64 `json:"gross_weight"`
	WeightUnit      string  `json:"weight_unit"`
	Measurement     float64 `json:"measurement"`
	MeasurementUnit string  `json:"measurement_unit"`
	ContainerType   string  `json:"container_type"`
	ContainerQty    int     `json:"container_qty"`

	FreightTerms string `json:"freight_terms"`
	PaymentTerms string `json:"payment_terms"`

	SRNo            string           `json:"sr_no"`
	SRDate          string           `json:"sr_date"`
	ShippingRequest *ShippingRequest `json:"shipping_request,omitempty"`
	BCNo            string           `json:"bc_no"`
	BCDate          string           `json:"bc_date"`

	Lines  []cargo.Line `json:"lines"`
	Totals cargo.Totals `json:"totals"`

	Remarks string `json:"remarks"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with b.
func (b Booking) Clone() Booking {
	out := b
	if b.Lines != nil {
		out.Lines = append([]cargo.Line(nil), b.Lines...)
	}
	if b.ShippingRequest != nil {
		sr := *b.ShippingRequest
		out.ShippingRequest = &sr
	}
	return out
}

// ApplyDefaults fills the values the entry forms preselect.
func (b Booking) ApplyDefaults() Booking {
	if !b.Mode.Valid() {
		b.Mode = cargo.ModeSea
	}
	if b.Status == "" {
		b.Status = StatusDraft
	}
	setDefault(&b.BookingType, "EXPORT")
	setDefault(&b.Incoterms, "FOB")
	setDefault(&b.PaymentTerms, "PREPAID")
	setDefault(&b.WeightUnit, "KG")
	setDefault(&b.MeasurementUnit, "CBM")
	if b.Mode == cargo.ModeSea {
		setDefault(&b.ServiceType, "CY_TO_CY")
		setDefault(&b.FreightTerms, "CY-CY")
	}
	return b
}

func setDefault(field *string, v string) {
	if strings.TrimSpace(*field) == "" {
		*field = v
	}
}

// FieldValue exposes list columns by their JSON key.
func (b Booking) FieldValue(key string) any {
	switch key {
	case "id":
		return int64(b.ID)
	case "booking_no":
		return b.BookingNo
	case "mode":
		return string(b.Mode)
	case "status":
		return string(b.Status)
	case "booking_date", "booking_request_date":
		return b.BookingDate
	case "requested_date":
		return b.RequestedDate
	case "booking_type":
		return b.BookingType
	case "shipper":
		return b.Shipper.Name
	case "consignee":
		return b.Consignee.Name
	case "notify_party":
		return b.NotifyParty.Name
	case "carrier":
		return b.Carrier
	case "carrier_booking_no":
		return b.CarrierBookingNo
	case "vessel":
		return b.Vessel
	case "voyage":
		return b.Voyage
	case "pol":
		return b.POL
	case "pod":
		return b.POD
	case "final_dest":
		return b.FinalDest
	case "etd":
		return b.ETD
	case "eta":
		return b.ETA
	case "commodity":
		return b.Commodity
	case "gross_weight":
		return b.GrossWeight
	case "measurement":
		return b.Measurement
	case "container_type":
		return b.ContainerType
	case "container_qty":
		return b.ContainerQty
	case "sr_no":
		return b.SRNo
	case "bc_no":
		return b.BCNo
	case "created_at":
		return b.CreatedAt
	case "updated_at":
		return b.UpdatedAt
	}
	return nil
}

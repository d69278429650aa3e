package controllers

import (
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/services"

	"github.com/go-playground/validator"
)

var validate = validator.New()

type recomputeRequest struct {
	Mode  string       `json:"mode" validate:"omitempty,oneof=AIR SEA air sea"`
	Lines []cargo.Line `json:"lines" validate:"max=500"`
}

type batchInput struct {
	Mode     string           `json:"mode" validate:"omitempty,oneof=AIR SEA air sea"`
	Schedule booking.Schedule `json:"schedule"`
	Rows     []cargo.Line     `json:"rows" validate:"required,min=1,max=500"`
}

func (in batchInput) toService() services.BatchInput {
	return services.BatchInput{Mode: cargo.ParseMode(in.Mode), Schedule: in.Schedule, Rows: in.Rows}
}

// shippingRequestInput checks the shape of the S/R body. Required fields are
// enforced by the send gate.
type shippingRequestInput struct {
	ShippingDate       string `json:"shipping_date" validate:"omitempty,len=10"`
	CutOffDate         string `json:"cut_off_date" validate:"omitempty,len=10"`
	CutOffTime         string `json:"cut_off_time" validate:"omitempty,len=5"`
	DocCutOffDate      string `json:"doc_cut_off_date" validate:"omitempty,len=10"`
	DocCutOffTime      string `json:"doc_cut_off_time" validate:"omitempty,len=5"`
	CYLocation         string `json:"cy_location" validate:"max=100"`
	SpecialInstruction string `json:"special_instruction" validate:"max=1000"`
	ContactPerson      string `json:"contact_person" validate:"max=100"`
	ContactPhone       string `json:"contact_phone" validate:"max=30"`
	ContactEmail       string `json:"contact_email" validate:"max=100"`
}

func (in shippingRequestInput) toDomain() booking.ShippingRequest {
	return booking.ShippingRequest{
		ShippingDate:       in.ShippingDate,
		CutOffDate:         in.CutOffDate,
		CutOffTime:         in.CutOffTime,
		DocCutOffDate:      in.DocCutOffDate,
		DocCutOffTime:      in.DocCutOffTime,
		CYLocation:         in.CYLocation,
		SpecialInstruction: in.SpecialInstruction,
		ContactPerson:      in.ContactPerson,
		ContactPhone:       in.ContactPhone,
		ContactEmail:       in.ContactEmail,
	}
}

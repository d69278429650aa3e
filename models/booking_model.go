package models

import (
	"time"

	"fms-app/types"

	"gorm.io/gorm"
)

type Booking struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	BookingNo string            `json:"booking_no" gorm:"size:20;uniqueIndex"`
	Mode      string            `json:"mode" gorm:"size:3;index"`
	Status    string            `json:"status" gorm:"size:20;index"`

	BookingDate   string `json:"booking_date" gorm:"size:10;index"`
	RequestedDate string `json:"requested_date" gorm:"size:10"`
	BookingType   string `json:"booking_type" gorm:"size:20"`
	ServiceType   string `json:"service_type" gorm:"size:20"`
	Incoterms     string `json:"incoterms" gorm:"size:10"`

	ShipperName        string `json:"shipper_name"`
	ShipperCode        string `json:"shipper_code" gorm:"size:30"`
	ShipperContact     string `json:"shipper_contact"`
	ConsigneeName      string `json:"consignee_name"`
	ConsigneeCode      string `json:"consignee_code" gorm:"size:30"`
	ConsigneeContact   string `json:"consignee_contact"`
	NotifyPartyName    string `json:"notify_party_name"`
	NotifyPartyCode    string `json:"notify_party_code" gorm:"size:30"`
	NotifyPartyContact string `json:"notify_party_contact"`

	Carrier          string `json:"carrier" gorm:"size:50"`
	CarrierBookingNo string `json:"carrier_booking_no" gorm:"size:50"`
	Vessel           string `json:"vessel" gorm:"size:100"`
	Voyage           string `json:"voyage" gorm:"size:30"`
	POL              string `json:"pol" gorm:"column:pol;size:10"`
	POD              string `json:"pod" gorm:"column:pod;size:10"`
	FinalDest        string `json:"final_dest" gorm:"size:10"`
	ETD              string `json:"etd" gorm:"column:etd;size:10"`
	ETA              string `json:"eta" gorm:"column:eta;size:10"`
	ClosingDate      string `json:"closing_date" gorm:"size:10"`

	Commodity       string  `json:"commodity"`
	GrossWeight     float64 `json:"gross_weight"`
	WeightUnit      string  `json:"weight_unit" gorm:"size:5"`
	Measurement     float64 `json:"measurement"`
	MeasurementUnit string  `json:"measurement_unit" gorm:"size:5"`
	ContainerType   string  `json:"container_type" gorm:"size:10"`
	ContainerQty    int     `json:"container_qty"`

	FreightTerms string `json:"freight_terms" gorm:"size:20"`
	PaymentTerms string `json:"payment_terms" gorm:"size:20"`

	SRNo   string `json:"sr_no" gorm:"column:sr_no;size:20;index"`
	SRDate string `json:"sr_date" gorm:"column:sr_date;size:10"`
	BCNo   string `json:"bc_no" gorm:"column:bc_no;size:20;index"`
	BCDate string `json:"bc_date" gorm:"column:bc_date;size:10"`

	Remarks string `json:"remarks" gorm:"type:text"`
	Version int    `json:"version" gorm:"not null;default:1"`

	Lines           []BookingCargoLine `json:"lines" gorm:"foreignKey:BookingID"`
	ShippingRequest *ShippingRequest   `json:"shipping_request" gorm:"foreignKey:BookingID"`

	CreatedAt time.Time
	CreatedBy int
	UpdatedAt time.Time
	UpdatedBy int
	DeletedAt gorm.DeletedAt `gorm:"index"`
	DeletedBy int
}

type BookingCargoLine struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	BookingID types.SnowflakeID `json:"booking_id" gorm:"index"`
	Seq       int               `json:"seq"`
	Mode      string            `json:"mode" gorm:"size:3"`

	ShipperName   string `json:"shipper_name"`
	ShipperCode   string `json:"shipper_code" gorm:"size:30"`
	ConsigneeName string `json:"consignee_name"`
	ConsigneeCode string `json:"consignee_code" gorm:"size:30"`

	Commodity   string `json:"commodity"`
	HSCode      string `json:"hs_code" gorm:"column:hs_code;size:20"`
	PackageType string `json:"package_type" gorm:"size:20"`
	Pieces      int    `json:"pieces"`

	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	GrossWeight float64 `json:"gross_weight"`

	ContainerType string  `json:"container_type" gorm:"size:10"`
	ContainerQty  int     `json:"container_qty"`
	Measurement   float64 `json:"measurement"`

	SpecialRequest string `json:"special_request"`
	Remarks        string `json:"remarks"`

	Volume           float64 `json:"volume"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
	Degraded         bool    `json:"degraded"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ShippingRequest struct {
	ID                 types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	BookingID          types.SnowflakeID `json:"booking_id" gorm:"uniqueIndex"`
	SRNo               string            `json:"sr_no" gorm:"column:sr_no;size:20"`
	ShippingDate       string            `json:"shipping_date" gorm:"size:10"`
	CutOffDate         string            `json:"cut_off_date" gorm:"size:10"`
	CutOffTime         string            `json:"cut_off_time" gorm:"size:5"`
	DocCutOffDate      string            `json:"doc_cut_off_date" gorm:"size:10"`
	DocCutOffTime      string            `json:"doc_cut_off_time" gorm:"size:5"`
	CYLocation         string            `json:"cy_location" gorm:"column:cy_location"`
	SpecialInstruction string            `json:"special_instruction" gorm:"type:text"`
	ContactPerson      string            `json:"contact_person"`
	ContactPhone       string            `json:"contact_phone"`
	ContactEmail       string            `json:"contact_email"`
	CreatedAt          time.Time
	CreatedBy          int
}

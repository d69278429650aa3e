package cargo

import (
	"encoding/json"
	"math"
	"strings"
)

// Mode selects whether the volumetric step applies to a line.
type Mode string

const (
	ModeAir Mode = "AIR"
	ModeSea Mode = "SEA"
)

func (m Mode) Valid() bool {
	return m == ModeAir || m == ModeSea
}

// ParseMode maps free text to a Mode, defaulting to SEA.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeAir)) {
		return ModeAir
	}
	return ModeSea
}

// UnmarshalJSON accepts the mode in any letter case.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = Mode(strings.ToUpper(strings.TrimSpace(s)))
	return nil
}

const DefaultAirVolumetricFactor = 167.0

// Line is one row of a booking's package table or of a batch entry.
// Volume, VolumetricWeight, ChargeableWeight and Degraded are written by the Calculator only.
type Line struct {
	Mode Mode `json:"mode"`

	ShipperName   string `json:"shipper_name,omitempty"`
	ShipperCode   string `json:"shipper_code,omitempty"`
	ConsigneeName string `json:"consignee_name,omitempty"`
	ConsigneeCode string `json:"consignee_code,omitempty"`

	Commodity   string `json:"commodity,omitempty"`
	HSCode      string `json:"hs_code,omitempty"`
	PackageType string `json:"package_type,omitempty"`
	Pieces      int    `json:"pieces"`

	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	GrossWeight float64 `json:"gross_weight"`

	ContainerType string  `json:"container_type,omitempty"`
	ContainerQty  int     `json:"container_qty"`
	Measurement   float64 `json:"measurement"`

	SpecialRequest string `json:"special_request,omitempty"`
	Remarks        string `json:"remarks,omitempty"`

	Volume           float64 `json:"volume"`
	VolumetricWeight float64 `json:"volumetric_weight"`
	ChargeableWeight float64 `json:"chargeable_weight"`
	Degraded         bool    `json:"degraded"`
}

// Quantity is the count that gates a batch row: containers for sea, pieces for air.
func (l Line) Quantity() int {
	if l.Mode == ModeAir {
		return l.Pieces
	}
	return l.ContainerQty
}

// HasParty reports whether both identifying parties are filled in.
func (l Line) HasParty() bool {
	return strings.TrimSpace(l.ShipperName) != "" && strings.TrimSpace(l.ConsigneeName) != ""
}

// IsValid reports whether the row may be saved as part of a batch.
func (l Line) IsValid() bool {
	return l.HasParty() && l.Quantity() > 0
}

// Round rounds half-up to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	if v < 0 {
		return -Round(-v, places)
	}
	return math.Floor(v*p+0.5+1e-9) / p
}

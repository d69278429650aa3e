package cargo

// Totals are the booking-level sums over every line present, placeholders included.
type Totals struct {
	Lines            int     `json:"lines"`
	ValidRows        int     `json:"valid_rows"`
	Pieces           int     `json:"pieces"`
	ContainerQty     int     `json:"container_qty"`
	GrossWeight      float64 `json:"gross_weight"`
	Volume           float64 `json:"volume"`
	Measurement      float64 `json:"measurement"`
	ChargeableWeight float64 `json:"chargeable_weight"`
}

// Aggregate sums lines. Rounding is applied to the sums only.
func Aggregate(lines []Line) Totals {
	var t Totals
	var gross, volume, measurement, chargeable float64
	for _, l := range lines {
		t.Lines++
		if l.IsValid() {
			t.ValidRows++
		}
		t.Pieces += l.Pieces
		t.ContainerQty += l.ContainerQty
		gross += l.GrossWeight
		volume += l.Volume
		measurement += l.Measurement
		chargeable += l.ChargeableWeight
	}
	t.GrossWeight = Round(gross, 2)
	t.Volume = Round(volume, 3)
	t.Measurement = Round(measurement, 3)
	t.ChargeableWeight = Round(chargeable, 2)
	return t
}

// ValidRows returns the lines that pass the batch row gate, in input order.
func ValidRows(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if l.IsValid() {
			out = append(out, l)
		}
	}
	return out
}

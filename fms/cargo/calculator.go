package cargo

const cm3PerCbm = 1_000_000

// Calculator derives volume and chargeable weight for cargo lines.
// A mode without a factor (or with a factor <= 0) passes gross weight through.
type Calculator struct {
	Factors map[Mode]float64
}

func NewCalculator(airFactor, seaFactor float64) Calculator {
	return Calculator{Factors: map[Mode]float64{
		ModeAir: airFactor,
		ModeSea: seaFactor,
	}}
}

// DefaultCalculator applies 167 kg/CBM to air lines and no volumetric step to sea lines.
var DefaultCalculator = NewCalculator(DefaultAirVolumetricFactor, 0)

func (c Calculator) Factor(m Mode) float64 {
	if c.Factors == nil {
		return DefaultCalculator.Factors[m]
	}
	return c.Factors[m]
}

// Recompute returns l with its derived fields rewritten from its inputs. It never fails:
// a row with a missing or non-positive dimension or weight gets zero volume, its gross
// weight (or zero) as chargeable weight, and Degraded set.
func (c Calculator) Recompute(l Line) Line {
	out := l
	if !out.Mode.Valid() {
		out.Mode = ParseMode(string(out.Mode))
	}

	gross := l.GrossWeight
	if gross < 0 {
		gross = 0
	}

	if l.Length <= 0 || l.Width <= 0 || l.Height <= 0 || l.GrossWeight <= 0 {
		out.Volume = 0
		out.VolumetricWeight = 0
		out.ChargeableWeight = Round(gross, 2)
		out.Degraded = true
		return out
	}

	out.Degraded = false
	out.Volume = Round(l.Length*l.Width*l.Height/cm3PerCbm, 3)

	factor := c.Factor(out.Mode)
	if factor <= 0 {
		out.VolumetricWeight = 0
		out.ChargeableWeight = Round(gross, 2)
		return out
	}

	out.VolumetricWeight = Round(out.Volume*factor, 2)
	chargeable := gross
	if out.VolumetricWeight > chargeable {
		chargeable = out.VolumetricWeight
	}
	out.ChargeableWeight = Round(chargeable, 2)
	return out
}

// RecomputeAll recomputes every line under mode, the mode of the booking that owns
// them. The input slice is not modified.
func (c Calculator) RecomputeAll(lines []Line, mode Mode) []Line {
	if lines == nil {
		return nil
	}
	if !mode.Valid() {
		mode = ParseMode(string(mode))
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		l.Mode = mode
		out[i] = c.Recompute(l)
	}
	return out
}

// RecomputeLine recomputes l under mode with the default factors.
func RecomputeLine(l Line, mode Mode) Line {
	l.Mode = mode
	return DefaultCalculator.Recompute(l)
}

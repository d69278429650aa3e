package cargo

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeLineAirUsesGrossWhenHeavier(t *testing.T) {
	l := RecomputeLine(Line{Length: 100, Width: 50, Height: 40, GrossWeight: 80}, ModeAir)

	assert.Equal(t, 0.2, l.Volume)
	assert.Equal(t, 33.4, l.VolumetricWeight)
	assert.Equal(t, 80.0, l.ChargeableWeight)
	assert.False(t, l.Degraded)
}

func TestRecomputeLineAirUsesVolumetricWhenBulkier(t *testing.T) {
	l := RecomputeLine(Line{Length: 100, Width: 100, Height: 100, GrossWeight: 50}, ModeAir)

	assert.Equal(t, 1.0, l.Volume)
	assert.Equal(t, 167.0, l.VolumetricWeight)
	assert.Equal(t, 167.0, l.ChargeableWeight)
}

func TestRecomputeLineSeaPassesGrossThrough(t *testing.T) {
	l := RecomputeLine(Line{Length: 100, Width: 100, Height: 100, GrossWeight: 50}, ModeSea)

	assert.Equal(t, 1.0, l.Volume)
	assert.Zero(t, l.VolumetricWeight)
	assert.Equal(t, 50.0, l.ChargeableWeight)
}

func TestRecomputeLineRounding(t *testing.T) {
	// 33*33*33 = 35937 cm3 -> 0.035937 -> 0.036
	l := RecomputeLine(Line{Length: 33, Width: 33, Height: 33, GrossWeight: 1.005}, ModeAir)

	assert.Equal(t, 0.036, l.Volume)
	assert.Equal(t, 6.01, l.VolumetricWeight)
	assert.Equal(t, 6.01, l.ChargeableWeight)
}

func TestRecomputeLineDegradesOnIncompleteInput(t *testing.T) {
	cases := []struct {
		name       string
		line       Line
		chargeable float64
	}{
		{"missing height", Line{Length: 10, Width: 10, GrossWeight: 12.5}, 12.5},
		{"negative width", Line{Length: 10, Width: -1, Height: 10, GrossWeight: 7}, 7},
		{"missing weight", Line{Length: 10, Width: 10, Height: 10}, 0},
		{"empty row", Line{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := RecomputeLine(tc.line, ModeAir)
			assert.True(t, l.Degraded)
			assert.Zero(t, l.Volume)
			assert.Equal(t, tc.chargeable, l.ChargeableWeight)
		})
	}
}

func TestDegradedZeroIsDistinguishableFromComputedZero(t *testing.T) {
	computed := RecomputeLine(Line{Length: 1, Width: 1, Height: 1, GrossWeight: 0.001}, ModeSea)
	degraded := RecomputeLine(Line{}, ModeSea)

	assert.Zero(t, computed.Volume)
	assert.False(t, computed.Degraded)
	assert.Zero(t, degraded.Volume)
	assert.True(t, degraded.Degraded)
}

func TestRecomputeLineIsIdempotent(t *testing.T) {
	in := Line{Length: 120, Width: 80, Height: 95.5, GrossWeight: 310.25, Pieces: 3}
	once := RecomputeLine(in, ModeAir)
	twice := RecomputeLine(once, ModeAir)

	assert.Equal(t, once, twice)
}

func TestCalculatorCustomFactor(t *testing.T) {
	calc := NewCalculator(200, 1000)

	air := calc.Recompute(Line{Mode: ModeAir, Length: 100, Width: 100, Height: 100, GrossWeight: 50})
	sea := calc.Recompute(Line{Mode: ModeSea, Length: 100, Width: 100, Height: 50, GrossWeight: 300})

	assert.Equal(t, 200.0, air.ChargeableWeight)
	assert.Equal(t, 500.0, sea.ChargeableWeight)
}

func TestRecomputeAllDoesNotMutateInput(t *testing.T) {
	in := []Line{{Length: 100, Width: 100, Height: 100, GrossWeight: 50}}
	out := DefaultCalculator.RecomputeAll(in, ModeAir)

	require.Len(t, out, 1)
	assert.Zero(t, in[0].Volume)
	assert.Equal(t, Mode(""), in[0].Mode)
	assert.Equal(t, ModeAir, out[0].Mode)
	assert.Equal(t, 167.0, out[0].ChargeableWeight)
}

func TestRecomputeAllUsesBookingMode(t *testing.T) {
	out := DefaultCalculator.RecomputeAll([]Line{
		{Mode: ModeSea, Length: 100, Width: 100, Height: 100, GrossWeight: 50},
	}, ModeAir)

	assert.Equal(t, ModeAir, out[0].Mode)
	assert.Equal(t, 167.0, out[0].ChargeableWeight)
}

func TestRecomputeNormalizesLineMode(t *testing.T) {
	l := DefaultCalculator.Recompute(Line{Mode: "air", Length: 100, Width: 100, Height: 100, GrossWeight: 50})
	assert.Equal(t, ModeAir, l.Mode)
	assert.Equal(t, 167.0, l.ChargeableWeight)

	var decoded Line
	require.NoError(t, json.Unmarshal([]byte(`{"mode":" air ","length":100,"width":100,"height":100,"gross_weight":50}`), &decoded))
	assert.Equal(t, ModeAir, decoded.Mode)
	assert.Equal(t, 167.0, DefaultCalculator.Recompute(decoded).ChargeableWeight)
}

func TestAggregateIncludesPlaceholderRows(t *testing.T) {
	lines := DefaultCalculator.RecomputeAll([]Line{
		{ShipperName: "ACME", ConsigneeName: "GLOBEX", ContainerQty: 2, GrossWeight: 1000.125, Measurement: 20.0005},
		{},
		{ShipperName: "ACME", ConsigneeName: "", ContainerQty: 1, GrossWeight: 500},
	}, ModeSea)

	totals := Aggregate(lines)

	assert.Equal(t, 3, totals.Lines)
	assert.Equal(t, 1, totals.ValidRows)
	assert.Equal(t, 3, totals.ContainerQty)
	assert.Equal(t, 1500.13, totals.GrossWeight)
	assert.Equal(t, 20.001, totals.Measurement)
}

func TestAggregateRoundsSumNotAddends(t *testing.T) {
	lines := []Line{{GrossWeight: 0.004}, {GrossWeight: 0.004}}

	// per-addend rounding would give 0.00
	assert.Equal(t, 0.01, Aggregate(lines).GrossWeight)
}

func TestAggregateIsOrderIndependent(t *testing.T) {
	var lines []Line
	for i := 1; i <= 25; i++ {
		lines = append(lines, RecomputeLine(Line{
			ShipperName:   "S",
			ConsigneeName: "C",
			Pieces:        i,
			Length:        float64(10 * i),
			Width:         35.5,
			Height:        22,
			GrossWeight:   float64(i) * 7.25,
		}, ModeAir))
	}

	want := Aggregate(lines)
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 10; n++ {
		shuffled := append([]Line(nil), lines...)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestValidRowsUsesModeQuantity(t *testing.T) {
	lines := []Line{
		{Mode: ModeAir, ShipperName: "A", ConsigneeName: "B", Pieces: 2},
		{Mode: ModeAir, ShipperName: "A", ConsigneeName: "B", ContainerQty: 2},
		{Mode: ModeSea, ShipperName: "A", ConsigneeName: "B", ContainerQty: 1},
		{Mode: ModeSea, ShipperName: " ", ConsigneeName: "B", ContainerQty: 1},
	}

	valid := ValidRows(lines)

	require.Len(t, valid, 2)
	assert.Equal(t, 2, valid[0].Pieces)
	assert.Equal(t, ModeSea, valid[1].Mode)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.01, Round(1.005, 2))
	assert.Equal(t, 0.125, Round(0.1245, 3))
	assert.Equal(t, -2.5, Round(-2.45, 1))
	assert.Equal(t, 3.0, Round(2.5, 0))
}

package documents

import (
	"bytes"
	"strings"
	"testing"

	"fms-app/fms/booking"
	"fms-app/fms/cargo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleBooking() booking.Booking {
	lines := cargo.DefaultCalculator.RecomputeAll([]cargo.Line{
		{Pieces: 2, Length: 100, Width: 100, Height: 100, GrossWeight: 80},
	}, cargo.ModeAir)
	return booking.Booking{
		BookingNo:       "AB-2024-0003",
		Mode:            cargo.ModeAir,
		Status:          booking.StatusConfirmed,
		BookingDate:     "2024-05-01",
		Shipper:         booking.Party{Name: "Hanil Trading"},
		Consignee:       booking.Party{Name: "Pacific Imports"},
		Carrier:         "KE",
		POL:             "ICN",
		POD:             "LAX",
		Commodity:       "Machine parts",
		GrossWeight:     80,
		WeightUnit:      "KG",
		MeasurementUnit: "CBM",
		BCNo:            "BC-2024-0001",
		BCDate:          "2024-05-02",
		SRNo:            "SR-2024-0001",
		ShippingRequest: &booking.ShippingRequest{ShippingDate: "2024-05-10", CYLocation: "ICN cargo terminal", SpecialInstruction: "Keep dry"},
		Lines:           lines,
		Totals:          cargo.Aggregate(lines),
	}
}

func TestBookingConfirmationPDF(t *testing.T) {
	data, name, err := BookingConfirmationPDF(sampleBooking())

	require.NoError(t, err)
	assert.Equal(t, "BC_BC-2024-0001.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestShippingRequestPDF(t *testing.T) {
	data, name, err := ShippingRequestPDF(sampleBooking())

	require.NoError(t, err)
	assert.Equal(t, "SR_SR-2024-0001.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestShippingRequestPDFWithoutNumbers(t *testing.T) {
	b := sampleBooking()
	b.SRNo = ""
	b.ShippingRequest = nil
	b.Lines = nil

	_, name, err := ShippingRequestPDF(b)
	require.NoError(t, err)
	assert.Equal(t, "SR_AB-2024-0003.pdf", name)
}

func TestExportBookings(t *testing.T) {
	data, err := ExportBookings([]booking.Booking{sampleBooking()})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Booking No", rows[0][0])
	assert.Equal(t, "AB-2024-0003", rows[1][0])
	assert.Equal(t, booking.Meta(booking.StatusConfirmed).Label, rows[1][1])
	assert.Equal(t, "BC-2024-0001", rows[1][20])
}

func TestParseBatchWorkbook(t *testing.T) {
	tpl, err := BatchTemplate()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(tpl))
	require.NoError(t, err)
	row := func(values map[string]interface{}) []interface{} {
		out := make([]interface{}, len(BatchColumns))
		for i, c := range BatchColumns {
			if v, ok := values[c]; ok {
				out[i] = v
			} else {
				out[i] = ""
			}
		}
		return out
	}
	first := row(map[string]interface{}{
		"mode": "SEA", "carrier": "HMM", "vessel": "HMM ALGECIRAS", "pol": "KRPUS", "pod": "NLRTM",
		"shipper_name": "Hanil Trading", "consignee_name": "Euro Foods", "container_type": "40HC", "container_qty": 2,
		"gross_weight": "12,500.5",
	})
	second := row(map[string]interface{}{"shipper_name": "Daon", "consignee_name": "", "container_qty": 1})
	require.NoError(t, f.SetSheetRow(BatchSheet, "A2", &first))
	require.NoError(t, f.SetSheetRow(BatchSheet, "A4", &second))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	f.Close()

	batch, err := ParseBatchWorkbook(buf)
	require.NoError(t, err)

	assert.Equal(t, cargo.ModeSea, batch.Mode)
	assert.Equal(t, "HMM", batch.Schedule.Carrier)
	assert.Equal(t, "HMM ALGECIRAS", batch.Schedule.Vessel)
	require.Len(t, batch.Rows, 2)
	assert.Equal(t, 2, batch.Rows[0].ContainerQty)
	assert.Equal(t, 12500.5, batch.Rows[0].GrossWeight)
	assert.True(t, batch.Rows[0].IsValid())
	assert.False(t, batch.Rows[1].IsValid())
}

func TestParseBatchCSV(t *testing.T) {
	csvData := "\uFEFFMode,Carrier,Vessel,Shipper Name,Consignee Name,Pieces,Length,Width,Height,Gross Weight\n" +
		"AIR,KE,KE081,Hanil,Pacific,3,50,40,30,abc\n" +
		",,,,,,,,,\n"

	batch, err := ParseBatchCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, cargo.ModeAir, batch.Mode)
	assert.Equal(t, "KE081", batch.Schedule.Vessel)
	require.Len(t, batch.Rows, 1)
	assert.Equal(t, 3, batch.Rows[0].Pieces)
	assert.Equal(t, 0.0, batch.Rows[0].GrossWeight)
	assert.Equal(t, cargo.ModeAir, batch.Rows[0].Mode)
}

func TestParseBatchEmpty(t *testing.T) {
	_, err := ParseBatchCSV(strings.NewReader("mode,carrier\n"))
	assert.ErrorIs(t, err, ErrEmptyBatch)
}

package documents

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fms-app/fms/booking"
	"fms-app/fms/cargo"

	"github.com/xuri/excelize/v2"
)

const (
	ExportSheet = "Bookings"
	BatchSheet  = "Batch"
)

var ErrEmptyBatch = errors.New("batch file has no data rows")

// BatchFile is one parsed batch registration: a shared schedule plus cargo rows.
type BatchFile struct {
	Mode     cargo.Mode       `json:"mode"`
	Schedule booking.Schedule `json:"schedule"`
	Rows     []cargo.Line     `json:"rows"`
}

// BatchColumns is the header row of the batch template. Schedule columns are read
// from the first data row; the rest are read per row.
var BatchColumns = []string{
	"mode", "carrier", "vessel", "voyage", "pol", "pod", "final_dest", "etd", "eta", "closing_date",
	"freight_terms", "payment_terms",
	"shipper_name", "shipper_code", "consignee_name", "consignee_code", "commodity", "hs_code",
	"package_type", "pieces", "length", "width", "height", "gross_weight",
	"container_type", "container_qty", "measurement", "special_request", "remarks",
}

var exportHeader = []interface{}{
	"Booking No", "Status", "Mode", "Booking Date", "Shipper", "Consignee", "Carrier", "Carrier Booking No",
	"Vessel", "Voyage", "POL", "POD", "ETD", "ETA", "Commodity", "Container Type", "Container Qty",
	"Gross Weight", "Measurement", "Chargeable Weight", "B/C No", "S/R No",
}

// ExportBookings writes the booking list as an xlsx workbook.
func ExportBookings(bookings []booking.Booking) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err := f.SetCellStyle(ExportSheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, b := range bookings {
		row := []interface{}{
			b.BookingNo, booking.Meta(b.Status).Label, string(b.Mode), b.BookingDate,
			b.Shipper.Name, b.Consignee.Name, b.Carrier, b.CarrierBookingNo,
			b.Vessel, b.Voyage, b.POL, b.POD, b.ETD, b.ETA, b.Commodity,
			b.ContainerType, b.ContainerQty, b.GrossWeight, b.Measurement, b.Totals.ChargeableWeight,
			b.BCNo, b.SRNo,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BatchTemplate returns an empty batch workbook with the header row filled in.
func BatchTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", BatchSheet); err != nil {
		return nil, err
	}
	header := make([]interface{}, len(BatchColumns))
	for i, c := range BatchColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(BatchSheet, "A1", &header); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseBatchWorkbook reads the first sheet of an uploaded batch workbook.
func ParseBatchWorkbook(r io.Reader) (BatchFile, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return BatchFile{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return BatchFile{}, ErrEmptyBatch
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return BatchFile{}, fmt.Errorf("read rows: %w", err)
	}
	return parseBatchRecords(rows)
}

// ParseBatchCSV reads the same layout from a csv file.
func ParseBatchCSV(r io.Reader) (BatchFile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return BatchFile{}, fmt.Errorf("read csv: %w", err)
	}
	return parseBatchRecords(records)
}

func headerKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
	return strings.NewReplacer(" ", "_", "-", "_", "/", "_").Replace(s)
}

func parseBatchRecords(records [][]string) (BatchFile, error) {
	if len(records) < 2 {
		return BatchFile{}, ErrEmptyBatch
	}

	index := map[string]int{}
	for i, h := range records[0] {
		index[headerKey(h)] = i
	}
	var out BatchFile
	scheduleRead := false

	for _, rec := range records[1:] {
		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		if blank(rec) {
			continue
		}

		if !scheduleRead {
			out.Mode = cargo.ParseMode(get("mode"))
			out.Schedule = booking.Schedule{
				Carrier:      get("carrier"),
				Vessel:       get("vessel"),
				Voyage:       get("voyage"),
				POL:          get("pol"),
				POD:          get("pod"),
				FinalDest:    get("final_dest"),
				ETD:          get("etd"),
				ETA:          get("eta"),
				ClosingDate:  get("closing_date"),
				FreightTerms: get("freight_terms"),
				PaymentTerms: get("payment_terms"),
			}
			scheduleRead = true
		}

		out.Rows = append(out.Rows, cargo.Line{
			Mode:           out.Mode,
			ShipperName:    get("shipper_name"),
			ShipperCode:    get("shipper_code"),
			ConsigneeName:  get("consignee_name"),
			ConsigneeCode:  get("consignee_code"),
			Commodity:      get("commodity"),
			HSCode:         get("hs_code"),
			PackageType:    get("package_type"),
			Pieces:         toInt(get("pieces")),
			Length:         toFloat(get("length")),
			Width:          toFloat(get("width")),
			Height:         toFloat(get("height")),
			GrossWeight:    toFloat(get("gross_weight")),
			ContainerType:  get("container_type"),
			ContainerQty:   toInt(get("container_qty")),
			Measurement:    toFloat(get("measurement")),
			SpecialRequest: get("special_request"),
			Remarks:        get("remarks"),
		})
	}

	if len(out.Rows) == 0 {
		return BatchFile{}, ErrEmptyBatch
	}
	return out, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// Unparseable numbers read as zero; the row then fails validation or degrades.
func toFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func toInt(s string) int {
	return int(toFloat(s))
}

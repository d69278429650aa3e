package services

import (
	"context"
	"strings"

	"fms-app/fms/booking"
	"fms-app/fms/cargo"

	"github.com/gofiber/fiber/v2/log"
)

// BatchInput is a multi-register request: one schedule shared by every row.
type BatchInput struct {
	Mode     cargo.Mode       `json:"mode"`
	Schedule booking.Schedule `json:"schedule"`
	Rows     []cargo.Line     `json:"rows"`
}

// BatchSkip is a row left out of the batch, numbered from 1.
type BatchSkip struct {
	Row    int                      `json:"row"`
	Result booking.ValidationResult `json:"result"`
}

type BatchResult struct {
	Created []booking.Booking `json:"created"`
	Skipped []BatchSkip       `json:"skipped"`
}

func noValidRows() *booking.ValidationFailedError {
	return &booking.ValidationFailedError{Result: booking.ValidationResult{
		Errors:            map[string]string{"rows": "At least one row needs shipper, consignee and quantity"},
		Fields:            []string{"rows"},
		FirstInvalidGroup: booking.GroupRequired,
	}}
}

// CreateBatch registers one draft per valid row. Invalid rows are reported, not saved.
// The valid rows are stored together: either all of them or none.
func (s *BookingService) CreateBatch(ctx context.Context, in BatchInput, actor int) (BatchResult, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if res := booking.Validate(in.Schedule, booking.ScheduleRules); !res.Valid() {
		return BatchResult{}, &booking.ValidationFailedError{Result: res}
	}
	mode := in.Mode
	if !mode.Valid() {
		mode = cargo.ModeSea
	}

	rules := booking.BatchRowRules(mode)
	result := BatchResult{Created: []booking.Booking{}, Skipped: []BatchSkip{}}
	var valid []cargo.Line
	for i, row := range in.Rows {
		row.Mode = mode
		if res := booking.Validate(row, rules); !res.Valid() {
			result.Skipped = append(result.Skipped, BatchSkip{Row: i + 1, Result: res})
			continue
		}
		valid = append(valid, row)
	}
	if len(valid) == 0 {
		return result, noValidRows()
	}

	drafts := make([]booking.Booking, len(valid))
	for i, row := range valid {
		drafts[i] = bookingFromRow(mode, in.Schedule, row)
	}
	created, err := s.createAll(ctx, mode, drafts, actor)
	if err != nil {
		log.Errorw("batch create failed", "rows", len(valid), "error", err)
		return result, err
	}
	result.Created = created
	return result, nil
}

func bookingFromRow(mode cargo.Mode, sc booking.Schedule, row cargo.Line) booking.Booking {
	remarks := strings.TrimSpace(row.Remarks)
	if sr := strings.TrimSpace(row.SpecialRequest); sr != "" {
		if remarks != "" {
			remarks += "\n"
		}
		remarks += sr
	}
	qty := row.ContainerQty
	switch {
	case mode == cargo.ModeAir:
		// air summaries count pieces of the package type
		qty = row.Pieces
		if strings.TrimSpace(row.ContainerType) == "" {
			row.ContainerType = row.PackageType
		}
		if strings.TrimSpace(row.ContainerType) == "" {
			row.ContainerType = "CTN"
		}
	case strings.TrimSpace(row.ContainerType) == "":
		row.ContainerType = "40HC"
	}

	return booking.Booking{
		Mode:          mode,
		Shipper:       booking.Party{Name: row.ShipperName, Code: row.ShipperCode},
		Consignee:     booking.Party{Name: row.ConsigneeName, Code: row.ConsigneeCode},
		Carrier:       sc.Carrier,
		Vessel:        sc.Vessel,
		Voyage:        sc.Voyage,
		POL:           sc.POL,
		POD:           sc.POD,
		FinalDest:     sc.FinalDest,
		ETD:           sc.ETD,
		ETA:           sc.ETA,
		ClosingDate:   sc.ClosingDate,
		FreightTerms:  sc.FreightTerms,
		PaymentTerms:  sc.PaymentTerms,
		Commodity:     row.Commodity,
		GrossWeight:   row.GrossWeight,
		Measurement:   row.Measurement,
		ContainerType: row.ContainerType,
		ContainerQty:  qty,
		Remarks:       remarks,
		Lines:         []cargo.Line{row},
	}
}

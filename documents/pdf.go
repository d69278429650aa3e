package documents

import (
	"bytes"
	"fmt"
	"strings"

	"fms-app/fms/booking"

	"github.com/phpdave11/gofpdf"
)

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// BookingConfirmationPDF renders the B/C sheet for a confirmed booking.
func BookingConfirmationPDF(b booking.Booking) ([]byte, string, error) {
	pdf := newSheet("Booking Confirmation", "BOOKING CONFIRMATION")

	writeLines(pdf, []string{
		fmt.Sprintf("B/C No         : %s", safe(b.BCNo, "-")),
		fmt.Sprintf("B/C Date       : %s", safe(b.BCDate, "-")),
		fmt.Sprintf("Booking No     : %s", safe(b.BookingNo, "-")),
		fmt.Sprintf("Carrier Bkg No : %s", safe(b.CarrierBookingNo, "-")),
	})
	section(pdf, "Parties")
	writeLines(pdf, partyLines(b))
	section(pdf, "Schedule")
	writeLines(pdf, scheduleLines(b))
	section(pdf, "Cargo")
	writeLines(pdf, cargoLines(b))
	cargoTable(pdf, b)

	return output(pdf, fmt.Sprintf("BC_%s.pdf", safe(b.BCNo, b.BookingNo)))
}

// ShippingRequestPDF renders the S/R sent to the carrier.
func ShippingRequestPDF(b booking.Booking) ([]byte, string, error) {
	pdf := newSheet("Shipping Request", "SHIPPING REQUEST")
	sr := booking.ShippingRequest{}
	if b.ShippingRequest != nil {
		sr = *b.ShippingRequest
	}

	writeLines(pdf, []string{
		fmt.Sprintf("S/R No         : %s", safe(b.SRNo, "-")),
		fmt.Sprintf("S/R Date       : %s", safe(b.SRDate, "-")),
		fmt.Sprintf("Booking No     : %s", safe(b.BookingNo, "-")),
		fmt.Sprintf("B/C No         : %s", safe(b.BCNo, "-")),
	})
	section(pdf, "Cut-off")
	writeLines(pdf, []string{
		fmt.Sprintf("Shipping Date  : %s", safe(sr.ShippingDate, "-")),
		fmt.Sprintf("Cargo Cut-off  : %s %s", safe(sr.CutOffDate, "-"), sr.CutOffTime),
		fmt.Sprintf("Doc Cut-off    : %s %s", safe(sr.DocCutOffDate, "-"), sr.DocCutOffTime),
		fmt.Sprintf("CY Location    : %s", safe(sr.CYLocation, "-")),
	})
	section(pdf, "Parties")
	writeLines(pdf, partyLines(b))
	section(pdf, "Schedule")
	writeLines(pdf, scheduleLines(b))
	section(pdf, "Cargo")
	writeLines(pdf, cargoLines(b))
	cargoTable(pdf, b)

	if strings.TrimSpace(sr.SpecialInstruction) != "" {
		section(pdf, "Special Instruction")
		pdf.MultiCell(0, 6, sr.SpecialInstruction, "", "", false)
	}
	if sr.ContactPerson != "" || sr.ContactEmail != "" {
		section(pdf, "Contact")
		writeLines(pdf, []string{fmt.Sprintf("%s  %s  %s", sr.ContactPerson, sr.ContactPhone, sr.ContactEmail)})
	}

	return output(pdf, fmt.Sprintf("SR_%s.pdf", safe(b.SRNo, b.BookingNo)))
}

func newSheet(title, heading string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, heading)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	return pdf
}

func section(pdf *gofpdf.Fpdf, name string) {
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, name)
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
}

func writeLines(pdf *gofpdf.Fpdf, lines []string) {
	for _, s := range lines {
		pdf.Cell(0, 6, s)
		pdf.Ln(6)
	}
}

func partyLines(b booking.Booking) []string {
	return []string{
		fmt.Sprintf("Shipper        : %s", safe(b.Shipper.Name, "-")),
		fmt.Sprintf("Consignee      : %s", safe(b.Consignee.Name, "-")),
		fmt.Sprintf("Notify         : %s", safe(b.NotifyParty.Name, "-")),
	}
}

func scheduleLines(b booking.Booking) []string {
	return []string{
		fmt.Sprintf("Carrier        : %s", safe(b.Carrier, "-")),
		fmt.Sprintf("Vessel/Voyage  : %s / %s", safe(b.Vessel, "-"), safe(b.Voyage, "-")),
		fmt.Sprintf("POL -> POD     : %s -> %s", safe(b.POL, "-"), safe(b.POD, "-")),
		fmt.Sprintf("Final Dest     : %s", safe(b.FinalDest, "-")),
		fmt.Sprintf("ETD / ETA      : %s / %s", safe(b.ETD, "-"), safe(b.ETA, "-")),
	}
}

func cargoLines(b booking.Booking) []string {
	return []string{
		fmt.Sprintf("Commodity      : %s", safe(b.Commodity, "-")),
		fmt.Sprintf("Container      : %d x %s", b.ContainerQty, safe(b.ContainerType, "-")),
		fmt.Sprintf("Gross Weight   : %.2f %s", b.GrossWeight, b.WeightUnit),
		fmt.Sprintf("Measurement    : %.3f %s", b.Measurement, b.MeasurementUnit),
		fmt.Sprintf("Freight/Payment: %s / %s", safe(b.FreightTerms, "-"), safe(b.PaymentTerms, "-")),
	}
}

func cargoTable(pdf *gofpdf.Fpdf, b booking.Booking) {
	if len(b.Lines) == 0 {
		return
	}
	pdf.Ln(3)
	widths := []float64{10, 25, 45, 30, 30, 30}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"#", "Pieces", "L x W x H (cm)", "Gross (kg)", "CBM", "Chargeable"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for i, l := range b.Lines {
		cells := []string{
			fmt.Sprint(i + 1),
			fmt.Sprint(l.Pieces),
			fmt.Sprintf("%g x %g x %g", l.Length, l.Width, l.Height),
			fmt.Sprintf("%.2f", l.GrossWeight),
			fmt.Sprintf("%.3f", l.Volume),
			fmt.Sprintf("%.2f", l.ChargeableWeight),
		}
		for j, c := range cells {
			pdf.CellFormat(widths[j], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	t := b.Totals
	pdf.SetFont("Helvetica", "B", 10)
	for j, c := range []string{"", fmt.Sprint(t.Pieces), "", fmt.Sprintf("%.2f", t.GrossWeight), fmt.Sprintf("%.3f", t.Volume), fmt.Sprintf("%.2f", t.ChargeableWeight)} {
		pdf.CellFormat(widths[j], 6, c, "1", 0, "R", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf, filename string) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), filename, nil
}

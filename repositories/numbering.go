package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"fms-app/fms/cargo"
)

const (
	PrefixSeaBooking      = "SB"
	PrefixAirBooking      = "AB"
	PrefixConfirmation    = "BC"
	PrefixShippingRequest = "SR"
)

// numberColumns maps a number prefix to the bookings column that holds it.
var numberColumns = map[string]string{
	PrefixSeaBooking:      "booking_no",
	PrefixAirBooking:      "booking_no",
	PrefixConfirmation:    "bc_no",
	PrefixShippingRequest: "sr_no",
}

func BookingPrefix(mode cargo.Mode) string {
	if mode == cargo.ModeAir {
		return PrefixAirBooking
	}
	return PrefixSeaBooking
}

// FormatNumber renders PREFIX-YYYY-NNNN.
func FormatNumber(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}

// NumberAfter returns the number issued right after no.
func NumberAfter(no, prefix string, year int) string {
	return FormatNumber(prefix, year, nextSequence(no, prefix, year))
}

func numberHead(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// nextSequence returns the sequence following last, or 1 when last does not
// belong to prefix and year.
func nextSequence(last, prefix string, year int) int {
	head := numberHead(prefix, year)
	if !strings.HasPrefix(last, head) {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(last, head))
	if err != nil {
		return 1
	}
	return n + 1
}

func numberColumn(prefix string) (string, error) {
	col, ok := numberColumns[prefix]
	if !ok {
		return "", fmt.Errorf("unknown number prefix %q", prefix)
	}
	return col, nil
}

package database

import (
	"context"

	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/services"

	"github.com/gofiber/fiber/v2/log"
)

const seedActor = 1

type demoBooking struct {
	input   booking.Booking
	actions []booking.Action
}

func demoBookings() []demoBooking {
	return []demoBooking{
		{
			input: booking.Booking{
				Mode: cargo.ModeSea, Shipper: booking.Party{Name: "Hanil Trading"}, Consignee: booking.Party{Name: "Euro Foods BV"},
				Carrier: "HMM", Vessel: "HMM ALGECIRAS", Voyage: "0012W", POL: "KRPUS", POD: "NLRTM",
				ETD: "2024-06-20", ETA: "2024-07-25", Commodity: "Frozen food",
				GrossWeight: 12000, ContainerType: "40RF", ContainerQty: 2,
			},
			actions: []booking.Action{booking.ActionSubmit, booking.ActionConfirm},
		},
		{
			input: booking.Booking{
				Mode: cargo.ModeSea, Shipper: booking.Party{Name: "Daon Chemical"}, Consignee: booking.Party{Name: "Gulf Polymer LLC"},
				Carrier: "MSC", POL: "KRINC", POD: "AEJEA", ETD: "2024-06-28", Commodity: "Resin",
				GrossWeight: 21000, ContainerType: "20GP", ContainerQty: 1,
			},
			actions: []booking.Action{booking.ActionSubmit},
		},
		{
			input: booking.Booking{
				Mode: cargo.ModeAir, Shipper: booking.Party{Name: "Mirae Semicon"}, Consignee: booking.Party{Name: "Pacific Components"},
				Carrier: "KE", Vessel: "KE081", POL: "ICN", POD: "JFK", ETD: "2024-06-12", Commodity: "Wafers",
				ContainerType: "CTN", ContainerQty: 4,
				Lines: []cargo.Line{{Pieces: 4, Length: 60, Width: 40, Height: 40, GrossWeight: 55}},
			},
		},
		{
			input: booking.Booking{
				Mode: cargo.ModeSea, Shipper: booking.Party{Name: "Seoul Textile"}, Carrier: "ONE", POL: "KRPUS",
			},
		},
	}
}

// SeedDemoBookings registers a handful of bookings in different stages when the store is empty.
func SeedDemoBookings(ctx context.Context, svc *services.BookingService) error {
	existing, err := svc.Search(ctx, services.ListQuery{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, d := range demoBookings() {
		b, _, err := svc.Create(ctx, d.input, seedActor)
		if err != nil {
			return err
		}
		for _, action := range d.actions {
			switch action {
			case booking.ActionSubmit:
				b, err = svc.Submit(ctx, b.ID, seedActor)
			case booking.ActionConfirm:
				b, err = svc.Confirm(ctx, b.ID, seedActor)
			}
			if err != nil {
				return err
			}
		}
		log.Infow("demo booking seeded", "booking_no", b.BookingNo, "status", b.Status)
	}
	return nil
}

package controllers

import (
	"fmt"
	"strings"

	"fms-app/documents"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/fms/listing"
	"fms-app/services"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Service: svc}
}

// listQuery reads the list screen's search form and column sort from the query string.
func listQuery(ctx *fiber.Ctx) services.ListQuery {
	q := services.ListQuery{
		Status: booking.Status(ctx.Query("status")),
		Filters: listing.Filters{
			Contains: map[string]string{
				"carrier_booking_no": ctx.Query("carrier_booking_no"),
				"shipper":            ctx.Query("shipper"),
				"pol":                ctx.Query("pol"),
				"pod":                ctx.Query("pod"),
				"booking_no":         ctx.Query("booking_no"),
			},
			Ranges: map[string]listing.DateRange{
				"booking_date": {From: ctx.Query("start_date"), To: ctx.Query("end_date")},
			},
		},
		Sort: listing.SortSpec{Key: ctx.Query("sort"), Direction: listing.ParseDirection(ctx.Query("direction"))},
		Page: ctx.QueryInt("page", 1),
		Size: ctx.QueryInt("size", listing.DefaultPageSize),
	}
	if mode := ctx.Query("mode"); mode != "" {
		q.Mode = cargo.ParseMode(mode)
	}
	return q
}

func (c *BookingController) GetBookings(ctx *fiber.Ctx) error {
	page, err := c.Service.List(ctx.UserContext(), listQuery(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Bookings found", page)
}

func (c *BookingController) ExportBookings(ctx *fiber.Ctx) error {
	data, err := c.Service.Export(ctx.UserContext(), listQuery(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	ctx.Set("Content-Type", xlsxContentType)
	ctx.Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	return ctx.Send(data)
}

func (c *BookingController) GetBookingByID(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	b, err := c.Service.Get(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking found", fiber.Map{
		"booking":         b,
		"status":          booking.Meta(b.Status),
		"allowed_actions": booking.AllowedActions(b.Status),
	})
}

func (c *BookingController) CreateBooking(ctx *fiber.Ctx) error {
	var input booking.Booking
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	b, res, err := c.Service.Create(ctx.UserContext(), input, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Booking created successfully",
		"data":       b,
		"validation": res,
	})
}

func (c *BookingController) UpdateBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	var input booking.Booking
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	b, err := c.Service.Update(ctx.UserContext(), id, input, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking updated successfully", b)
}

func (c *BookingController) DeleteBookings(ctx *fiber.Ctx) error {
	ids, err := parseIDs(ctx.Query("ids"))
	if err != nil || len(ids) == 0 {
		return badRequest(ctx, "ids is required", err)
	}
	if err := c.Service.Delete(ctx.UserContext(), ids, actorID(ctx)); err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, fmt.Sprintf("%d booking(s) deleted", len(ids)), nil)
}

func (c *BookingController) SubmitBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	b, err := c.Service.Submit(ctx.UserContext(), id, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking request sent", b)
}

func (c *BookingController) ConfirmBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	b, err := c.Service.Confirm(ctx.UserContext(), id, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking confirmed", b)
}

func (c *BookingController) RejectBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	b, err := c.Service.Reject(ctx.UserContext(), id, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking rejected", b)
}

func (c *BookingController) CancelBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	b, err := c.Service.Cancel(ctx.UserContext(), id, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Booking cancelled", b)
}

func (c *BookingController) SendShippingRequest(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	var input shippingRequestInput
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	b, err := c.Service.SendShippingRequest(ctx.UserContext(), id, input.toDomain(), actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Shipping request sent", b)
}

// GetShippingRequestForm returns the S/R form pre-filled with the booking defaults.
func (c *BookingController) GetShippingRequestForm(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	form, err := c.Service.ShippingRequestForm(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Shipping request form", form)
}

func (c *BookingController) GetTimeline(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	events, err := c.Service.Timeline(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "Timeline found", events)
}

func (c *BookingController) GetHistory(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	rows, err := c.Service.History(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return ok(ctx, "History found", rows)
}

func (c *BookingController) CreateBatch(ctx *fiber.Ctx) error {
	var input batchInput
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	res, err := c.Service.CreateBatch(ctx.UserContext(), input.toService(), actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d booking(s) created", len(res.Created)),
		"data":    res,
	})
}

func (c *BookingController) ImportBatch(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "file is required", err)
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		return badRequest(ctx, "Only Excel files (.xlsx) are allowed", nil)
	}

	content, err := file.Open()
	if err != nil {
		return writeError(ctx, err)
	}
	defer content.Close()

	res, err := c.Service.ImportBatch(ctx.UserContext(), content, actorID(ctx))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("%d booking(s) created", len(res.Created)),
		"data":    res,
	})
}

func (c *BookingController) BatchTemplate(ctx *fiber.Ctx) error {
	data, err := documents.BatchTemplate()
	if err != nil {
		return writeError(ctx, err)
	}
	ctx.Set("Content-Type", xlsxContentType)
	ctx.Set("Content-Disposition", `attachment; filename="batch_booking_template.xlsx"`)
	return ctx.Send(data)
}

func (c *BookingController) ConfirmationDocument(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	data, name, err := c.Service.ConfirmationPDF(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return sendPDF(ctx, data, name)
}

func (c *BookingController) ShippingRequestDocument(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid ID", err)
	}
	data, name, err := c.Service.ShippingRequestPDF(ctx.UserContext(), id)
	if err != nil {
		return writeError(ctx, err)
	}
	return sendPDF(ctx, data, name)
}

func sendPDF(ctx *fiber.Ctx, data []byte, name string) error {
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, name))
	return ctx.Send(data)
}

package routes

import (
	"fms-app/config"
	"fms-app/controllers"
	"fms-app/middleware"
	"fms-app/services"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App, svc *services.BookingService) {
	api := app.Group(config.MAIN_ROUTES+"/bookings", middleware.Actor)
	bookingController := controllers.NewBookingController(svc)

	api.Get("/", bookingController.GetBookings)
	api.Post("/", bookingController.CreateBooking)
	api.Delete("/", bookingController.DeleteBookings)
	api.Get("/export", bookingController.ExportBookings)
	api.Post("/batch", bookingController.CreateBatch)
	api.Post("/batch/import", bookingController.ImportBatch)
	api.Get("/batch/template", bookingController.BatchTemplate)

	api.Get("/:id", bookingController.GetBookingByID)
	api.Put("/:id", bookingController.UpdateBooking)
	api.Post("/:id/submit", bookingController.SubmitBooking)
	api.Post("/:id/confirm", bookingController.ConfirmBooking)
	api.Post("/:id/reject", bookingController.RejectBooking)
	api.Post("/:id/cancel", bookingController.CancelBooking)
	api.Get("/:id/shipping-request", bookingController.GetShippingRequestForm)
	api.Post("/:id/send-sr", bookingController.SendShippingRequest)
	api.Get("/:id/timeline", bookingController.GetTimeline)
	api.Get("/:id/history", bookingController.GetHistory)
	api.Get("/:id/documents/bc", bookingController.ConfirmationDocument)
	api.Get("/:id/documents/sr", bookingController.ShippingRequestDocument)
}

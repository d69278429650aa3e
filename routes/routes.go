package routes

import (
	"fms-app/services"

	"github.com/gofiber/fiber/v2"
)

// Setup registers every API route.
func Setup(app *fiber.App, svc *services.BookingService) {
	SetupBookingRoutes(app, svc)
	SetupCargoRoutes(app, svc.Calculator())

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"success": true, "message": "ok"})
	})
}

package routes

import (
	"fms-app/config"
	"fms-app/controllers"
	"fms-app/fms/cargo"

	"github.com/gofiber/fiber/v2"
)

func SetupCargoRoutes(app *fiber.App, calc cargo.Calculator) {
	cargoController := controllers.NewCargoController(calc)

	api := app.Group(config.MAIN_ROUTES)
	api.Post("/cargo/recompute", cargoController.Recompute)
	api.Get("/statuses", cargoController.GetStatuses)
}

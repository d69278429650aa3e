package controllers

import (
	"fms-app/fms/booking"
	"fms-app/fms/cargo"

	"github.com/gofiber/fiber/v2"
)

// CargoController serves the dimensions calculator and status metadata.
type CargoController struct {
	Calculator cargo.Calculator
}

func NewCargoController(calc cargo.Calculator) *CargoController {
	return &CargoController{Calculator: calc}
}

func (c *CargoController) Recompute(ctx *fiber.Ctx) error {
	var input recomputeRequest
	if err := ctx.BodyParser(&input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}
	if err := validate.Struct(input); err != nil {
		return badRequest(ctx, "Invalid request body", err)
	}

	mode := cargo.ParseMode(input.Mode)
	lines := c.Calculator.RecomputeAll(input.Lines, mode)
	if lines == nil {
		lines = []cargo.Line{}
	}
	return ok(ctx, "Cargo recomputed", fiber.Map{
		"mode":   mode,
		"lines":  lines,
		"totals": cargo.Aggregate(lines),
	})
}

func (c *CargoController) GetStatuses(ctx *fiber.Ctx) error {
	return ok(ctx, "Statuses found", booking.AllMeta())
}

package controllers

import (
	"errors"
	"strings"

	"fms-app/documents"
	"fms-app/fms/booking"
	"fms-app/services"
	"fms-app/types"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

func ok(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func badRequest(ctx *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(body)
}

// writeError maps service and lifecycle errors to HTTP responses.
func writeError(ctx *fiber.Ctx, err error) error {
	if vf, isValidation := booking.AsValidationFailed(err); isValidation {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success":             false,
			"message":             "Validation failed",
			"error":               err.Error(),
			"errors":              vf.Result.Errors,
			"fields":              vf.Result.Fields,
			"first_invalid_group": vf.Result.FirstInvalidGroup,
		})
	}

	status := fiber.StatusInternalServerError
	message := "Internal server error"
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		status, message = fiber.StatusNotFound, "Booking not found"
	case errors.Is(err, services.ErrDocumentUnavailable):
		status, message = fiber.StatusNotFound, "Document not issued"
	case errors.Is(err, services.ErrVersionConflict), errors.Is(err, services.ErrBookingLocked):
		status, message = fiber.StatusConflict, "Booking was changed by another request"
	case errors.Is(err, services.ErrConfirmedDelete):
		status, message = fiber.StatusConflict, "Confirmed bookings cannot be deleted"
	case errors.Is(err, documents.ErrEmptyBatch):
		status, message = fiber.StatusBadRequest, "Batch file has no rows"
	default:
		if _, is := booking.AsInvalidTransition(err); is {
			status, message = fiber.StatusConflict, "Action not allowed"
		} else if _, is := booking.AsInvalidState(err); is {
			status, message = fiber.StatusConflict, "Booking cannot be edited"
		} else if _, is := booking.AsDuplicateSend(err); is {
			status, message = fiber.StatusConflict, "Shipping request already sent"
		}
	}

	if status == fiber.StatusInternalServerError {
		log.Errorw("request failed", "path", ctx.Path(), "request_id", ctx.Locals("requestid"), "error", err)
	}
	return ctx.Status(status).JSON(fiber.Map{"success": false, "message": message, "error": err.Error()})
}

func paramID(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	return types.ParseSnowflakeID(ctx.Params("id"))
}

// actorID reads the acting user stored by middleware.Actor.
func actorID(ctx *fiber.Ctx) int {
	if id, is := ctx.Locals("userID").(int); is {
		return id
	}
	return 0
}

func parseIDs(raw string) ([]types.SnowflakeID, error) {
	var ids []types.SnowflakeID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := types.ParseSnowflakeID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const ActorHeader = "X-User-ID"

// Actor stores the acting user id from the X-User-ID header in Locals("userID").
// Authentication happens upstream; a missing header acts as user 0.
func Actor(ctx *fiber.Ctx) error {
	userID := 0
	if raw := strings.TrimSpace(ctx.Get(ActorHeader)); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"message": "Invalid " + ActorHeader + " header",
			})
		}
		userID = id
	}

	ctx.Locals("userID", userID)
	return ctx.Next()
}

package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Setup installs the request-scoped middleware shared by every route.
func Setup(app *fiber.App, timeout time.Duration) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(RequestTimeout(timeout))
}

// RequestTimeout bounds the user context that handlers pass down to services.
func RequestTimeout(timeout time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if timeout <= 0 {
			return ctx.Next()
		}
		c, cancel := context.WithTimeout(ctx.UserContext(), timeout)
		defer cancel()
		ctx.SetUserContext(c)
		return ctx.Next()
	}
}

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	payment "paygate/internal/services/payment"
)

// SetupRoutes wires the HTTP boundary to the payment service.
func SetupRoutes(app *fiber.App, svc payment.Service) {
	paymentHandler := NewPaymentHandler(svc)

	app.Get("/health", HealthCheck)

	app.Use("/payments", limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"message": "Too many requests. Please try again later.",
			})
		},
	}))

	app.Post("/payments", paymentHandler.CreatePayment)
	app.Get("/payments/:id", paymentHandler.GetPayment)
}

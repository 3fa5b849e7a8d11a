// Package main is the entry point for the payment gateway.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"

	"paygate/internal/bank"
	"paygate/internal/config"
	"paygate/internal/handlers"
	"paygate/internal/repositories"
	payment "paygate/internal/services/payment"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Payment record store: in-memory by default, Redis when configured
	var repo repositories.PaymentRepository
	switch backend := config.GetEnv("STORE_BACKEND", "memory"); backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.GetEnv("REDIS_ADDR", "localhost:6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
		})
		defer func() {
			if err := client.Close(); err != nil {
				log.Printf("failed to close redis connection: %v", err)
			}
		}()
		repo = repositories.NewRedisPaymentRepository(client)
		log.Println("using redis payment store")
	default:
		repo = repositories.NewMemoryPaymentRepository()
		log.Println("using in-memory payment store")
	}

	// Acquiring bank client with bounded connect and request timeouts
	timeout := config.GetDurationEnv("BANK_TIMEOUT", bank.DefaultTimeout)
	bankClient := bank.NewClient(config.GetEnv("BANK_BASE_URL", "http://localhost:8080"), &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: timeout}).DialContext,
		},
	})

	svc := payment.NewService(repo, bankClient)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Routes
	handlers.SetupRoutes(app, svc)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8090")))
}

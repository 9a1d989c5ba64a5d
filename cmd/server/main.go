// Package main is the entry point for the monitoring API server.
// It wires the random source, the in-memory store and both services into a
// Fiber app and serves the demo endpoints the frontend consumes.
package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"finwatch/internal/config"
	"finwatch/internal/random"
	"finwatch/internal/repositories"
	"finwatch/internal/routes"
	"finwatch/internal/services/analyzer"
	"finwatch/internal/services/generator"
)

func main() {
	config.LoadEnv()

	log.SetFormatter(&log.JSONFormatter{})
	if level, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}

	rng := random.NewSource()
	store := repositories.NewMemoryStore()
	generatorService := generator.NewService(rng)
	analyzerService := analyzer.NewService(rng)

	app := fiber.New(fiber.Config{
		AppName: "Financial Crime Monitoring API",
	})

	app.Use(recover.New())

	// CORS for the local frontend dev servers
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET,POST,HEAD,DELETE",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/transactions", limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_PER_MINUTE", 60),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Periodic store stats
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			txCount, anCount := store.Counts()
			log.WithFields(log.Fields{
				"transactions": txCount,
				"analyses":     anCount,
			}).Debug("store stats")
		}
	}()

	routes.SetupRoutes(app, generatorService, analyzerService, store)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8000")))
}

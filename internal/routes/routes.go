// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"finwatch/internal/handlers"
	"finwatch/internal/repositories"
	"finwatch/internal/services/analyzer"
	"finwatch/internal/services/generator"
)

// SetupRoutes wires handlers to their routes.
func SetupRoutes(app *fiber.App, gen generator.Service, an analyzer.Service, store repositories.Store) {
	txHandler := handlers.NewTransactionHandler(gen, store)
	analysisHandler := handlers.NewAnalysisHandler(an, store)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Get("/agents/status", handlers.AgentsStatus)

	api.Get("/transactions", txHandler.GenerateBatch)
	api.Post("/transactions", txHandler.Generate)
	api.Delete("/transactions", txHandler.Clear)
	api.Get("/transactions/:id", txHandler.Get)

	api.Post("/analyze", analysisHandler.Analyze)
	api.Post("/analyze/batch", analysisHandler.AnalyzeBatch)
	api.Get("/analysis/:id", analysisHandler.Get)
}

package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Post("/users", handler.CreateUser)

	users := api.Group("/users/:id")
	users.Get("/cycles", handler.ListCycles)
	users.Post("/cycles", handler.AddCycle)
	users.Get("/phi", handler.ListPHIScores)
	users.Post("/phi", handler.RecordPHIScore)
	users.Get("/analysis", handler.GetAnalysis)
	users.Get("/prediction", handler.GetPrediction)
	users.Get("/summary", handler.GetSummary)
	users.Get("/summary.csv", handler.ExportSummaryCSV)
	users.Post("/summary/share", handler.ShareSummary)

	shared := api.Group("/shared")
	shared.Get("/summary", handler.GetSharedSummary)
}

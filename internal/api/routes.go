package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	entries := api.Group("/entries")
	entries.Post("", handler.CreateEntry)
	entries.Get("", handler.GetEntries)
	entries.Get("/:id", handler.GetEntry)
	entries.Put("/:id", handler.UpdateEntry)
	entries.Delete("/:id", handler.DeleteEntry)

	api.Get("/insights", handler.GetInsights)

	data := api.Group("/data")
	data.Get("/export", handler.ExportData)
	data.Post("/import", handler.ImportData)
	data.Delete("/wipe", handler.WipeData)
}

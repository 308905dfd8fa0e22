// ABOUTME: Route table mapping /api paths to handler methods.
// ABOUTME: Registered on a fiber app by the serve command and tests.
package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	api.Get("/profile", handler.GetProfile)
	api.Put("/profile", handler.SaveProfile)

	api.Get("/onboarding", handler.GetOnboarding)
	api.Post("/onboarding", handler.CompleteOnboarding)

	checkIns := api.Group("/checkins")
	checkIns.Get("", handler.ListCheckIns)
	checkIns.Post("", handler.CreateCheckIn)
	checkIns.Get("/today", handler.GetTodayCheckIn)
	checkIns.Delete("/:id", handler.DeleteCheckIn)

	api.Get("/stats", handler.GetStats)
	api.Delete("/data", handler.ClearData)

	insights := api.Group("/insights")
	insights.Post("/wellness", handler.WellnessInsight)
	insights.Post("/patterns", handler.MoodPatterns)
}

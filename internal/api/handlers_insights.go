// ABOUTME: Insight endpoints for a draft check-in and for mood patterns.
// ABOUTME: Always answer 200; failures travel in the response body.
package api

import (
	"github.com/gofiber/fiber/v2"
)

// WellnessInsight generates an insight for a draft check-in before it is
// saved. The reply is always 200 with the uniform insight response; only a
// malformed draft is rejected.
func (handler *Handler) WellnessInsight(c *fiber.Ctx) error {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	entry, err := handler.toCheckIn(req)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()
	resp := handler.insights.InsightForCheckIn(ctx, entry, handler.goal(c), handler.repo.GetCheckIns(ctx))
	return c.JSON(resp)
}

func (handler *Handler) MoodPatterns(c *fiber.Ctx) error {
	ctx := c.UserContext()
	name := ""
	if p, ok := handler.repo.GetProfile(ctx); ok {
		name = p.Name
	}
	return c.JSON(handler.insights.AnalyzeMoodPatterns(ctx, handler.repo.GetCheckIns(ctx), name))
}

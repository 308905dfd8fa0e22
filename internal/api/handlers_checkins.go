// ABOUTME: Check-in endpoints: list, create, today, delete and stats.
// ABOUTME: Create validates the body and can attach an insight before saving.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/stats"
)

const defaultListLimit = 50

type checkInRequest struct {
	Mood        int      `json:"mood"`
	Energy      *int     `json:"energy"`
	Sleep       *int     `json:"sleep"`
	Symptoms    []string `json:"symptoms"`
	Activities  []string `json:"activities"`
	Journal     string   `json:"journal"`
	Gratitude   string   `json:"gratitude"`
	WithInsight bool     `json:"withInsight"`
}

// toCheckIn builds and validates an unsaved entry dated today.
func (handler *Handler) toCheckIn(req checkInRequest) (*models.CheckIn, error) {
	entry := models.NewCheckIn(req.Mood, time.Now()).
		WithDate(handler.repo.Today()).
		WithJournal(req.Journal).
		WithGratitude(req.Gratitude)
	if req.Energy != nil {
		entry.WithEnergy(*req.Energy)
	}
	if req.Sleep != nil {
		entry.WithSleep(*req.Sleep)
	}
	if len(req.Symptoms) > 0 {
		entry.WithSymptoms(req.Symptoms...)
	}
	if len(req.Activities) > 0 {
		entry.WithActivities(req.Activities...)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := entry.ValidateTags(); err != nil {
		return nil, err
	}
	return entry, nil
}

func (handler *Handler) ListCheckIns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	all := handler.repo.GetCheckIns(c.UserContext())
	return c.JSON(fiber.Map{
		"checkIns": all[:min(limit, len(all))],
		"total":    len(all),
	})
}

func (handler *Handler) CreateCheckIn(c *fiber.Ctx) error {
	var req checkInRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	entry, err := handler.toCheckIn(req)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()
	if req.WithInsight {
		resp := handler.insights.InsightForCheckIn(ctx, entry, handler.goal(c), handler.repo.GetCheckIns(ctx))
		if resp.Success {
			entry.WithInsight(resp.Text)
		}
	}

	if err := handler.repo.SaveCheckIn(ctx, entry); err != nil {
		return handler.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) GetTodayCheckIn(c *fiber.Ctx) error {
	entry, ok := handler.repo.GetTodayCheckIn(c.UserContext())
	if !ok {
		return apiError(c, fiber.StatusNotFound, "no check-in today")
	}
	return c.JSON(entry)
}

func (handler *Handler) DeleteCheckIn(c *fiber.Ctx) error {
	if err := handler.repo.DeleteCheckIn(c.UserContext(), c.Params("id")); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type trendPoint struct {
	Date  string `json:"date"`
	Mood  int    `json:"mood"`
	Color string `json:"color"`
}

func (handler *Handler) GetStats(c *fiber.Ctx) error {
	all := handler.repo.GetCheckIns(c.UserContext())
	trend := make([]trendPoint, 0, stats.DefaultTrendWindow)
	for _, entry := range stats.MoodTrend(all, stats.DefaultTrendWindow) {
		trend = append(trend, trendPoint{Date: entry.Date, Mood: entry.Mood, Color: stats.MoodColor(entry.Mood)})
	}
	return c.JSON(fiber.Map{
		"summary": stats.Summarize(all, handler.today()),
		"trend":   trend,
	})
}

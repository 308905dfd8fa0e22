// ABOUTME: Profile, onboarding flag and clear-all endpoints.
// ABOUTME: Profile bodies are checked for name, age and goal before saving.
package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/harperreed/velamind/internal/models"
)

type profileRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	Goal string `json:"goal"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	p, ok := handler.repo.GetProfile(c.UserContext())
	if !ok {
		return apiError(c, fiber.StatusNotFound, "profile not found")
	}
	return c.JSON(p)
}

func (handler *Handler) SaveProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	switch {
	case req.Name == "":
		return apiError(c, fiber.StatusBadRequest, "name is required")
	case req.Age <= 0:
		return apiError(c, fiber.StatusBadRequest, "age must be a positive number")
	case !models.IsValidGoal(req.Goal):
		return apiError(c, fiber.StatusBadRequest, "unknown goal")
	}

	p := models.NewUserProfile(req.Name, req.Age, req.Goal, time.Now())
	if err := handler.repo.SaveProfile(c.UserContext(), p); err != nil {
		return handler.writeError(c, err)
	}
	return c.JSON(p)
}

func (handler *Handler) GetOnboarding(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"completed": handler.repo.IsOnboardingComplete(c.UserContext())})
}

func (handler *Handler) CompleteOnboarding(c *fiber.Ctx) error {
	if err := handler.repo.MarkOnboardingComplete(c.UserContext()); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) ClearData(c *fiber.Ctx) error {
	if err := handler.repo.ClearAll(c.UserContext()); err != nil {
		return handler.writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

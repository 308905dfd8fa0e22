// ABOUTME: JSON HTTP API over the record store, stats and insight client.
// ABOUTME: Reads never fail; write failures surface as 500 with an error body.
package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/harperreed/velamind/internal/insight"
	"github.com/harperreed/velamind/internal/models"
	"github.com/harperreed/velamind/internal/storage"
)

// Handler serves the API routes.
type Handler struct {
	repo     storage.Repository
	insights *insight.Client
	logger   *zap.Logger
}

// NewHandler creates a Handler. A nil insights client behaves as one
// without an API key.
func NewHandler(repo storage.Repository, insights *insight.Client, logger *zap.Logger) *Handler {
	if insights == nil {
		insights = insight.NewClient("", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, insights: insights, logger: logger}
}

// NewApp builds a fiber app with every route registered.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "VelaMind",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(handler.requestLogger)
	RegisterRoutes(app, handler)
	return app
}

// Health reports liveness.
func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	handler.logger.Debug("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return err
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// writeError maps a store write failure to 500 and anything else to 400.
func (handler *Handler) writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, storage.ErrStorageFailure) {
		handler.logger.Error("storage write failed", zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, err.Error())
	}
	return apiError(c, fiber.StatusBadRequest, err.Error())
}

func (handler *Handler) today() time.Time {
	t, err := models.ParseDate(handler.repo.Today())
	if err != nil {
		return time.Now()
	}
	return t
}

func (handler *Handler) goal(c *fiber.Ctx) string {
	if p, ok := handler.repo.GetProfile(c.UserContext()); ok {
		return p.Goal
	}
	return ""
}

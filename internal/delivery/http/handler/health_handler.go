package handler

import (
	"jobfit/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
	env     string
}

func NewHealthHandler(appName, env string) *HealthHandler {
	return &HealthHandler{appName: appName, env: env}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{
		"status":      "up",
		"app":         h.appName,
		"environment": h.env,
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

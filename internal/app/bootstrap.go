package app

import (
	"fmt"
	"strings"

	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/delivery/http/routes"
	v1 "jobfit/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := routes.NewRegistry(c.Config.App.AppName, c.Config.App.Environment, v1.Deps{
		Logger:          c.Logger,
		JWT:             c.JWT,
		Extraction:      c.Extraction,
		Matching:        c.Matching,
		Personalization: c.Personalization,
		Hub:             c.Hub,
	})
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

package v1

import (
	"log"

	"jobfit/internal/delivery/http/handler"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/pkg/jwt"
	"jobfit/internal/usecase"
	"jobfit/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed collaborators down from the container so the
// route tree stays free of wiring logic.
type Deps struct {
	Logger          *log.Logger
	JWT             jwt.Service
	Extraction      usecase.ExtractionUsecase
	Matching        usecase.MatchingUsecase
	Personalization usecase.PersonalizationUsecase
	Hub             *ws.Hub
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	extractionHandler := handler.NewExtractionHandler(deps.Extraction)
	matchHandler := handler.NewMatchHandler(deps.Matching)
	personalizeHandler := handler.NewPersonalizeHandler(deps.Personalization, deps.Matching)
	eventsHandler := ws.NewHandler(deps.Hub, deps.Logger)

	protected := r.Group("", authMw.Middleware())

	extractionHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
	personalizeHandler.RegisterRoutes(protected)

	protected.Get("/ws", eventsHandler.HandleEventsWS)
}

package handler

import (
	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/profile"
	"jobfit/internal/pkg/response"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxBatchSize = 50

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

type matchRequest struct {
	Profile profile.Profile `json:"profile"`
	Job     job.Record      `json:"job"`
}

type matchBatchRequest struct {
	Profile profile.Profile `json:"profile"`
	Jobs    []job.Record    `json:"jobs"`
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
	r.Post("/match/batch", h.MatchBatch)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req matchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Match(c.Context(), req.Profile, req.Job)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResultResponse(res))
}

func (h *MatchHandler) MatchBatch(c fiber.Ctx) error {
	var req matchBatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if len(req.Jobs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "jobs must not be empty", nil, nil)
	}
	if len(req.Jobs) > maxBatchSize {
		return middleware.NewAppError(fiber.StatusBadRequest, "too many jobs in one batch", map[string]any{"max": maxBatchSize}, nil)
	}

	results, err := h.uc.MatchBatch(c.Context(), req.Profile, req.Jobs)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.MatchResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, dto.NewMatchResultResponse(res))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

package handler

import (
	"errors"

	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/domain/job"
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/profile"
	"jobfit/internal/personalizer"
	"jobfit/internal/pkg/response"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PersonalizeHandler struct {
	uc      usecase.PersonalizationUsecase
	matcher usecase.MatchingUsecase
}

type personalizeRequest struct {
	Profile profile.Profile       `json:"profile"`
	Job     job.Record            `json:"job"`
	Match   *matching.MatchResult `json:"match"`
}

func NewPersonalizeHandler(uc usecase.PersonalizationUsecase, matcher usecase.MatchingUsecase) *PersonalizeHandler {
	return &PersonalizeHandler{uc: uc, matcher: matcher}
}

func (h *PersonalizeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/personalize", h.Personalize)
}

// Personalize drafts CV sections for one (profile, job) pair. Callers may
// send a previously computed match analysis; otherwise it is recomputed so
// the drafter always has gap context.
func (h *PersonalizeHandler) Personalize(c fiber.Ctx) error {
	var req personalizeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	match := req.Match
	if match == nil {
		res, err := h.matcher.Match(c.Context(), req.Profile, req.Job)
		if err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
		match = &res
	}

	sections, err := h.uc.Personalize(c.Context(), planTierFromCtx(c), req.Profile, req.Job, *match)
	if err != nil {
		return mapPersonalizationError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PersonalizationResponse{
		ProfessionalSummary: sections.ProfessionalSummary,
		BulletSuggestions:   sections.BulletSuggestions,
		SkillsToHighlight:   sections.SkillsToHighlight,
	})
}

func mapPersonalizationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, personalizer.ErrDraftFailed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Drafting failed, please retry", map[string]any{"retryable": true}, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

package handler

import (
	"encoding/base64"
	"errors"
	"strings"

	"jobfit/internal/delivery/http/dto"
	"jobfit/internal/delivery/http/middleware"
	"jobfit/internal/extractor"
	"jobfit/internal/fetcher"
	"jobfit/internal/pkg/response"
	"jobfit/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ExtractionHandler struct {
	uc usecase.ExtractionUsecase
}

type extractionRequest struct {
	URL         string `json:"url"`
	ImageBase64 string `json:"image_base64"`
	ImageMIME   string `json:"image_mime_type"`
	RawText     string `json:"raw_text"`
	Force       bool   `json:"force"`
}

func NewExtractionHandler(uc usecase.ExtractionUsecase) *ExtractionHandler {
	return &ExtractionHandler{uc: uc}
}

func (h *ExtractionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/extractions", h.Extract)
}

func (h *ExtractionHandler) Extract(c fiber.Ctx) error {
	var req extractionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var image []byte
	if strings.TrimSpace(req.ImageBase64) != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid image encoding", nil, err)
		}
		image = decoded
	}

	out, err := h.uc.Extract(c.Context(), usecase.ExtractionInput{
		URL:       req.URL,
		Image:     image,
		ImageMIME: req.ImageMIME,
		RawText:   req.RawText,
		Force:     req.Force,
		PlanTier:  planTierFromCtx(c),
	})
	if err != nil {
		return mapExtractionError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ExtractionResponse{
		Job:        out.Record,
		MethodUsed: out.Method,
		Cached:     out.Cached,
	})
}

func mapExtractionError(err error) error {
	if err == nil {
		return nil
	}

	var notRelevant *usecase.NotRelevantError
	var exhausted *fetcher.ExhaustedError

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Provide exactly one of url, image_base64 or raw_text", nil, err)
	case errors.As(err, &notRelevant):
		data := map[string]any{"reason": notRelevant.Reason, "can_force": true}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Image does not look like a job posting", data, err)
	case errors.As(err, &exhausted):
		attempts := make([]dto.FetchAttemptResponse, 0, len(exhausted.Attempts))
		for _, a := range exhausted.Attempts {
			attempts = append(attempts, dto.FetchAttemptResponse{Strategy: a.Strategy, Reason: a.Reason})
		}
		data := map[string]any{"attempts": attempts, "suggestion": "submit a screenshot or paste the posting text instead"}
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Could not fetch the posting URL", data, err)
	case errors.Is(err, extractor.ErrExtractionFailed):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Extraction failed, please retry", map[string]any{"retryable": true}, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

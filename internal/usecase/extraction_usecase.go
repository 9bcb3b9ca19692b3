package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobfit/internal/ai"
	"jobfit/internal/domain/job"
	"jobfit/internal/extractor"
	"jobfit/internal/gate"
	"jobfit/internal/modelrouter"
	"jobfit/internal/ws"

	"github.com/google/uuid"
)

type contentFetcher interface {
	Fetch(ctx context.Context, url string) (string, string, error)
}

type relevanceGate interface {
	Assess(ctx context.Context, image ai.ImagePayload, model string) gate.Assessment
}

type structuredExtractor interface {
	Extract(ctx context.Context, content extractor.Content, modelID string) (*job.Record, error)
}

type resultCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

// ExtractionInput carries exactly one of URL, Image, RawText.
type ExtractionInput struct {
	URL       string
	Image     []byte
	ImageMIME string
	RawText   string
	Force     bool
	PlanTier  modelrouter.PlanTier
}

type ExtractionOutput struct {
	Record *job.Record
	Method string
	Cached bool
}

type ExtractionUsecase interface {
	Extract(ctx context.Context, in ExtractionInput) (ExtractionOutput, error)
}

type Extraction struct {
	fetcher   contentFetcher
	gate      relevanceGate
	extractor structuredExtractor
	router    *modelrouter.Router
	cache     resultCache
	cacheTTL  time.Duration
	logger    *log.Logger
}

func NewExtractionUsecase(
	fetch contentFetcher,
	relevance relevanceGate,
	extract structuredExtractor,
	router *modelrouter.Router,
	cache resultCache,
	cacheTTL time.Duration,
	logger *log.Logger,
) *Extraction {
	return &Extraction{
		fetcher:   fetch,
		gate:      relevance,
		extractor: extract,
		router:    router,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Extract runs the tiered ingestion pipeline for one input. URL input goes
// through the fetch chain, image input through the relevance gate (unless
// forced), raw text straight to the extractor. The resulting record is
// cached per URL so repeated submissions don't repeat paid calls.
func (u *Extraction) Extract(ctx context.Context, in ExtractionInput) (ExtractionOutput, error) {
	kind, err := resolveKind(in)
	if err != nil {
		return ExtractionOutput{}, err
	}

	requestID := uuid.NewString()
	ws.NotifyExtraction(ws.EventExtractionStarted, requestID, string(kind), "", "")

	out, err := u.extract(ctx, in, kind)
	if err != nil {
		ws.NotifyExtraction(ws.EventExtractionFailed, requestID, string(kind), "", err.Error())
		return ExtractionOutput{}, err
	}

	ws.NotifyExtraction(ws.EventExtractionCompleted, requestID, string(kind), out.Method, "")
	return out, nil
}

func (u *Extraction) extract(ctx context.Context, in ExtractionInput, kind extractor.ContentKind) (ExtractionOutput, error) {
	modelID := u.router.SelectModel(in.PlanTier, modelrouter.TaskExtraction)

	switch kind {
	case extractor.KindURLText:
		return u.extractFromURL(ctx, in, modelID)

	case extractor.KindImage:
		image := ai.ImagePayload{MIMEType: in.ImageMIME, Data: in.Image}

		if !in.Force && u.gate != nil {
			relevanceModel := u.router.SelectModel(in.PlanTier, modelrouter.TaskRelevance)
			assessment := u.gate.Assess(ctx, image, relevanceModel)
			if !assessment.IsRelevant {
				return ExtractionOutput{}, &NotRelevantError{Reason: assessment.Reason}
			}
		}

		rec, err := u.extractor.Extract(ctx, extractor.Content{Kind: kind, Image: image}, modelID)
		if err != nil {
			return ExtractionOutput{}, err
		}
		return ExtractionOutput{Record: rec, Method: "image"}, nil

	default:
		rec, err := u.extractor.Extract(ctx, extractor.Content{Kind: kind, Text: in.RawText}, modelID)
		if err != nil {
			return ExtractionOutput{}, err
		}
		return ExtractionOutput{Record: rec, Method: "raw_text"}, nil
	}
}

func (u *Extraction) extractFromURL(ctx context.Context, in ExtractionInput, modelID string) (ExtractionOutput, error) {
	key := extractionCacheKey(in.URL)

	if u.cache != nil {
		var cached job.Record
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("Extraction | cache hit url=%s", in.URL)
			}
			return ExtractionOutput{Record: &cached, Method: "cache", Cached: true}, nil
		}
	}

	text, method, err := u.fetcher.Fetch(ctx, in.URL)
	if err != nil {
		return ExtractionOutput{}, err
	}

	rec, err := u.extractor.Extract(ctx, extractor.Content{Kind: extractor.KindURLText, Text: text}, modelID)
	if err != nil {
		return ExtractionOutput{}, err
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, rec, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("Extraction | cache set failed url=%s err=%v", in.URL, err)
		}
	}

	return ExtractionOutput{Record: rec, Method: method}, nil
}

func resolveKind(in ExtractionInput) (extractor.ContentKind, error) {
	hasURL := strings.TrimSpace(in.URL) != ""
	hasImage := len(in.Image) > 0
	hasText := strings.TrimSpace(in.RawText) != ""

	count := 0
	for _, ok := range []bool{hasURL, hasImage, hasText} {
		if ok {
			count++
		}
	}
	if count != 1 {
		return "", ErrInvalidInput
	}

	switch {
	case hasURL:
		return extractor.KindURLText, nil
	case hasImage:
		return extractor.KindImage, nil
	default:
		return extractor.KindRawText, nil
	}
}

var _ ExtractionUsecase = (*Extraction)(nil)

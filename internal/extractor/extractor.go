package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	_ "embed"

	"jobfit/internal/ai"
	"jobfit/internal/domain/job"
)

// ErrExtractionFailed means the generative output did not conform to the
// record schema even after one retry. Retryable by the caller; the input
// itself is usually fine.
var ErrExtractionFailed = errors.New("extraction failed: model output did not conform to schema")

type ContentKind string

const (
	KindURLText ContentKind = "url_text"
	KindImage   ContentKind = "image"
	KindRawText ContentKind = "raw_text"
)

// Content is the extraction input. Text carries fetched or pasted content;
// Image carries screenshot bytes when Kind is KindImage.
type Content struct {
	Kind  ContentKind
	Text  string
	Image ai.ImagePayload
}

//go:embed prompt.md
var promptTemplate string

// requiredKeys must be present in the model payload; their absence marks the
// response malformed rather than a legitimately empty posting.
var requiredKeys = []string{
	"title",
	"description",
	"location",
	"key_requirements",
	"application_deadline",
}

// Extractor turns unstructured posting content into a validated job.Record
// through a strict output contract on the generative model.
type Extractor struct {
	generator ai.Generator
	logger    *log.Logger
}

func New(generator ai.Generator, logger *log.Logger) *Extractor {
	return &Extractor{generator: generator, logger: logger}
}

// Extract invokes the model and parses the structured payload. A malformed
// payload is retried once with the same input; a second failure surfaces
// ErrExtractionFailed. Provider errors are returned unchanged and are not
// retried. It never coerces malformed output into defaults.
func (e *Extractor) Extract(ctx context.Context, content Content, modelID string) (*job.Record, error) {
	if e == nil || e.generator == nil {
		return nil, errors.New("extractor is not initialized")
	}
	if content.Kind != KindImage && strings.TrimSpace(content.Text) == "" {
		return nil, errors.New("extraction content must not be empty")
	}

	prompt := buildPrompt(content)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		raw, err := e.generate(ctx, content, modelID, prompt)
		if err != nil {
			return nil, err
		}

		rec, err := parseRecord(raw)
		if err != nil {
			if e.logger != nil {
				e.logger.Printf("Extractor | malformed payload attempt=%d error=%v", attempt+1, err)
			}
			lastErr = err
			continue
		}

		rec.Normalize()
		rec.Warnings = rec.Validate()
		return rec, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, lastErr)
}

func (e *Extractor) generate(ctx context.Context, content Content, modelID, prompt string) (string, error) {
	if content.Kind == KindImage {
		return e.generator.GenerateWithImage(ctx, modelID, prompt, content.Image)
	}
	return e.generator.GenerateText(ctx, modelID, prompt)
}

func buildPrompt(content Content) string {
	text := content.Text
	if content.Kind == KindImage && strings.TrimSpace(text) == "" {
		text = "(see attached image)"
	}
	prompt := strings.ReplaceAll(promptTemplate, "{{CONTENT_KIND}}", string(content.Kind))
	return strings.ReplaceAll(prompt, "{{CONTENT}}", text)
}

func parseRecord(raw string) (*job.Record, error) {
	cleaned := ai.ExtractJSON(raw)

	// Required keys are checked against the raw object so a missing key is
	// distinguishable from a legitimately empty value.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &keys); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	for _, k := range requiredKeys {
		if _, ok := keys[k]; !ok {
			return nil, fmt.Errorf("payload missing required key %q", k)
		}
	}

	var rec job.Record
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	return &rec, nil
}

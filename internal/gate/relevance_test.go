package gate

import (
	"context"
	"errors"
	"testing"

	"jobfit/internal/ai"
)

type stubGenerator struct {
	response string
	err      error
}

func (s *stubGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return s.response, s.err
}

func (s *stubGenerator) GenerateWithImage(ctx context.Context, model, prompt string, image ai.ImagePayload) (string, error) {
	return s.response, s.err
}

var testImage = ai.ImagePayload{MIMEType: "image/png", Data: []byte{1, 2, 3}}

func TestAssess_NegativeJudgmentBlocks(t *testing.T) {
	gen := &stubGenerator{response: `{"is_relevant": false, "reason": "photo of a cat"}`}
	g := New(gen, nil)

	a := g.Assess(context.Background(), testImage, "model-x")
	if a.IsRelevant {
		t.Fatalf("expected not relevant")
	}
	if a.Reason != "photo of a cat" {
		t.Fatalf("unexpected reason: %q", a.Reason)
	}
}

func TestAssess_PositiveJudgment(t *testing.T) {
	gen := &stubGenerator{response: `{"is_relevant": true, "reason": "LinkedIn posting screenshot"}`}
	g := New(gen, nil)

	a := g.Assess(context.Background(), testImage, "model-x")
	if !a.IsRelevant {
		t.Fatalf("expected relevant")
	}
}

func TestAssess_FailsOpenOnProviderError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	g := New(gen, nil)

	a := g.Assess(context.Background(), testImage, "model-x")
	if !a.IsRelevant {
		t.Fatalf("expected fail-open relevance on provider error")
	}
	if a.Reason == "" {
		t.Fatalf("expected bypass reason")
	}
}

func TestAssess_FailsOpenOnGarbageOutput(t *testing.T) {
	gen := &stubGenerator{response: "I think this might be a job"}
	g := New(gen, nil)

	a := g.Assess(context.Background(), testImage, "model-x")
	if !a.IsRelevant {
		t.Fatalf("expected fail-open relevance on malformed output")
	}
}

func TestAssess_FillsEmptyReason(t *testing.T) {
	gen := &stubGenerator{response: `{"is_relevant": false, "reason": ""}`}
	g := New(gen, nil)

	a := g.Assess(context.Background(), testImage, "model-x")
	if a.IsRelevant {
		t.Fatalf("expected not relevant")
	}
	if a.Reason == "" {
		t.Fatalf("expected default reason")
	}
}

package extractor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobfit/internal/ai"
	"jobfit/internal/domain/job"
)

type stubGenerator struct {
	responses  []string
	err        error
	textCalls  int
	imageCalls int
	prompts    []string
}

func (s *stubGenerator) next() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", errors.New("no response queued")
	}
	out := s.responses[0]
	s.responses = s.responses[1:]
	return out, nil
}

func (s *stubGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	s.textCalls++
	s.prompts = append(s.prompts, prompt)
	return s.next()
}

func (s *stubGenerator) GenerateWithImage(ctx context.Context, model, prompt string, image ai.ImagePayload) (string, error) {
	s.imageCalls++
	s.prompts = append(s.prompts, prompt)
	return s.next()
}

const validPayload = `{
	"title": "Backend Engineer",
	"company_name": "Acme",
	"location": "Jakarta",
	"description": "Build services.",
	"key_requirements": ["Go", "PostgreSQL"],
	"application_deadline": "September 15, 2026"
}`

func TestExtract_Success(t *testing.T) {
	gen := &stubGenerator{responses: []string{validPayload}}
	ex := New(gen, nil)

	rec, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "posting text"}, "model-x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.Title != "Backend Engineer" {
		t.Fatalf("unexpected title: %q", rec.Title)
	}
	if rec.ApplicationDeadline != "2026-09-15" {
		t.Fatalf("expected normalized deadline, got %q", rec.ApplicationDeadline)
	}
	if rec.PreferredSkills == nil || rec.Benefits == nil {
		t.Fatalf("expected lists normalized to empty slices")
	}
	if gen.textCalls != 1 {
		t.Fatalf("expected single call, got %d", gen.textCalls)
	}
}

func TestExtract_FencedPayload(t *testing.T) {
	gen := &stubGenerator{responses: []string{"```json\n" + validPayload + "\n```"}}
	ex := New(gen, nil)

	rec, err := ex.Extract(context.Background(), Content{Kind: KindURLText, Text: "posting"}, "model-x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.CompanyName != "Acme" {
		t.Fatalf("unexpected company: %q", rec.CompanyName)
	}
}

func TestExtract_RetriesOnceThenSucceeds(t *testing.T) {
	gen := &stubGenerator{responses: []string{"not json at all", validPayload}}
	ex := New(gen, nil)

	rec, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "posting"}, "model-x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec == nil || rec.Title == "" {
		t.Fatalf("expected record from retry")
	}
	if gen.textCalls != 2 {
		t.Fatalf("expected 2 calls, got %d", gen.textCalls)
	}
}

func TestExtract_ProviderErrorNotRetried(t *testing.T) {
	wantErr := errors.New("quota exhausted")
	gen := &stubGenerator{err: wantErr}
	ex := New(gen, nil)

	_, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "posting"}, "model-x")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected provider error surfaced, got %v", err)
	}
	if errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("provider error must not be wrapped as schema failure")
	}
	if gen.textCalls != 1 {
		t.Fatalf("expected single call, got %d", gen.textCalls)
	}
}

func TestExtract_MissingRequiredKeyFailsAfterRetry(t *testing.T) {
	// location omitted on both attempts.
	payload := `{"title": "X", "description": "d", "key_requirements": [], "application_deadline": "not_found"}`
	gen := &stubGenerator{responses: []string{payload, payload}}
	ex := New(gen, nil)

	_, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "posting"}, "model-x")
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if gen.textCalls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", gen.textCalls)
	}
}

func TestExtract_ImageUsesImageCall(t *testing.T) {
	gen := &stubGenerator{responses: []string{validPayload}}
	ex := New(gen, nil)

	content := Content{Kind: KindImage, Image: ai.ImagePayload{MIMEType: "image/png", Data: []byte{1}}}
	if _, err := ex.Extract(context.Background(), content, "model-x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gen.imageCalls != 1 || gen.textCalls != 0 {
		t.Fatalf("expected image call path, got image=%d text=%d", gen.imageCalls, gen.textCalls)
	}
}

func TestExtract_EmptyTextRejected(t *testing.T) {
	ex := New(&stubGenerator{}, nil)
	if _, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "  "}, "model-x"); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestExtract_PromptCarriesContent(t *testing.T) {
	gen := &stubGenerator{responses: []string{validPayload}}
	ex := New(gen, nil)

	if _, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "UNIQUE POSTING TEXT"}, "model-x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "UNIQUE POSTING TEXT") {
		t.Fatalf("expected content embedded in prompt")
	}
}

func TestExtract_WarningsAttached(t *testing.T) {
	payload := `{"title": "", "description": "d", "location": "l", "key_requirements": [], "application_deadline": "not_found"}`
	gen := &stubGenerator{responses: []string{payload}}
	ex := New(gen, nil)

	rec, err := ex.Extract(context.Background(), Content{Kind: KindRawText, Text: "posting"}, "model-x")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rec.Warnings) == 0 {
		t.Fatalf("expected validation warnings on degenerate record")
	}
	if rec.ApplicationDeadline != job.DeadlineNotFound {
		t.Fatalf("expected deadline sentinel, got %q", rec.ApplicationDeadline)
	}
}

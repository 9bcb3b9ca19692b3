package personalizer

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
	"jobfit/internal/domain/matching"
	"jobfit/internal/domain/profile"
)

// ErrDraftFailed means the model could not produce conforming sections even
// after one retry.
var ErrDraftFailed = errors.New("personalization failed: model output did not conform to schema")

// Sections is the personalized CV content drafted for one (profile, job,
// match) triple.
type Sections struct {
	ProfessionalSummary string   `json:"professional_summary"`
	BulletSuggestions   []string `json:"bullet_suggestions"`
	SkillsToHighlight   []string `json:"skills_to_highlight"`
}

//go:embed prompt.md
var promptTemplate string

type Personalizer struct {
	generator ai.Generator
	logger    *log.Logger
}

func New(generator ai.Generator, logger *log.Logger) *Personalizer {
	return &Personalizer{generator: generator, logger: logger}
}

// Draft produces tailored CV sections. Same output contract as extraction:
// single JSON payload, one silent retry on malformed output, then a typed
// error; provider errors are returned unchanged. The match analysis steers
// emphasis toward direct and transferable matches.
func (p *Personalizer) Draft(
	ctx context.Context,
	prof profile.Profile,
	rec job.Record,
	match matching.MatchResult,
	modelID string,
) (*Sections, error) {
	if p == nil || p.generator == nil {
		return nil, errors.New("personalizer is not initialized")
	}

	prompt, err := buildPrompt(prof, rec, match)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		raw, err := p.generator.GenerateText(ctx, modelID, prompt)
		if err != nil {
			return nil, err
		}

		sections, err := parseSections(raw)
		if err != nil {
			if p.logger != nil {
				p.logger.Printf("Personalizer | malformed payload attempt=%d error=%v", attempt+1, err)
			}
			lastErr = err
			continue
		}
		return sections, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrDraftFailed, lastErr)
}

func buildPrompt(prof profile.Profile, rec job.Record, match matching.MatchResult) (string, error) {
	profileJSON, err := json.MarshalIndent(prof, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal profile: %w", err)
	}
	jobJSON, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job record: %w", err)
	}
	matchJSON, err := json.MarshalIndent(match, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal match result: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{PROFILE_JSON}}", string(profileJSON))
	prompt = strings.ReplaceAll(prompt, "{{JOB_JSON}}", string(jobJSON))
	prompt = strings.ReplaceAll(prompt, "{{MATCH_JSON}}", string(matchJSON))
	return prompt, nil
}

func parseSections(raw string) (*Sections, error) {
	var out Sections
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &out); err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}

	out.ProfessionalSummary = strings.TrimSpace(out.ProfessionalSummary)
	if out.ProfessionalSummary == "" {
		return nil, errors.New("payload missing professional_summary")
	}
	if out.BulletSuggestions == nil {
		out.BulletSuggestions = make([]string, 0)
	}
	if out.SkillsToHighlight == nil {
		out.SkillsToHighlight = make([]string, 0)
	}
	return &out, nil
}

package gate

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"jobfit/internal/ai"
)

// Assessment is the gate's binary relevance judgment over an image.
type Assessment struct {
	IsRelevant bool   `json:"is_relevant"`
	Reason     string `json:"reason"`
}

const relevancePrompt = `You are a fast image classifier.
Look at the attached image and decide whether it depicts job-posting content:
a job title, requirements, responsibilities, a company name, or an application call-to-action.
Screenshots of job boards, LinkedIn postings, career pages and emailed vacancies all count.
Photos of unrelated things (people, landscapes, memes, receipts) do not.

Respond with ONLY a JSON object, no markdown, no explanation:
{"is_relevant": true or false, "reason": "one short sentence"}`

// Gate screens image input with a cheap classification call before the
// expensive full extraction is attempted.
type Gate struct {
	generator ai.Generator
	logger    *log.Logger
}

func New(generator ai.Generator, logger *log.Logger) *Gate {
	return &Gate{generator: generator, logger: logger}
}

// Assess returns the relevance judgment for the image. It fails open: if the
// classification call itself errors or returns garbage, the image is treated
// as relevant with a reason noting the bypass. Only an explicit negative
// judgment from the model blocks extraction.
func (g *Gate) Assess(ctx context.Context, image ai.ImagePayload, model string) Assessment {
	if g == nil || g.generator == nil {
		return Assessment{IsRelevant: true, Reason: "relevance check unavailable; proceeding"}
	}

	raw, err := g.generator.GenerateWithImage(ctx, model, relevancePrompt, image)
	if err != nil {
		if g.logger != nil {
			g.logger.Printf("RelevanceGate | bypass=provider_error error=%v", err)
		}
		return Assessment{IsRelevant: true, Reason: "relevance check failed; proceeding without it"}
	}

	var out Assessment
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &out); err != nil {
		if g.logger != nil {
			g.logger.Printf("RelevanceGate | bypass=malformed_response error=%v", err)
		}
		return Assessment{IsRelevant: true, Reason: "relevance check returned malformed output; proceeding without it"}
	}

	out.Reason = strings.TrimSpace(out.Reason)
	if out.Reason == "" {
		if out.IsRelevant {
			out.Reason = "image depicts job-posting content"
		} else {
			out.Reason = "image does not depict job-posting content"
		}
	}
	return out
}

package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"

	"jobfit/internal/ai"
)

const defaultCallTimeout = 60 * time.Second

// Client wraps the Google GenAI client behind the ai.Generator boundary.
// The model id is supplied per call so the router can steer individual
// tasks to different tiers.
type Client struct {
	client      *genai.Client
	logger      *log.Logger
	callTimeout time.Duration
}

func NewClient(ctx context.Context, apiKey string, logger *log.Logger) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client, logger: logger, callTimeout: defaultCallTimeout}, nil
}

func (c *Client) GenerateText(ctx context.Context, model string, prompt string) (string, error) {
	return c.generate(ctx, model, prompt, nil)
}

func (c *Client) GenerateWithImage(ctx context.Context, model string, prompt string, image ai.ImagePayload) (string, error) {
	if len(image.Data) == 0 {
		return "", errors.New("image payload must not be empty")
	}
	return c.generate(ctx, model, prompt, &image)
}

func (c *Client) generate(ctx context.Context, model string, prompt string, image *ai.ImagePayload) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}

	model = strings.TrimSpace(model)
	if model == "" {
		return "", errors.New("model id must not be empty")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	parts := []*genai.Part{{Text: prompt}}
	if image != nil {
		mime := strings.TrimSpace(image.MIMEType)
		if mime == "" {
			mime = "image/png"
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: mime, Data: image.Data},
		})
	}
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if c.logger != nil {
		c.logger.Printf("Gemini | model=%s latency=%s prompt_len=%d", model, time.Since(start), len(prompt))
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

var _ ai.Generator = (*Client)(nil)

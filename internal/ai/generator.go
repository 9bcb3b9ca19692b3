package ai

import "context"

// ImagePayload is an inline image sent alongside a prompt.
type ImagePayload struct {
	MIMEType string
	Data     []byte
}

// Generator is the boundary to the generative model provider. The model id
// is chosen per call by the model router; implementations must treat every
// call as fallible remote I/O and honor context cancellation.
type Generator interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
	GenerateWithImage(ctx context.Context, model string, prompt string, image ImagePayload) (string, error)
}

package fetcher

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Strategy is one way of resolving a URL into textual content. Strategies
// declare their own availability precondition (e.g. a configured credential)
// and are attempted at most once per fetch.
type Strategy interface {
	Name() string
	Available() bool
	Attempt(ctx context.Context, url string) (string, error)
}

// AttemptFailure records why one strategy did not produce content.
type AttemptFailure struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
}

// ExhaustedError means every fetch strategy failed. It carries a reason per
// attempted strategy so the failure is observable; the user-facing recovery
// is switching input mode, not blind retries.
type ExhaustedError struct {
	URL      string
	Attempts []AttemptFailure
}

func (e *ExhaustedError) Error() string {
	if e == nil {
		return ""
	}
	reasons := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		reasons = append(reasons, a.Strategy+": "+a.Reason)
	}
	return fmt.Sprintf("all fetch strategies failed for %s (%s)", e.URL, strings.Join(reasons, "; "))
}

// Chain tries strategies in fixed priority order: the highest-fidelity
// available strategy first, falling back toward free/basic ones. Stateless
// between calls; it never retries the same strategy.
type Chain struct {
	strategies []Strategy
	timeout    time.Duration
	logger     *log.Logger
}

const defaultStrategyTimeout = 25 * time.Second

func NewChain(logger *log.Logger, strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		timeout:    defaultStrategyTimeout,
		logger:     logger,
	}
}

// Fetch resolves the URL into text and reports which strategy produced it.
func (c *Chain) Fetch(ctx context.Context, url string) (string, string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", "", fmt.Errorf("empty url")
	}
	if c == nil || len(c.strategies) == 0 {
		return "", "", &ExhaustedError{URL: url, Attempts: []AttemptFailure{{Strategy: "none", Reason: "no strategies configured"}}}
	}

	attempts := make([]AttemptFailure, 0, len(c.strategies))

	for _, s := range c.strategies {
		if ctx.Err() != nil {
			return "", "", ctx.Err()
		}

		if !s.Available() {
			attempts = append(attempts, AttemptFailure{Strategy: s.Name(), Reason: "not available (missing credential or disabled)"})
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		text, err := s.Attempt(attemptCtx, url)
		cancel()

		if err != nil {
			attempts = append(attempts, AttemptFailure{Strategy: s.Name(), Reason: err.Error()})
			if c.logger != nil {
				c.logger.Printf("Fetcher | strategy=%s url=%s failed: %v", s.Name(), url, err)
			}
			continue
		}
		if strings.TrimSpace(text) == "" {
			attempts = append(attempts, AttemptFailure{Strategy: s.Name(), Reason: "empty body"})
			continue
		}

		if c.logger != nil {
			c.logger.Printf("Fetcher | strategy=%s url=%s ok content_len=%d", s.Name(), url, len(text))
		}
		return text, s.Name(), nil
	}

	return "", "", &ExhaustedError{URL: url, Attempts: attempts}
}

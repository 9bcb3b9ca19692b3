package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxFetchBody = 4 << 20

// ScrapingBee is the paid high-fidelity strategy: a rendering proxy that
// defeats JS-heavy and anti-bot job boards. Available only when an API key
// is configured.
type ScrapingBee struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewScrapingBee(apiKey string) *ScrapingBee {
	return &ScrapingBee{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: "https://app.scrapingbee.com/api/v1/",
		client:  &http.Client{Timeout: 25 * time.Second},
	}
}

func (s *ScrapingBee) Name() string { return "scrapingbee" }

func (s *ScrapingBee) Available() bool {
	return s != nil && s.apiKey != ""
}

func (s *ScrapingBee) Attempt(ctx context.Context, target string) (string, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	q.Set("url", target)
	q.Set("render_js", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBody))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var _ Strategy = (*ScrapingBee)(nil)

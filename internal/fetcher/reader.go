package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Reader is the free reader-style strategy: a proxy that renders a page and
// returns it as plain text/markdown (r.jina.ai style). No credential needed.
type Reader struct {
	baseURL string
	client  *http.Client
}

func NewReader(baseURL string) *Reader {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://r.jina.ai"
	}
	return &Reader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

func (r *Reader) Name() string { return "reader" }

func (r *Reader) Available() bool { return r != nil && r.baseURL != "" }

func (r *Reader) Attempt(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := r.client.Do(req)
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

var _ Strategy = (*Reader)(nil)

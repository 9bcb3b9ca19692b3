package fetcher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Headless renders the page in a local headless Chrome and reads the body
// text. High fidelity for JS-heavy postings but expensive; disabled unless
// explicitly enabled in config.
type Headless struct {
	enabled bool
}

func NewHeadless(enabled bool) *Headless {
	return &Headless{enabled: enabled}
}

func (h *Headless) Name() string { return "headless" }

func (h *Headless) Available() bool { return h != nil && h.enabled }

func (h *Headless) Attempt(ctx context.Context, target string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var text string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`document.body ? document.body.innerText : ""`, &text),
	)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("rendered page has empty body")
	}
	return text, nil
}

var _ Strategy = (*Headless)(nil)

package fetcher

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// Static is the last-resort raw fetch: a plain HTTP GET of the page with the
// visible text pulled out of the DOM. Cheap and always available; fails on
// sites that require JS rendering.
type Static struct{}

func NewStatic() *Static { return &Static{} }

func (s *Static) Name() string { return "static" }

func (s *Static) Available() bool { return true }

func (s *Static) Attempt(ctx context.Context, target string) (string, error) {
	host := hostFromURL(target)

	var c *colly.Collector
	if host == "" {
		c = colly.NewCollector()
	} else {
		c = colly.NewCollector(colly.AllowedDomains(host))
	}
	c.SetRequestTimeout(20 * time.Second)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36")
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
	})

	var text string
	c.OnHTML("body", func(e *colly.HTMLElement) {
		sel := e.DOM.Clone()
		sel.Find("script,style,noscript,nav,header,footer").Remove()
		text = strings.TrimSpace(sel.Text())
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err := c.Visit(target); err != nil {
		return "", err
	}
	c.Wait()
	if reqErr != nil {
		return "", reqErr
	}

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "", fmt.Errorf("no visible text in page")
	}
	return text, nil
}

func hostFromURL(u string) string {
	parsed, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return ""
	}
	return parsed.Host
}

var _ Strategy = (*Static)(nil)

package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestReader_Attempt(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("Job posting as plain text"))
	}))
	defer srv.Close()

	r := NewReader(srv.URL)
	text, err := r.Attempt(context.Background(), "https://jobs.example.test/1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "Job posting as plain text" {
		t.Fatalf("unexpected body: %q", text)
	}
	if gotPath != "/https://jobs.example.test/1" {
		t.Fatalf("expected target appended to base, got %q", gotPath)
	}
}

func TestReader_AttemptNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	r := NewReader(srv.URL)
	if _, err := r.Attempt(context.Background(), "https://jobs.example.test/1"); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestReader_DefaultBase(t *testing.T) {
	r := NewReader("  ")
	if r.baseURL != "https://r.jina.ai" {
		t.Fatalf("unexpected default base: %q", r.baseURL)
	}
	if !r.Available() {
		t.Fatalf("reader must always be available")
	}
}

func TestScrapingBee_Availability(t *testing.T) {
	if NewScrapingBee("  ").Available() {
		t.Fatalf("expected unavailable without api key")
	}
	if !NewScrapingBee("key").Available() {
		t.Fatalf("expected available with api key")
	}
}

func TestScrapingBee_Attempt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") != "test-key" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		if q.Get("url") != "https://jobs.example.test/1" || q.Get("render_js") != "true" {
			http.Error(w, "bad params", http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte("rendered page"))
	}))
	defer srv.Close()

	s := NewScrapingBee("test-key")
	s.baseURL = srv.URL

	text, err := s.Attempt(context.Background(), "https://jobs.example.test/1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if text != "rendered page" {
		t.Fatalf("unexpected body: %q", text)
	}
}

func TestHeadless_Availability(t *testing.T) {
	if NewHeadless(false).Available() {
		t.Fatalf("expected unavailable when disabled")
	}
	if !NewHeadless(true).Available() {
		t.Fatalf("expected available when enabled")
	}
}

package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/vlr-matches/internal/logger"
	"github.com/pfrederiksen/vlr-matches/internal/match"
)

const (
	MatchesURL = "https://www.vlr.gg/matches"
	UserAgent  = "vlr-matches/1.0 (github.com/pfrederiksen/vlr-matches)"
	Timeout    = 30 * time.Second
)

// Scraper handles fetching and parsing the vlr.gg match listing
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a new Scraper for the given listing URL. An empty url means MatchesURL.
func New(url string) *Scraper {
	if url == "" {
		url = MatchesURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page the scraper fetches
func (s *Scraper) URL() string {
	return s.url
}

// Fetch downloads the listing page. The body is returned whatever the HTTP
// status; only a transport failure is an error.
func (s *Scraper) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	logger.Info("Page fetched", logger.Fields{
		"url":         s.url,
		"status_code": resp.StatusCode,
	})
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("Unexpected status code, parsing body anyway", logger.Fields{
			"status_code": resp.StatusCode,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(body), nil
}

// Parse extracts matches from a fetched page
func (s *Scraper) Parse(html string) ([]match.Match, error) {
	return ParsePage(html)
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/pfrederiksen/vlr-matches/internal/discord"
	"github.com/pfrederiksen/vlr-matches/internal/logger"
	"github.com/pfrederiksen/vlr-matches/internal/match"
	"github.com/pfrederiksen/vlr-matches/internal/notifier"
	"golang.org/x/sync/errgroup"
)

// SuccessBody is the response body of a completed run
const SuccessBody = "Messages sent."

// Fetcher retrieves the raw listing page
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Parser turns listing markup into matches
type Parser interface {
	Parse(html string) ([]match.Match, error)
}

// Response is the result of a run
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Handler wires the pipeline together
type Handler struct {
	fetcher  Fetcher
	parser   Parser
	notifier notifier.Notifier
}

// New creates a Handler
func New(fetcher Fetcher, parser Parser, n notifier.Notifier) *Handler {
	return &Handler{
		fetcher:  fetcher,
		parser:   parser,
		notifier: n,
	}
}

// Run performs one full invocation. Any fetch, parse or send failure aborts
// the run and is returned; nothing is retried.
func (h *Handler) Run(ctx context.Context) (*Response, error) {
	start := time.Now()
	runID := uuid.NewString()

	logger.Info("Run started", logger.Fields{"run_id": runID})

	resp, err := h.run(ctx, runID)
	logger.RecordTiming("run.total", time.Since(start))
	if err != nil {
		logger.IncrCounter("runs.failure")
		return nil, err
	}

	logger.IncrCounter("runs.success")
	logger.Info("Run completed", logger.Fields{
		"run_id":   runID,
		"duration": time.Since(start).String(),
	})
	return resp, nil
}

func (h *Handler) run(ctx context.Context, runID string) (*Response, error) {
	fetchStart := time.Now()
	page, err := h.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching matches page: %w", err)
	}
	logger.RecordTiming("run.fetch", time.Since(fetchStart))

	matches, err := h.parser.Parse(page)
	if err != nil {
		return nil, fmt.Errorf("parsing matches page: %w", err)
	}

	groups := match.Group(matches)
	logger.Info("Matches parsed", logger.Fields{
		"run_id":   runID,
		"live":     len(groups.Live),
		"upcoming": len(groups.Upcoming),
	})
	logger.SetGauge("matches.live", float64(len(groups.Live)))
	logger.SetGauge("matches.upcoming", float64(len(groups.Upcoming)))

	return h.Dispatch(ctx,
		discord.LiveMatchesEmbed(groups.Live),
		discord.UpcomingMatchesEmbed(groups.Upcoming),
	)
}

// Dispatch sends every embed concurrently and waits for all of them. The
// first failure fails the whole dispatch; there is no partial result.
func (h *Handler) Dispatch(ctx context.Context, embeds ...*discordgo.MessageEmbed) (*Response, error) {
	g, gctx := errgroup.WithContext(ctx)
	for _, embed := range embeds {
		embed := embed
		g.Go(func() error {
			if err := h.notifier.Notify(gctx, embed); err != nil {
				return fmt.Errorf("sending embed %q: %w", embed.Title, err)
			}
			logger.Debug("Embed sent", logger.Fields{
				"title":  embed.Title,
				"fields": len(embed.Fields),
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Response{StatusCode: http.StatusOK, Body: SuccessBody}, nil
}

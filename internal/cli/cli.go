package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pfrederiksen/vlr-matches/internal/config"
	"github.com/pfrederiksen/vlr-matches/internal/discord"
	"github.com/pfrederiksen/vlr-matches/internal/handler"
	"github.com/pfrederiksen/vlr-matches/internal/logger"
	"github.com/pfrederiksen/vlr-matches/internal/notifier"
	"github.com/pfrederiksen/vlr-matches/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDryRun  bool
	flagVerbose bool
	flagFormat  string
	flagRunNow  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vlr-matches",
		Short: "Post live and upcoming vlr.gg matches to Discord",
		Long: `A CLI tool that scrapes the vlr.gg match listing and posts two Discord
embeds, one for live matches and one for upcoming matches, to a webhook.

Configuration is read from the environment (or a .env file):
  DISCORD_WEBHOOK_URL         webhook to post to (required unless --dry-run)
  DISCORD_WEBHOOK_USERNAME    display name override
  DISCORD_WEBHOOK_AVATAR_URL  avatar override
  VLR_SCHEDULE, VLR_SCHEDULE_TZ, VLR_MATCHES_URL, LOG_LEVEL`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Print the webhook payloads instead of posting them")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd(), newScheduleCmd(), newMatchesCmd())

	return cmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Fetch the listing and post both embeds once",
		Args:  cobra.NoArgs,
		RunE:  runOnce,
	}
}

// runOnce is the single-invocation entry point
func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := setup(!flagDryRun)
	if err != nil {
		return err
	}

	h, err := newHandler(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	resp, err := h.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	return encoder.Encode(resp)
}

// setup loads and validates configuration and installs the default logger
func setup(requireWebhook bool) (*config.Config, error) {
	cfg := config.Load()
	if flagVerbose {
		cfg.LogLevel = string(logger.LevelDebug)
	}

	if err := cfg.Validate(requireWebhook); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger.SetDefault(logger.New(level, os.Stderr))

	return cfg, nil
}

// newHandler builds the pipeline. In dry-run mode payloads go to out.
func newHandler(cfg *config.Config, out io.Writer) (*handler.Handler, error) {
	sc := scraper.New(cfg.MatchesURL)

	var n notifier.Notifier
	if flagDryRun {
		n = notifier.NewDryRunNotifier(out, cfg.WebhookUsername, cfg.WebhookAvatarURL)
	} else {
		webhook, err := discord.NewWebhook(cfg.WebhookURL, cfg.WebhookUsername, cfg.WebhookAvatarURL)
		if err != nil {
			return nil, fmt.Errorf("initializing webhook: %w", err)
		}
		n = notifier.NewWebhookNotifier(webhook)
	}

	return handler.New(sc, sc, n), nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("Command failed", nil, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}

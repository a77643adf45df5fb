package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pfrederiksen/vlr-matches/internal/logger"
	"github.com/robfig/cron/v3"
)

const (
	DefaultMatchesURL = "https://www.vlr.gg/matches"
	// DefaultSchedule is 15:00 UTC, 8AM in Pacific daylight time.
	DefaultSchedule   = "0 15 * * *"
	DefaultTimezone   = "UTC"
	DefaultLogLevel   = "info"
)

// ErrMissingWebhookURL is returned by Validate when no webhook is configured
var ErrMissingWebhookURL = errors.New("DISCORD_WEBHOOK_URL is required")

// Config holds everything a run or the scheduler needs
type Config struct {
	// Discord webhook
	WebhookURL       string
	WebhookUsername  string
	WebhookAvatarURL string

	// Source page
	MatchesURL string

	// Scheduling
	Schedule string
	Timezone string

	LogLevel string
}

// Load reads .env (if present) and the environment. It does not validate.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		WebhookURL:       envStr("DISCORD_WEBHOOK_URL", ""),
		WebhookUsername:  envStr("DISCORD_WEBHOOK_USERNAME", ""),
		WebhookAvatarURL: envStr("DISCORD_WEBHOOK_AVATAR_URL", ""),

		MatchesURL: envStr("VLR_MATCHES_URL", DefaultMatchesURL),

		Schedule: envStr("VLR_SCHEDULE", DefaultSchedule),
		Timezone: envStr("VLR_SCHEDULE_TZ", DefaultTimezone),

		LogLevel: envStr("LOG_LEVEL", DefaultLogLevel),
	}
}

// Validate checks the settings. requireWebhook is false for dry runs.
func (c *Config) Validate(requireWebhook bool) error {
	if c.WebhookURL == "" {
		if requireWebhook {
			return ErrMissingWebhookURL
		}
	} else if err := checkURL(c.WebhookURL); err != nil {
		return fmt.Errorf("invalid DISCORD_WEBHOOK_URL: %w", err)
	}

	if c.WebhookAvatarURL != "" {
		if err := checkURL(c.WebhookAvatarURL); err != nil {
			return fmt.Errorf("invalid DISCORD_WEBHOOK_AVATAR_URL: %w", err)
		}
	}

	if err := checkURL(c.MatchesURL); err != nil {
		return fmt.Errorf("invalid VLR_MATCHES_URL: %w", err)
	}

	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		return fmt.Errorf("invalid VLR_SCHEDULE %q: %w", c.Schedule, err)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}

// Location resolves Timezone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid VLR_SCHEDULE_TZ %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// checkURL requires an absolute http(s) URL
func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

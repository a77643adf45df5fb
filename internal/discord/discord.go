package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bwmarrin/discordgo"
)

const timeout = 10 * time.Second

// Webhook posts messages to one Discord incoming webhook
type Webhook struct {
	url        string
	username   string
	avatarURL  string
	httpClient *http.Client
}

// NewWebhook creates a webhook client. username and avatarURL are optional
// overrides of the webhook's configured identity.
func NewWebhook(webhookURL, username, avatarURL string) (*Webhook, error) {
	if webhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	if _, err := url.ParseRequestURI(webhookURL); err != nil {
		return nil, fmt.Errorf("parsing webhook URL: %w", err)
	}

	return &Webhook{
		url:       webhookURL,
		username:  username,
		avatarURL: avatarURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Params builds the webhook payload for a single embed
func (w *Webhook) Params(embed *discordgo.MessageEmbed) *discordgo.WebhookParams {
	return &discordgo.WebhookParams{
		Username:  w.username,
		AvatarURL: w.avatarURL,
		Embeds:    []*discordgo.MessageEmbed{embed},
	}
}

// Send posts one embed. Any non-2xx response is an error.
func (w *Webhook) Send(ctx context.Context, embed *discordgo.MessageEmbed) error {
	if embed == nil {
		return fmt.Errorf("embed is required")
	}

	jsonData, err := json.Marshal(w.Params(embed))
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("discord webhook error (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

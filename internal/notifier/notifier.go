package notifier

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pfrederiksen/vlr-matches/internal/discord"
)

// Notifier defines the interface for delivering a formatted message
type Notifier interface {
	// Notify delivers a single embed. It must be safe for concurrent use.
	Notify(ctx context.Context, embed *discordgo.MessageEmbed) error
}

// WebhookNotifier posts embeds to a Discord webhook
type WebhookNotifier struct {
	webhook *discord.Webhook
}

// NewWebhookNotifier creates a notifier backed by webhook
func NewWebhookNotifier(webhook *discord.Webhook) *WebhookNotifier {
	return &WebhookNotifier{webhook: webhook}
}

// Notify posts the embed
func (n *WebhookNotifier) Notify(ctx context.Context, embed *discordgo.MessageEmbed) error {
	return n.webhook.Send(ctx, embed)
}

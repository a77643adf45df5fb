// Package discord formats match listings as Discord embeds and posts them to
// an incoming webhook.
//
// Embeds use the discordgo wire types so the payload matches what Discord's
// webhook endpoint accepts. A single embed holds at most MaxEmbedFields
// fields; longer listings are truncated, never reordered.
package discord

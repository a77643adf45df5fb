package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pfrederiksen/vlr-matches/internal/match"
)

const (
	// MaxEmbedFields is Discord's per-embed field limit
	MaxEmbedFields = 25

	LiveTitle     = "Live Matches"
	UpcomingTitle = "Upcoming Matches"
	NoLiveMatches = "There are no live matches happening right now."

	LiveColor     = 0xFF0000
	UpcomingColor = 0x00FF00

	authorName    = "vlr.gg"
	authorIconURL = "https://www.vlr.gg/img/vlr/logo_header.png"
	authorURL     = "https://www.vlr.gg/matches"
)

// now is swapped out in tests
var now = time.Now

func newEmbed(title string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Type:  discordgo.EmbedTypeRich,
		Title: title,
		Author: &discordgo.MessageEmbedAuthor{
			Name:    authorName,
			IconURL: authorIconURL,
			URL:     authorURL,
		},
		Color:     color,
		Timestamp: now().UTC().Format(time.RFC3339),
	}
}

// LiveMatchesEmbed builds the "Live Matches" embed. The footer counts every
// live match even when only the first MaxEmbedFields get a field.
func LiveMatchesEmbed(matches []match.LiveMatch) *discordgo.MessageEmbed {
	embed := newEmbed(LiveTitle, LiveColor)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d live matches", len(matches)),
	}

	if len(matches) == 0 {
		embed.Description = NoLiveMatches
		return embed
	}

	for _, m := range firstN(matches, MaxEmbedFields) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s(%s) vs %s(%s)", m.Team1.Name, m.Team1Score, m.Team2.Name, m.Team2Score),
			Value:  fmt.Sprintf("%s\n%s", m.Event.Name, m.Event.Series),
			Inline: true,
		})
	}

	return embed
}

// UpcomingMatchesEmbed builds the "Upcoming Matches" embed
func UpcomingMatchesEmbed(matches []match.UpcomingMatch) *discordgo.MessageEmbed {
	embed := newEmbed(UpcomingTitle, UpcomingColor)

	for _, m := range firstN(matches, MaxEmbedFields) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s vs %s", m.Team1.Name, m.Team2.Name),
			Value:  fmt.Sprintf("Starting in **%s**\n%s\n%s", m.UpcomingTime, m.Event.Name, m.Event.Series),
			Inline: true,
		})
	}

	return embed
}

func firstN[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

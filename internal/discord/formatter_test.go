package discord

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/vlr-matches/internal/match"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	ts := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	original := now
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = original })
	return ts
}

func liveMatch(i int) match.LiveMatch {
	return match.LiveMatch{
		Base: match.Base{
			Team1: match.Team{Name: fmt.Sprintf("Team%dA", i)},
			Team2: match.Team{Name: fmt.Sprintf("Team%dB", i)},
			Event: match.Event{Name: "Champions", Series: "Playoffs"},
		},
		Team1Score: match.NewScore(i),
		Team2Score: match.NewScore(0),
	}
}

func upcomingMatch(i int) match.UpcomingMatch {
	return match.UpcomingMatch{
		Base: match.Base{
			Team1: match.Team{Name: fmt.Sprintf("Team%dA", i)},
			Team2: match.Team{Name: fmt.Sprintf("Team%dB", i)},
			Event: match.Event{Name: "Challengers", Series: "Week 2"},
		},
		UpcomingTime: fmt.Sprintf("%dh", i),
	}
}

func TestLiveMatchesEmbed(t *testing.T) {
	ts := fixedNow(t)

	t.Run("single match", func(t *testing.T) {
		m := match.LiveMatch{
			Base: match.Base{
				Team1: match.Team{Name: "Alpha"},
				Team2: match.Team{Name: "Beta"},
				Event: match.Event{Name: "Champions", Series: "Grand Final"},
			},
			Team1Score: match.NewScore(13),
			Team2Score: match.NewScore(7),
		}

		embed := LiveMatchesEmbed([]match.LiveMatch{m})

		if embed.Title != LiveTitle {
			t.Errorf("Title = %q, want %q", embed.Title, LiveTitle)
		}
		if embed.Color != 16711680 {
			t.Errorf("Color = %d, want 16711680", embed.Color)
		}
		if embed.Timestamp != ts.Format(time.RFC3339) {
			t.Errorf("Timestamp = %q, want %q", embed.Timestamp, ts.Format(time.RFC3339))
		}
		if embed.Footer == nil || embed.Footer.Text != "1 live matches" {
			t.Errorf("Footer = %+v, want '1 live matches'", embed.Footer)
		}
		if embed.Author == nil || embed.Author.Name != "vlr.gg" || embed.Author.URL != "https://www.vlr.gg/matches" {
			t.Errorf("Author = %+v, want vlr.gg author", embed.Author)
		}
		if embed.Description != "" {
			t.Errorf("Description = %q, want empty", embed.Description)
		}

		if len(embed.Fields) != 1 {
			t.Fatalf("got %d fields, want 1", len(embed.Fields))
		}
		field := embed.Fields[0]
		if field.Name != "Alpha(13) vs Beta(7)" {
			t.Errorf("field name = %q, want 'Alpha(13) vs Beta(7)'", field.Name)
		}
		if field.Value != "Champions\nGrand Final" {
			t.Errorf("field value = %q, want 'Champions\\nGrand Final'", field.Value)
		}
		if !field.Inline {
			t.Error("field should be inline")
		}
	})

	t.Run("no live matches", func(t *testing.T) {
		embed := LiveMatchesEmbed(nil)

		if embed.Description != NoLiveMatches {
			t.Errorf("Description = %q, want %q", embed.Description, NoLiveMatches)
		}
		if len(embed.Fields) != 0 {
			t.Errorf("got %d fields, want 0", len(embed.Fields))
		}
		if embed.Footer == nil || embed.Footer.Text != "0 live matches" {
			t.Errorf("Footer = %+v, want '0 live matches'", embed.Footer)
		}
	})

	t.Run("invalid score", func(t *testing.T) {
		m := liveMatch(1)
		m.Team2Score = match.ParseScore("-")

		embed := LiveMatchesEmbed([]match.LiveMatch{m})

		if got := embed.Fields[0].Name; got != "Team1A(1) vs Team1B(NaN)" {
			t.Errorf("field name = %q, want 'Team1A(1) vs Team1B(NaN)'", got)
		}
	})

	t.Run("truncates to first 25", func(t *testing.T) {
		matches := make([]match.LiveMatch, 40)
		for i := range matches {
			matches[i] = liveMatch(i)
		}

		embed := LiveMatchesEmbed(matches)

		if len(embed.Fields) != MaxEmbedFields {
			t.Fatalf("got %d fields, want %d", len(embed.Fields), MaxEmbedFields)
		}
		for i, field := range embed.Fields {
			want := fmt.Sprintf("Team%dA(%d) vs Team%dB(0)", i, i, i)
			if field.Name != want {
				t.Errorf("field %d = %q, want %q", i, field.Name, want)
			}
		}
		if embed.Footer.Text != "40 live matches" {
			t.Errorf("Footer = %q, want '40 live matches'", embed.Footer.Text)
		}
	})
}

func TestUpcomingMatchesEmbed(t *testing.T) {
	ts := fixedNow(t)

	t.Run("single match", func(t *testing.T) {
		m := match.UpcomingMatch{
			Base: match.Base{
				Team1: match.Team{Name: "Alpha"},
				Team2: match.Team{Name: "Beta"},
				Event: match.Event{Name: "Champions", Series: "Grand Final"},
			},
			UpcomingTime: "2h 30m",
		}

		embed := UpcomingMatchesEmbed([]match.UpcomingMatch{m})

		if embed.Title != UpcomingTitle {
			t.Errorf("Title = %q, want %q", embed.Title, UpcomingTitle)
		}
		if embed.Color != 65280 {
			t.Errorf("Color = %d, want 65280", embed.Color)
		}
		if embed.Footer != nil {
			t.Errorf("Footer = %+v, want nil", embed.Footer)
		}
		if embed.Timestamp != ts.Format(time.RFC3339) {
			t.Errorf("Timestamp = %q", embed.Timestamp)
		}

		if len(embed.Fields) != 1 {
			t.Fatalf("got %d fields, want 1", len(embed.Fields))
		}
		field := embed.Fields[0]
		if field.Name != "Alpha vs Beta" {
			t.Errorf("field name = %q, want 'Alpha vs Beta'", field.Name)
		}
		if field.Value != "Starting in **2h 30m**\nChampions\nGrand Final" {
			t.Errorf("field value = %q", field.Value)
		}
		if !field.Inline {
			t.Error("field should be inline")
		}
	})

	t.Run("empty", func(t *testing.T) {
		embed := UpcomingMatchesEmbed([]match.UpcomingMatch{})

		if embed.Description != "" {
			t.Errorf("Description = %q, want empty", embed.Description)
		}
		if len(embed.Fields) != 0 {
			t.Errorf("got %d fields, want 0", len(embed.Fields))
		}
	})

	t.Run("truncates to first 25", func(t *testing.T) {
		matches := make([]match.UpcomingMatch, 26)
		for i := range matches {
			matches[i] = upcomingMatch(i)
		}

		embed := UpcomingMatchesEmbed(matches)

		if len(embed.Fields) != MaxEmbedFields {
			t.Fatalf("got %d fields, want %d", len(embed.Fields), MaxEmbedFields)
		}
		last := embed.Fields[MaxEmbedFields-1]
		if !strings.HasPrefix(last.Name, "Team24A") {
			t.Errorf("last field = %q, want Team24A", last.Name)
		}
	})
}

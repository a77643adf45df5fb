package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/vlr-matches/internal/match"
)

// Selectors for the vlr.gg /matches markup.
const (
	selMatchItem  = "a.match-item"
	selTeamName   = "div.match-item-vs-team-name > div.text-of"
	selTeamScore  = "div.match-item-vs-team-score"
	selTime       = "div.match-item-time"
	selEvent      = "div.match-item-event"
	selSeries     = "div.match-item-event-series"
	selStatus     = "div.match-item-eta > div > div.ml-status"
	selETA        = "div.match-item-eta > div > div.ml-eta"
	liveStatus    = "LIVE"
	timeZoneLabel = " PST"
)

// ParsePage extracts every match entry from the listing markup in page order.
// A page with no entries yields an empty slice.
func ParsePage(html string) ([]match.Match, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	matches := make([]match.Match, 0)
	doc.Find(selMatchItem).Each(func(i int, item *goquery.Selection) {
		matches = append(matches, parseItem(item))
	})

	return matches, nil
}

// parseItem builds one match from an a.match-item node
func parseItem(item *goquery.Selection) match.Match {
	teams := texts(item.Find(selTeamName))

	base := match.Base{
		Team1: match.Team{Name: at(teams, 0)},
		Team2: match.Team{Name: at(teams, 1)},
		Time:  strings.TrimSpace(item.Find(selTime).Text()) + timeZoneLabel,
		Event: match.Event{
			Name:   eventName(item.Find(selEvent)),
			Series: strings.TrimSpace(item.Find(selSeries).Text()),
		},
	}

	if strings.TrimSpace(item.Find(selStatus).Text()) == liveStatus {
		scores := texts(item.Find(selTeamScore))
		return match.LiveMatch{
			Base:       base,
			Team1Score: match.ParseScore(at(scores, 0)),
			Team2Score: match.ParseScore(at(scores, 1)),
		}
	}

	return match.UpcomingMatch{
		Base:         base,
		UpcomingTime: strings.TrimSpace(item.Find(selETA).Text()),
	}
}

// eventName returns the event container's own text, without the text of
// child elements such as the series label. The document is left untouched.
func eventName(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Clone().Children().Remove().End().Text())
}

// texts returns the trimmed text of each node in the selection
func texts(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, s *goquery.Selection) string {
		return strings.TrimSpace(s.Text())
	})
}

func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

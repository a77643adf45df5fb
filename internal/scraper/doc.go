// Package scraper provides HTTP fetching and HTML parsing for the vlr.gg match listing.
//
// The scraper fetches https://www.vlr.gg/matches and turns each a.match-item entry
// into a match.LiveMatch or match.UpcomingMatch. All knowledge of the page's class
// names lives in parse.go, so a markup change on vlr.gg is fixed in one place.
// Malformed entries are not rejected: missing nodes become empty strings and
// unreadable scores become invalid match.Score values.
package scraper

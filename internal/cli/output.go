package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/vlr-matches/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt     time.Time             `json:"checked_at"`
	Source        string                `json:"source"`
	Live          []match.LiveMatch     `json:"live"`
	Upcoming      []match.UpcomingMatch `json:"upcoming"`
	LiveCount     int                   `json:"live_count"`
	UpcomingCount int                   `json:"upcoming_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.LiveCount+result.UpcomingCount == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	if len(result.Live) > 0 {
		fmt.Fprintf(w, "LIVE (%d):\n", len(result.Live))
		for _, m := range result.Live {
			fmt.Fprintf(w, "  %s %s - %s %s\n", m.Team1.Name, m.Team1Score, m.Team2Score, m.Team2.Name)
			writeEvent(w, m.Info(), verbose)
		}
	}

	if len(result.Upcoming) > 0 {
		if len(result.Live) > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "UPCOMING (%d):\n", len(result.Upcoming))
		for _, m := range result.Upcoming {
			fmt.Fprintf(w, "  %s vs %s in %s\n", m.Team1.Name, m.Team2.Name, m.UpcomingTime)
			writeEvent(w, m.Info(), verbose)
		}
	}

	fmt.Fprintf(w, "\nTotal: %d live, %d upcoming\n", result.LiveCount, result.UpcomingCount)

	return nil
}

func writeEvent(w io.Writer, info match.Base, verbose bool) {
	fmt.Fprintf(w, "       %s / %s\n", info.Event.Name, info.Event.Series)
	if verbose {
		fmt.Fprintf(w, "       Time: %s\n", info.Time)
	}
}

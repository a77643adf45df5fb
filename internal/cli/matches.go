package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/vlr-matches/internal/match"
	"github.com/pfrederiksen/vlr-matches/internal/scraper"
	"github.com/spf13/cobra"
)

func newMatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Print the parsed match listing without posting anything",
		Args:  cobra.NoArgs,
		RunE:  runMatches,
	}

	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	return cmd
}

func runMatches(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := setup(false)
	if err != nil {
		return err
	}

	sc := scraper.New(cfg.MatchesURL)
	page, err := sc.Fetch(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching matches: %w", err)
	}

	matches, err := sc.Parse(page)
	if err != nil {
		return fmt.Errorf("parsing matches: %w", err)
	}

	groups := match.Group(matches)
	result := &OutputResult{
		CheckedAt:     time.Now().UTC(),
		Source:        sc.URL(),
		Live:          groups.Live,
		Upcoming:      groups.Upcoming,
		LiveCount:     len(groups.Live),
		UpcomingCount: len(groups.Upcoming),
	}

	if err := WriteOutput(cmd.OutOrStdout(), result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

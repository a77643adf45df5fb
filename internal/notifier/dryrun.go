package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// DryRunNotifier prints what would be posted without contacting Discord
type DryRunNotifier struct {
	mu       sync.Mutex
	w        io.Writer
	username string
	avatar   string
}

// NewDryRunNotifier creates a new dry-run notifier writing to w
func NewDryRunNotifier(w io.Writer, username, avatarURL string) *DryRunNotifier {
	return &DryRunNotifier{w: w, username: username, avatar: avatarURL}
}

// Notify writes the webhook payload for embed as indented JSON
func (n *DryRunNotifier) Notify(ctx context.Context, embed *discordgo.MessageEmbed) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &discordgo.WebhookParams{
		Username:  n.username,
		AvatarURL: n.avatar,
		Embeds:    []*discordgo.MessageEmbed{embed},
	}
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	fmt.Fprintf(n.w, "--- %s (%d fields) ---\n", embed.Title, len(embed.Fields))
	if _, err := fmt.Fprintln(n.w, string(data)); err != nil {
		return fmt.Errorf("writing payload: %w", err)
	}
	return nil
}

package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// TestSend_Success tests a successful webhook post
func TestSend_Success(t *testing.T) {
	var received discordgo.WebhookParams

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	webhook, err := NewWebhook(server.URL, "vlr bot", "https://example.com/avatar.png")
	if err != nil {
		t.Fatalf("NewWebhook() error: %v", err)
	}

	embed := &discordgo.MessageEmbed{
		Title: LiveTitle,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Alpha(13) vs Beta(7)", Value: "Champions\nGrand Final", Inline: true},
		},
	}

	if err := webhook.Send(context.Background(), embed); err != nil {
		t.Fatalf("Send() unexpected error: %v", err)
	}

	if received.Username != "vlr bot" {
		t.Errorf("username = %q, want 'vlr bot'", received.Username)
	}
	if received.AvatarURL != "https://example.com/avatar.png" {
		t.Errorf("avatar_url = %q", received.AvatarURL)
	}
	if len(received.Embeds) != 1 {
		t.Fatalf("got %d embeds, want 1", len(received.Embeds))
	}
	if received.Embeds[0].Title != LiveTitle {
		t.Errorf("embed title = %q, want %q", received.Embeds[0].Title, LiveTitle)
	}
	if got := received.Embeds[0].Fields[0]; got.Name != "Alpha(13) vs Beta(7)" || !got.Inline {
		t.Errorf("field = %+v", got)
	}
}

// TestSend_APIError tests non-2xx handling
func TestSend_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Invalid Form Body", "code": 50035}`))
	}))
	defer server.Close()

	webhook, err := NewWebhook(server.URL, "", "")
	if err != nil {
		t.Fatalf("NewWebhook() error: %v", err)
	}

	err = webhook.Send(context.Background(), &discordgo.MessageEmbed{Title: "x"})
	if err == nil {
		t.Fatal("Send() expected error, got nil")
	}
	if !strings.Contains(err.Error(), "400") || !strings.Contains(err.Error(), "Invalid Form Body") {
		t.Errorf("error = %q, want status and body", err.Error())
	}
}

func TestSend_NilEmbed(t *testing.T) {
	webhook, err := NewWebhook("https://discord.com/api/webhooks/1/abc", "", "")
	if err != nil {
		t.Fatalf("NewWebhook() error: %v", err)
	}

	if err := webhook.Send(context.Background(), nil); err == nil {
		t.Error("Send() expected error for nil embed")
	}
}

func TestNewWebhook(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid", "https://discord.com/api/webhooks/1/abc", false},
		{"empty", "", true},
		{"not a url", "discord webhook", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWebhook(tt.url, "", "")
			if (err != nil) != tt.wantErr {
				t.Errorf("NewWebhook(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestParams_OmitsEmptyIdentity(t *testing.T) {
	webhook, _ := NewWebhook("https://discord.com/api/webhooks/1/abc", "", "")

	data, err := json.Marshal(webhook.Params(&discordgo.MessageEmbed{Title: UpcomingTitle}))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	if strings.Contains(string(data), "username") || strings.Contains(string(data), "avatar_url") {
		t.Errorf("payload should omit empty identity: %s", data)
	}
}

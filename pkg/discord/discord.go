package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

// SendEmbed posts a single embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}
	avatar := options.AvatarURL
	if avatar == "" {
		avatar = d.config.DefaultAvatarURL
	}

	payload := WebhookPayload{
		Username:  username,
		AvatarURL: avatar,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLength),
			URL:         options.URL,
			Color:       colorFor(options.Type),
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Footer:      options.Footer,
			Fields:      options.Fields,
		}},
	}

	_, status, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.SendEmbed: failed to post webhook: %v", err)
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "pkg.discord.SendEmbed: unexpected status %d", status)
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}
	return nil
}

func (d *discordImpl) SendSuccess(ctx context.Context, title, description string, fields []EmbedField) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeSuccess, Title: title, Description: description, Fields: fields})
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string, fields []EmbedField) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeWarning, Title: title, Description: description, Fields: fields})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	var fields []EmbedField
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: truncate(err.Error(), 1024)})
	}
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeError, Title: title, Description: description, Fields: fields})
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return ColorSuccess
	case MessageTypeWarning:
		return ColorWarning
	case MessageTypeError:
		return ColorError
	default:
		return ColorInfo
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

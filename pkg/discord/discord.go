package discord

import (
	"context"
	"fmt"
	"time"
)

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxContentLength),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	embed := Embed{
		Title:       options.Title,
		Description: truncate(options.Description, maxDescriptionLength),
		Color:       colorFor(options.Type),
		Timestamp:   ts.UTC().Format(time.RFC3339),
		Footer:      options.Footer,
		Fields:      options.Fields,
	}
	return d.send(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), 1000)}}
	}
	return d.SendEmbed(ctx, opts)
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```" + truncate(message, maxDescriptionLength-6) + "```",
	})
}

func (d *discordImpl) send(ctx context.Context, payload WebhookPayload) error {
	_, code, err := d.client.Post(ctx, d.GetWebhookURL(), payload, nil)
	if err != nil {
		d.l.Warnf(ctx, "discord.send: post failed: %v", err)
		return err
	}
	if code < 200 || code >= 300 {
		d.l.Warnf(ctx, "discord.send: status %d", code)
		return fmt.Errorf("%w: %d", errUnexpectedCode, code)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

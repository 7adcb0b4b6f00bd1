package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", webhookBaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	if payload.Username == "" {
		payload.Username = d.config.DefaultUsername
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("discord: failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("discord: failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("discord: webhook returned status %d", resp.StatusCode)
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

// SendMessage sends a plain text message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, WebhookPayload{Content: content})
}

// SendEmbed sends an embed built from options.
func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return d.post(ctx, WebhookPayload{
		Username: options.Username,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: options.Description,
			Color:       colorFor(options.Type),
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Fields:      options.Fields,
		}},
	})
}

// SendError sends an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	fields := []EmbedField{}
	if err != nil {
		fields = append(fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
		Fields:      fields,
	})
}

// SendSuccess sends a success embed.
func (d *discordImpl) SendSuccess(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeSuccess, Title: title, Description: description})
}

// SendWarning sends a warning embed.
func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeWarning, Title: title, Description: description})
}

// SendInfo sends an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.SendEmbed(ctx, MessageOptions{Type: MessageTypeInfo, Title: title, Description: description})
}

// SendNotification sends an info embed with key/value fields.
func (d *discordImpl) SendNotification(ctx context.Context, title, description string, fields map[string]string) error {
	embedFields := make([]EmbedField, 0, len(fields))
	for name, value := range fields {
		embedFields = append(embedFields, EmbedField{Name: name, Value: value, Inline: true})
	}
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeInfo,
		Title:       title,
		Description: description,
		Fields:      embedFields,
	})
}

// GetWebhookURL returns the webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return d.webhookURL()
}

// Close is a no-op; the underlying client has no resources to release.
func (d *discordImpl) Close() error {
	return nil
}

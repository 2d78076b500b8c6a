// Package notify posts user notifications to a webhook endpoint. Delivery is
// best effort; failures are reported to the caller, who logs and moves on.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	portssvc "github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/ports/services"
)

type WebhookDispatcher struct {
	webhookURL string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookDispatcher builds a dispatcher. An empty webhookURL disables
// delivery silently.
func NewWebhookDispatcher(webhookURL string, timeout time.Duration, logger *slog.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

var _ portssvc.NotificationDispatcher = (*WebhookDispatcher)(nil)

type notificationPayload struct {
	UserID    string `json:"userID"`
	Text      string `json:"text"`
	EntityRef string `json:"entityRef"`
	SentAt    string `json:"sentAt"`
}

// Notify posts a single notification to the configured webhook.
func (d *WebhookDispatcher) Notify(ctx context.Context, userID string, text string, entityRef string) error {
	if d.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(notificationPayload{
		UserID:    userID,
		Text:      text,
		EntityRef: entityRef,
		SentAt:    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		d.logger.Warn("Notification delivery failed", slog.String("user_id", userID), slog.String("error", err.Error()))
		return fmt.Errorf("%w: notification delivery failed", apperrors.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		d.logger.Warn("Notification endpoint returned non-OK status", slog.String("user_id", userID), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("%w: notification endpoint returned status %d", apperrors.ErrUnavailable, resp.StatusCode)
	}
	return nil
}

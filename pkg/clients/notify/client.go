// Package notify pushes close-of-day digests to a configured webhook. The
// push is best-effort: failures are reported to the caller for logging and
// nothing is retried.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Mamlesh18/apex-gaming-cafe/internal/config"
)

// Client exposes the outbound notification operations used by the scheduler.
type Client interface {
	SendDigest(ctx context.Context, digest Digest) error
}

// Digest is the payload posted to the webhook.
type Digest struct {
	Date        string  `json:"date"`
	Text        string  `json:"text"`
	TotalProfit float64 `json:"total_profit"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client from configuration.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// SendDigest posts the digest to the configured webhook URL.
func (c *WebhookClient) SendDigest(ctx context.Context, digest Digest) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(digest).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send digest webhook: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("digest webhook rejected: status=%d", resp.StatusCode())
	}

	return nil
}

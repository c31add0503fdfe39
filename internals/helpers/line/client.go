// Package line is a minimal LINE Messaging API client: push to a user and
// reply to a webhook event. Delivery is fire-and-forget at the call sites.
package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.line.me"

type Client struct {
	channelToken string
	endpoint     string
	http         *http.Client
}

func New(channelToken string) *Client {
	return &Client{
		channelToken: channelToken,
		endpoint:     defaultEndpoint,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint overrides the API host (tests point it at httptest).
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = strings.TrimRight(endpoint, "/")
	return c
}

func (c *Client) Enabled() bool { return c.channelToken != "" }

// Push sends messages to one user.
func (c *Client) Push(ctx context.Context, to string, messages ...any) error {
	return c.post(ctx, "/v2/bot/message/push", map[string]any{
		"to":       to,
		"messages": messages,
	})
}

// Reply answers a webhook event with plain text.
func (c *Client) Reply(ctx context.Context, replyToken, text string) error {
	if replyToken == "" {
		return nil
	}
	return c.post(ctx, "/v2/bot/message/reply", map[string]any{
		"replyToken": replyToken,
		"messages":   []any{TextMessage(text)},
	})
}

func TextMessage(text string) map[string]any {
	return map[string]any{"type": "text", "text": text}
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	if !c.Enabled() {
		return fmt.Errorf("LINE channel token not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal LINE payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build LINE request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.channelToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("LINE request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("LINE API status %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// Package telegram is a thin client for the Bot API's sendMessage plus the
// multi-recipient dispatch used by the summary job.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/solarbrief/solarbrief/pkg/common"
	"github.com/solarbrief/solarbrief/pkg/log"
)

// DefaultBaseURL is the Telegram Bot API host.
const DefaultBaseURL = "https://api.telegram.org"

// ParseModeMarkdown enables bold/emphasis markers in sent messages.
const ParseModeMarkdown = "Markdown"

// Notifier sends one message to one chat. Delivery is fire-and-forget per
// recipient; no delivery receipt is required.
type Notifier interface {
	SendMessage(ctx context.Context, chatID, text, parseMode string) error
}

// Client implements Notifier against the Bot API.
type Client struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewClient returns a client for the given bot token.
func NewClient(token string) *Client {
	return &Client{
		client:  common.HTTPClient(time.Minute),
		baseURL: DefaultBaseURL,
		token:   token,
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// the Bot API wraps every response in {ok, description?, result?}
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts one sendMessage call. Like the portal, Telegram can
// answer 200 with an in-body failure, so the ok flag decides success.
func (c *Client) SendMessage(ctx context.Context, chatID, text, parseMode string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u.Path, err = url.JoinPath(u.Path, "bot"+c.token, "sendMessage")
	if err != nil {
		return err
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", u.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	defer resp.Body.Close()

	var res apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("failed to decode sendMessage response: %w", err)
	}
	if !res.OK {
		if res.Description == "" {
			return fmt.Errorf("sendMessage rejected with status %d", resp.StatusCode)
		}
		return fmt.Errorf("sendMessage rejected: %s", res.Description)
	}

	log.Ctx(ctx).DebugContext(ctx, "telegram message sent", slog.String("chatID", chatID))
	return nil
}

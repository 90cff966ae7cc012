package telegram

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Bot is a minimal Telegram client used to tell the couple about new RSVP
// submissions. Best effort only: callers log failures and move on.
type Bot struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewBot(token string) *Bot {
	return &Bot{
		token:   token,
		baseURL: "https://api.telegram.org/bot" + token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *Bot) SendMessage(ctx context.Context, chatID, text string) error {
	endpoint := b.baseURL + "/sendMessage"

	params := url.Values{}
	params.Add("chat_id", chatID)
	params.Add("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(params.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error: %s", resp.Status)
	}

	return nil
}

// NewRsvpMessage renders the notification sent after a successful
// submission.
func NewRsvpMessage(names []string, attending string) string {
	who := strings.Join(names, ", ")
	if attending == "yes" {
		return fmt.Sprintf("Nová RSVP odpověď: %s — dorazí 🎉", who)
	}
	return fmt.Sprintf("Nová RSVP odpověď: %s — bohužel nedorazí", who)
}

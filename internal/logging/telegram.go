package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wassup1201/Simple-Agent/internal/config"
)

type telegramRequest struct {
	ChatId string `json:"chat_id"`
	Text   string `json:"text"`
}

const (
	iconError = "❌"

	telegramAPIBase = "https://api.telegram.org"
)

// TelegramNotifier pushes operator alerts to a Telegram chat.
type TelegramNotifier struct {
	creds      config.TelegramBotConfig
	baseURL    string
	httpClient *http.Client
}

// NewTelegramNotifier returns nil when the bot credentials are incomplete.
func NewTelegramNotifier(cfg config.TelegramBotConfig) *TelegramNotifier {
	if cfg.ChatId == "" || cfg.Token == "" {
		return nil
	}
	return &TelegramNotifier{
		creds:      cfg,
		baseURL:    telegramAPIBase,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func formatMessage(icon, level, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		v = "-"
	}
	return fmt.Sprintf("%s %s: %s", icon, level, v)
}

func (t *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if t == nil {
		return nil
	}
	url := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(t.baseURL, "/"), t.creds.Token)

	bodyBytes, err := json.Marshal(telegramRequest{
		ChatId: t.creds.ChatId,
		Text:   text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram send failed: %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}
	return nil
}

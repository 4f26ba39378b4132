package logging

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wassup1201/Simple-Agent/internal/config"
)

func TestLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).With(zap.String("component", "test"))

	logger.Log("started", zap.Int("port", 3000))
	logger.LogWarning("slow upstream")
	logger.LogError("GET /shopify/products error", errors.New("boom"))
	logger.LogSuccess("lookup done")

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(3000), entries[0].ContextMap()["port"])
	assert.Equal(t, "test", entries[0].ContextMap()["component"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])

	assert.Equal(t, "success", entries[3].ContextMap()["outcome"])
}

func TestNewTelegramNotifierNeedsCredentials(t *testing.T) {
	assert.Nil(t, NewTelegramNotifier(config.TelegramBotConfig{}))
	assert.Nil(t, NewTelegramNotifier(config.TelegramBotConfig{Token: "x"}))
	assert.NotNil(t, NewTelegramNotifier(config.TelegramBotConfig{Token: "x", ChatId: "1"}))
}

func TestTelegramNotify(t *testing.T) {
	var got telegramRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(config.TelegramBotConfig{Token: "abc", ChatId: "42"})
	n.baseURL = srv.URL

	require.NoError(t, n.Notify(context.Background(), formatMessage(iconError, "ERROR", "upstream down")))
	assert.Equal(t, "/botabc/sendMessage", path)
	assert.Equal(t, "42", got.ChatId)
	assert.Equal(t, "❌ ERROR: upstream down", got.Text)
}

func TestTelegramNotifyFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(config.TelegramBotConfig{Token: "abc", ChatId: "42"})
	n.baseURL = srv.URL

	err := n.Notify(context.Background(), "x")
	assert.ErrorContains(t, err, "telegram send failed")
}

func TestNilNotifierIsNoop(t *testing.T) {
	var n *TelegramNotifier
	assert.NoError(t, n.Notify(context.Background(), "ignored"))
}

func TestFormatMessageEmpty(t *testing.T) {
	assert.Equal(t, "❌ ERROR: -", formatMessage(iconError, "ERROR", "  "))
}

func TestSyncWaitsForPendingNotifications(t *testing.T) {
	var delivered atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		delivered.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewTelegramNotifier(config.TelegramBotConfig{Token: "abc", ChatId: "42"})
	n.baseURL = srv.URL
	core, _ := observer.New(zapcore.InfoLevel)
	logger := newLogger(zap.New(core), n).With(zap.String("cmd", "order-status"))

	logger.LogError("order lookup failed", errors.New("timeout"))
	logger.LogError("order lookup failed", errors.New("timeout again"))
	require.NoError(t, logger.Sync())

	assert.Equal(t, int32(2), delivered.Load())
}

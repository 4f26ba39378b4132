package logging

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/wassup1201/Simple-Agent/internal/config"
)

type LoggerService interface {
	Log(msg string, fields ...zap.Field)
	LogWarning(msg string, fields ...zap.Field)
	LogError(msg string, err error, fields ...zap.Field)
	LogSuccess(msg string, fields ...zap.Field)
	With(fields ...zap.Field) LoggerService
	Sync() error
}

type Logger struct {
	zl       *zap.Logger
	notifier *TelegramNotifier
	pending  *sync.WaitGroup
}

func newLogger(zl *zap.Logger, notifier *TelegramNotifier) *Logger {
	return &Logger{zl: zl, notifier: notifier, pending: &sync.WaitGroup{}}
}

// NewLogger builds a zap logger from cfg. When the Telegram bot is
// configured, errors are also forwarded there.
func NewLogger(cfg config.LogConfig, bot config.TelegramBotConfig) (LoggerService, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "time"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	zl, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return newLogger(zl, NewTelegramNotifier(bot)), nil
}

// FromZap wraps an existing zap logger, mostly for tests.
func FromZap(zl *zap.Logger) LoggerService {
	return newLogger(zl, nil)
}

func NewNop() LoggerService {
	return newLogger(zap.NewNop(), nil)
}

func (l *Logger) Log(msg string, fields ...zap.Field) {
	l.zl.Info(msg, fields...)
}

func (l *Logger) LogWarning(msg string, fields ...zap.Field) {
	l.zl.Warn(msg, fields...)
}

func (l *Logger) LogError(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	l.zl.Error(msg, fields...)

	if l.notifier != nil {
		text := msg
		if err != nil {
			text = msg + ": " + err.Error()
		}
		l.pending.Add(1)
		go func() {
			defer l.pending.Done()
			l.notify(formatMessage(iconError, "ERROR", text))
		}()
	}
}

func (l *Logger) LogSuccess(msg string, fields ...zap.Field) {
	l.zl.Info(msg, append(fields, zap.String("outcome", "success"))...)
}

func (l *Logger) With(fields ...zap.Field) LoggerService {
	return &Logger{zl: l.zl.With(fields...), notifier: l.notifier, pending: l.pending}
}

// Sync waits for in-flight Telegram notifications, then flushes zap.
func (l *Logger) Sync() error {
	l.pending.Wait()
	return l.zl.Sync()
}

func (l *Logger) notify(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := l.notifier.Notify(ctx, text); err != nil {
		l.zl.Warn("telegram notify failed", zap.Error(err))
	}
}

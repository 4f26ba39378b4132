package openai

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	gpt "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wassup1201/Simple-Agent/internal/config"
	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

const tracerName = "github.com/wassup1201/Simple-Agent/internal/adapters/openai"

// Completer is the chat-completion backend as seen by the chat use case.
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, messages []model.ChatMessage) (CompletionResult, error)
}

// CompletionResult carries the first choice's text. Parsed is false when the
// body had no usable text; callers decide the fallback wording.
type CompletionResult struct {
	StatusCode int
	Text       string
	Parsed     bool
}

type Client struct {
	config config.OpenAIConfig
	api    *gpt.Client
	logger logging.LoggerService
	tracer trace.Tracer
}

func NewClient(cfg config.OpenAIConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 20 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	apiCfg := gpt.DefaultConfig(strings.TrimSpace(cfg.APIKey))
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseUrl), "/"); base != "" {
		apiCfg.BaseURL = base
	}
	apiCfg.HTTPClient = httpClient

	return &Client{
		config: cfg,
		api:    gpt.NewClientWithConfig(apiCfg),
		logger: logger,
		tracer: otel.Tracer(tracerName),
	}
}

func (c *Client) Configured() bool {
	return strings.TrimSpace(c.config.APIKey) != ""
}

func (c *Client) Complete(ctx context.Context, messages []model.ChatMessage) (CompletionResult, error) {
	if !c.Configured() {
		return CompletionResult{}, apperr.Configuration("openai.chat", "OPENAI_API_KEY missing in environment")
	}

	ctx, span := c.tracer.Start(ctx, "openai.chat_completion", trace.WithAttributes(
		attribute.String("openai.model", c.config.Model),
		attribute.Int("openai.messages", len(messages)),
	))
	defer span.End()

	resp, err := c.api.CreateChatCompletion(ctx, gpt.ChatCompletionRequest{
		Model:    c.config.Model,
		Messages: toChatMessages(messages),
	})
	if err != nil {
		return c.failure(span, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", http.StatusOK))

	result := CompletionResult{StatusCode: http.StatusOK}
	if len(resp.Choices) == 0 {
		return result, nil
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return result, nil
	}
	result.Text = text
	result.Parsed = true
	return result, nil
}

// failure sorts client errors: transport trouble is an error, an upstream
// non-2xx or an unreadable body is an unparsed result.
func (c *Client) failure(span trace.Span, err error) (CompletionResult, error) {
	var (
		apiErr *gpt.APIError
		reqErr *gpt.RequestError
		urlErr *url.Error
		netErr net.Error
	)
	switch {
	case errors.As(err, &apiErr):
		span.SetStatus(codes.Error, apiErr.Message)
		c.logger.LogWarning("OpenAI non-200",
			zap.Int("status", apiErr.HTTPStatusCode),
			zap.String("error", apiErr.Message),
		)
		return CompletionResult{StatusCode: apiErr.HTTPStatusCode}, nil
	case errors.As(err, &reqErr):
		span.SetStatus(codes.Error, "request error")
		c.logger.LogWarning("OpenAI non-200",
			zap.Int("status", reqErr.HTTPStatusCode),
			zap.Error(err),
		)
		return CompletionResult{StatusCode: reqErr.HTTPStatusCode}, nil
	case errors.As(err, &urlErr), errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return CompletionResult{}, apperr.Transport("openai.chat", err)
	default:
		span.RecordError(err)
		c.logger.LogWarning("OpenAI reply unreadable", zap.Error(err))
		return CompletionResult{StatusCode: http.StatusOK}, nil
	}
}

// Ping asks the model for a one-word answer to prove the key and endpoint work.
func (c *Client) Ping(ctx context.Context) (CompletionResult, error) {
	return c.Complete(ctx, []model.ChatMessage{{Role: "user", Content: `Say "pong".`}})
}

func toChatMessages(messages []model.ChatMessage) []gpt.ChatCompletionMessage {
	out := make([]gpt.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, gpt.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}

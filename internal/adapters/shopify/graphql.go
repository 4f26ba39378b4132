package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify/dto"
	"github.com/wassup1201/Simple-Agent/internal/config"
	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

const tracerName = "github.com/wassup1201/Simple-Agent/internal/adapters/shopify"

type GraphQLClient interface {
	Do(ctx context.Context, query string, variables map[string]any, out any) error
}

type apiKind string

const (
	apiStorefront apiKind = "storefront"
	apiAdmin      apiKind = "admin"
)

type Client struct {
	api         apiKind
	endpoint    string
	tokenHeader string
	token       string
	missingMsg  string
	errPrefix   string
	httpClient  *http.Client
	logger      logging.LoggerService
	tracer      trace.Tracer
}

// NewStorefrontClient talks to the public catalog API.
func NewStorefrontClient(cfg config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	c := newClient(apiStorefront, cfg, httpClient, logger)
	c.tokenHeader = "X-Shopify-Storefront-Access-Token"
	c.token = cfg.StorefrontToken
	c.missingMsg = "Shopify env missing. Set SHOPIFY_DOMAIN and SHOPIFY_STOREFRONT_TOKEN in .env"
	c.errPrefix = "Shopify error"
	if domain := normalizeDomain(cfg.Domain); domain != "" {
		c.endpoint = domain + "/api/" + cfg.StorefrontAPIVer + "/graphql.json"
	}
	return c
}

// NewAdminClient talks to the privileged admin API used for orders.
func NewAdminClient(cfg config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	c := newClient(apiAdmin, cfg, httpClient, logger)
	c.tokenHeader = "X-Shopify-Access-Token"
	c.token = cfg.AdminToken
	c.missingMsg = "Admin env missing. Set SHOPIFY_DOMAIN and SHOPIFY_ADMIN_TOKEN in .env"
	c.errPrefix = "Shopify Admin error"
	if domain := normalizeDomain(cfg.Domain); domain != "" {
		c.endpoint = domain + "/admin/api/" + cfg.AdminAPIVer + "/graphql.json"
	}
	return c
}

func newClient(api apiKind, cfg config.ShopifyConfig, httpClient *http.Client, logger logging.LoggerService) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 8 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Client{
		api:        api,
		httpClient: httpClient,
		logger:     logger.With(zap.String("shopify_api", string(api))),
		tracer:     otel.Tracer(tracerName),
	}
}

func normalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	return strings.TrimRight(domain, "/")
}

// Do posts {query, variables} and decodes the response data into out.
func (c *Client) Do(ctx context.Context, query string, variables map[string]any, out any) error {
	op := "shopify." + string(c.api)
	if c.endpoint == "" || c.token == "" {
		return apperr.Configuration(op, c.missingMsg)
	}
	if variables == nil {
		variables = map[string]any{}
	}

	ctx, span := c.tracer.Start(ctx, "shopify.graphql", trace.WithAttributes(
		attribute.String("shopify.api", string(c.api)),
	))
	defer span.End()

	bodyBytes, err := json.Marshal(dto.GraphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", op, err)
	}

	status, raw, err := c.shopifyAPIRequest(ctx, bodyBytes)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport")
		return apperr.Transport(op, err)
	}
	span.SetAttributes(attribute.Int("http.status_code", status))

	var resp dto.GraphQLResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		// An unreadable body counts as {}.
		resp = dto.GraphQLResponse{}
		raw = []byte("{}")
	}

	if status < 200 || status >= 300 || resp.HasErrors() {
		payload := raw
		if resp.HasErrors() {
			payload = resp.Errors
		}
		msg := fmt.Sprintf("%s: %s", c.errPrefix, indentJSON(payload))
		c.logger.LogWarning("shopify graphql failed",
			zap.Int("status", status),
			zap.String("errors", summarizeErrors(resp.Errors)),
		)
		span.SetStatus(codes.Error, "graphql error")
		return apperr.API(op, msg)
	}

	if out == nil || !resp.HasData() {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return apperr.API(op, fmt.Sprintf("%s: decode data: %v", c.errPrefix, err))
	}
	return nil
}

func (c *Client) shopifyAPIRequest(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return strings.TrimSpace(string(raw))
	}
	return buf.String()
}

// summarizeErrors flattens a GraphQL errors array for log lines.
func summarizeErrors(raw json.RawMessage) string {
	var errs []dto.GraphQLError
	if err := json.Unmarshal(raw, &errs); err != nil || len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Path) > 0 {
			msg = fmt.Sprintf("%s (path: %v)", msg, e.Path)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "unknown graphql error"
	}
	return strings.Join(parts, "; ")
}

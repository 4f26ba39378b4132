package usecases

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wassup1201/Simple-Agent/internal/adapters/openai"
	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify"
	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
	"github.com/wassup1201/Simple-Agent/internal/logging"
)

const (
	unparsedReply   = "Sorry, I couldn’t parse a reply."
	noTrackingReply = "No tracking yet."
	maxReplyItems   = 4
)

// Routes recorded with each transcript.
const (
	RouteEcho          = "echo"
	RouteOrderFound    = "order_found"
	RouteOrderNotFound = "order_not_found"
	RouteAskMissing    = "ask_missing"
	RouteCompletion    = "completion"
)

type ChatRequest struct {
	Message string
	Mode    string
	Product model.ProductOverrides
}

type ChatService interface {
	Reply(ctx context.Context, req ChatRequest) (model.ChatReply, error)
}

type Chat struct {
	orders     shopify.OrderService
	adminReady bool
	completer  openai.Completer
	recorder   TranscriptRecorder
	logger     logging.LoggerService
}

// NewChat wires the router. orders is only consulted when adminReady is
// true; recorder may be nil.
func NewChat(orders shopify.OrderService, adminReady bool, completer openai.Completer, recorder TranscriptRecorder, logger logging.LoggerService) ChatService {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Chat{
		orders:     orders,
		adminReady: adminReady,
		completer:  completer,
		recorder:   recorder,
		logger:     logger,
	}
}

func (c *Chat) Reply(ctx context.Context, req ChatRequest) (model.ChatReply, error) {
	msg := strings.TrimSpace(req.Message)
	preset := ParsePreset(req.Mode)

	reply, route, err := c.route(ctx, msg, preset, req.Product)
	if err != nil {
		return model.ChatReply{}, err
	}

	c.record(ctx, preset, route, msg, reply)
	return reply, nil
}

func (c *Chat) route(ctx context.Context, msg string, preset Preset, product model.ProductOverrides) (model.ChatReply, string, error) {
	if payload, ok := echoPayload(msg); ok {
		return model.ChatReply{Reply: "Echo ✅ " + payload}, RouteEcho, nil
	}

	intent := DetectIntent(msg)

	if intent.HasBoth() && c.adminReady && c.orders != nil {
		result, err := c.orders.FindOrder(ctx, intent.OrderNumber, intent.Email)
		if err == nil {
			if result.Found {
				return orderReply(result.Order), RouteOrderFound, nil
			}
			return model.ChatReply{Reply: fmt.Sprintf(
				"I couldn’t find order #%s for %s. Double-check the order number and the exact email on the order.",
				intent.OrderNumber, intent.Email,
			)}, RouteOrderNotFound, nil
		}
		// Lookup trouble degrades to a normal assistant reply.
		c.logger.LogError("Lookup failed", err, zap.String("order_number", intent.OrderNumber))
	}

	if intent.HasOne() {
		missing := "the order number"
		if intent.Email == "" {
			missing = "the email used on the order"
		}
		return model.ChatReply{Reply: fmt.Sprintf("Got it. Please provide %s so I can look it up.", missing)}, RouteAskMissing, nil
	}

	if c.completer == nil || !c.completer.Configured() {
		return model.ChatReply{}, "", apperr.Configuration("chat", "OPENAI_API_KEY missing in environment")
	}

	result, err := c.completer.Complete(ctx, Compose(preset, msg, product))
	if err != nil {
		return model.ChatReply{}, "", err
	}
	if !result.Parsed {
		return model.ChatReply{Reply: unparsedReply}, RouteCompletion, nil
	}
	return model.ChatReply{Reply: result.Text}, RouteCompletion, nil
}

func orderReply(o model.Order) model.ChatReply {
	reply := fmt.Sprintf("Order %s — %s. %s", o.Name, o.FulfillmentStatus, trackingText(o.Tracking))
	if items := summarizeItems(o.LineItems); items != "" {
		reply += fmt.Sprintf(" Items: %s.", items)
	}
	return model.ChatReply{
		Reply: reply,
		Order: &model.ChatOrder{
			Name:     o.Name,
			Email:    o.Email,
			Status:   o.FulfillmentStatus,
			Tracking: o.Tracking,
		},
	}
}

func trackingText(tracking []model.Tracking) string {
	if len(tracking) == 0 {
		return noTrackingReply
	}
	t := tracking[0]
	if t.URL != nil && *t.URL != "" {
		return "Tracking: " + *t.URL
	}
	parts := make([]string, 0, 2)
	for _, p := range []*string{t.Company, t.Number} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	return "Tracking: " + strings.Join(parts, " ")
}

func summarizeItems(items []model.LineItem) string {
	if len(items) > maxReplyItems {
		items = items[:maxReplyItems]
	}
	parts := make([]string, 0, len(items))
	for _, li := range items {
		parts = append(parts, fmt.Sprintf("%d× %s", li.Qty, li.Title))
	}
	return strings.Join(parts, ", ")
}

func (c *Chat) record(ctx context.Context, preset Preset, route, msg string, reply model.ChatReply) {
	entry := model.Transcript{
		Mode:    preset.String(),
		Route:   route,
		Message: msg,
		Reply:   reply.Reply,
	}
	if reply.Order != nil {
		entry.OrderName = reply.Order.Name
	}
	if err := c.recorder.Record(ctx, entry); err != nil {
		c.logger.LogWarning("transcript record failed", zap.String("route", route), zap.Error(err))
	}
}

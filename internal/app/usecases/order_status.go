package usecases

import (
	"context"
	"strings"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify"
	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

const OrderNotFoundNote = "No matching order. Check the order number and the exact email on the order."

type OrderStatusService interface {
	Lookup(ctx context.Context, orderNumber, email string) (model.OrderLookup, error)
}

type OrderStatus struct {
	orders shopify.OrderService
}

func NewOrderStatus(orders shopify.OrderService) OrderStatusService {
	return &OrderStatus{orders: orders}
}

func (s *OrderStatus) Lookup(ctx context.Context, orderNumber, email string) (model.OrderLookup, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	email = strings.ToLower(strings.TrimSpace(email))
	if orderNumber == "" || email == "" {
		return model.OrderLookup{}, apperr.Input("order-status", "Provide 'order_number' and 'email' in the body.")
	}
	return s.orders.FindOrder(ctx, orderNumber, email)
}

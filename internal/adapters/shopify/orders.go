package shopify

import (
	"context"
	"fmt"
	"strings"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify/dto"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

type OrderService interface {
	FindOrder(ctx context.Context, orderNumber, email string) (model.OrderLookup, error)
}

type Orders struct {
	gql GraphQLClient
}

func NewOrders(gql GraphQLClient) OrderService {
	return &Orders{gql: gql}
}

// NormalizeOrderNumber drops a leading "#" so "#1234" and "1234" match the same order.
func NormalizeOrderNumber(orderNumber string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(orderNumber), "#"))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// OrderSearchQuery builds the admin search string for a name+email match.
func OrderSearchQuery(orderNumber, email string) string {
	return fmt.Sprintf("name:%s AND email:%s", NormalizeOrderNumber(orderNumber), NormalizeEmail(email))
}

const findOrderQuery = `
query FindOrder($first:Int!, $q:String!) {
	orders(first: $first, query: $q, reverse: true) {
		nodes {
			id
			name
			email
			displayFinancialStatus
			displayFulfillmentStatus
			lineItems(first: 25) { nodes { name quantity } }
			fulfillments(first: 5) {
				status
				trackingInfo { number url company }
				trackingCompany
				trackingNumbers
				trackingUrls
			}
		}
	}
}`

// FindOrder returns the newest order matching both the order name and email.
func (o *Orders) FindOrder(ctx context.Context, orderNumber, email string) (model.OrderLookup, error) {
	var data dto.OrdersData
	err := o.gql.Do(ctx, findOrderQuery, map[string]any{
		"first": 1,
		"q":     OrderSearchQuery(orderNumber, email),
	}, &data)
	if err != nil {
		return model.OrderLookup{}, err
	}

	nodes := data.Orders.Items()
	if len(nodes) == 0 {
		return model.OrderLookup{Found: false}, nil
	}
	return model.OrderLookup{Found: true, Order: mapOrder(nodes[0])}, nil
}

func mapOrder(o dto.AdminOrder) model.Order {
	lineItems := make([]model.LineItem, 0, len(o.LineItems.Items()))
	for _, li := range o.LineItems.Items() {
		lineItems = append(lineItems, model.LineItem{Title: li.Name, Qty: li.Quantity})
	}

	order := model.Order{
		Found:             true,
		Name:              o.Name,
		FinancialStatus:   o.DisplayFinancialStatus,
		FulfillmentStatus: o.DisplayFulfillmentStatus,
		LineItems:         lineItems,
		Tracking:          FlattenTracking(o.Fulfillments),
	}
	if o.Email != nil {
		order.Email = *o.Email
	}
	return order
}

// FlattenTracking walks fulfillments in order. Structured entries fall back
// per field to the fulfillment's scalar values; a fulfillment without any
// structured entry yields one entry built from the scalars alone.
func FlattenTracking(fulfillments []dto.AdminFulfillment) []model.Tracking {
	tracking := make([]model.Tracking, 0, len(fulfillments))
	for _, f := range fulfillments {
		company := f.TrackingCompany
		number := firstOf(f.TrackingNumbers)
		url := firstOf(f.TrackingUrls)

		if len(f.TrackingInfo) == 0 {
			tracking = append(tracking, model.Tracking{
				Company: nonEmpty(company),
				Number:  number,
				URL:     url,
			})
			continue
		}
		for _, t := range f.TrackingInfo {
			tracking = append(tracking, model.Tracking{
				Company: coalesce(t.Company, company),
				Number:  coalesce(t.Number, number),
				URL:     coalesce(t.URL, url),
			})
		}
	}
	return tracking
}

func firstOf(values []string) *string {
	if len(values) == 0 {
		return nil
	}
	return nonEmpty(&values[0])
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func coalesce(values ...*string) *string {
	for _, v := range values {
		if s := nonEmpty(v); s != nil {
			return s
		}
	}
	return nil
}

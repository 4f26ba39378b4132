package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
)

func TestOrderStatusValidatesInput(t *testing.T) {
	orders := &fakeOrders{}
	svc := NewOrderStatus(orders)

	for _, tc := range [][2]string{{"", "a@b.com"}, {"1234", "  "}, {"", ""}} {
		_, err := svc.Lookup(context.Background(), tc[0], tc[1])
		assert.Equal(t, apperr.KindClientInput, apperr.KindOf(err))
		assert.Equal(t, "Provide 'order_number' and 'email' in the body.", err.Error())
	}
	assert.Zero(t, orders.calls)
}

func TestOrderStatusDelegates(t *testing.T) {
	orders := &fakeOrders{result: foundOrder()}
	res, err := NewOrderStatus(orders).Lookup(context.Background(), " #4521 ", " FOO@bar.com ")
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "#4521", orders.orderNumber)
	assert.Equal(t, "foo@bar.com", orders.email)
}

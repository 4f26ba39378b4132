package rest

import (
	"context"

	"github.com/wassup1201/Simple-Agent/internal/app/usecases"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

type fakeCatalog struct {
	calls   int
	limit   int
	handle  string
	query   string
	items   []model.CatalogItem
	product *model.ProductDetail
	search  []model.SearchItem
	err     error
}

func (f *fakeCatalog) ListProducts(_ context.Context, limit int) ([]model.CatalogItem, error) {
	f.calls++
	f.limit = limit
	return f.items, f.err
}

func (f *fakeCatalog) ProductByHandle(_ context.Context, handle string) (*model.ProductDetail, error) {
	f.calls++
	f.handle = handle
	return f.product, f.err
}

func (f *fakeCatalog) SearchProducts(_ context.Context, query string) ([]model.SearchItem, error) {
	f.calls++
	f.query = query
	return f.search, f.err
}

type fakeOrders struct {
	calls       int
	orderNumber string
	email       string
	result      model.OrderLookup
	err         error
}

func (f *fakeOrders) FindOrder(_ context.Context, orderNumber, email string) (model.OrderLookup, error) {
	f.calls++
	f.orderNumber = orderNumber
	f.email = email
	return f.result, f.err
}

type fakeChat struct {
	calls int
	req   usecases.ChatRequest
	reply model.ChatReply
	err   error
	panic bool
}

func (f *fakeChat) Reply(_ context.Context, req usecases.ChatRequest) (model.ChatReply, error) {
	f.calls++
	f.req = req
	if f.panic {
		panic("boom")
	}
	return f.reply, f.err
}

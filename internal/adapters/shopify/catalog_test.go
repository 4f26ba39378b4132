package shopify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
)

const listFixture = `{
	"products": {
		"edges": [
			{"node": {
				"id": "gid://shopify/Product/1",
				"title": "Portable Inkless A4 C80 Printer",
				"handle": "c80-printer",
				"onlineStoreUrl": "https://shop.example/products/c80-printer",
				"images": {"edges": [{"node": {"url": "https://cdn.example/c80.jpg", "altText": null}}]},
				"priceRange": {
					"minVariantPrice": {"amount": "89.0", "currencyCode": "USD"},
					"maxVariantPrice": {"amount": "99.0", "currencyCode": "USD"}
				},
				"variants": {"nodes": [{
					"id": "gid://shopify/ProductVariant/11",
					"title": "Default",
					"availableForSale": true,
					"price": {"amount": "94.0", "currencyCode": "USD"},
					"compareAtPrice": {"amount": "120.0", "currencyCode": "USD"}
				}]}
			}},
			{"node": {
				"id": "gid://shopify/Product/2",
				"title": "A4 Thermal Paper",
				"handle": "a4-paper",
				"onlineStoreUrl": null,
				"images": {"edges": []},
				"priceRange": {
					"minVariantPrice": {"amount": "19.0", "currencyCode": "USD"},
					"maxVariantPrice": {"amount": "19.0", "currencyCode": "USD"}
				},
				"variants": {"nodes": []}
			}}
		]
	}
}`

func TestListProductsMapping(t *testing.T) {
	gql := &fakeGraphQL{response: listFixture}
	items, err := NewCatalog(gql).ListProducts(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "c80-printer", first.Handle)
	require.NotNil(t, first.URL)
	assert.Equal(t, "https://shop.example/products/c80-printer", *first.URL)
	require.NotNil(t, first.Image)
	assert.Equal(t, "https://cdn.example/c80.jpg", *first.Image)
	require.NotNil(t, first.Price)
	assert.Equal(t, "94.0 USD", *first.Price)
	require.NotNil(t, first.CompareAt)
	assert.Equal(t, "120.0 USD", *first.CompareAt)
	require.NotNil(t, first.PriceRange)

	second := items[1]
	assert.Nil(t, second.URL)
	assert.Nil(t, second.Image)
	assert.Nil(t, second.CompareAt)
	require.NotNil(t, second.Price)
	assert.Equal(t, "19.0 USD", *second.Price, "falls back to the price range minimum")
}

func TestListProductsClampsLimit(t *testing.T) {
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 25: 25, 50: 50, 51: 50, 1000: 50}
	for requested, want := range cases {
		gql := &fakeGraphQL{response: `{"products":{"edges":[]}}`}
		_, err := NewCatalog(gql).ListProducts(context.Background(), requested)
		require.NoError(t, err)
		assert.Equal(t, want, gql.variables["n"], "limit %d", requested)
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ParseLimit(""))
	assert.Equal(t, DefaultListLimit, ParseLimit("abc"))
	assert.Equal(t, 1, ParseLimit("0"))
	assert.Equal(t, 1, ParseLimit("-3"))
	assert.Equal(t, 7, ParseLimit(" 7 "))
	assert.Equal(t, MaxListLimit, ParseLimit("500"))
}

func TestProductByHandle(t *testing.T) {
	gql := &fakeGraphQL{response: `{"product": {
		"id": "gid://shopify/Product/1",
		"title": "Printer",
		"handle": "printer",
		"description": "Inkless thermal printing.",
		"onlineStoreUrl": "https://shop.example/products/printer",
		"images": {"edges": [
			{"node": {"url": "https://cdn.example/1.jpg", "altText": "front"}},
			{"node": {"url": "https://cdn.example/2.jpg", "altText": null}}
		]},
		"priceRange": {
			"minVariantPrice": {"amount": "80.0", "currencyCode": "EUR"},
			"maxVariantPrice": {"amount": "90.0", "currencyCode": "EUR"}
		},
		"variants": {"nodes": [
			{"id": "v1", "title": "White", "availableForSale": true, "price": {"amount": "85.0", "currencyCode": "EUR"}, "compareAtPrice": null},
			{"id": "v2", "title": "Black", "availableForSale": false, "price": {"amount": "90.0", "currencyCode": "EUR"}, "compareAtPrice": {"amount": "99.0", "currencyCode": "EUR"}}
		]}
	}}`}

	p, err := NewCatalog(gql).ProductByHandle(context.Background(), "  printer ")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "printer", gql.variables["h"])
	assert.Equal(t, "Inkless thermal printing.", p.Description)
	assert.Len(t, p.Images, 2)
	require.NotNil(t, p.Image)
	assert.Equal(t, "https://cdn.example/1.jpg", *p.Image)
	require.Len(t, p.Variants, 2)
	assert.False(t, p.Variants[1].AvailableForSale)
	require.NotNil(t, p.Variants[1].CompareAt)
	assert.Equal(t, "99.0 EUR", *p.Variants[1].CompareAt)
	require.NotNil(t, p.Price)
	assert.Equal(t, "85.0 EUR", *p.Price)
	assert.Nil(t, p.CompareAt)
}

func TestProductByHandleNotFound(t *testing.T) {
	gql := &fakeGraphQL{response: `{"product": null}`}
	p, err := NewCatalog(gql).ProductByHandle(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProductByHandleRejectsEmpty(t *testing.T) {
	gql := &fakeGraphQL{}
	_, err := NewCatalog(gql).ProductByHandle(context.Background(), "   ")
	assert.Equal(t, apperr.KindClientInput, apperr.KindOf(err))
	assert.Zero(t, gql.calls)
}

func TestSearchProducts(t *testing.T) {
	gql := &fakeGraphQL{response: listFixture}
	items, err := NewCatalog(gql).SearchProducts(context.Background(), "  printer ")
	require.NoError(t, err)

	assert.Equal(t, "printer", gql.variables["q"])
	require.Len(t, items, 2)
	require.NotNil(t, items[0].PriceFrom)
	assert.Equal(t, "89.0", items[0].PriceFrom.Amount)
	require.NotNil(t, items[0].PriceTo)
	assert.Equal(t, "99.0", items[0].PriceTo.Amount)
}

func TestSearchProductsRejectsEmpty(t *testing.T) {
	gql := &fakeGraphQL{}
	_, err := NewCatalog(gql).SearchProducts(context.Background(), " \t ")
	assert.Equal(t, apperr.KindClientInput, apperr.KindOf(err))
	assert.Equal(t, "Missing query (?query= or ?q=)", err.Error())
	assert.Zero(t, gql.calls)
}

func TestCatalogPropagatesUpstreamErrors(t *testing.T) {
	upstream := apperr.API("shopify.storefront", "Shopify error: {}")
	gql := &fakeGraphQL{err: upstream}

	_, err := NewCatalog(gql).ListProducts(context.Background(), 10)
	assert.True(t, errors.Is(err, upstream))
}

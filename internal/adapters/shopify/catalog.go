package shopify

import (
	"context"
	"strconv"
	"strings"

	"github.com/wassup1201/Simple-Agent/internal/adapters/shopify/dto"
	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
	"github.com/wassup1201/Simple-Agent/internal/domain/model"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 50
	searchPageSize   = 10
)

type CatalogService interface {
	ListProducts(ctx context.Context, limit int) ([]model.CatalogItem, error)
	ProductByHandle(ctx context.Context, handle string) (*model.ProductDetail, error)
	SearchProducts(ctx context.Context, query string) ([]model.SearchItem, error)
}

type Catalog struct {
	gql GraphQLClient
}

func NewCatalog(gql GraphQLClient) CatalogService {
	return &Catalog{gql: gql}
}

// ClampLimit keeps a page size inside [1, MaxListLimit].
func ClampLimit(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxListLimit {
		return MaxListLimit
	}
	return n
}

// ParseLimit reads a ?limit= value. Empty or non-numeric input gets the default.
func ParseLimit(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultListLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return DefaultListLimit
	}
	return ClampLimit(n)
}

const listProductsQuery = `
query ListProducts($n:Int!) {
	products(first: $n, sortKey: CREATED_AT, reverse: true) {
		edges {
			node {
				id
				title
				handle
				onlineStoreUrl
				images(first: 1) { edges { node { url altText } } }
				priceRange {
					minVariantPrice { amount currencyCode }
					maxVariantPrice { amount currencyCode }
				}
				variants(first: 1) {
					nodes {
						id
						title
						availableForSale
						price { amount currencyCode }
						compareAtPrice { amount currencyCode }
					}
				}
			}
		}
	}
}`

func (c *Catalog) ListProducts(ctx context.Context, limit int) ([]model.CatalogItem, error) {
	var data dto.ProductsData
	if err := c.gql.Do(ctx, listProductsQuery, map[string]any{"n": ClampLimit(limit)}, &data); err != nil {
		return nil, err
	}

	products := data.Products.Items()
	items := make([]model.CatalogItem, 0, len(products))
	for _, p := range products {
		items = append(items, mapCatalogItem(p))
	}
	return items, nil
}

const productByHandleQuery = `
query ProductByHandle($h:String!) {
	product(handle:$h) {
		id title handle description onlineStoreUrl
		images(first: 5) { edges { node { url altText } } }
		priceRange {
			minVariantPrice { amount currencyCode }
			maxVariantPrice { amount currencyCode }
		}
		variants(first: 20) {
			nodes {
				id title availableForSale
				price { amount currencyCode }
				compareAtPrice { amount currencyCode }
			}
		}
	}
}`

// ProductByHandle returns (nil, nil) when the store has no such product.
func (c *Catalog) ProductByHandle(ctx context.Context, handle string) (*model.ProductDetail, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, apperr.Input("shopify.product", "Missing handle")
	}

	var data dto.ProductByHandleData
	if err := c.gql.Do(ctx, productByHandleQuery, map[string]any{"h": handle}, &data); err != nil {
		return nil, err
	}
	if data.Product == nil {
		return nil, nil
	}
	detail := mapProductDetail(*data.Product)
	return &detail, nil
}

const searchProductsQuery = `
query SearchProducts($q:String!) {
	products(first: 10, query: $q) {
		edges {
			node {
				id title handle onlineStoreUrl
				images(first: 1) { edges { node { url altText } } }
				priceRange {
					minVariantPrice { amount currencyCode }
					maxVariantPrice { amount currencyCode }
				}
			}
		}
	}
}`

func (c *Catalog) SearchProducts(ctx context.Context, query string) ([]model.SearchItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperr.Input("shopify.search", "Missing query (?query= or ?q=)")
	}

	var data dto.ProductsData
	if err := c.gql.Do(ctx, searchProductsQuery, map[string]any{"q": query}, &data); err != nil {
		return nil, err
	}

	products := data.Products.Items()
	items := make([]model.SearchItem, 0, min(len(products), searchPageSize))
	for _, p := range products {
		item := model.SearchItem{
			ID:     p.ID,
			Title:  p.Title,
			Handle: p.Handle,
			URL:    p.OnlineStoreURL,
			Image:  firstImageURL(p.Images),
		}
		if p.PriceRange != nil {
			item.PriceFrom = mapMoney(p.PriceRange.MinVariantPrice)
			item.PriceTo = mapMoney(p.PriceRange.MaxVariantPrice)
		}
		items = append(items, item)
	}
	return items, nil
}

func mapCatalogItem(p dto.StorefrontProduct) model.CatalogItem {
	priceRange := mapPriceRange(p.PriceRange)
	item := model.CatalogItem{
		ID:         p.ID,
		Title:      p.Title,
		Handle:     p.Handle,
		URL:        p.OnlineStoreURL,
		Image:      firstImageURL(p.Images),
		PriceRange: priceRange,
	}

	variants := p.Variants.Items()
	var priceMoney *model.Money
	if len(variants) > 0 {
		v0 := variants[0]
		priceMoney = mapMoney(v0.Price)
		item.CompareAt = mapMoney(v0.CompareAtPrice).Format()
	}
	if priceMoney == nil && priceRange != nil {
		priceMoney = priceRange.MinVariantPrice
	}
	item.Price = priceMoney.Format()
	return item
}

func mapProductDetail(p dto.StorefrontProduct) model.ProductDetail {
	images := make([]model.Image, 0, len(p.Images.Items()))
	for _, img := range p.Images.Items() {
		images = append(images, model.Image{URL: img.URL, AltText: img.AltText})
	}

	variants := make([]model.Variant, 0, len(p.Variants.Items()))
	for _, v := range p.Variants.Items() {
		variants = append(variants, model.Variant{
			ID:               v.ID,
			Title:            v.Title,
			AvailableForSale: v.AvailableForSale,
			Price:            mapMoney(v.Price).Format(),
			CompareAt:        mapMoney(v.CompareAtPrice).Format(),
		})
	}

	priceRange := mapPriceRange(p.PriceRange)
	detail := model.ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Handle:      p.Handle,
		Description: p.Description,
		URL:         p.OnlineStoreURL,
		Images:      images,
		PriceRange:  priceRange,
		Variants:    variants,
	}
	if len(images) > 0 && images[0].URL != "" {
		url := images[0].URL
		detail.Image = &url
	}
	if len(variants) > 0 {
		detail.Price = variants[0].Price
		detail.CompareAt = variants[0].CompareAt
	}
	if detail.Price == nil && priceRange != nil {
		detail.Price = priceRange.MinVariantPrice.Format()
	}
	return detail
}

func firstImageURL(images dto.Connection[dto.Image]) *string {
	items := images.Items()
	if len(items) == 0 || items[0].URL == "" {
		return nil
	}
	url := items[0].URL
	return &url
}

func mapMoney(m *dto.Money) *model.Money {
	if m == nil {
		return nil
	}
	return &model.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}

func mapPriceRange(pr *dto.PriceRange) *model.PriceRange {
	if pr == nil {
		return nil
	}
	return &model.PriceRange{
		MinVariantPrice: mapMoney(pr.MinVariantPrice),
		MaxVariantPrice: mapMoney(pr.MaxVariantPrice),
	}
}

package model

import "fmt"

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Format renders "amount currency", or nil for a missing price.
func (m *Money) Format() *string {
	if m == nil {
		return nil
	}
	s := fmt.Sprintf("%s %s", m.Amount, m.CurrencyCode)
	return &s
}

type PriceRange struct {
	MinVariantPrice *Money `json:"minVariantPrice"`
	MaxVariantPrice *Money `json:"maxVariantPrice"`
}

type Image struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type CatalogItem struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Handle     string      `json:"handle"`
	URL        *string     `json:"url"`
	Image      *string     `json:"image"`
	Price      *string     `json:"price"`
	CompareAt  *string     `json:"compareAt"`
	PriceRange *PriceRange `json:"priceRange"`
}

// SearchItem is the slimmer search result shape: price bounds instead of a
// formatted price.
type SearchItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Handle    string  `json:"handle"`
	URL       *string `json:"url"`
	Image     *string `json:"image"`
	PriceFrom *Money  `json:"priceFrom"`
	PriceTo   *Money  `json:"priceTo"`
}

type Variant struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	AvailableForSale bool    `json:"availableForSale"`
	Price            *string `json:"price"`
	CompareAt        *string `json:"compareAt"`
}

type ProductDetail struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Handle      string      `json:"handle"`
	Description string      `json:"description"`
	URL         *string     `json:"url"`
	Images      []Image     `json:"images"`
	Image       *string     `json:"image"`
	Price       *string     `json:"price"`
	CompareAt   *string     `json:"compareAt"`
	PriceRange  *PriceRange `json:"priceRange"`
	Variants    []Variant   `json:"variants"`
}

package dto

type Connection[T any] struct {
	Edges []Edge[T] `json:"edges,omitempty"`
	Nodes []T       `json:"nodes,omitempty"`
}

type Edge[T any] struct {
	Node T `json:"node"`
}

// Items returns nodes when the query asked for them, otherwise the edge nodes.
func (c Connection[T]) Items() []T {
	if len(c.Nodes) > 0 {
		return c.Nodes
	}
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type PriceRange struct {
	MinVariantPrice *Money `json:"minVariantPrice"`
	MaxVariantPrice *Money `json:"maxVariantPrice"`
}

type Image struct {
	URL     string  `json:"url"`
	AltText *string `json:"altText"`
}

type StorefrontProduct struct {
	ID             string                        `json:"id"`
	Title          string                        `json:"title"`
	Handle         string                        `json:"handle"`
	Description    string                        `json:"description,omitempty"`
	OnlineStoreURL *string                       `json:"onlineStoreUrl"`
	Images         Connection[Image]             `json:"images"`
	PriceRange     *PriceRange                   `json:"priceRange"`
	Variants       Connection[StorefrontVariant] `json:"variants"`
}

type StorefrontVariant struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	AvailableForSale bool   `json:"availableForSale"`
	Price            *Money `json:"price"`
	CompareAtPrice   *Money `json:"compareAtPrice"`
}

type ProductsData struct {
	Products Connection[StorefrontProduct] `json:"products"`
}

type ProductByHandleData struct {
	Product *StorefrontProduct `json:"product"`
}

package model

type LineItem struct {
	Title string `json:"title"`
	Qty   int    `json:"qty"`
}

type Tracking struct {
	Company *string `json:"company"`
	Number  *string `json:"number"`
	URL     *string `json:"url"`
}

type Order struct {
	Found             bool       `json:"found"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	FinancialStatus   string     `json:"financial_status"`
	FulfillmentStatus string     `json:"fulfillment_status"`
	LineItems         []LineItem `json:"line_items"`
	Tracking          []Tracking `json:"tracking"`
}

// OrderLookup is the outcome of a name+email search. Found=false is a
// valid answer, not an error.
type OrderLookup struct {
	Found bool
	Order Order
}

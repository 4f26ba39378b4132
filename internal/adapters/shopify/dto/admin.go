package dto

type AdminOrder struct {
	ID                       string                    `json:"id"`
	Name                     string                    `json:"name"`
	Email                    *string                   `json:"email"`
	DisplayFinancialStatus   string                    `json:"displayFinancialStatus"`
	DisplayFulfillmentStatus string                    `json:"displayFulfillmentStatus"`
	LineItems                Connection[AdminLineItem] `json:"lineItems"`
	Fulfillments             []AdminFulfillment        `json:"fulfillments"`
}

type AdminLineItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type AdminFulfillment struct {
	Status          string              `json:"status"`
	TrackingInfo    []AdminTrackingInfo `json:"trackingInfo"`
	TrackingCompany *string             `json:"trackingCompany"`
	TrackingNumbers []string            `json:"trackingNumbers"`
	TrackingUrls    []string            `json:"trackingUrls"`
}

type AdminTrackingInfo struct {
	Number  *string `json:"number"`
	URL     *string `json:"url"`
	Company *string `json:"company"`
}

type OrdersData struct {
	Orders Connection[AdminOrder] `json:"orders"`
}

package http

import "time"

// ErrorResponse is the common error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest carries the raw attribute values of one ingested order.
// Every field is optional; missing critical fields are recorded on the order
// and reported by GET /api/v1/orders/incomplete.
type CreateOrderRequest struct {
	Driver             string     `json:"driver"`
	Pickup             string     `json:"pickup"`
	Dropoff            string     `json:"dropoff"`
	TripNumber         string     `json:"tripNumber"`
	ExReadyTime        *time.Time `json:"exReadyTime,omitempty"`
	ExDeliveryTime     *time.Time `json:"exDeliveryTime,omitempty"`
	ActualPickupTime   *time.Time `json:"actualPickupTime,omitempty"`
	ActualDeliveryTime *time.Time `json:"actualDeliveryTime,omitempty"`
	EstimatedDistance  *float64   `json:"estimatedDistance,omitempty"`
	Distance           *float64   `json:"distance,omitempty"`
	Date               *time.Time `json:"date,omitempty"`
}

// CreateOrderResponse returns the identifier assigned to the ingested order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// IncompleteOrderResponse lists one order still missing critical fields.
type IncompleteOrderResponse struct {
	ID            string   `json:"id"`
	Driver        string   `json:"driver"`
	TripNumber    string   `json:"tripNumber"`
	MissingFields []string `json:"missingFields"`
}

// RemovedOrdersResponse reports how many orders a cleanup pass dropped.
type RemovedOrdersResponse struct {
	Removed int `json:"removed"`
}

// CorrectOrderRequest carries field corrections for one order. Only the
// fields present in the body are applied.
type CorrectOrderRequest struct {
	Driver     *string  `json:"driver,omitempty"`
	TripNumber *string  `json:"tripNumber,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
}

// GenerateInvoiceRequest carries the header metadata stamped onto the
// generated invoice. Every field is optional.
type GenerateInvoiceRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	WeekEnding    *time.Time `json:"weekEnding,omitempty"`
	BusinessName  string     `json:"businessName"`
	BusinessType  string     `json:"businessType"`
	ContactPerson string     `json:"contactPerson"`
}

// GenerateInvoiceResponse summarizes the generated draft. The full invoice is
// served by GET /api/v1/invoice.
type GenerateInvoiceResponse struct {
	Status           string          `json:"status"`
	Items            int             `json:"items"`
	TotalDistance    float64         `json:"totalDistance"`
	TotalCost        float64         `json:"totalCost"`
	ResolutionIssues []IssueResponse `json:"resolutionIssues"`
}

// UpdateInvoiceDetailsRequest replaces the invoice header metadata.
type UpdateInvoiceDetailsRequest struct {
	Date          *time.Time `json:"date,omitempty"`
	WeekEnding    *time.Time `json:"weekEnding,omitempty"`
	BusinessName  string     `json:"businessName"`
	BusinessType  string     `json:"businessType"`
	ContactPerson string     `json:"contactPerson"`
}

// RecalculateItemRequest carries the corrected distance for one invoice line.
type RecalculateItemRequest struct {
	Miles float64 `json:"miles"`
}

// InvoiceResponse is the full session invoice. Monetary amounts are rounded
// to cents.
type InvoiceResponse struct {
	Status            string                `json:"status"`
	Date              time.Time             `json:"date"`
	WeekEnding        time.Time             `json:"weekEnding"`
	BusinessName      string                `json:"businessName"`
	BusinessType      string                `json:"businessType"`
	ContactPerson     string                `json:"contactPerson"`
	TotalDistance     float64               `json:"totalDistance"`
	TotalCost         float64               `json:"totalCost"`
	RecalculatedCount int                   `json:"recalculatedCount"`
	LastModified      time.Time             `json:"lastModified"`
	Items             []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse is one billable invoice line.
type InvoiceItemResponse struct {
	OrderID          string   `json:"orderId"`
	Driver           string   `json:"driver"`
	Pickup           string   `json:"pickup"`
	Dropoff          string   `json:"dropoff"`
	Distance         float64  `json:"distance"`
	OriginalDistance *float64 `json:"originalDistance,omitempty"`
	RouteType        string   `json:"routeType"`
	Stops            int      `json:"stops"`
	BaseCost         float64  `json:"baseCost"`
	AddOns           float64  `json:"addOns"`
	TotalCost        float64  `json:"totalCost"`
	Recalculated     bool     `json:"recalculated"`
}

// IssueResponse is one detected anomaly.
type IssueResponse struct {
	OrderID  string            `json:"orderId"`
	Driver   string            `json:"driver"`
	Severity string            `json:"severity"`
	Message  string            `json:"message"`
	Details  map[string]string `json:"details,omitempty"`
}

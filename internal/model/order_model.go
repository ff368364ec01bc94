package model

import "time"

// Order method codes as stored in the order_methods lookup table.
const (
	OrderMethodBuyNow = 1
	OrderMethodCart   = 2
)

// Order status ids as seeded by the migrations.
const (
	OrderStatusPlaced = 1
	OrderStatusPaid   = 2
)

// NewOrder is a fully validated order ready to be persisted. TotalAmount is
// always the server-computed sum of the item subtotals.
type NewOrder struct {
	CustomerID      int64
	AddressID       int64
	PaymentMethodID int64
	OrderMethodID   int
	TotalAmount     float64
	Items           []NewOrderItem
}

type NewOrderItem struct {
	ProductID int64
	Quantity  int
	Price     float64
	Subtotal  float64
}

// OrderSummary is one element of GET /orders: the order row with its lines
// and the shipping address flattened in.
type OrderSummary struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customer_id"`
	OrderStatus     string      `json:"order_status"`
	OrderMethod     string      `json:"order_method"`
	PaymentMethod   string      `json:"payment_method"`
	TotalAmount     float64     `json:"total_amount"`
	TrackingNumber  *string     `json:"tracking_number,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderLine `json:"items"`
	Address         Address     `json:"address"`
}

type OrderLine struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Subtotal        float64 `json:"subtotal"`
}

// PaymentMethod is a row in the payment_methods lookup table.
type PaymentMethod struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

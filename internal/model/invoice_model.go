package model

import "time"

// Invoice is the display-ready reconstruction of a committed order used by
// both the PDF renderer and the email body.
type Invoice struct {
	OrderID       int64
	CustomerID    int64
	OrderDate     time.Time
	OrderStatus   string
	OrderMethod   string
	PaymentMethod string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	Address Address

	Items       []OrderLine
	TotalAmount float64
}

// InvoiceTotals are the computed display totals: Subtotal is the stored
// order total, never recomputed from live catalog data.
type InvoiceTotals struct {
	Subtotal   float64
	Shipping   float64
	Tax        float64
	GrandTotal float64
}

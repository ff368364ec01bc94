package model

import "time"

type Address struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customer_id"`
	Label      *string    `json:"label,omitempty"`
	Street     string     `json:"street"`
	City       string     `json:"city"`
	State      string     `json:"state"`
	PostalCode string     `json:"postal_code"`
	Country    string     `json:"country"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
}

package model

import "time"

type Payment struct {
	ID          int64      `json:"id"`
	OrderID     int64      `json:"order_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	Provider    *string    `json:"provider,omitempty"`
	ProviderRef *string    `json:"provider_ref,omitempty"`
	Payload     []byte     `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

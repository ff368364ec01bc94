package model

import "time"

type WishlistItem struct {
	ID         int64      `json:"id"`
	CustomerID int64      `json:"customer_id"`
	ProductID  int64      `json:"product_id"`
	IsLiked    int        `json:"is_liked"`
	AddedAt    *time.Time `json:"added_at,omitempty"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

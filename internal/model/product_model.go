package model

import "time"

// Product is a row in the products table. AdditionalImages is stored as a
// JSON-encoded string array in a single text column.
type Product struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Description      *string    `json:"description,omitempty"`
	Price            float64    `json:"price"`
	StockQuantity    int        `json:"stock_quantity"`
	ThumbnailURL     *string    `json:"thumbnail_url,omitempty"`
	AdditionalImages []string   `json:"additional_images"`
	CategoryID       int64      `json:"category_id"`
	AdminID          int64      `json:"admin_id"`
	Quantity         float64    `json:"quantity"`
	UomID            int64      `json:"uom_id"`
	CategoryName     *string    `json:"category_name,omitempty"`
	UomName          *string    `json:"uom_name,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

// Uom is a row in the uom_master lookup table.
type Uom struct {
	ID      int64  `json:"id"`
	UomName string `json:"uom_name"`
}

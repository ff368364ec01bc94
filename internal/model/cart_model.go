package model

// CartItem is what GET /cart exposes: the cart row joined with the catalog.
type CartItem struct {
	ID          int64   `json:"id"`
	CustomerID  int64   `json:"customer_id"`
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
}

package repository

import (
	"context"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// AddOrIncrement upserts a cart line; a repeated add for the same product
// merges by summing the quantity instead of duplicating the row.
func (r *CartRepository) AddOrIncrement(ctx context.Context, customerID, productID int64, qty int) error {
	query := `
		INSERT INTO cart_items (customer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`
	_, err := r.DB.Exec(ctx, query, customerID, productID, qty)
	return err
}

// SetQuantity sets an absolute quantity for an existing cart line.
func (r *CartRepository) SetQuantity(ctx context.Context, customerID, productID int64, qty int) error {
	query := `UPDATE cart_items SET quantity=$1 WHERE customer_id=$2 AND product_id=$3`
	tag, err := r.DB.Exec(ctx, query, qty, customerID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// Remove deletes one cart line.
func (r *CartRepository) Remove(ctx context.Context, customerID, productID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM cart_items WHERE customer_id=$1 AND product_id=$2`, customerID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ListByCustomer returns the customer's cart joined with the catalog.
func (r *CartRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.CartItem, error) {
	query := `
		SELECT ci.id, ci.customer_id, ci.product_id, ci.quantity, p.name, p.price
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.customer_id=$1
		ORDER BY ci.id
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.CartItem
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.ProductID, &it.Quantity, &it.ProductName, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

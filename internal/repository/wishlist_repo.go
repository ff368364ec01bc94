package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WishlistRepository struct {
	DB *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

func (r *WishlistRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.WishlistItem, error) {
	query := `
		SELECT id, customer_id, product_id, is_liked, added_at, updated_at
		FROM wishlist
		WHERE customer_id=$1
		ORDER BY id
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WishlistItem
	for rows.Next() {
		var w model.WishlistItem
		if err := rows.Scan(&w.ID, &w.CustomerID, &w.ProductID, &w.IsLiked, &w.AddedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Toggle flips the liked flag for (customer, product), inserting the row as
// liked on first touch. Returns the new flag value.
func (r *WishlistRepository) Toggle(ctx context.Context, customerID, productID int64) (int, error) {
	var current int
	err := r.DB.QueryRow(ctx,
		`SELECT is_liked FROM wishlist WHERE customer_id=$1 AND product_id=$2`,
		customerID, productID,
	).Scan(&current)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		_, err := r.DB.Exec(ctx,
			`INSERT INTO wishlist (customer_id, product_id, is_liked, added_at, updated_at) VALUES ($1, $2, 1, $3, $3)`,
			customerID, productID, time.Now(),
		)
		if err != nil {
			return 0, err
		}
		return 1, nil
	case err != nil:
		return 0, err
	}

	next := 1 - current
	_, err = r.DB.Exec(ctx,
		`UPDATE wishlist SET is_liked=$1, updated_at=$2 WHERE customer_id=$3 AND product_id=$4`,
		next, time.Now(), customerID, productID,
	)
	if err != nil {
		return 0, err
	}
	return next, nil
}

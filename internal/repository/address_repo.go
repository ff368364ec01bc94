package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AddressRepository struct {
	DB *pgxpool.Pool
}

func NewAddressRepository(db *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *model.Address) (int64, error) {
	var id int64
	query := `
		INSERT INTO addresses (customer_id, label, street, city, state, postal_code, country, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query,
		a.CustomerID, a.Label, a.Street, a.City, a.State, a.PostalCode, a.Country, time.Now(),
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	var a model.Address
	query := `SELECT id, customer_id, label, street, city, state, postal_code, country, created_at FROM addresses WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CustomerID, &a.Label, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Country, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AddressRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Address, error) {
	query := `
		SELECT id, customer_id, label, street, city, state, postal_code, country, created_at
		FROM addresses
		WHERE customer_id=$1
		ORDER BY id DESC
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Label, &a.Street, &a.City, &a.State, &a.PostalCode, &a.Country, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

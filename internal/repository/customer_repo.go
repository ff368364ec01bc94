package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// Exists reports whether a customer with the given email or username is
// already registered.
func (r *CustomerRepository) Exists(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM customers WHERE email=$1 OR username=$2)`
	if err := r.DB.QueryRow(ctx, query, email, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	var id int64
	query := `
		INSERT INTO customers (username, email, password, full_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query, c.Username, c.Email, c.Password, c.FullName, c.Phone, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByLogin looks a customer up by username or email, password hash included.
func (r *CustomerRepository) GetByLogin(ctx context.Context, login string) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT id, username, email, password, full_name, phone FROM customers WHERE username=$1 OR email=$1`
	if err := r.DB.QueryRow(ctx, query, login).Scan(&c.ID, &c.Username, &c.Email, &c.Password, &c.FullName, &c.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT id, username, email, full_name, phone FROM customers WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.Username, &c.Email, &c.FullName, &c.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns all customers, newest first, without password hashes.
func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, username, email, full_name, phone, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Username, &c.Email, &c.FullName, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

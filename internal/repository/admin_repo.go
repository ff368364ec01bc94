package repository

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// GetByLogin looks an admin up by username or email, password hash included.
func (r *AdminRepository) GetByLogin(ctx context.Context, login string) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT id, username, email, password, full_name FROM admins WHERE username=$1 OR email=$1`
	if err := r.DB.QueryRow(ctx, query, login).Scan(&a.ID, &a.Username, &a.Email, &a.Password, &a.FullName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	var a model.Admin
	query := `SELECT id, username, email, full_name FROM admins WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&a.ID, &a.Username, &a.Email, &a.FullName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

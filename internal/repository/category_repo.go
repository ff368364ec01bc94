package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, name string, description *string) (int64, error) {
	var id int64
	query := `INSERT INTO categories (name, description, created_at, updated_at) VALUES ($1, $2, $3, $3) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, name, description, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var c model.Category
	query := `SELECT id, name, description, created_at, updated_at FROM categories WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM categories ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, name string, description *string) error {
	query := `UPDATE categories SET name=$1, description=$2, updated_at=$3 WHERE id=$4`
	tag, err := r.DB.Exec(ctx, query, name, description, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM categories WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.stock_quantity, p.thumbnail_url,
	p.additional_images, p.category_id, p.admin_id, p.quantity, p.uom_id,
	c.name, u.uom_name, p.created_at, p.updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var p model.Product
	var images string
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.StockQuantity, &p.ThumbnailURL,
		&images, &p.CategoryID, &p.AdminID, &p.Quantity, &p.UomID,
		&p.CategoryName, &p.UomName, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(images), &p.AdditionalImages); err != nil {
		p.AdditionalImages = []string{}
	}
	if p.AdditionalImages == nil {
		p.AdditionalImages = []string{}
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	images, err := json.Marshal(p.AdditionalImages)
	if err != nil {
		return 0, err
	}
	var id int64
	query := `
		INSERT INTO products
			(name, description, price, stock_quantity, thumbnail_url, additional_images,
			 category_id, admin_id, quantity, uom_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query,
		p.Name, p.Description, p.Price, p.StockQuantity, p.ThumbnailURL, string(images),
		p.CategoryID, p.AdminID, p.Quantity, p.UomID, time.Now(),
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN uom_master u ON p.uom_id = u.id
		WHERE p.id=$1
	`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		LEFT JOIN uom_master u ON p.uom_id = u.id
		ORDER BY p.created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// Update persists the full product row; callers merge partial changes into
// the existing record first.
func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	images, err := json.Marshal(p.AdditionalImages)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET
			name=$1, description=$2, price=$3, stock_quantity=$4, thumbnail_url=$5,
			additional_images=$6, category_id=$7, quantity=$8, uom_id=$9, updated_at=$10
		WHERE id=$11
	`
	tag, err := r.DB.Exec(ctx, query,
		p.Name, p.Description, p.Price, p.StockQuantity, p.ThumbnailURL,
		string(images), p.CategoryID, p.Quantity, p.UomID, time.Now(), p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ListUoms returns the uom_master lookup ordered by name.
func (r *ProductRepository) ListUoms(ctx context.Context) ([]model.Uom, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, uom_name FROM uom_master ORDER BY uom_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Uom
	for rows.Next() {
		var u model.Uom
		if err := rows.Scan(&u.ID, &u.UomName); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CreatePending records a pending provider payment for an order.
func (r *PaymentRepository) CreatePending(ctx context.Context, orderID int64, amount float64, provider, providerRef string, payload []byte) (int64, error) {
	var id int64
	query := `
		INSERT INTO payments (order_id, amount, status, provider, provider_ref, payload, created_at)
		VALUES ($1, $2, 'Pending', $3, $4, $5, $6)
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query, orderID, amount, provider, providerRef, payload, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByOrderID returns the latest payment row for an order, or nil.
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID int64) (*model.Payment, error) {
	var p model.Payment
	query := `
		SELECT id, order_id, amount, status, provider, provider_ref, created_at, paid_at
		FROM payments
		WHERE order_id=$1
		ORDER BY id DESC
		LIMIT 1
	`
	err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.Provider, &p.ProviderRef, &p.CreatedAt, &p.PaidAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaid flips the payment row to Paid and stamps the settlement time.
func (r *PaymentRepository) MarkPaid(ctx context.Context, orderID int64) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE payments SET status='Paid', paid_at=$1 WHERE order_id=$2 AND status='Pending'`,
		time.Now(), orderID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPendingPaymentNotFound
	}
	return nil
}

// MarkFailed records a failed or expired provider payment.
func (r *PaymentRepository) MarkFailed(ctx context.Context, orderID int64) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET status='Failed' WHERE order_id=$1 AND status='Pending'`,
		orderID,
	)
	return err
}

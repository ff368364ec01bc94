package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// PlaceOrder persists the order header and all of its lines in one
// transaction. When the order method is cart, the customer's cart rows are
// deleted in the same transaction; any failure rolls everything back.
func (r *OrderRepository) PlaceOrder(ctx context.Context, o *model.NewOrder) (int64, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	now := time.Now()
	headerQuery := `
		INSERT INTO orders
			(customer_id, address_id, order_status_id, payment_method_id, order_method_id,
			 total_amount, tracking_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULL, $7, $7)
		RETURNING id
	`
	if err := tx.QueryRow(ctx, headerQuery,
		o.CustomerID, o.AddressID, model.OrderStatusPlaced, o.PaymentMethodID,
		o.OrderMethodID, o.TotalAmount, now,
	).Scan(&orderID); err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase, subtotal)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, it := range o.Items {
		batch.Queue(itemQuery, orderID, it.ProductID, it.Quantity, it.Price, it.Subtotal)
	}
	br := tx.SendBatch(ctx, batch)
	for range o.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("insert order items: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("close batch: %w", err)
	}

	if o.OrderMethodID == model.OrderMethodCart {
		if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE customer_id=$1`, o.CustomerID); err != nil {
			return 0, fmt.Errorf("clear cart: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return orderID, nil
}

// OrdersByCustomer returns the customer's orders, newest first, each with
// its lines and the shipping address flattened in.
func (r *OrderRepository) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	query := `
		SELECT o.id, o.customer_id, os.name, om.name, pm.name, o.total_amount, o.tracking_number, o.created_at,
		       a.id, a.customer_id, a.label, a.street, a.city, a.state, a.postal_code, a.country
		FROM orders o
		JOIN order_status os ON o.order_status_id = os.id
		JOIN order_methods om ON o.order_method_id = om.id
		JOIN payment_methods pm ON o.payment_method_id = pm.id
		JOIN addresses a ON o.address_id = a.id
		WHERE o.customer_id=$1
		ORDER BY o.id DESC
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.OrderSummary
	index := make(map[int64]int)
	for rows.Next() {
		var o model.OrderSummary
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.OrderStatus, &o.OrderMethod, &o.PaymentMethod,
			&o.TotalAmount, &o.TrackingNumber, &o.CreatedAt,
			&o.Address.ID, &o.Address.CustomerID, &o.Address.Label, &o.Address.Street,
			&o.Address.City, &o.Address.State, &o.Address.PostalCode, &o.Address.Country,
		); err != nil {
			return nil, err
		}
		o.Items = []model.OrderLine{}
		index[o.ID] = len(out)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	itemQuery := `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price_at_purchase, oi.subtotal
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.customer_id=$1
		ORDER BY oi.id
	`
	itemRows, err := r.DB.Query(ctx, itemQuery, customerID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var line model.OrderLine
		var orderID int64
		if err := itemRows.Scan(&line.ID, &orderID, &line.ProductID, &line.ProductName, &line.Quantity, &line.PriceAtPurchase, &line.Subtotal); err != nil {
			return nil, err
		}
		if i, ok := index[orderID]; ok {
			out[i].Items = append(out[i].Items, line)
		}
	}
	return out, itemRows.Err()
}

// OrderOwner returns the owning customer id for an order.
func (r *OrderRepository) OrderOwner(ctx context.Context, orderID int64) (int64, error) {
	var customerID int64
	if err := r.DB.QueryRow(ctx, `SELECT customer_id FROM orders WHERE id=$1`, orderID).Scan(&customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrOrderNotFound
		}
		return 0, err
	}
	return customerID, nil
}

// OrderStatusAndTotal returns the status id and stored total for an order.
func (r *OrderRepository) OrderStatusAndTotal(ctx context.Context, orderID int64) (int64, float64, error) {
	var statusID int64
	var total float64
	query := `SELECT order_status_id, total_amount FROM orders WHERE id=$1`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(&statusID, &total); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, ErrOrderNotFound
		}
		return 0, 0, err
	}
	return statusID, total, nil
}

// SetOrderStatus updates the order status.
func (r *OrderRepository) SetOrderStatus(ctx context.Context, orderID int64, statusID int64) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE orders SET order_status_id=$1, updated_at=$2 WHERE id=$3`,
		statusID, time.Now(), orderID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// InvoiceData reads back everything the invoice needs for a committed order.
func (r *OrderRepository) InvoiceData(ctx context.Context, orderID int64) (*model.Invoice, error) {
	var inv model.Invoice
	query := `
		SELECT o.id, o.customer_id, o.created_at, os.name, om.name, pm.name, o.total_amount,
		       cu.full_name, cu.email, cu.phone,
		       a.id, a.customer_id, a.label, a.street, a.city, a.state, a.postal_code, a.country
		FROM orders o
		JOIN order_status os ON o.order_status_id = os.id
		JOIN order_methods om ON o.order_method_id = om.id
		JOIN payment_methods pm ON o.payment_method_id = pm.id
		JOIN customers cu ON o.customer_id = cu.id
		JOIN addresses a ON o.address_id = a.id
		WHERE o.id=$1
	`
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&inv.OrderID, &inv.CustomerID, &inv.OrderDate, &inv.OrderStatus, &inv.OrderMethod, &inv.PaymentMethod, &inv.TotalAmount,
		&inv.CustomerName, &inv.CustomerEmail, &inv.CustomerPhone,
		&inv.Address.ID, &inv.Address.CustomerID, &inv.Address.Label, &inv.Address.Street,
		&inv.Address.City, &inv.Address.State, &inv.Address.PostalCode, &inv.Address.Country,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	itemQuery := `
		SELECT oi.id, oi.product_id, p.name, oi.quantity, oi.price_at_purchase, oi.subtotal
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id=$1
		ORDER BY oi.id
	`
	rows, err := r.DB.Query(ctx, itemQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.ID, &line.ProductID, &line.ProductName, &line.Quantity, &line.PriceAtPurchase, &line.Subtotal); err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}

// ListPaymentMethods returns the payment_methods lookup table.
func (r *OrderRepository) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, name FROM payment_methods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PaymentMethod
	for rows.Next() {
		var pm model.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.Name); err != nil {
			return nil, err
		}
		out = append(out, pm)
	}
	return out, rows.Err()
}

package services

import (
	"context"
	"errors"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/shopspring/decimal"
)

// totalTolerance is the maximum accepted difference between a client-supplied
// total and the server-computed one.
var totalTolerance = decimal.NewFromFloat(0.01)

var (
	ErrMissingFields      = errors.New("addressId, paymentMethodId, orderMethod and a non-empty items list are required")
	ErrUnknownOrderMethod = errors.New("Unknown order method")
	ErrInvalidItem        = errors.New("Each item requires a positive quantity and a non-negative price")
	ErrTotalMismatch      = errors.New("Total amount mismatch")
)

// OrderStore is the persistence surface the order service needs.
type OrderStore interface {
	PlaceOrder(ctx context.Context, o *model.NewOrder) (int64, error)
	OrdersByCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error)
	OrderOwner(ctx context.Context, orderID int64) (int64, error)
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error)
}

// InvoiceDispatcher schedules invoice generation for a committed order. It
// must never report back into the order placement path.
type InvoiceDispatcher interface {
	Dispatch(orderID int64)
}

type OrderItemInput struct {
	ProductID int64
	Quantity  int
	Price     float64
}

type PlaceOrderInput struct {
	CustomerID      int64
	AddressID       int64
	PaymentMethodID int64
	OrderMethod     string
	TotalAmount     *float64 // optional client-side cross-check
	Items           []OrderItemInput
}

type OrderService struct {
	Store    OrderStore
	Invoices InvoiceDispatcher
}

func NewOrderService(store OrderStore, invoices InvoiceDispatcher) *OrderService {
	return &OrderService{Store: store, Invoices: invoices}
}

// PlaceOrder validates the batch, recomputes the authoritative total and
// commits the order in one transaction. On success the invoice is handed to
// the dispatcher out-of-band and the new order id is returned immediately.
func (s *OrderService) PlaceOrder(ctx context.Context, in *PlaceOrderInput) (int64, error) {
	if in.AddressID == 0 || in.PaymentMethodID == 0 || in.OrderMethod == "" || len(in.Items) == 0 {
		return 0, ErrMissingFields
	}

	var methodID int
	switch in.OrderMethod {
	case "buy_now":
		methodID = model.OrderMethodBuyNow
	case "cart":
		methodID = model.OrderMethodCart
	default:
		return 0, ErrUnknownOrderMethod
	}

	total := decimal.Zero
	items := make([]model.NewOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 || it.Price < 0 {
			return 0, ErrInvalidItem
		}
		subtotal := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		items = append(items, model.NewOrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  subtotal.InexactFloat64(),
		})
	}

	if in.TotalAmount != nil {
		claimed := decimal.NewFromFloat(*in.TotalAmount)
		if total.Sub(claimed).Abs().GreaterThan(totalTolerance) {
			return 0, ErrTotalMismatch
		}
	}

	orderID, err := s.Store.PlaceOrder(ctx, &model.NewOrder{
		CustomerID:      in.CustomerID,
		AddressID:       in.AddressID,
		PaymentMethodID: in.PaymentMethodID,
		OrderMethodID:   methodID,
		TotalAmount:     total.InexactFloat64(),
		Items:           items,
	})
	if err != nil {
		return 0, err
	}

	// Invoice generation runs outside the request; its outcome never
	// affects the placement result.
	go s.Invoices.Dispatch(orderID)

	return orderID, nil
}

func (s *OrderService) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	orders, err := s.Store.OrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.OrderSummary{}
	}
	return orders, nil
}

// OwnedBy reports whether the order belongs to the customer.
func (s *OrderService) OwnedBy(ctx context.Context, orderID, customerID int64) (bool, error) {
	owner, err := s.Store.OrderOwner(ctx, orderID)
	if err != nil {
		return false, err
	}
	return owner == customerID, nil
}

func (s *OrderService) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return s.Store.ListPaymentMethods(ctx)
}

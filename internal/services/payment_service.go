package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	mt "github.com/SanjayRavichandran-Mscss/ss-foodproducts/external/midtrans"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var (
	ErrOrderNotPayable = errors.New("order cannot be paid")
	ErrPaymentExists   = errors.New("payment already exists")
)

type PaymentService struct {
	PaymentRepo *repository.PaymentRepository
	OrderRepo   *repository.OrderRepository
	Snap        *snap.Client
}

func NewPaymentService(pr *repository.PaymentRepository, or *repository.OrderRepository, snap *snap.Client) *PaymentService {
	return &PaymentService{PaymentRepo: pr, OrderRepo: or, Snap: snap}
}

// CreateSnapPayment starts an online payment for an unpaid order owned by
// the customer and returns the provider redirect URL.
func (s *PaymentService) CreateSnapPayment(ctx context.Context, orderID, customerID int64) (string, error) {
	owner, err := s.OrderRepo.OrderOwner(ctx, orderID)
	if err != nil {
		return "", err
	}
	if owner != customerID {
		return "", ErrNotOwner
	}

	statusID, total, err := s.OrderRepo.OrderStatusAndTotal(ctx, orderID)
	if err != nil {
		return "", err
	}
	if statusID != model.OrderStatusPlaced {
		return "", ErrOrderNotPayable
	}

	existing, err := s.PaymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if existing != nil && existing.Status == "Pending" {
		return "", ErrPaymentExists
	}

	externalRef := fmt.Sprintf("ORDER-%d-%s", orderID, uuid.NewString())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  externalRef,
			GrossAmt: int64(total),
		},
	}

	resp, snapErr := s.Snap.CreateTransaction(req)
	if snapErr != nil {
		return "", snapErr
	}

	payload, _ := json.Marshal(resp)

	if _, err := s.PaymentRepo.CreatePending(ctx, orderID, total, "midtrans", externalRef, payload); err != nil {
		return "", err
	}

	return resp.RedirectURL, nil
}

// HandleNotification processes a Midtrans webhook callback. Settled
// transactions mark the order paid; the handler is idempotent for orders
// that were already settled.
func (s *PaymentService) HandleNotification(ctx context.Context, payload map[string]interface{}) error {
	orderIDStr, ok := payload["order_id"].(string)
	if !ok {
		return errors.New("missing order_id")
	}

	// Extract the internal order id from ORDER-{id}-{uuid}.
	var orderID int64
	if _, err := fmt.Sscanf(orderIDStr, "ORDER-%d-", &orderID); err != nil {
		return errors.New("invalid order reference")
	}

	statusID, _, err := s.OrderRepo.OrderStatusAndTotal(ctx, orderID)
	if err != nil {
		return err
	}
	if statusID == model.OrderStatusPaid {
		return nil
	}

	statusCode, _ := payload["status_code"].(string)
	grossAmount, _ := payload["gross_amount"].(string)
	signature, _ := payload["signature_key"].(string)

	if !mt.VerifySignature(orderIDStr, statusCode, grossAmount, signature, os.Getenv("MIDTRANS_SERVER_KEY")) {
		return errors.New("invalid signature")
	}

	transactionStatus, _ := payload["transaction_status"].(string)
	fraudStatus, _ := payload["fraud_status"].(string)

	switch transactionStatus {
	case "settlement", "capture":
		if fraudStatus == "challenge" || fraudStatus == "deny" {
			return nil
		}
		if err := s.PaymentRepo.MarkPaid(ctx, orderID); err != nil {
			return err
		}
		return s.OrderRepo.SetOrderStatus(ctx, orderID, model.OrderStatusPaid)
	case "deny", "cancel", "expire", "failure":
		return s.PaymentRepo.MarkFailed(ctx, orderID)
	default:
		return nil
	}
}

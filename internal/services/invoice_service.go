package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/invoice"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/shopspring/decimal"
)

// Display total rules: orders at or above the threshold ship free, smaller
// ones pay the flat fee; tax is a fixed percentage of the subtotal.
const (
	FreeShippingThreshold = 500.00
	ShippingFee           = 50.00
	TaxRatePercent        = 5
)

const dispatchTimeout = 30 * time.Second

// ErrNotOwner rejects an invoice request for an order the customer does not
// own.
var ErrNotOwner = errors.New("order does not belong to customer")

// InvoiceStore reads back a committed order for invoicing.
type InvoiceStore interface {
	InvoiceData(ctx context.Context, orderID int64) (*model.Invoice, error)
}

// InvoiceMailer delivers the rendered invoice through the mail relay.
type InvoiceMailer interface {
	SendInvoiceEmail(ctx context.Context, toEmail, subject, html string, pdf []byte, pdfName string) error
}

// Renderer turns an invoice into document bytes.
type Renderer func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error)

type InvoiceService struct {
	Store  InvoiceStore
	Mailer InvoiceMailer
	Render Renderer
}

func NewInvoiceService(store InvoiceStore, mailer InvoiceMailer) *InvoiceService {
	return &InvoiceService{Store: store, Mailer: mailer, Render: invoice.RenderPDF}
}

// ComputeTotals derives the display totals from the stored order total.
func ComputeTotals(subtotal float64) model.InvoiceTotals {
	sub := decimal.NewFromFloat(subtotal)

	shipping := decimal.NewFromFloat(ShippingFee)
	if sub.GreaterThanOrEqual(decimal.NewFromFloat(FreeShippingThreshold)) {
		shipping = decimal.Zero
	}
	tax := sub.Mul(decimal.NewFromInt(TaxRatePercent)).Div(decimal.NewFromInt(100)).Round(2)

	return model.InvoiceTotals{
		Subtotal:   sub.InexactFloat64(),
		Shipping:   shipping.InexactFloat64(),
		Tax:        tax.InexactFloat64(),
		GrandTotal: sub.Add(shipping).Add(tax).InexactFloat64(),
	}
}

// Dispatch generates and emails the invoice for a committed order. It runs
// once, outside any transaction; every failure is logged and suppressed.
func (s *InvoiceService) Dispatch(orderID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := s.Generate(ctx, orderID); err != nil {
		log.Printf("invoice generation failed for order %d: %v", orderID, err)
	}
}

// Generate builds the invoice PDF and sends it to the customer.
func (s *InvoiceService) Generate(ctx context.Context, orderID int64) error {
	inv, err := s.Store.InvoiceData(ctx, orderID)
	if err != nil {
		return err
	}
	totals := ComputeTotals(inv.TotalAmount)

	pdf, err := s.Render(inv, totals)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Your SS Food Products order #%d", inv.OrderID)
	return s.Mailer.SendInvoiceEmail(
		ctx,
		inv.CustomerEmail,
		subject,
		buildEmailHTML(inv, totals),
		pdf,
		fmt.Sprintf("invoice-%d.pdf", inv.OrderID),
	)
}

// RenderForCustomer renders the invoice on demand for the order's owner.
func (s *InvoiceService) RenderForCustomer(ctx context.Context, orderID, customerID int64) ([]byte, error) {
	inv, err := s.Store.InvoiceData(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if inv.CustomerID != customerID {
		return nil, ErrNotOwner
	}
	return s.Render(inv, ComputeTotals(inv.TotalAmount))
}

func buildEmailHTML(inv *model.Invoice, totals model.InvoiceTotals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>Hi %s,</p>", inv.CustomerName)
	fmt.Fprintf(&b, "<p>Thank you for your order! Your order <b>#%d</b> has been placed.</p>", inv.OrderID)
	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\"><tr><th>Product</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>")
	for _, it := range inv.Items {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>%.2f</td><td>%.2f</td></tr>",
			it.ProductName, it.Quantity, it.PriceAtPurchase, it.Subtotal)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Subtotal: %.2f<br>Shipping: %.2f<br>Tax: %.2f<br><b>Total: %.2f</b></p>",
		totals.Subtotal, totals.Shipping, totals.Tax, totals.GrandTotal)
	fmt.Fprintf(&b, "<p>Shipping to: %s, %s, %s %s, %s</p>",
		inv.Address.Street, inv.Address.City, inv.Address.State, inv.Address.PostalCode, inv.Address.Country)
	b.WriteString("<p>Your invoice is attached as a PDF.</p>")
	return b.String()
}

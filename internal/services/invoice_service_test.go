package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceStoreMock struct {
	inv *model.Invoice
	err error
}

func (m *invoiceStoreMock) InvoiceData(ctx context.Context, orderID int64) (*model.Invoice, error) {
	return m.inv, m.err
}

type mailerMock struct {
	err     error
	to      string
	subject string
	pdfName string
	pdf     []byte
}

func (m *mailerMock) SendInvoiceEmail(ctx context.Context, toEmail, subject, html string, pdf []byte, pdfName string) error {
	m.to = toEmail
	m.subject = subject
	m.pdf = pdf
	m.pdfName = pdfName
	return m.err
}

func sampleInvoice() *model.Invoice {
	return &model.Invoice{
		OrderID:       42,
		CustomerID:    7,
		OrderDate:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		OrderStatus:   "placed",
		OrderMethod:   "cart",
		PaymentMethod: "cash_on_delivery",
		CustomerName:  "Priya Raman",
		CustomerEmail: "priya@example.com",
		CustomerPhone: "+91 98765 43210",
		Address: model.Address{
			Street:     "12 Market Street",
			City:       "Chennai",
			State:      "TN",
			PostalCode: "600001",
			Country:    "India",
		},
		Items: []model.OrderLine{
			{ProductID: 1, ProductName: "Basmati Rice 5kg", Quantity: 2, PriceAtPurchase: 2999.00, Subtotal: 5998.00},
			{ProductID: 2, ProductName: "Cold Pressed Oil", Quantity: 1, PriceAtPurchase: 499.00, Subtotal: 499.00},
		},
		TotalAmount: 6497.00,
	}
}

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name     string
		subtotal float64
		want     model.InvoiceTotals
	}{
		{
			name:     "above free shipping threshold",
			subtotal: 6497.00,
			want:     model.InvoiceTotals{Subtotal: 6497.00, Shipping: 0, Tax: 324.85, GrandTotal: 6821.85},
		},
		{
			name:     "below threshold pays flat fee",
			subtotal: 499.00,
			want:     model.InvoiceTotals{Subtotal: 499.00, Shipping: 50.00, Tax: 24.95, GrandTotal: 573.95},
		},
		{
			name:     "exactly at threshold ships free",
			subtotal: 500.00,
			want:     model.InvoiceTotals{Subtotal: 500.00, Shipping: 0, Tax: 25.00, GrandTotal: 525.00},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeTotals(tc.subtotal))
		})
	}
}

func TestGenerateSendsRenderedPDF(t *testing.T) {
	mailer := &mailerMock{}
	svc := NewInvoiceService(&invoiceStoreMock{inv: sampleInvoice()}, mailer)
	svc.Render = func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
		return []byte("pdf-bytes"), nil
	}

	err := svc.Generate(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", mailer.to)
	assert.Equal(t, "invoice-42.pdf", mailer.pdfName)
	assert.Equal(t, []byte("pdf-bytes"), mailer.pdf)
	assert.Contains(t, mailer.subject, "#42")
}

func TestGenerateReportsMailFailure(t *testing.T) {
	mailer := &mailerMock{err: errors.New("relay down")}
	svc := NewInvoiceService(&invoiceStoreMock{inv: sampleInvoice()}, mailer)
	svc.Render = func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
		return []byte("pdf"), nil
	}

	err := svc.Generate(context.Background(), 42)
	assert.Error(t, err)
}

func TestDispatchSwallowsFailures(t *testing.T) {
	svc := NewInvoiceService(&invoiceStoreMock{err: errors.New("order not found")}, &mailerMock{})

	// Must not panic and must not propagate anything.
	svc.Dispatch(42)
}

func TestRenderForCustomerChecksOwnership(t *testing.T) {
	svc := NewInvoiceService(&invoiceStoreMock{inv: sampleInvoice()}, &mailerMock{})
	svc.Render = func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
		return []byte("pdf"), nil
	}

	pdf, err := svc.RenderForCustomer(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = svc.RenderForCustomer(context.Background(), 42, 8)
	assert.ErrorIs(t, err, ErrNotOwner)
}

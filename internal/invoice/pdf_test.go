package invoice

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(lines int) *model.Invoice {
	inv := &model.Invoice{
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
	}
	for i := 0; i < lines; i++ {
		inv.Items = append(inv.Items, model.OrderLine{
			ProductID:       int64(i + 1),
			ProductName:     fmt.Sprintf("Pantry Item %d", i+1),
			Quantity:        2,
			PriceAtPurchase: 49.50,
			Subtotal:        99.00,
		})
		inv.TotalAmount += 99.00
	}
	return inv
}

func totalsFor(inv *model.Invoice) model.InvoiceTotals {
	return model.InvoiceTotals{
		Subtotal:   inv.TotalAmount,
		Shipping:   0,
		Tax:        inv.TotalAmount * 0.05,
		GrandTotal: inv.TotalAmount * 1.05,
	}
}

func TestRenderPDF(t *testing.T) {
	inv := testInvoice(3)
	pdf, err := RenderPDF(inv, totalsFor(inv))
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")
}

func TestRenderPDFWrapsLongItemTables(t *testing.T) {
	short := testInvoice(3)
	shortPDF, err := RenderPDF(short, totalsFor(short))
	require.NoError(t, err)

	long := testInvoice(80)
	longPDF, err := RenderPDF(long, totalsFor(long))
	require.NoError(t, err)

	assert.Greater(t, len(longPDF), len(shortPDF), "an 80-line order must span additional pages")
	// Page objects show up once per page in the document body.
	assert.Greater(t, bytes.Count(longPDF, []byte("/Page")), bytes.Count(shortPDF, []byte("/Page")))
}

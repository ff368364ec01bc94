package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/middleware"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/repository"
	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invoiceStoreStub struct {
	inv *model.Invoice
	err error
}

func (s invoiceStoreStub) InvoiceData(ctx context.Context, orderID int64) (*model.Invoice, error) {
	return s.inv, s.err
}

type mailerStub struct{}

func (mailerStub) SendInvoiceEmail(ctx context.Context, toEmail, subject, html string, pdf []byte, pdfName string) error {
	return nil
}

type orderStoreStub struct{}

func (orderStoreStub) PlaceOrder(ctx context.Context, o *model.NewOrder) (int64, error) {
	return 1, nil
}

func (orderStoreStub) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	return nil, nil
}

func (orderStoreStub) OrderOwner(ctx context.Context, orderID int64) (int64, error) {
	return 0, nil
}

func (orderStoreStub) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return nil, nil
}

type dispatcherStub struct{}

func (dispatcherStub) Dispatch(orderID int64) {}

func invoiceTestServer(store services.InvoiceStore, render services.Renderer) *echo.Echo {
	e := echo.New()
	invoiceSvc := services.NewInvoiceService(store, mailerStub{})
	invoiceSvc.Render = render
	orderSvc := services.NewOrderService(orderStoreStub{}, dispatcherStub{})
	registerOrderRoutes(e.Group("/api"), orderSvc, invoiceSvc)
	return e
}

func getInvoice(t *testing.T, e *echo.Echo, customerID int64) *httptest.ResponseRecorder {
	t.Helper()
	token, err := middleware.GenerateToken(customerID, "priya@example.com", "priya_r", "customer", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/customer/orders/42/invoice", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestInvoiceRouteServes(t *testing.T) {
	e := invoiceTestServer(
		invoiceStoreStub{inv: &model.Invoice{OrderID: 42, CustomerID: 7}},
		func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
			return []byte("%PDF-stub"), nil
		},
	)

	rec := getInvoice(t, e, 7)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "%PDF-stub", rec.Body.String())
}

func TestInvoiceRouteRenderFailureIsServerError(t *testing.T) {
	e := invoiceTestServer(
		invoiceStoreStub{inv: &model.Invoice{OrderID: 42, CustomerID: 7}},
		func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
			return nil, errors.New("font missing")
		},
	)

	// The requesting customer owns the order; a render failure must not be
	// reported as an ownership problem.
	rec := getInvoice(t, e, 7)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate invoice", messageOf(t, rec))
}

func TestInvoiceRouteWrongOwner(t *testing.T) {
	e := invoiceTestServer(
		invoiceStoreStub{inv: &model.Invoice{OrderID: 42, CustomerID: 8}},
		func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
			return []byte("pdf"), nil
		},
	)

	rec := getInvoice(t, e, 7)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Order does not belong to customer", messageOf(t, rec))
}

func TestInvoiceRouteMissingOrder(t *testing.T) {
	e := invoiceTestServer(
		invoiceStoreStub{err: repository.ErrOrderNotFound},
		func(inv *model.Invoice, totals model.InvoiceTotals) ([]byte, error) {
			return []byte("pdf"), nil
		},
	)

	rec := getInvoice(t, e, 7)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", messageOf(t, rec))
}

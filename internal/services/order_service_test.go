package services

import (
	"context"
	"testing"
	"time"

	"github.com/SanjayRavichandran-Mscss/ss-foodproducts/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderStoreMock struct {
	placed   []*model.NewOrder
	placeErr error
	orders   []model.OrderSummary
	owner    int64
	ownerErr error
	methods  []model.PaymentMethod
}

func (m *orderStoreMock) PlaceOrder(ctx context.Context, o *model.NewOrder) (int64, error) {
	if m.placeErr != nil {
		return 0, m.placeErr
	}
	m.placed = append(m.placed, o)
	return 42, nil
}

func (m *orderStoreMock) OrdersByCustomer(ctx context.Context, customerID int64) ([]model.OrderSummary, error) {
	return m.orders, nil
}

func (m *orderStoreMock) OrderOwner(ctx context.Context, orderID int64) (int64, error) {
	return m.owner, m.ownerErr
}

func (m *orderStoreMock) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return m.methods, nil
}

type dispatcherMock struct {
	called chan int64
}

func newDispatcherMock() *dispatcherMock {
	return &dispatcherMock{called: make(chan int64, 1)}
}

func (m *dispatcherMock) Dispatch(orderID int64) {
	m.called <- orderID
}

func validInput() *PlaceOrderInput {
	total := 6497.00
	return &PlaceOrderInput{
		CustomerID:      7,
		AddressID:       3,
		PaymentMethodID: 1,
		OrderMethod:     "cart",
		TotalAmount:     &total,
		Items: []OrderItemInput{
			{ProductID: 1, Quantity: 2, Price: 2999.00},
			{ProductID: 2, Quantity: 1, Price: 499.00},
		},
	}
}

func TestPlaceOrderComputesTotalServerSide(t *testing.T) {
	store := &orderStoreMock{}
	svc := NewOrderService(store, newDispatcherMock())

	orderID, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(42), orderID)

	require.Len(t, store.placed, 1)
	o := store.placed[0]
	assert.Equal(t, 6497.00, o.TotalAmount)
	assert.Equal(t, model.OrderMethodCart, o.OrderMethodID)
	require.Len(t, o.Items, 2)
	assert.Equal(t, 5998.00, o.Items[0].Subtotal)
	assert.Equal(t, 499.00, o.Items[1].Subtotal)
}

func TestPlaceOrderRejectsMismatchedTotal(t *testing.T) {
	store := &orderStoreMock{}
	svc := NewOrderService(store, newDispatcherMock())

	in := validInput()
	wrong := 9999.00
	in.TotalAmount = &wrong

	_, err := svc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, ErrTotalMismatch)
	assert.Empty(t, store.placed, "nothing may be written on a total mismatch")
}

func TestPlaceOrderAcceptsTotalWithinTolerance(t *testing.T) {
	store := &orderStoreMock{}
	svc := NewOrderService(store, newDispatcherMock())

	in := validInput()
	claimed := 6497.01
	in.TotalAmount = &claimed

	_, err := svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	// The persisted total is still the server-computed one.
	assert.Equal(t, 6497.00, store.placed[0].TotalAmount)
}

func TestPlaceOrderRejectsBadItem(t *testing.T) {
	cases := []struct {
		name string
		item OrderItemInput
	}{
		{"zero quantity", OrderItemInput{ProductID: 1, Quantity: 0, Price: 10}},
		{"negative quantity", OrderItemInput{ProductID: 1, Quantity: -2, Price: 10}},
		{"negative price", OrderItemInput{ProductID: 1, Quantity: 1, Price: -0.01}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &orderStoreMock{}
			svc := NewOrderService(store, newDispatcherMock())

			in := validInput()
			in.Items = append(in.Items, tc.item)

			_, err := svc.PlaceOrder(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidItem)
			assert.Empty(t, store.placed, "one bad item rejects the whole batch")
		})
	}
}

func TestPlaceOrderRequiresAllFields(t *testing.T) {
	store := &orderStoreMock{}
	svc := NewOrderService(store, newDispatcherMock())

	for _, mutate := range []func(*PlaceOrderInput){
		func(in *PlaceOrderInput) { in.AddressID = 0 },
		func(in *PlaceOrderInput) { in.PaymentMethodID = 0 },
		func(in *PlaceOrderInput) { in.OrderMethod = "" },
		func(in *PlaceOrderInput) { in.Items = nil },
	} {
		in := validInput()
		mutate(in)
		_, err := svc.PlaceOrder(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Empty(t, store.placed)
}

func TestPlaceOrderMapsOrderMethod(t *testing.T) {
	store := &orderStoreMock{}
	svc := NewOrderService(store, newDispatcherMock())

	in := validInput()
	in.OrderMethod = "buy_now"
	_, err := svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, model.OrderMethodBuyNow, store.placed[0].OrderMethodID)

	in = validInput()
	in.OrderMethod = "subscription"
	_, err = svc.PlaceOrder(context.Background(), in)
	assert.ErrorIs(t, err, ErrUnknownOrderMethod)
}

func TestPlaceOrderDispatchesInvoiceAfterCommit(t *testing.T) {
	store := &orderStoreMock{}
	dispatcher := newDispatcherMock()
	svc := NewOrderService(store, dispatcher)

	orderID, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	select {
	case got := <-dispatcher.called:
		assert.Equal(t, orderID, got)
	case <-time.After(time.Second):
		t.Fatal("invoice was never dispatched")
	}
}

func TestOrdersByCustomerNeverReturnsNil(t *testing.T) {
	svc := NewOrderService(&orderStoreMock{}, newDispatcherMock())

	list, err := svc.OrdersByCustomer(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestOwnedBy(t *testing.T) {
	svc := NewOrderService(&orderStoreMock{owner: 7}, newDispatcherMock())

	ok, err := svc.OwnedBy(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.OwnedBy(context.Background(), 42, 8)
	require.NoError(t, err)
	assert.False(t, ok)
}

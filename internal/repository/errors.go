package repository

import "errors"

// Not-found sentinels, so callers can tell a missing row apart from a
// driver failure.
var (
	ErrAddressNotFound        = errors.New("address not found")
	ErrAdminNotFound          = errors.New("admin not found")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrOrderNotFound          = errors.New("order not found")
	ErrPendingPaymentNotFound = errors.New("pending payment not found")
	ErrProductNotFound        = errors.New("product not found")
)

package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product is not found in the store.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidStockChange is returned when an adjustment would make stock negative.
	ErrInvalidStockChange = errors.New("stock cannot go negative")
	// ErrSaleNotFound is returned when a sale is not found in the store.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrNotificationNotFound is returned when a notification is not found in the store.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrUserNotFound is returned when a user is not found in the store.
	ErrUserNotFound = errors.New("user not found")
)

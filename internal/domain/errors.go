package domain

import "errors"

var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientPayment = errors.New("payment amount is less than the total")
)

package domain

import "time"

// OrderLine is one purchased line item written at checkout.
type OrderLine struct {
	MenuID   int64  `json:"menu_id"`
	Name     string `json:"menu_name"`
	Qty      int    `json:"qty"`
	Price    int64  `json:"price"`
	Subtotal int64  `json:"subtotal"`
}

// Receipt is returned to the cashier after a successful checkout.
type Receipt struct {
	ID           string      `json:"receipt_id"`
	CustomerID   int64       `json:"user_id"`
	CustomerName string      `json:"customer_name"`
	Items        []OrderLine `json:"items"`
	Total        int64       `json:"total"`
	Paid         int64       `json:"paid"`
	Change       int64       `json:"change"`
	Method       string      `json:"method"`
	Timestamp    time.Time   `json:"timestamp"`
}

// Transaction is one joined order row for the admin dashboard listing.
type Transaction struct {
	OrderedAt    time.Time `json:"order_datetime"`
	MenuName     string    `json:"menu_name"`
	Price        int64     `json:"total_price"`
	Category     string    `json:"category"`
	CustomerName string    `json:"customer_name"`
}

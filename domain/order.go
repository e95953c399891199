package domain

import "github.com/shopspring/decimal"

// OrderStatus is a print job's position on the order board.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPrinting  OrderStatus = "printing"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderPrinting, OrderCompleted, OrderCancelled}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderPrinting, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Order is a 3D print job on the order board. The board lives in process
// memory only; it is never written to the persistent store.
type Order struct {
	ID           string
	CustomerName string
	Items        string
	Material     string
	PrintTime    string
	Total        decimal.Decimal
	Status       OrderStatus
	Date         string
	Notes        string
}

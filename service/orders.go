package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/blakekali/blakeprintz/domain"
)

// OrderService holds the print-job order board. The board is process memory
// only, seeded on construction; the original product never persisted it.
type OrderService struct {
	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderService() *OrderService {
	return &OrderService{orders: seedOrders(time.Now())}
}

// List returns orders, optionally filtered to one status. An empty status
// means the whole board.
func (s *OrderService) List(status domain.OrderStatus) ([]domain.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Get returns one order by id.
func (s *OrderService) Get(orderID string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %q: %w", orderID, domain.ErrNotFound)
}

// UpdateStatus moves an order to a new status. Any transition is allowed;
// the board trusts the operator.
func (s *OrderService) UpdateStatus(orderID string, status domain.OrderStatus) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return domain.Order{}, fmt.Errorf("order %q: %w", orderID, domain.ErrNotFound)
}

// StatusCounts returns the per-status totals shown on the filter bar.
func (s *OrderService) StatusCounts() map[domain.OrderStatus]int {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[domain.OrderStatus]int, len(domain.OrderStatuses))
	for _, st := range domain.OrderStatuses {
		counts[st] = 0
	}
	for _, o := range s.orders {
		counts[o.Status]++
	}
	return counts
}

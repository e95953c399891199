package service

import (
	"testing"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/stretchr/testify/require"
)

func TestOrderList(t *testing.T) {
	t.Parallel()

	s := NewOrderService()

	all, err := s.List("")
	require.NoError(t, err)
	require.Len(t, all, 5)

	printing, err := s.List(domain.OrderPrinting)
	require.NoError(t, err)
	require.Len(t, printing, 2)
	for _, o := range printing {
		require.Equal(t, domain.OrderPrinting, o.Status)
	}

	_, err = s.List("shipped")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderGet(t *testing.T) {
	t.Parallel()

	s := NewOrderService()

	o, err := s.Get("1BP-001")
	require.NoError(t, err)
	require.Equal(t, "Sarah Jenkinson", o.CustomerName)

	_, err = s.Get("3DP-999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdateStatus(t *testing.T) {
	t.Parallel()

	s := NewOrderService()

	updated, err := s.UpdateStatus("3DP-001", domain.OrderPrinting)
	require.NoError(t, err)
	require.Equal(t, domain.OrderPrinting, updated.Status)

	got, err := s.Get("3DP-001")
	require.NoError(t, err)
	require.Equal(t, domain.OrderPrinting, got.Status)

	// Any transition is allowed, including backwards.
	updated, err = s.UpdateStatus("3DP-003", domain.OrderPending)
	require.NoError(t, err)
	require.Equal(t, domain.OrderPending, updated.Status)

	_, err = s.UpdateStatus("3DP-001", "melted")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = s.UpdateStatus("3DP-999", domain.OrderCompleted)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderStatusCounts(t *testing.T) {
	t.Parallel()

	s := NewOrderService()

	counts := s.StatusCounts()
	require.Equal(t, 2, counts[domain.OrderPending])
	require.Equal(t, 2, counts[domain.OrderPrinting])
	require.Equal(t, 1, counts[domain.OrderCompleted])

	// Statuses with no orders still appear, zeroed.
	zero, ok := counts[domain.OrderCancelled]
	require.True(t, ok)
	require.Equal(t, 0, zero)
}

package service

import (
	"testing"

	"github.com/blakekali/blakeprintz/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testAccounts() []domain.Account {
	return []domain.Account{
		{ID: "1", Email: "blake@blakeprintz.com", Name: "Blake Printz", StaffID: "10001", Role: domain.RoleAdmin},
		{ID: "2", Email: "john@blakeprintz.com", Name: "John", StaffID: "32112", Role: domain.RoleStaff},
		{ID: "3", Email: "ann@blakeprintz.com", Name: "Ann", StaffID: "S001", Role: domain.RoleSupervisor},
	}
}

func TestFilterAccounts(t *testing.T) {
	t.Parallel()

	accounts := testAccounts()

	require.Len(t, FilterAccounts(accounts, ""), 3)
	require.Len(t, FilterAccounts(accounts, "  "), 3)

	byName := FilterAccounts(accounts, "blake p")
	require.Len(t, byName, 1)
	require.Equal(t, "1", byName[0].ID)

	byEmail := FilterAccounts(accounts, "JOHN@")
	require.Len(t, byEmail, 1)
	require.Equal(t, "2", byEmail[0].ID)

	byStaffID := FilterAccounts(accounts, "s001")
	require.Len(t, byStaffID, 1)
	require.Equal(t, "3", byStaffID[0].ID)

	byRole := FilterAccounts(accounts, "super")
	require.Len(t, byRole, 1)
	require.Equal(t, domain.RoleSupervisor, byRole[0].Role)

	require.Empty(t, FilterAccounts(accounts, "nobody"))
}

func TestGroupByRole(t *testing.T) {
	t.Parallel()

	groups := GroupByRole(testAccounts())
	require.Len(t, groups, 4)

	// Sections come out in rank order, empty ones included.
	require.Equal(t, domain.RoleOwner, groups[0].Role)
	require.Empty(t, groups[0].Accounts)
	require.Equal(t, domain.RoleAdmin, groups[1].Role)
	require.Len(t, groups[1].Accounts, 1)
	require.Equal(t, domain.RoleSupervisor, groups[2].Role)
	require.Len(t, groups[2].Accounts, 1)
	require.Equal(t, domain.RoleStaff, groups[3].Role)
	require.Len(t, groups[3].Accounts, 1)
}

func TestTerminationCandidates(t *testing.T) {
	t.Parallel()

	accounts := testAccounts()
	actor := domain.Session{ID: "1", Role: domain.RoleAdmin}

	candidates := TerminationCandidates(accounts, actor)
	require.Len(t, candidates, 2)
	for _, a := range candidates {
		require.NotEqual(t, actor.ID, a.ID)
	}

	// An actor not present in the list leaves it untouched.
	outsider := domain.Session{ID: "99", Role: domain.RoleOwner}
	require.Len(t, TerminationCandidates(accounts, outsider), 3)
}

func TestLowStockOf(t *testing.T) {
	t.Parallel()

	items := []domain.StockItem{
		{ID: "a", Quantity: decimal.NewFromInt(5), MinQuantity: decimal.NewFromInt(2)},
		{ID: "b", Quantity: decimal.NewFromInt(2), MinQuantity: decimal.NewFromInt(2)},
		{ID: "c", Quantity: decimal.RequireFromString("0.5"), MinQuantity: decimal.NewFromInt(1)},
	}

	low := LowStockOf(items)
	require.Len(t, low, 2)
	require.Equal(t, "b", low[0].ID, "at the minimum counts as low")
	require.Equal(t, "c", low[1].ID)
}

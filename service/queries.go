package service

import (
	"strings"

	"github.com/blakekali/blakeprintz/domain"
)

// Pure view-model queries over store snapshots. Screens derive what they
// render from these instead of re-implementing filters inline, so the
// derivations are testable without any rendering.

// FilterAccounts keeps accounts whose name, email, staff id, or role
// contains the query, case-insensitively. An empty query keeps everything.
func FilterAccounts(accounts []domain.Account, query string) []domain.Account {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return accounts
	}

	matched := accounts[:0:0]
	for _, a := range accounts {
		if strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.Email), query) ||
			strings.Contains(strings.ToLower(a.StaffID), query) ||
			strings.Contains(strings.ToLower(string(a.Role)), query) {
			matched = append(matched, a)
		}
	}
	return matched
}

// RoleGroup is one section of the user-accounts screen.
type RoleGroup struct {
	Role     domain.Role
	Accounts []domain.Account
}

// GroupByRole buckets accounts into sections ordered Owner, Admin,
// Supervisor, Staff. Empty sections are kept; the screen decides whether to
// render them.
func GroupByRole(accounts []domain.Account) []RoleGroup {
	groups := make([]RoleGroup, 0, len(domain.RolesByRank))
	for _, role := range domain.RolesByRank {
		g := RoleGroup{Role: role}
		for _, a := range accounts {
			if a.Role == role {
				g.Accounts = append(g.Accounts, a)
			}
		}
		groups = append(groups, g)
	}
	return groups
}

// TerminationCandidates is what the termination screen may offer: every
// account except the acting session's own. Self-termination is excluded
// here, at the view-model level, which is the only place the original
// enforced it.
func TerminationCandidates(accounts []domain.Account, actor domain.Session) []domain.Account {
	out := accounts[:0:0]
	for _, a := range accounts {
		if a.ID != actor.ID {
			out = append(out, a)
		}
	}
	return out
}

// LowStockOf keeps the items at or below their minimum quantity.
func LowStockOf(items []domain.StockItem) []domain.StockItem {
	out := items[:0:0]
	for _, it := range items {
		if it.IsLowStock() {
			out = append(out, it)
		}
	}
	return out
}

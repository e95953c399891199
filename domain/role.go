package domain

// Role is a staff account's role. The set is fixed; self-registration always
// produces Staff, and onboarding may assign any role except Owner.
type Role string

const (
	RoleOwner      Role = "Owner"
	RoleAdmin      Role = "Admin"
	RoleSupervisor Role = "Supervisor"
	RoleStaff      Role = "Staff"
)

// RolesByRank lists every role from most to least privileged. View-model
// grouping renders sections in this order.
var RolesByRank = []Role{RoleOwner, RoleAdmin, RoleSupervisor, RoleStaff}

// OnboardableRoles are the roles an administrator may assign when onboarding.
// Owner is excluded; it exists only in seeded or pre-existing data.
var OnboardableRoles = []Role{RoleStaff, RoleSupervisor, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSupervisor, RoleStaff:
		return true
	}
	return false
}

// Privileged reports whether the role gates open the admin menu
// (onboarding, termination, account listing).
func (r Role) Privileged() bool {
	return r == RoleOwner || r == RoleAdmin
}

// Onboardable reports whether an administrator may assign this role to a
// newly onboarded account.
func (r Role) Onboardable() bool {
	return r == RoleStaff || r == RoleSupervisor || r == RoleAdmin
}

package constants

import "fmt"

const (
	RoleAdmin    = "admin"
	RoleResident = "resident"

	// Scope claim entries are "ROLE_<role>".
	ScopeRolePrefix = "ROLE_"
)

// Role error templates
const (
	ErrOnlyAdminsCanAccess = "Only admin can access %s."
	ErrOnlyOwnerCanAccess  = "Only the owner or an admin can access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnerCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleAdmin,
		RoleResident,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

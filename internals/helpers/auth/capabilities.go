package helper

import (
	"strings"

	"aptfee_backend/internals/constants"
)

type Capability string

const (
	CapManageResidents     Capability = "residents:manage"
	CapManageProperty      Capability = "property:manage"
	CapManageBilling       Capability = "billing:manage"
	CapManagePayments      Capability = "payments:manage"
	CapManageNotifications Capability = "notifications:manage"
	CapManageContracts     Capability = "contracts:manage"
	CapSendEmail           Capability = "email:send"

	CapReadCatalog Capability = "catalog:read"
	CapReadBilling Capability = "billing:read"
	CapCheckout    Capability = "payments:checkout"
	CapSelfService Capability = "profile:self"
)

var roleGrants = map[string][]Capability{
	constants.RoleResident: {
		CapReadCatalog, CapReadBilling, CapCheckout, CapSelfService,
	},
	constants.RoleAdmin: {
		CapManageResidents, CapManageProperty, CapManageBilling, CapManagePayments,
		CapManageNotifications, CapManageContracts, CapSendEmail,
		CapReadCatalog, CapReadBilling, CapCheckout, CapSelfService,
	},
}

// CapabilitySet is the explicit permission set derived from a token's scope claim.
type CapabilitySet struct {
	Roles map[string]bool
	Caps  map[Capability]bool
}

func (s CapabilitySet) Has(c Capability) bool { return s.Caps[c] }

func (s CapabilitySet) HasRole(role string) bool { return s.Roles[strings.ToLower(role)] }

// ScopeFor builds the scope claim for a role: "ROLE_ADMIN". Empty role gives an empty scope.
func ScopeFor(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return ""
	}
	return constants.ScopeRolePrefix + strings.ToUpper(role)
}

// ParseScope reads a space separated scope claim. Unknown entries are ignored.
func ParseScope(scope string) CapabilitySet {
	set := CapabilitySet{Roles: map[string]bool{}, Caps: map[Capability]bool{}}
	for _, entry := range strings.Fields(scope) {
		if len(entry) <= len(constants.ScopeRolePrefix) ||
			!strings.EqualFold(entry[:len(constants.ScopeRolePrefix)], constants.ScopeRolePrefix) {
			continue
		}
		role := strings.ToLower(entry[len(constants.ScopeRolePrefix):])
		grants, ok := roleGrants[role]
		if !ok {
			continue
		}
		set.Roles[role] = true
		for _, g := range grants {
			set.Caps[g] = true
		}
	}
	return set
}

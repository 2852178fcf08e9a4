package access

import "chapa-dashboard/internal/core/domain"

// Page identifies a named view region of the dashboard. Pages are a closed
// set; anything outside it is denied for every role.
type Page string

const (
	PageDashboard    Page = "dashboard"
	PageProfile      Page = "profile"
	PageAccount      Page = "account"
	PageBilling      Page = "billing"
	PageSendMoney    Page = "send-money"
	PageRequestMoney Page = "request-money"
	PageUsers        Page = "users"
	PageAnalytics    Page = "analytics"
	PageSystem       Page = "system"

	// PageUnauthorized is the substitute page a denied navigation lands on.
	// It is deliberately absent from the permission table.
	PageUnauthorized Page = "unauthorized"
)

// pagePermissions maps each page to the set of roles allowed to view it.
// Immutable for the process lifetime.
var pagePermissions = map[Page][]domain.Role{
	PageDashboard:    {domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin},
	PageProfile:      {domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin},
	PageAccount:      {domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin},
	PageBilling:      {domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin},
	PageSendMoney:    {domain.RoleUser},
	PageRequestMoney: {domain.RoleUser},
	PageUsers:        {domain.RoleAdmin, domain.RoleSuperAdmin},
	PageAnalytics:    {domain.RoleAdmin, domain.RoleSuperAdmin},
	PageSystem:       {domain.RoleSuperAdmin},
}

// HasPageAccess reports whether the role may view the page. Unknown pages
// are denied for every role (fail-closed).
func HasPageAccess(role domain.Role, page Page) bool {
	if role == "" {
		return false
	}

	allowedRoles, ok := pagePermissions[page]
	if !ok {
		return false
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// DefaultPageForRole returns the landing page for a role. Every role lands
// on the dashboard today; the switch is kept for role-specific landing pages.
func DefaultPageForRole(role domain.Role) Page {
	switch role {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin:
		return PageDashboard
	default:
		return PageDashboard
	}
}

// Resolve is the single authorization gate consulted on every navigation
// request: it returns the requested page when the role may view it and the
// unauthorized page otherwise.
func Resolve(role domain.Role, page Page) Page {
	if HasPageAccess(role, page) {
		return page
	}
	return PageUnauthorized
}

// Pages returns the known page identifiers in the permission table.
func Pages() []Page {
	pages := make([]Page, 0, len(pagePermissions))
	for page := range pagePermissions {
		pages = append(pages, page)
	}
	return pages
}

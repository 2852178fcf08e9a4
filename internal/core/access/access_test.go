package access

import (
	"testing"

	"chapa-dashboard/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestHasPageAccess(t *testing.T) {
	tests := []struct {
		name string
		role domain.Role
		page Page
		want bool
	}{
		{"user can view dashboard", domain.RoleUser, PageDashboard, true},
		{"user can view profile", domain.RoleUser, PageProfile, true},
		{"user can view account", domain.RoleUser, PageAccount, true},
		{"user can view billing", domain.RoleUser, PageBilling, true},
		{"user can send money", domain.RoleUser, PageSendMoney, true},
		{"user can request money", domain.RoleUser, PageRequestMoney, true},
		{"user cannot view users", domain.RoleUser, PageUsers, false},
		{"user cannot view analytics", domain.RoleUser, PageAnalytics, false},
		{"user cannot view system", domain.RoleUser, PageSystem, false},

		{"admin can view dashboard", domain.RoleAdmin, PageDashboard, true},
		{"admin can view users", domain.RoleAdmin, PageUsers, true},
		{"admin can view analytics", domain.RoleAdmin, PageAnalytics, true},
		{"admin cannot send money", domain.RoleAdmin, PageSendMoney, false},
		{"admin cannot request money", domain.RoleAdmin, PageRequestMoney, false},
		{"admin cannot view system", domain.RoleAdmin, PageSystem, false},

		{"super admin can view users", domain.RoleSuperAdmin, PageUsers, true},
		{"super admin can view analytics", domain.RoleSuperAdmin, PageAnalytics, true},
		{"super admin can view system", domain.RoleSuperAdmin, PageSystem, true},
		{"super admin cannot send money", domain.RoleSuperAdmin, PageSendMoney, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPageAccess(tt.role, tt.page))
		})
	}
}

func TestHasPageAccessFailsClosed(t *testing.T) {
	// Pages outside the table are denied for every role
	for _, role := range []domain.Role{domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin} {
		assert.False(t, HasPageAccess(role, Page("reports")))
		assert.False(t, HasPageAccess(role, Page("")))
		assert.False(t, HasPageAccess(role, PageUnauthorized))
	}

	// An empty or unknown role gets nothing
	assert.False(t, HasPageAccess("", PageDashboard))
	assert.False(t, HasPageAccess(domain.Role("owner"), PageDashboard))
}

func TestDefaultPageForRole(t *testing.T) {
	assert.Equal(t, PageDashboard, DefaultPageForRole(domain.RoleUser))
	assert.Equal(t, PageDashboard, DefaultPageForRole(domain.RoleAdmin))
	assert.Equal(t, PageDashboard, DefaultPageForRole(domain.RoleSuperAdmin))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, PageUsers, Resolve(domain.RoleAdmin, PageUsers))
	assert.Equal(t, PageUnauthorized, Resolve(domain.RoleUser, PageUsers))
	assert.Equal(t, PageUnauthorized, Resolve(domain.RoleAdmin, PageSystem))
	assert.Equal(t, PageUnauthorized, Resolve(domain.RoleUser, Page("nope")))
	assert.Equal(t, PageSystem, Resolve(domain.RoleSuperAdmin, PageSystem))
}

func TestPagesCoversPermissionTable(t *testing.T) {
	pages := Pages()
	assert.Len(t, pages, 9)
	assert.NotContains(t, pages, PageUnauthorized)
}

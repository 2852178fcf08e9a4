package handlers

import (
	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/core/access"
	"chapa-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PageHandler is the navigation gate: it resolves page requests against
// the permission table and substitutes the unauthorized page on denial
type PageHandler struct{}

// NewPageHandler creates a new page handler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// PageInfo is the page descriptor returned to the client shell
type PageInfo struct {
	Page  access.Page `json:"page"`
	Title string      `json:"title"`
}

// pageTitles maps page identifiers to their display titles
var pageTitles = map[access.Page]string{
	access.PageDashboard:    "Dashboard",
	access.PageProfile:      "Profile",
	access.PageAccount:      "Account Settings",
	access.PageBilling:      "Billing & Usage",
	access.PageSendMoney:    "Send Money",
	access.PageRequestMoney: "Request Money",
	access.PageUsers:        "User Management",
	access.PageAnalytics:    "Analytics",
	access.PageSystem:       "System Settings",
	access.PageUnauthorized: "Access Denied",
}

// Default returns the landing page for the caller's role
// @Summary Default page
// @Description Landing page for the authenticated role
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /pages/default [get]
func (h *PageHandler) Default(c *fiber.Ctx) error {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	page := access.DefaultPageForRole(role)
	return response.Success(c, "Default page resolved", describe(page))
}

// Show resolves a navigation request. A denied request is not an HTTP
// error: the caller lands on the unauthorized page instead, exactly as the
// dashboard shell behaves.
// @Summary Resolve page
// @Description Resolve a navigation request against the permission table
// @Tags Pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page path string true "Page identifier"
// @Success 200 {object} response.Response
// @Router /pages/{page} [get]
func (h *PageHandler) Show(c *fiber.Ctx) error {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	requested := access.Page(c.Params("page"))

	// Navigation-time gate
	resolved := access.Resolve(role, requested)

	// Render-time gate, re-checked in case the resolved page still is not
	// viewable for the current role
	if resolved != access.PageUnauthorized && !access.HasPageAccess(role, resolved) {
		resolved = access.PageUnauthorized
	}

	return response.Success(c, "Page resolved", describe(resolved))
}

func describe(page access.Page) *PageInfo {
	title, ok := pageTitles[page]
	if !ok {
		title = string(page)
	}
	return &PageInfo{Page: page, Title: title}
}

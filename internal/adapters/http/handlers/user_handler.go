package handlers

import (
	"errors"
	"strconv"

	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// ListUsers handles listing users with optional search and filters
// @Summary List users
// @Description Get all users, optionally filtered by search/role/status (Admin+)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Match name or email"
// @Param role query string false "Filter by role"
// @Param active query bool false "Filter by active flag"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	input := &services.ListUsersInput{
		Search: c.Query("search"),
		Role:   domain.Role(c.Query("role")),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "Invalid active filter")
		}
		input.Active = &active
	}

	users, err := h.userService.ListUsers(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", fiber.Map{
		"users": users,
		"total": len(users),
	})
}

// ToggleStatus handles flipping a user's active flag
// @Summary Toggle user status
// @Description Activate or deactivate a user (Admin+; admins manage regular users only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/{id}/status [patch]
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	role, ok := middleware.RoleFromContext(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	user, err := h.userService.ToggleStatus(c.Context(), role, c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		case errors.Is(err, domain.ErrForbidden):
			return response.Forbidden(c, "Admin users can only manage regular users")
		default:
			return response.InternalServerError(c, "Failed to toggle user status")
		}
	}

	return response.Success(c, "User status updated", fiber.Map{
		"user": user,
	})
}

// AddAdminRequest represents the add administrator request body
type AddAdminRequest struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin super_admin"`
}

// AddAdmin handles creating an administrator account
// @Summary Add administrator
// @Description Create a new admin or super_admin account (Super admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddAdminRequest true "Administrator data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admins [post]
func (h *UserHandler) AddAdmin(c *fiber.Ctx) error {
	var req AddAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	// Duplicate email is rejected here, at the form boundary; the store
	// itself never enforces uniqueness
	taken, err := h.userService.EmailTaken(c.Context(), req.Email)
	if err != nil {
		return response.InternalServerError(c, "Failed to create admin")
	}
	if taken {
		return response.Conflict(c, "A user with this email already exists.")
	}

	admin, err := h.userService.AddAdmin(c.Context(), &services.AddAdminInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.Role(req.Role),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create admin")
	}

	return response.Created(c, "Administrator created successfully", fiber.Map{
		"user": admin,
	})
}

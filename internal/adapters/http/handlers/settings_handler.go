package handlers

import (
	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles system settings endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
	validate        *validator.Validate
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		validate:        validator.New(),
	}
}

// Get handles reading the system settings
// @Summary Get system settings
// @Description Read the system settings document (Super admin only)
// @Tags System
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /system/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load settings")
	}

	return response.Success(c, "Settings retrieved successfully", settings)
}

// Update handles replacing the system settings
// @Summary Update system settings
// @Description Replace the system settings document (Super admin only)
// @Tags System
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SystemSettings true "Settings document"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /system/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var settings services.SystemSettings
	if err := c.BodyParser(&settings); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validate.Struct(&settings); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	updated, err := h.settingsService.Update(c.Context(), &settings)
	if err != nil {
		return response.InternalServerError(c, "Failed to update settings")
	}

	return response.Success(c, "Settings saved successfully", updated)
}

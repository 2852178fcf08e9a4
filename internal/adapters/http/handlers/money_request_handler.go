package handlers

import (
	"time"

	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MoneyRequestHandler handles payment-request link endpoints
type MoneyRequestHandler struct {
	moneyRequestService *services.MoneyRequestService
	validate            *validator.Validate
}

// NewMoneyRequestHandler creates a new money request handler
func NewMoneyRequestHandler(moneyRequestService *services.MoneyRequestService) *MoneyRequestHandler {
	return &MoneyRequestHandler{
		moneyRequestService: moneyRequestService,
		validate:            validator.New(),
	}
}

// MoneyRequestBody represents the create money request body
type MoneyRequestBody struct {
	RequesterEmail string  `json:"requesterEmail" validate:"required,email"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"required"`
	DueDate        string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	IsUrgent       bool    `json:"isUrgent"`
}

// Create handles minting a shareable payment-request link
// @Summary Create money request
// @Description Build a shareable payment-request link (not persisted)
// @Tags MoneyRequests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body MoneyRequestBody true "Request data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /money-requests [post]
func (h *MoneyRequestHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req MoneyRequestBody
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	input := &services.MoneyRequestInput{
		RequesterID:    userID,
		RequesterEmail: req.RequesterEmail,
		Amount:         req.Amount,
		Description:    req.Description,
		IsUrgent:       req.IsUrgent,
	}
	if req.DueDate != "" {
		due, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return response.BadRequest(c, "Invalid due date")
		}
		input.DueDate = &due
	}

	request, err := h.moneyRequestService.Create(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create money request")
	}

	return response.Created(c, "Money request created successfully", request)
}

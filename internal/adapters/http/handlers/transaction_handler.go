package handlers

import (
	"fmt"

	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TransactionHandler handles wallet transaction endpoints
type TransactionHandler struct {
	transactionService *services.TransactionService
	userService        *services.UserService
	validate           *validator.Validate
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService *services.TransactionService, userService *services.UserService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		userService:        userService,
		validate:           validator.New(),
	}
}

// List handles listing transactions
// @Summary List transactions
// @Description Get the caller's transactions; admins may pass user_id
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Target user (admin only)"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	role, _ := middleware.RoleFromContext(c)

	target := c.Query("user_id", userID)
	if target != userID && role == domain.RoleUser {
		return response.Forbidden(c, "You can only view your own transactions")
	}

	transactions, err := h.transactionService.List(c.Context(), target)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transactions")
	}

	return response.Success(c, "Transactions retrieved successfully", fiber.Map{
		"transactions": transactions,
		"total":        len(transactions),
	})
}

// CreateTransactionRequest represents the create transaction request body
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=credit debit"`
	Description string  `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending completed failed"`
}

// Create handles recording a transaction for the caller
// @Summary Create transaction
// @Description Record a wallet transaction for the authenticated user
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateTransactionRequest true "Transaction draft"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Amount bounds live here; the service trusts its input
	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	tx, err := h.transactionService.Create(c.Context(), &services.CreateTransactionInput{
		UserID:      userID,
		Amount:      req.Amount,
		Type:        domain.TransactionType(req.Type),
		Description: req.Description,
		Status:      domain.TransactionStatus(req.Status),
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to create transaction")
	}

	return response.Created(c, "Transaction created successfully", fiber.Map{
		"transaction": tx,
	})
}

// SendMoneyRequest represents the send money request body. The PIN is a
// demo affordance: its presence and shape are checked, nothing verifies it.
type SendMoneyRequest struct {
	Recipient string  `json:"recipient" validate:"required,email"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Method    string  `json:"method" validate:"required,oneof=instant standard"`
	Note      string  `json:"note"`
	PIN       string  `json:"pin" validate:"required,len=4,numeric"`
}

// SendMoney handles the transfer flow
// @Summary Send money
// @Description Record a pending debit transfer with its fee receipt
// @Tags Transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendMoneyRequest true "Transfer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions/send [post]
func (h *TransactionHandler) SendMoney(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var req SendMoneyRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, validationMessage(err))
	}

	if req.Amount > services.MaxTransferAmount {
		return response.BadRequest(c, fmt.Sprintf("Maximum transfer limit is %d ETB", services.MaxTransferAmount))
	}

	// Balance check against the caller's current wallet
	sender, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		return response.Unauthorized(c, "Unauthorized")
	}
	if req.Amount > sender.Balance {
		return response.BadRequest(c, "Insufficient balance")
	}

	result, err := h.transactionService.SendMoney(c.Context(), &services.SendMoneyInput{
		UserID:    userID,
		Recipient: req.Recipient,
		Amount:    req.Amount,
		Method:    services.SendMethod(req.Method),
		Note:      req.Note,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to send money")
	}

	return response.Created(c, "Transfer recorded successfully", result)
}

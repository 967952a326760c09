package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
)

// DebtHandler handles HTTP requests for the debt book.
type DebtHandler struct {
	uc *usecase.DebtUseCase
}

// NewDebtHandler builds the handler.
func NewDebtHandler(uc *usecase.DebtUseCase) *DebtHandler {
	return &DebtHandler{uc: uc}
}

// List godoc
// @Summary      List debts
// @Tags         debts
// @Produce      json
// @Success      200  {object}  dto.DebtListResponse
// @Router       /api/debts [get]
func (h *DebtHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Register a debt
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDebtRequest  true  "Debt data"
// @Success      201   {object}  dto.DebtResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/debts [post]
func (h *DebtHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Edit a debt
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Debt ID"
// @Param        body  body  dto.UpdateDebtRequest  true  "Fields to change"
// @Success      200   {object}  dto.DebtResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/debts/{id} [put]
func (h *DebtHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	var in dto.UpdateDebtRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a debt
// @Tags         debts
// @Param        id  path  string  true  "Debt ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/debts/{id} [delete]
func (h *DebtHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id is required"})
	}
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamedsh/dokandar-api/internal/application/usecase"
)

// SettingsHandler maintenance endpoints of the settings page.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// ClearData godoc
// @Summary      Erase all products, sales and debts
// @Tags         settings
// @Success      204
// @Router       /api/settings/data [delete]
func (h *SettingsHandler) ClearData(c *fiber.Ctx) error {
	if err := h.uc.ClearAllData(); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamedsh/dokandar-api/internal/application/reports"
)

// ReportsHandler serves the spreadsheet export.
type ReportsHandler struct {
	uc *reports.ExportUseCase
}

// NewReportsHandler builds the handler.
func NewReportsHandler(uc *reports.ExportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// Export godoc
// @Summary      Download the shop data as an xlsx workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/reports/export [get]
func (h *ReportsHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.Export()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dokandar-export.xlsx"`)
	return c.Send(data)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamedsh/dokandar-api/internal/application/analytics"
	"github.com/hamedsh/dokandar-api/internal/application/reports"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SaleUC     *usecase.SaleUseCase
	DebtUC     *usecase.DebtUseCase
	SettingsUC *usecase.SettingsUseCase
	SummaryUC  *analytics.SummaryUseCase
	ExportUC   *reports.ExportUseCase
}

// Router registers the API routes. This is the whole surface the UI talks
// to; the handlers hold no business logic.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Record)

	debts := api.Group("/debts")
	debtHandler := NewDebtHandler(deps.DebtUC)
	debts.Get("/", debtHandler.List)
	debts.Post("/", debtHandler.Create)
	debts.Put("/:id", debtHandler.Update)
	debts.Delete("/:id", debtHandler.Delete)

	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.SummaryUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/reports", analyticsHandler.Reports)

	reportsGroup := api.Group("/reports")
	reportsHandler := NewReportsHandler(deps.ExportUC)
	reportsGroup.Get("/export", reportsHandler.Export)

	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Delete("/data", settingsHandler.ClearData)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/hamedsh/dokandar-api/internal/application/analytics"
	"github.com/hamedsh/dokandar-api/internal/application/reports"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
	"github.com/hamedsh/dokandar-api/internal/infrastructure/localstore"
	httpRouter "github.com/hamedsh/dokandar-api/internal/interfaces/http"
	"github.com/hamedsh/dokandar-api/pkg/config"
	"github.com/hamedsh/dokandar-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Store.DataDir).
		Msg("starting application")

	store, err := localstore.NewFileStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open data directory")
	}
	ledger := localstore.Open(store, log)

	productUC := usecase.NewProductUseCase(ledger)
	saleUC := usecase.NewSaleUseCase(ledger)
	debtUC := usecase.NewDebtUseCase(ledger)
	settingsUC := usecase.NewSettingsUseCase(ledger)
	summaryUC := analytics.NewSummaryUseCase(ledger, ledger)
	exportUC := reports.NewExportUseCase(ledger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Dokandar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SaleUC:     saleUC,
		DebtUC:     debtUC,
		SettingsUC: settingsUC,
		SummaryUC:  summaryUC,
		ExportUC:   exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

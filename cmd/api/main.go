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
	"github.com/onu-facilities/partstrack/internal/application/auth"
	"github.com/onu-facilities/partstrack/internal/application/inventory"
	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/application/usecase"
	"github.com/onu-facilities/partstrack/internal/infrastructure/postgres"
	httpRouter "github.com/onu-facilities/partstrack/internal/interfaces/http"
	"github.com/onu-facilities/partstrack/pkg/config"
	"github.com/onu-facilities/partstrack/pkg/logger"
)

func main() {
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
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	partRepo := postgres.NewPartRepository(pool)
	buildingRepo := postgres.NewBuildingRepository(pool)
	costCenterRepo := postgres.NewCostCenterRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	partUC := usecase.NewPartUseCase(partRepo)
	buildingUC := usecase.NewBuildingUseCase(buildingRepo, costCenterRepo)
	staffUC := usecase.NewStaffUseCase(staffRepo)
	workOrderUC := usecase.NewWorkOrderUseCase(workOrderRepo, buildingRepo)
	recordIssuanceUC := inventory.NewRecordIssuanceUseCase(txRunner, partRepo, buildingRepo, workOrderRepo)
	recordDeliveryUC := inventory.NewRecordDeliveryUseCase(txRunner, partRepo, staffRepo, buildingRepo)

	reportCache := report.NewResultCache(
		cfg.Report.CacheSize,
		time.Duration(cfg.Report.CacheTTLSeconds)*time.Second,
	)
	reportSvc := report.NewService(report.NewAggregator(reportRepo), reportCache, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "PartsTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:         partUC,
		BuildingUC:     buildingUC,
		StaffUC:        staffUC,
		WorkOrderUC:    workOrderUC,
		RecordIssuance: recordIssuanceUC,
		RecordDelivery: recordDeliveryUC,
		ReportSvc:      reportSvc,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

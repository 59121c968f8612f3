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
	"github.com/tallersoft/stockcaja/internal/application/auth"
	"github.com/tallersoft/stockcaja/internal/application/finance"
	"github.com/tallersoft/stockcaja/internal/application/parts"
	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/application/stats"
	"github.com/tallersoft/stockcaja/internal/application/usecase"
	"github.com/tallersoft/stockcaja/internal/infrastructure/export"
	infrapdf "github.com/tallersoft/stockcaja/internal/infrastructure/pdf"
	"github.com/tallersoft/stockcaja/internal/infrastructure/postgres"
	httpRouter "github.com/tallersoft/stockcaja/internal/interfaces/http"
	"github.com/tallersoft/stockcaja/pkg/config"
	"github.com/tallersoft/stockcaja/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	partRepo := postgres.NewPartRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	financeRepo := postgres.NewFinanceRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	partUC := parts.NewPartUseCase(txRunner, partRepo, warehouseRepo)
	movementUC := parts.NewMovementUseCase(txRunner, partRepo, movementRepo)
	financeUC := finance.NewFinanceUseCase(financeRepo)
	statsUC := stats.NewStatsUseCase(partRepo, financeRepo, time.Now)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	catalogUC := usecase.NewCatalogUseCase()

	// Reportes: PDF con maroto y CSV en la codificación configurada
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	csvExporter := export.NewCSVExporter(cfg.Export.CSVEncoding)
	reportUC := reports.NewReportUseCase(
		partRepo, financeRepo, warehouseRepo, pdfGenerator, csvExporter,
	)

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
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stockcaja API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PartUC:      partUC,
		MovementUC:  movementUC,
		FinanceUC:   financeUC,
		StatsUC:     statsUC,
		WarehouseUC: warehouseUC,
		CatalogUC:   catalogUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

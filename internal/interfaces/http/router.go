package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/auth"
	"github.com/tallersoft/stockcaja/internal/application/finance"
	"github.com/tallersoft/stockcaja/internal/application/parts"
	"github.com/tallersoft/stockcaja/internal/application/reports"
	"github.com/tallersoft/stockcaja/internal/application/stats"
	"github.com/tallersoft/stockcaja/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PartUC      *parts.PartUseCase
	MovementUC  *parts.MovementUseCase
	FinanceUC   *finance.FinanceUseCase
	StatsUC     *stats.StatsUseCase
	WarehouseUC *usecase.WarehouseUseCase
	CatalogUC   *usecase.CatalogUseCase
	ReportUC    *reports.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	statsHandler := NewStatsHandler(deps.StatsUC)

	// Parts (protegido). /stats se registra antes de /:id: Fiber resuelve
	// en orden de registro y ":id" capturaría "stats".
	partsGroup := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC, deps.MovementUC)
	partsGroup.Get("/stats", statsHandler.PartStats)
	partsGroup.Post("/", partHandler.Create)
	partsGroup.Get("/", partHandler.List)
	partsGroup.Get("/:id", partHandler.GetByID)
	partsGroup.Put("/:id", partHandler.Update)
	partsGroup.Delete("/:id", partHandler.Delete)
	partsGroup.Post("/:id/movements", partHandler.ApplyMovement)
	partsGroup.Get("/:id/movements", partHandler.History)

	// Movimientos (protegido, listado global)
	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Get("/movements", movementHandler.List)

	// Finanzas (protegido). Mismo orden: /stats antes de /:id.
	finGroup := protected.Group("/finanzas")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finGroup.Get("/stats", statsHandler.FinanceStats)
	finGroup.Post("/", financeHandler.Create)
	finGroup.Get("/", financeHandler.List)
	finGroup.Get("/:id", financeHandler.GetByID)
	finGroup.Put("/:id", financeHandler.Update)
	finGroup.Delete("/:id", financeHandler.Delete)

	// Warehouses (protegido)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	// Catálogos (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalogs", catalogHandler.Catalogs)

	// Reportes descargables (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/inventory/pdf", reportHandler.InventoryPDF)
	reportsGroup.Get("/inventory/csv", reportHandler.InventoryCSV)
	reportsGroup.Get("/finanzas/csv", reportHandler.FinanceCSV)
}

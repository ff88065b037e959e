package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/onu-facilities/partstrack/internal/application/auth"
	"github.com/onu-facilities/partstrack/internal/application/inventory"
	"github.com/onu-facilities/partstrack/internal/application/report"
	"github.com/onu-facilities/partstrack/internal/application/usecase"
	"github.com/onu-facilities/partstrack/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	PartUC         *usecase.PartUseCase
	BuildingUC     *usecase.BuildingUseCase
	StaffUC        *usecase.StaffUseCase
	WorkOrderUC    *usecase.WorkOrderUseCase
	RecordIssuance *inventory.RecordIssuanceUseCase
	RecordDelivery *inventory.RecordDeliveryUseCase
	ReportSvc      *report.Service
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catalog mutations require supervisor or admin; reads are open to
	// any authenticated role.
	manage := RequireRole(entity.RoleSupervisor, entity.RoleAdmin)

	// Parts catalog
	parts := protected.Group("/parts")
	partHandler := NewPartHandler(deps.PartUC)
	parts.Post("/", manage, partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", manage, partHandler.Update)

	// Buildings and cost centers
	buildingHandler := NewBuildingHandler(deps.BuildingUC)
	buildings := protected.Group("/buildings")
	buildings.Post("/", manage, buildingHandler.CreateBuilding)
	buildings.Get("/", buildingHandler.ListBuildings)
	buildings.Get("/:id", buildingHandler.GetBuilding)
	costCenters := protected.Group("/cost-centers")
	costCenters.Post("/", manage, buildingHandler.CreateCostCenter)
	costCenters.Get("/", buildingHandler.ListCostCenters)

	// Staff directory
	staff := protected.Group("/staff")
	staffHandler := NewStaffHandler(deps.StaffUC)
	staff.Post("/", manage, staffHandler.Create)
	staff.Get("/", staffHandler.List)

	// Work orders
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.GetByID)
	workOrders.Post("/:id/close", manage, workOrderHandler.Close)

	// Inventory movements, recorded by any role at the counter
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RecordIssuance, deps.RecordDelivery)
	movements.Post("/charge-outs", movementHandler.RecordIssuance)
	movements.Post("/deliveries", movementHandler.RecordDelivery)

	// Monthly report export
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportSvc)
	reports.Get("/monthly", reportHandler.Monthly)
}

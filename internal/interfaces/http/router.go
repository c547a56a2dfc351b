package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/report"
	"github.com/jhoicas/asset-tracker/internal/application/snapshot"
	"github.com/jhoicas/asset-tracker/internal/application/usecase"
	"github.com/jhoicas/asset-tracker/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store       repository.Store
	OrgUC       *usecase.OrganizationUseCase
	TeamUC      *usecase.TeamUseCase
	PersonUC    *usecase.PersonUseCase
	AssetUC     *usecase.AssetUseCase
	LicenseUC   *usecase.LicenseUseCase
	InventoryUC *usecase.InventoryUseCase
	DashboardUC *usecase.DashboardUseCase
	Snapshots   *snapshot.Manager
	Reports     *report.UseCase
	Host        string
	Port        int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", NewHealthHandler(deps.Host, deps.Port).Check)

	// Colecciones crudas (cliente web)
	database := api.Group("/database")
	databaseHandler := NewDatabaseHandler(deps.Store)
	database.Get("/", databaseHandler.GetAll)
	database.Get("/:collection", databaseHandler.GetCollection)
	database.Post("/:collection", databaseHandler.SaveCollection)

	// Snapshots
	snap := api.Group("/snapshot")
	snapshotHandler := NewSnapshotHandler(deps.Snapshots)
	snap.Get("/export", snapshotHandler.Export)
	snap.Post("/import", snapshotHandler.Import)
	snap.Post("/restore", snapshotHandler.Restore)
	snap.Post("/clear", snapshotHandler.Clear)
	snap.Get("/backup", snapshotHandler.Backup)

	orgHandler := NewOrganizationHandler(deps.OrgUC, deps.DashboardUC)
	teamHandler := NewTeamHandler(deps.TeamUC)
	personHandler := NewPersonHandler(deps.PersonUC)
	assetHandler := NewAssetHandler(deps.AssetUC)
	licenseHandler := NewLicenseHandler(deps.LicenseUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	reportHandler := NewReportHandler(deps.Reports)

	// Organizaciones y colecciones por organización
	orgs := api.Group("/organizations")
	orgs.Get("/", orgHandler.List)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/:orgId", orgHandler.GetByID)
	orgs.Put("/:orgId", orgHandler.Update)
	orgs.Delete("/:orgId", orgHandler.Delete)
	orgs.Get("/:orgId/dashboard", orgHandler.Dashboard)

	orgs.Get("/:orgId/teams", teamHandler.List)
	orgs.Post("/:orgId/teams", teamHandler.Create)
	orgs.Get("/:orgId/people", personHandler.List)
	orgs.Post("/:orgId/people", personHandler.Create)
	orgs.Get("/:orgId/assets", assetHandler.List)
	orgs.Get("/:orgId/assets/available", assetHandler.Available)
	orgs.Post("/:orgId/assets", assetHandler.Create)
	orgs.Get("/:orgId/licenses", licenseHandler.List)
	orgs.Post("/:orgId/licenses", licenseHandler.Create)
	orgs.Get("/:orgId/inventory", inventoryHandler.List)
	orgs.Get("/:orgId/inventory/low-stock", inventoryHandler.LowStock)
	orgs.Get("/:orgId/inventory/needs-restock", inventoryHandler.NeedsRestock)
	orgs.Get("/:orgId/inventory/report.pdf", reportHandler.Inventory)
	orgs.Post("/:orgId/inventory", inventoryHandler.Create)

	// Teams
	teams := api.Group("/teams")
	teams.Get("/:id", teamHandler.GetByID)
	teams.Put("/:id", teamHandler.Update)
	teams.Delete("/:id", teamHandler.Delete)
	teams.Get("/:id/members", teamHandler.Members)
	teams.Post("/:id/members", teamHandler.AddMember)
	teams.Delete("/:id/members/:personId", teamHandler.RemoveMember)

	// People
	people := api.Group("/people")
	people.Get("/:id/report.pdf", reportHandler.PersonCustody)
	people.Get("/:id", personHandler.GetByID)
	people.Put("/:id", personHandler.Update)
	people.Delete("/:id", personHandler.Delete)

	// Assets
	assets := api.Group("/assets")
	assets.Get("/:id", assetHandler.GetByID)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)
	assets.Post("/:id/assign", assetHandler.Assign)
	assets.Post("/:id/unassign", assetHandler.Unassign)

	// Licenses
	licenses := api.Group("/licenses")
	licenses.Get("/:id", licenseHandler.GetByID)
	licenses.Put("/:id", licenseHandler.Update)
	licenses.Delete("/:id", licenseHandler.Delete)
	licenses.Post("/:id/assign", licenseHandler.Assign)
	licenses.Delete("/:id/assign/:personId", licenseHandler.Unassign)
	licenses.Put("/:id/code", licenseHandler.UpdateCode)
	licenses.Put("/:id/codes/:personId", licenseHandler.UpdateIndividualCode)

	// Inventory
	inventory := api.Group("/inventory")
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Put("/:id", inventoryHandler.Update)
	inventory.Put("/:id/quantity", inventoryHandler.UpdateQuantity)
	inventory.Delete("/:id", inventoryHandler.Delete)

	// Cualquier otra ruta bajo /api responde 404 en JSON, antes del fallback de la SPA.
	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

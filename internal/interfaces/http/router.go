package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cartera-api/internal/application/auth"
	"github.com/jhoicas/cartera-api/internal/application/period"
	"github.com/jhoicas/cartera-api/internal/application/status"
	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	ClientUC    *usecase.ClientUseCase
	CatalogUC   *usecase.CatalogUseCase
	BulkUpdater *status.BulkUpdater
	Initializer *period.Initializer
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

	// Companies (protegido; crear es solo admin)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", RequireRole(entity.RoleAdmin), companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)

	// Statuses: catálogo + actualización masiva (protegido)
	statuses := protected.Group("/statuses")
	statusHandler := NewStatusHandler(deps.CatalogUC, deps.BulkUpdater)
	statuses.Get("/", statusHandler.ListStatuses)
	statuses.Post("/bulk-update", statusHandler.BulkUpdate)
	statuses.Get("/:id/reasons", statusHandler.ListReasons)

	// Periods (protegido; inicializar es solo admin/supervisor)
	periods := protected.Group("/periods")
	periodHandler := NewPeriodHandler(deps.Initializer)
	periods.Post("/initialize", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), periodHandler.Initialize)
	periods.Get("/initialized", periodHandler.Initialized)
}

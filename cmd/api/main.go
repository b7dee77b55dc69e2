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
	"github.com/jhoicas/cartera-api/internal/application/auth"
	"github.com/jhoicas/cartera-api/internal/application/period"
	"github.com/jhoicas/cartera-api/internal/application/status"
	"github.com/jhoicas/cartera-api/internal/application/usecase"
	"github.com/jhoicas/cartera-api/internal/domain/workflow"
	"github.com/jhoicas/cartera-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cartera-api/internal/interfaces/http"
	"github.com/jhoicas/cartera-api/pkg/config"
	"github.com/jhoicas/cartera-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	statusTypeRepo := postgres.NewStatusTypeRepository(pool)
	periodRepo := postgres.NewPeriodStatusRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	territory := postgres.NewTerritoryProvider(pool)
	permissions := postgres.NewPermissionProvider(pool)

	wf := workflow.Default(cfg.Workflow.VisitedCompanyCode)
	validator := status.NewTransitionValidator(wf, companyRepo, statusTypeRepo)
	bulkUpdater := status.NewBulkUpdater(
		txRunner, validator, clientRepo, productRepo,
		territory, permissions, cfg.Workflow.BulkUpdateLimit,
	)

	writer := period.NewBatchWriter(periodRepo, 0)
	initializer := period.NewInitializer(clientRepo, statusTypeRepo, periodRepo, writer)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	catalogUC := usecase.NewCatalogUseCase(statusTypeRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cartera API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		ClientUC:    clientUC,
		CatalogUC:   catalogUC,
		BulkUpdater: bulkUpdater,
		Initializer: initializer,
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

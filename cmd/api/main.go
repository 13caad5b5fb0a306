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

	"github.com/autopecaspro/gestor-api/internal/application/analytics"
	"github.com/autopecaspro/gestor-api/internal/application/auth"
	"github.com/autopecaspro/gestor-api/internal/application/finance"
	"github.com/autopecaspro/gestor-api/internal/application/notifications"
	"github.com/autopecaspro/gestor-api/internal/application/registry"
	"github.com/autopecaspro/gestor-api/internal/application/sales"
	"github.com/autopecaspro/gestor-api/internal/application/serviceorders"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
	"github.com/autopecaspro/gestor-api/internal/infrastructure/postgres"
	httpRouter "github.com/autopecaspro/gestor-api/internal/interfaces/http"
	"github.com/autopecaspro/gestor-api/pkg/config"
	"github.com/autopecaspro/gestor-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	partRepo := postgres.NewPartRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	orderRepo := postgres.NewServiceOrderRepository(pool)
	financeRepo := postgres.NewFinancialRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(txRunner, partRepo, movementRepo)
	salesUC := sales.NewUseCase(txRunner, saleRepo, customerRepo)
	serviceOrderUC := serviceorders.NewUseCase(txRunner, orderRepo, customerRepo)
	financeUC := finance.NewUseCase(financeRepo)
	notificationUC := notifications.NewUseCase(notificationRepo)
	customerUC := registry.NewCustomerUseCase(customerRepo)
	supplierUC := registry.NewSupplierUseCase(supplierRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT)
	dashboardUC := analytics.NewDashboardUseCase(dashboardRepo, financeRepo, notificationRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Autopeças API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:        stockUC,
		SalesUC:        salesUC,
		ServiceOrderUC: serviceOrderUC,
		FinanceUC:      financeUC,
		NotificationUC: notificationUC,
		CustomerUC:     customerUC,
		SupplierUC:     supplierUC,
		AuthUC:         authUC,
		DashboardUC:    dashboardUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando servidor")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

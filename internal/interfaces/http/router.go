package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/autopecaspro/gestor-api/internal/application/analytics"
	"github.com/autopecaspro/gestor-api/internal/application/auth"
	"github.com/autopecaspro/gestor-api/internal/application/finance"
	"github.com/autopecaspro/gestor-api/internal/application/notifications"
	"github.com/autopecaspro/gestor-api/internal/application/registry"
	"github.com/autopecaspro/gestor-api/internal/application/sales"
	"github.com/autopecaspro/gestor-api/internal/application/serviceorders"
	"github.com/autopecaspro/gestor-api/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	StockUC        *stock.UseCase
	SalesUC        *sales.UseCase
	ServiceOrderUC *serviceorders.UseCase
	FinanceUC      *finance.UseCase
	NotificationUC *notifications.UseCase
	CustomerUC     *registry.CustomerUseCase
	SupplierUC     *registry.SupplierUseCase
	AuthUC         *auth.UseCase
	DashboardUC    *analytics.DashboardUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Peças e estoque
	parts := protected.Group("/parts", RequireCapability(auth.ActionManageParts))
	partHandler := NewPartHandler(deps.StockUC)
	parts.Post("/", partHandler.Create)
	parts.Get("/", partHandler.List)
	parts.Get("/low-stock", partHandler.LowStock)
	parts.Get("/:id", partHandler.GetByID)
	parts.Put("/:id", partHandler.Update)
	parts.Delete("/:id", partHandler.Delete)
	parts.Post("/:id/stock/add", partHandler.AddStock)
	parts.Post("/:id/stock/remove", partHandler.RemoveStock)
	parts.Get("/:id/movements", partHandler.Movements)

	// Vendas e orçamentos
	salesGroup := protected.Group("/sales", RequireCapability(auth.ActionManageSales))
	saleHandler := NewSaleHandler(deps.SalesUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)
	salesGroup.Post("/:id/convert", saleHandler.Convert)
	salesGroup.Post("/:id/pay", saleHandler.MarkPaid)

	// Ordens de serviço
	orders := protected.Group("/service-orders", RequireCapability(auth.ActionManageOrders))
	orderHandler := NewServiceOrderHandler(deps.ServiceOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Patch("/:id/payment", orderHandler.UpdatePayment)
	orders.Delete("/:id", orderHandler.Delete)

	// Financeiro
	financial := protected.Group("/financial", RequireCapability(auth.ActionManageFinance))
	financialHandler := NewFinancialHandler(deps.FinanceUC)
	financial.Post("/transactions", financialHandler.Create)
	financial.Get("/transactions", financialHandler.List)
	financial.Get("/transactions/:id", financialHandler.GetByID)
	financial.Put("/transactions/:id", financialHandler.Update)
	financial.Delete("/transactions/:id", financialHandler.Delete)
	financial.Get("/balance", financialHandler.Balance)

	// Notificações (qualquer usuário autenticado)
	notifGroup := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifGroup.Get("/", notificationHandler.List)
	notifGroup.Get("/unread-count", notificationHandler.UnreadCount)
	notifGroup.Patch("/read-all", notificationHandler.MarkAllRead)
	notifGroup.Patch("/:id/read", notificationHandler.MarkRead)
	notifGroup.Delete("/:id", notificationHandler.Delete)

	// Clientes
	customers := protected.Group("/customers", RequireCapability(auth.ActionManageRegistry))
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Fornecedores
	suppliers := protected.Group("/suppliers", RequireCapability(auth.ActionManageRegistry))
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Usuários (só Administrador)
	users := protected.Group("/users", RequireCapability(auth.ActionManageUsers))
	users.Post("/", authHandler.CreateUser)
	users.Get("/", authHandler.ListUsers)
	users.Get("/:id", authHandler.GetUser)
	users.Put("/:id", authHandler.UpdateUser)
	users.Delete("/:id", authHandler.DeleteUser)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireCapability(auth.ActionViewDashboard), dashboardHandler.Summary)
}

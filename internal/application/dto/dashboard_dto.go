package dto

import "github.com/shopspring/decimal"

// DashboardResponse indicadores agregados da tela inicial.
type DashboardResponse struct {
	TotalParts          int             `json:"total_parts"`
	LowStockParts       int             `json:"low_stock_parts"`
	OpenServiceOrders   int             `json:"open_service_orders"`
	PendingSales        int             `json:"pending_sales"`
	MonthRevenue        decimal.Decimal `json:"month_revenue"`
	MonthExpense        decimal.Decimal `json:"month_expense"`
	MonthNet            decimal.Decimal `json:"month_net"`
	UnreadNotifications int             `json:"unread_notifications"`
}

package analytics

import (
	"time"

	"github.com/autopecaspro/gestor-api/internal/application/dto"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// DashboardUseCase monta os indicadores da tela inicial: contadores de
// estoque, vendas e OS abertas, o resultado financeiro do mês corrente e o
// badge de notificações.
type DashboardUseCase struct {
	dashboard     repository.DashboardRepository
	finance       repository.FinancialTransactionRepository
	notifications repository.NotificationRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	dashboard repository.DashboardRepository,
	finance repository.FinancialTransactionRepository,
	notifications repository.NotificationRepository,
) *DashboardUseCase {
	return &DashboardUseCase{dashboard: dashboard, finance: finance, notifications: notifications}
}

// Summary devolve o painel completo.
func (uc *DashboardUseCase) Summary() (dto.DashboardResponse, error) {
	counts, err := uc.dashboard.Counts()
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	revenue, expense, err := uc.finance.Balance(&monthStart, &now)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	unread, err := uc.notifications.UnreadCount()
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	return dto.DashboardResponse{
		TotalParts:          counts.TotalParts,
		LowStockParts:       counts.LowStockParts,
		OpenServiceOrders:   counts.OpenServiceOrders,
		PendingSales:        counts.PendingSales,
		MonthRevenue:        revenue,
		MonthExpense:        expense,
		MonthNet:            revenue.Sub(expense),
		UnreadNotifications: unread,
	}, nil
}

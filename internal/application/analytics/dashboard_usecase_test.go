package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/analytics"
	"github.com/autopecaspro/gestor-api/internal/application/apptest"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

type countsStub struct {
	counts repository.DashboardCounts
}

func (s *countsStub) Counts() (repository.DashboardCounts, error) {
	return s.counts, nil
}

func TestSummary(t *testing.T) {
	store := apptest.NewStore()
	repos := store.Repos()

	// receita do mês corrente e uma notificação não lida
	require.NoError(t, repos.Finance.Create(&entity.FinancialTransaction{
		TransactionDate: time.Now(),
		Amount:          decimal.NewFromInt(400),
		Type:            entity.TransactionReceita,
	}))
	require.NoError(t, repos.Finance.Create(&entity.FinancialTransaction{
		TransactionDate: time.Now(),
		Amount:          decimal.NewFromInt(150),
		Type:            entity.TransactionDespesa,
	}))
	require.NoError(t, repos.Notifications.Create(&entity.Notification{
		Type:    entity.NotifEstoqueBaixo,
		Message: "Estoque baixo: Filtro",
	}))

	stub := &countsStub{counts: repository.DashboardCounts{
		TotalParts:        12,
		LowStockParts:     2,
		OpenServiceOrders: 3,
		PendingSales:      1,
	}}
	uc := analytics.NewDashboardUseCase(stub, repos.Finance, repos.Notifications)

	summary, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalParts)
	assert.Equal(t, 2, summary.LowStockParts)
	assert.Equal(t, 3, summary.OpenServiceOrders)
	assert.Equal(t, 1, summary.PendingSales)
	assert.Equal(t, 1, summary.UnreadNotifications)
	assert.True(t, summary.MonthNet.Equal(decimal.NewFromInt(250)))
}

package postgres

import (
	"context"
	"fmt"

	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas do painel, direto no pool (só leitura).
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository constrói o adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Counts devolve os contadores do painel numa única consulta.
func (r *DashboardRepo) Counts() (repository.DashboardCounts, error) {
	var c repository.DashboardCounts
	err := r.q.QueryRow(context.Background(), `
		SELECT
			(SELECT COUNT(*) FROM parts),
			(SELECT COUNT(*) FROM parts WHERE stock <= min_stock),
			(SELECT COUNT(*) FROM service_orders WHERE status IN ('Pendente', 'Em Andamento')),
			(SELECT COUNT(*) FROM sales WHERE status = 'PENDENTE PAGAMENTO' AND is_quote = FALSE)`,
	).Scan(&c.TotalParts, &c.LowStockParts, &c.OpenServiceOrders, &c.PendingSales)
	if err != nil {
		return repository.DashboardCounts{}, fmt.Errorf("dashboard counts: %w", err)
	}
	return c, nil
}

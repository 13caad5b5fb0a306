package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/autopecaspro/gestor-api/internal/application/uow"
)

var _ uow.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL, entregando
// repositórios atados à tx. Rollback fica agendado em defer para cobrir
// qualquer caminho de erro; Commit só acontece se fn devolver nil.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia a transação, monta o conjunto de repositórios sobre ela e faz
// Commit ou Rollback conforme o resultado de fn.
func (r *TxRunner) Run(ctx context.Context, fn func(repos uow.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := uow.Repos{
		Parts:         NewPartRepository(tx),
		Movements:     NewStockMovementRepository(tx),
		Sales:         NewSaleRepository(tx),
		ServiceOrders: NewServiceOrderRepository(tx),
		Finance:       NewFinancialRepository(tx),
		Notifications: NewNotificationRepository(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

package uow

import (
	"context"

	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

// Repos reúne os repositórios atados a uma mesma transação de banco.
// Os workflows recebem este conjunto dentro do callback de Run e nunca tocam
// o pool diretamente.
type Repos struct {
	Parts         repository.PartRepository
	Movements     repository.StockMovementRepository
	Sales         repository.SaleRepository
	ServiceOrders repository.ServiceOrderRepository
	Finance       repository.FinancialTransactionRepository
	Notifications repository.NotificationRepository
}

// TxRunner executa fn dentro de uma transação: commit se fn devolver nil,
// rollback em qualquer outro caso. Garante a atomicidade tudo-ou-nada dos
// workflows de venda, OS e estoque.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

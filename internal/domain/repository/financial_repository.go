package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// FinancialFilter filtros de listagem/busca de transações financeiras.
type FinancialFilter struct {
	Query     string // categoria ou descrição
	Type      string // Receita | Despesa
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// FinancialTransactionRepository define o porto de persistência do livro
// financeiro.
type FinancialTransactionRepository interface {
	Create(tx *entity.FinancialTransaction) error
	GetByID(id int64) (*entity.FinancialTransaction, error)
	Update(tx *entity.FinancialTransaction) error
	Delete(id int64) error
	List(filter FinancialFilter) ([]*entity.FinancialTransaction, error)
	// Balance devolve sum(Receita) e sum(Despesa) na janela opcional.
	Balance(start, end *time.Time) (revenue, expense decimal.Decimal, err error)
}

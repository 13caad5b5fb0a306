package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transação financeira.
const (
	TransactionReceita = "Receita"
	TransactionDespesa = "Despesa"
)

// Tipos de entidade de origem de uma transação.
const (
	RelatedSale         = "sale"
	RelatedServiceOrder = "service_order"
)

// FinancialTransaction representa um lançamento financeiro (receita ou despesa).
// Criada como efeito colateral de marcar uma venda como paga, ou diretamente
// pelo usuário.
type FinancialTransaction struct {
	ID                int64
	TransactionDate   time.Time
	Amount            decimal.Decimal
	Type              string
	Category          string
	Description       string
	RelatedEntityID   *int64
	RelatedEntityType string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

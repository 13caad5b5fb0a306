package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// TransactionRequest body para POST/PUT /api/financial/transactions.
type TransactionRequest struct {
	TransactionDate *time.Time      `json:"transaction_date,omitempty"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
	Type            string          `json:"type" validate:"required,oneof=Receita Despesa"`
	Category        string          `json:"category,omitempty"`
	Description     string          `json:"description,omitempty"`
}

// TransactionResponse representação de um lançamento financeiro na API.
type TransactionResponse struct {
	ID                int64           `json:"id"`
	TransactionDate   time.Time       `json:"transaction_date"`
	Amount            decimal.Decimal `json:"amount"`
	Type              string          `json:"type"`
	Category          string          `json:"category,omitempty"`
	Description       string          `json:"description,omitempty"`
	RelatedEntityID   *int64          `json:"related_entity_id,omitempty"`
	RelatedEntityType string          `json:"related_entity_type,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// NewTransactionResponse converte a entidade.
func NewTransactionResponse(t *entity.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		TransactionDate:   t.TransactionDate,
		Amount:            t.Amount,
		Type:              t.Type,
		Category:          t.Category,
		Description:       t.Description,
		RelatedEntityID:   t.RelatedEntityID,
		RelatedEntityType: t.RelatedEntityType,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// NewTransactionResponses converte a lista de lançamentos.
func NewTransactionResponses(list []*entity.FinancialTransaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// BalanceResponse saldo da janela: receitas, despesas e líquido.
type BalanceResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de uma venda. Orçamentos (IsQuote=true) têm status ORÇAMENTO e nunca
// afetam estoque; a conversão limpa a flag e muda o status para
// PENDENTE PAGAMENTO. Não há transição explícita para CANCELADA: a exclusão
// faz o papel de cancelamento (e devolve o estoque).
const (
	SaleStatusOrcamento = "ORÇAMENTO"
	SaleStatusPendente  = "PENDENTE PAGAMENTO"
	SaleStatusPaga      = "PAGA"
	SaleStatusCancelada = "CANCELADA"
)

// Sale representa uma venda ou orçamento.
type Sale struct {
	ID             int64
	SaleDate       time.Time
	CustomerID     int64
	TotalAmount    decimal.Decimal
	Discount       decimal.Decimal
	PaymentMethod  string
	UserID         int64  // usuário que registrou
	Status         string
	ClosedByUserID *int64 // usuário que marcou como paga
	IsQuote        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleItem é uma linha de venda: peça, quantidade, preço unitário e subtotal.
// O subtotal é recalculado (quantidade × preço) antes de persistir.
type SaleItem struct {
	ID        int64
	SaleID    int64
	PartID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

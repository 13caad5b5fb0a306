package entity

import "time"

// Direções de movimento de estoque.
const (
	MovementEntrada = "ENTRADA"
	MovementSaida   = "SAIDA"
)

// Origens de um movimento de estoque.
const (
	MovementRefSale         = "sale"
	MovementRefServiceOrder = "service_order"
	MovementRefManual       = "manual"
)

// StockMovement é o registro de auditoria de cada entrada/saída de estoque.
// BatchID agrupa os movimentos gravados na mesma transação (ex.: todos os
// itens de uma venda).
type StockMovement struct {
	ID            int64
	PartID        int64
	Direction     string
	Quantity      int
	ReferenceType string
	ReferenceID   *int64
	BatchID       string
	CreatedBy     *int64
	CreatedAt     time.Time
}

package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// StockMovementRepository define o porto de persistência do histórico de
// movimentos de estoque (auditoria do ledger).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByPart(partID int64, limit, offset int) ([]*entity.StockMovement, error)
	ListByReference(referenceType string, referenceID int64) ([]*entity.StockMovement, error)
}

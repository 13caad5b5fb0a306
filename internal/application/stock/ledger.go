package stock

import (
	"fmt"

	"github.com/autopecaspro/gestor-api/internal/application/uow"
	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
)

// RemoveInTx baixa estoque dentro da transação do caller: bloqueia a linha da
// peça (SELECT FOR UPDATE), verifica saldo suficiente, grava a nova contagem e
// o movimento de SAIDA. Dispara alerta de estoque baixo quando a contagem
// resultante fica em ou abaixo do mínimo.
func RemoveInTx(r uow.Repos, partID int64, qty int, refType string, refID, userID *int64, batchID string) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	part, err := r.Parts.GetForUpdate(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	if part.Stock < qty {
		return fmt.Errorf("%w: peça %d (%s) tem %d em estoque, pedido %d",
			domain.ErrInsufficientStock, part.ID, part.Name, part.Stock, qty)
	}
	newStock := part.Stock - qty
	if err := r.Parts.UpdateStock(part.ID, newStock); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		PartID:        part.ID,
		Direction:     entity.MovementSaida,
		Quantity:      qty,
		ReferenceType: refType,
		ReferenceID:   refID,
		BatchID:       batchID,
		CreatedBy:     userID,
	}
	if err := r.Movements.Create(mov); err != nil {
		return err
	}
	if newStock <= part.MinStock {
		return notifyLowStock(r, part, newStock)
	}
	return nil
}

// AddInTx devolve estoque dentro da transação do caller: bloqueia a linha,
// grava a nova contagem e o movimento de ENTRADA. A entrada também passa pela
// verificação de estoque baixo: uma reposição que ainda deixa a contagem em
// ou abaixo do mínimo dispara o alerta.
func AddInTx(r uow.Repos, partID int64, qty int, refType string, refID, userID *int64, batchID string) error {
	if qty <= 0 {
		return domain.ErrInvalidInput
	}
	part, err := r.Parts.GetForUpdate(partID)
	if err != nil {
		return err
	}
	if part == nil {
		return domain.ErrNotFound
	}
	newStock := part.Stock + qty
	if err := r.Parts.UpdateStock(part.ID, newStock); err != nil {
		return err
	}
	mov := &entity.StockMovement{
		PartID:        part.ID,
		Direction:     entity.MovementEntrada,
		Quantity:      qty,
		ReferenceType: refType,
		ReferenceID:   refID,
		BatchID:       batchID,
		CreatedBy:     userID,
	}
	if err := r.Movements.Create(mov); err != nil {
		return err
	}
	if newStock <= part.MinStock {
		return notifyLowStock(r, part, newStock)
	}
	return nil
}

// notifyLowStock registra o alerta de estoque baixo, deduplicado: nada é
// inserido enquanto existir alerta não lido para a mesma peça.
func notifyLowStock(r uow.Repos, part *entity.Part, newStock int) error {
	exists, err := r.Notifications.ExistsUnread(entity.NotifEstoqueBaixo, entity.NotifEntityPart, part.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	partID := part.ID
	n := &entity.Notification{
		Type:       entity.NotifEstoqueBaixo,
		Message:    fmt.Sprintf("Estoque baixo: %s (%d un., mínimo %d)", part.Name, newStock, part.MinStock),
		EntityID:   &partID,
		EntityType: entity.NotifEntityPart,
	}
	return r.Notifications.Create(n)
}

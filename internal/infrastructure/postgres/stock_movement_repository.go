package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação de StockMovementRepository (usável com pool ou tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste um movimento de estoque.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (part_id, direction, quantity, reference_type, reference_id, batch_id, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		m.PartID, m.Direction, m.Quantity, m.ReferenceType, m.ReferenceID, m.BatchID, m.CreatedBy,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByPart lista os movimentos de uma peça, mais recentes primeiro.
func (r *StockMovementRepo) ListByPart(partID int64, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, part_id, direction, quantity, reference_type, reference_id, batch_id, created_by, created_at
		FROM stock_movements WHERE part_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, partID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	return collectMovements(rows)
}

// ListByReference lista os movimentos gerados por uma venda ou OS.
func (r *StockMovementRepo) ListByReference(referenceType string, referenceID int64) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, part_id, direction, quantity, reference_type, reference_id, batch_id, created_by, created_at
		FROM stock_movements WHERE reference_type = $1 AND reference_id = $2
		ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, referenceType, referenceID)
	if err != nil {
		return nil, fmt.Errorf("list stock movements by reference: %w", err)
	}
	return collectMovements(rows)
}

func collectMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.PartID, &m.Direction, &m.Quantity, &m.ReferenceType,
			&m.ReferenceID, &m.BatchID, &m.CreatedBy, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

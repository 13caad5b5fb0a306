package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

const partColumns = `id, name, description, part_number, manufacturer, price, cost,
	stock, min_stock, location, supplier_id, category,
	COALESCE(original_code, ''), COALESCE(similar_code_01, ''), COALESCE(similar_code_02, ''), COALESCE(barcode, ''),
	created_at, updated_at`

// PartRepo implementação de PartRepository sobre PostgreSQL (usável com pool ou tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository constrói o adaptador de peças. Passar pool ou tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

func scanPart(row pgx.Row) (*entity.Part, error) {
	var p entity.Part
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.PartNumber, &p.Manufacturer, &p.Price, &p.Cost,
		&p.Stock, &p.MinStock, &p.Location, &p.SupplierID, &p.Category,
		&p.OriginalCode, &p.SimilarCode01, &p.SimilarCode02, &p.Barcode,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste uma nova peça e preenche o ID gerado.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (name, description, part_number, manufacturer, price, cost,
			stock, min_stock, location, supplier_id, category,
			original_code, similar_code_01, similar_code_02, barcode, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		part.Name, part.Description, part.PartNumber, part.Manufacturer, part.Price, part.Cost,
		part.Stock, part.MinStock, part.Location, part.SupplierID, part.Category,
		nullIfEmpty(part.OriginalCode), nullIfEmpty(part.SimilarCode01),
		nullIfEmpty(part.SimilarCode02), nullIfEmpty(part.Barcode),
	).Scan(&part.ID, &part.CreatedAt, &part.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtém uma peça por ID.
func (r *PartRepo) GetByID(id int64) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém a peça e bloqueia a linha (SELECT FOR UPDATE) para
// serializar mutações de estoque concorrentes na mesma peça.
func (r *PartRepo) GetForUpdate(id int64) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE id = $1 FOR UPDATE`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part for update: %w", err)
	}
	return p, nil
}

// GetByPartNumber obtém uma peça pelo código único.
func (r *PartRepo) GetByPartNumber(partNumber string) (*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE part_number = $1`
	p, err := scanPart(r.q.QueryRow(context.Background(), query, partNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part by part_number: %w", err)
	}
	return p, nil
}

// Update atualiza os dados cadastrais da peça (não altera stock; ver UpdateStock).
func (r *PartRepo) Update(part *entity.Part) error {
	query := `
		UPDATE parts
		SET name = $2, description = $3, part_number = $4, manufacturer = $5,
		    price = $6, cost = $7, min_stock = $8, location = $9, supplier_id = $10,
		    category = $11, original_code = $12, similar_code_01 = $13,
		    similar_code_02 = $14, barcode = $15, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		part.ID, part.Name, part.Description, part.PartNumber, part.Manufacturer,
		part.Price, part.Cost, part.MinStock, part.Location, part.SupplierID,
		part.Category, nullIfEmpty(part.OriginalCode), nullIfEmpty(part.SimilarCode01),
		nullIfEmpty(part.SimilarCode02), nullIfEmpty(part.Barcode),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock grava a nova contagem de estoque. Uso exclusivo do ledger.
func (r *PartRepo) UpdateStock(id int64, stock int) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE parts SET stock = $2, updated_at = now() WHERE id = $1`, id, stock)
	if err != nil {
		return fmt.Errorf("update part stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista peças com paginação, ordenadas por nome.
func (r *PartRepo) List(limit, offset int) ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryParts(query, limit, offset)
}

// Search busca em nome, código, fabricante, descrição e códigos alternativos.
func (r *PartRepo) Search(query string, limit, offset int) ([]*entity.Part, error) {
	sql := `SELECT ` + partColumns + `
		FROM parts
		WHERE name ILIKE $1 OR part_number ILIKE $1 OR manufacturer ILIKE $1
		   OR description ILIKE $1 OR original_code ILIKE $1
		   OR similar_code_01 ILIKE $1 OR similar_code_02 ILIKE $1 OR barcode ILIKE $1
		   OR CAST(id AS TEXT) = $2
		ORDER BY name LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), sql, likeTerm(query), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search parts: %w", err)
	}
	return collectParts(rows)
}

// BelowMinStock devolve as peças com stock <= min_stock.
func (r *PartRepo) BelowMinStock() ([]*entity.Part, error) {
	query := `SELECT ` + partColumns + ` FROM parts WHERE stock <= min_stock ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("parts below min stock: %w", err)
	}
	return collectParts(rows)
}

// Delete remove a peça.
func (r *PartRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM parts WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PartRepo) queryParts(query string, args ...any) ([]*entity.Part, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	return collectParts(rows)
}

func collectParts(rows pgx.Rows) ([]*entity.Part, error) {
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		p, err := scanPart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

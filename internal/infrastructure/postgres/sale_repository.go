package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, sale_date, customer_id, total_amount, discount, COALESCE(payment_method, ''),
	user_id, status, closed_by_user_id, is_quote, created_at, updated_at`

// SaleRepo implementação de SaleRepository (usável com pool ou tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.SaleDate, &s.CustomerID, &s.TotalAmount, &s.Discount, &s.PaymentMethod,
		&s.UserID, &s.Status, &s.ClosedByUserID, &s.IsQuote, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste a venda/orçamento e preenche o ID gerado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (sale_date, customer_id, total_amount, discount, payment_method,
			user_id, status, closed_by_user_id, is_quote, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		sale.SaleDate, sale.CustomerID, sale.TotalAmount, sale.Discount,
		nullIfEmpty(sale.PaymentMethod), sale.UserID, sale.Status, sale.ClosedByUserID, sale.IsQuote,
	).Scan(&sale.ID, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update grava o cabeçalho completo da venda.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales
		SET sale_date = $2, customer_id = $3, total_amount = $4, discount = $5,
		    payment_method = $6, user_id = $7, status = $8, closed_by_user_id = $9,
		    is_quote = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleDate, sale.CustomerID, sale.TotalAmount, sale.Discount,
		nullIfEmpty(sale.PaymentMethod), sale.UserID, sale.Status, sale.ClosedByUserID, sale.IsQuote,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a venda; os itens caem em cascata (FK ON DELETE CASCADE).
func (r *SaleRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista vendas com filtros opcionais, mais recentes primeiro.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	sql := `SELECT ` + saleColumns + ` FROM sales`
	var where []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Query != "" {
		term := arg(likeTerm(filter.Query))
		where = append(where, `(status ILIKE `+term+` OR payment_method ILIKE `+term+
			` OR customer_id IN (SELECT id FROM customers WHERE name ILIKE `+term+`))`)
	}
	if filter.StartDate != nil {
		where = append(where, `sale_date >= `+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, `sale_date <= `+arg(*filter.EndDate))
	}
	if filter.Status != "" {
		where = append(where, `status = `+arg(filter.Status))
	}
	if filter.IsQuote != nil {
		where = append(where, `is_quote = `+arg(*filter.IsQuote))
	}
	for i, w := range where {
		if i == 0 {
			sql += " WHERE " + w
		} else {
			sql += " AND " + w
		}
	}
	sql += ` ORDER BY sale_date DESC, id DESC LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CreateItem persiste uma linha de venda.
func (r *SaleRepo) CreateItem(item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, part_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.SaleID, item.PartID, item.Quantity, item.UnitPrice, item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

// ItemsBySale devolve as linhas da venda na ordem de inserção.
func (r *SaleRepo) ItemsBySale(saleID int64) ([]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, part_id, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ID, &it.SaleID, &it.PartID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// DeleteItems remove todas as linhas da venda (passo do reverse-then-reapply).
func (r *SaleRepo) DeleteItems(saleID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sale_items WHERE sale_id = $1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/autopecaspro/gestor-api/internal/domain"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/internal/domain/repository"
)

var _ repository.FinancialTransactionRepository = (*FinancialRepo)(nil)

const financialColumns = `id, transaction_date, amount, type, COALESCE(category, ''), COALESCE(description, ''),
	related_entity_id, COALESCE(related_entity_type, ''), created_at, updated_at`

// FinancialRepo implementação de FinancialTransactionRepository (usável com pool ou tx).
type FinancialRepo struct {
	q Querier
}

// NewFinancialRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFinancialRepository(q Querier) *FinancialRepo {
	return &FinancialRepo{q: q}
}

func scanTransaction(row pgx.Row) (*entity.FinancialTransaction, error) {
	var t entity.FinancialTransaction
	err := row.Scan(
		&t.ID, &t.TransactionDate, &t.Amount, &t.Type, &t.Category, &t.Description,
		&t.RelatedEntityID, &t.RelatedEntityType, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create persiste o lançamento e preenche o ID gerado.
func (r *FinancialRepo) Create(tx *entity.FinancialTransaction) error {
	query := `
		INSERT INTO financial_transactions (transaction_date, amount, type, category, description,
			related_entity_id, related_entity_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		tx.TransactionDate, tx.Amount, tx.Type, nullIfEmpty(tx.Category), nullIfEmpty(tx.Description),
		tx.RelatedEntityID, nullIfEmpty(tx.RelatedEntityType),
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert financial transaction: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID.
func (r *FinancialRepo) GetByID(id int64) (*entity.FinancialTransaction, error) {
	query := `SELECT ` + financialColumns + ` FROM financial_transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial transaction: %w", err)
	}
	return t, nil
}

// Update grava o lançamento completo.
func (r *FinancialRepo) Update(tx *entity.FinancialTransaction) error {
	query := `
		UPDATE financial_transactions
		SET transaction_date = $2, amount = $3, type = $4, category = $5, description = $6,
		    related_entity_id = $7, related_entity_type = $8, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionDate, tx.Amount, tx.Type, nullIfEmpty(tx.Category),
		nullIfEmpty(tx.Description), tx.RelatedEntityID, nullIfEmpty(tx.RelatedEntityType),
	)
	if err != nil {
		return fmt.Errorf("update financial transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o lançamento.
func (r *FinancialRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financial transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista lançamentos com filtros opcionais, mais recentes primeiro.
func (r *FinancialRepo) List(filter repository.FinancialFilter) ([]*entity.FinancialTransaction, error) {
	sql := `SELECT ` + financialColumns + ` FROM financial_transactions`
	var where []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Query != "" {
		term := arg(likeTerm(filter.Query))
		where = append(where, `(category ILIKE `+term+` OR description ILIKE `+term+`)`)
	}
	if filter.Type != "" {
		where = append(where, `type = `+arg(filter.Type))
	}
	if filter.StartDate != nil {
		where = append(where, `transaction_date >= `+arg(*filter.StartDate))
	}
	if filter.EndDate != nil {
		where = append(where, `transaction_date <= `+arg(*filter.EndDate))
	}
	for i, w := range where {
		if i == 0 {
			sql += " WHERE " + w
		} else {
			sql += " AND " + w
		}
	}
	sql += ` ORDER BY transaction_date DESC, id DESC LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list financial transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialTransaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan financial transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Balance devolve a soma das receitas e despesas na janela opcional.
func (r *FinancialRepo) Balance(start, end *time.Time) (decimal.Decimal, decimal.Decimal, error) {
	sql := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'Receita'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'Despesa'), 0)
		FROM financial_transactions`
	var where []string
	var args []any
	if start != nil {
		args = append(args, *start)
		where = append(where, `transaction_date >= $`+strconv.Itoa(len(args)))
	}
	if end != nil {
		args = append(args, *end)
		where = append(where, `transaction_date <= $`+strconv.Itoa(len(args)))
	}
	for i, w := range where {
		if i == 0 {
			sql += " WHERE " + w
		} else {
			sql += " AND " + w
		}
	}
	var revenue, expense decimal.Decimal
	if err := r.q.QueryRow(context.Background(), sql, args...).Scan(&revenue, &expense); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("financial balance: %w", err)
	}
	return revenue, expense, nil
}

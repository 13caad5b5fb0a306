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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, COALESCE(cnpj, ''), COALESCE(contact_person, ''),
	COALESCE(phone, ''), COALESCE(email, ''), COALESCE(address, ''), created_at, updated_at`

// SupplierRepo implementação de SupplierRepository (usável com pool ou tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.Name, &s.Cnpj, &s.ContactPerson, &s.Phone, &s.Email, &s.Address,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create persiste o fornecedor e preenche o ID gerado.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (name, cnpj, contact_person, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		s.Name, nullIfEmpty(s.Cnpj), nullIfEmpty(s.ContactPerson),
		nullIfEmpty(s.Phone), nullIfEmpty(s.Email), nullIfEmpty(s.Address),
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtém um fornecedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// GetByName obtém um fornecedor pelo nome exato.
func (r *SupplierRepo) GetByName(name string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE name = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by name: %w", err)
	}
	return s, nil
}

// GetByCnpj obtém um fornecedor pelo CNPJ.
func (r *SupplierRepo) GetByCnpj(cnpj string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE cnpj = $1`
	s, err := scanSupplier(r.q.QueryRow(context.Background(), query, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by cnpj: %w", err)
	}
	return s, nil
}

// Update grava o fornecedor completo.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, cnpj = $3, contact_person = $4, phone = $5, email = $6,
		    address = $7, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		s.ID, s.Name, nullIfEmpty(s.Cnpj), nullIfEmpty(s.ContactPerson),
		nullIfEmpty(s.Phone), nullIfEmpty(s.Email), nullIfEmpty(s.Address),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o fornecedor. Falha com ErrConflict se houver peças ligadas.
func (r *SupplierRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista fornecedores por nome.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return collectSuppliers(rows)
}

// Search busca em nome, CNPJ, contato e email.
func (r *SupplierRepo) Search(query string, limit, offset int) ([]*entity.Supplier, error) {
	sql := `SELECT ` + supplierColumns + `
		FROM suppliers
		WHERE name ILIKE $1 OR cnpj ILIKE $1 OR contact_person ILIKE $1 OR email ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), sql, likeTerm(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	return collectSuppliers(rows)
}

func collectSuppliers(rows pgx.Rows) ([]*entity.Supplier, error) {
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, name, COALESCE(cpf_cnpj, ''), COALESCE(phone, ''), COALESCE(email, ''),
	COALESCE(street, ''), COALESCE(number, ''), COALESCE(neighborhood, ''),
	COALESCE(city, ''), COALESCE(zip_code, ''), created_at, updated_at`

// CustomerRepo implementação de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.CpfCnpj, &c.Phone, &c.Email,
		&c.Street, &c.Number, &c.Neighborhood, &c.City, &c.ZipCode,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste o cliente e preenche o ID gerado.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (name, cpf_cnpj, phone, email, street, number, neighborhood, city, zip_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, nullIfEmpty(c.CpfCnpj), nullIfEmpty(c.Phone), nullIfEmpty(c.Email),
		nullIfEmpty(c.Street), nullIfEmpty(c.Number), nullIfEmpty(c.Neighborhood),
		nullIfEmpty(c.City), nullIfEmpty(c.ZipCode),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *CustomerRepo) GetByID(id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// GetByCpfCnpj obtém um cliente pelo CPF/CNPJ.
func (r *CustomerRepo) GetByCpfCnpj(cpfCnpj string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE cpf_cnpj = $1`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, cpfCnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by cpf_cnpj: %w", err)
	}
	return c, nil
}

// Update grava o cliente completo.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, cpf_cnpj = $3, phone = $4, email = $5, street = $6,
		    number = $7, neighborhood = $8, city = $9, zip_code = $10, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, nullIfEmpty(c.CpfCnpj), nullIfEmpty(c.Phone), nullIfEmpty(c.Email),
		nullIfEmpty(c.Street), nullIfEmpty(c.Number), nullIfEmpty(c.Neighborhood),
		nullIfEmpty(c.City), nullIfEmpty(c.ZipCode),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o cliente. Falha com ErrConflict se houver vendas ou OS ligadas.
func (r *CustomerRepo) Delete(id int64) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes por nome.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return collectCustomers(rows)
}

// Search busca em nome, CPF/CNPJ, telefone e email.
func (r *CustomerRepo) Search(query string, limit, offset int) ([]*entity.Customer, error) {
	sql := `SELECT ` + customerColumns + `
		FROM customers
		WHERE name ILIKE $1 OR cpf_cnpj ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), sql, likeTerm(query), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return collectCustomers(rows)
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

package repository

import "github.com/autopecaspro/gestor-api/internal/domain/entity"

// CustomerRepository define o porto de persistência para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id int64) (*entity.Customer, error)
	GetByCpfCnpj(cpfCnpj string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Customer, error)
	Search(query string, limit, offset int) ([]*entity.Customer, error)
}
